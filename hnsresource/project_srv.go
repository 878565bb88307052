package hnsresource

import (
	"strings"

	"github.com/miekg/dns"
)

// ProjectSRV emits one SRV RR per SERVICE record matching the given
// service/protocol pair (case-insensitive), with the target resolved
// through §4.D. The "smtp."/"tcp." pair also feeds ProjectMX (see
// project_mx.go); ProjectSRV applies no special case to it.
func ProjectSRV(res *Resource, owner, queryName, service, protocol string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		svc, ok := rec.(*ServiceRecord)
		if !ok {
			continue
		}

		if !strings.EqualFold(svc.Service, service) || !strings.EqualFold(svc.Protocol, protocol) {
			continue
		}

		name, applicable, err := resolveHost(svc.Target, queryName)
		if err != nil || !applicable {
			continue
		}

		out = append(out, &dns.SRV{
			Hdr:      newHeader(owner, dns.TypeSRV, ttl),
			Priority: svc.Priority,
			Weight:   svc.Weight,
			Port:     svc.Port,
			Target:   dns.Fqdn(name),
		})
	}

	return out
}
