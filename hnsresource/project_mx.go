package hnsresource

import (
	"strings"

	"github.com/miekg/dns"
)

const (
	mxService  = "smtp."
	mxProtocol = "tcp."
)

func isMXService(svc *ServiceRecord) bool {
	return strings.EqualFold(svc.Service, mxService) && strings.EqualFold(svc.Protocol, mxProtocol)
}

// ProjectMX emits one MX RR per SERVICE record whose service/protocol pair
// is "smtp."/"tcp." (spec §4.E); the mail exchanger name comes from the
// §4.D target resolver, skipping targets the resolver can't turn into a name.
func ProjectMX(res *Resource, owner, queryName string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		svc, ok := rec.(*ServiceRecord)
		if !ok || !isMXService(svc) {
			continue
		}

		name, applicable, err := resolveHost(svc.Target, queryName)
		if err != nil || !applicable {
			continue
		}

		out = append(out, &dns.MX{
			Hdr:        newHeader(owner, dns.TypeMX, ttl),
			Preference: svc.Priority,
			Mx:         dns.Fqdn(name),
		})
	}

	return out
}

// ProjectMXGlue emits the additional-section glue for smtp./tcp. SERVICE
// records, mirroring ProjectNSGlue's literal-vs-synthetic split.
func ProjectMXGlue(res *Resource, queryName string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		svc, ok := rec.(*ServiceRecord)
		if !ok || !isMXService(svc) {
			continue
		}

		switch svc.Target.Kind {
		case TargetGLUE:
			owner := dns.Fqdn(svc.Target.Name)

			if svc.Target.HasV4 {
				out = append(out, &dns.A{Hdr: newHeader(owner, dns.TypeA, ttl), A: v4ToIP(svc.Target.V4)})
			}

			if svc.Target.HasV6 {
				out = append(out, &dns.AAAA{Hdr: newHeader(owner, dns.TypeAAAA, ttl), AAAA: v6ToIP(svc.Target.V6)})
			}

		case TargetINET4:
			name, applicable, err := resolveHost(svc.Target, queryName)
			if err != nil || !applicable {
				continue
			}

			out = append(out, &dns.A{Hdr: newHeader(name, dns.TypeA, ttl), A: v4ToIP(svc.Target.INET4)})

		case TargetINET6:
			name, applicable, err := resolveHost(svc.Target, queryName)
			if err != nil || !applicable {
				continue
			}

			out = append(out, &dns.AAAA{Hdr: newHeader(name, dns.TypeAAAA, ttl), AAAA: v6ToIP(svc.Target.INET6)})
		}
	}

	return out
}
