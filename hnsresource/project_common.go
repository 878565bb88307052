package hnsresource

import (
	"net"

	"github.com/miekg/dns"
)

func v4ToIP(v4 [4]byte) net.IP  { return net.IPv4(v4[0], v4[1], v4[2], v4[3]) }
func v6ToIP(v6 [16]byte) net.IP { return net.IP(v6[:]) }

func newHeader(name string, rrtype uint16, ttl uint32) dns.RR_Header {
	return dns.RR_Header{
		Name:   dns.Fqdn(name),
		Rrtype: rrtype,
		Class:  dns.ClassINET,
		Ttl:    ttl,
	}
}

// projectGlue emits A/AAAA glue RRs owned by the stored GLUE name, for
// every record of the given kind whose host target is GLUE (spec §4.E,
// the final "GLUE (additional for an arbitrary RRTYPE)" bullet).
func projectGlue(res *Resource, kind Kind, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		hr, ok := rec.(*HostRecord)
		if !ok || hr.K != kind || hr.Host.Kind != TargetGLUE {
			continue
		}

		owner := dns.Fqdn(hr.Host.Name)

		if hr.Host.HasV4 {
			out = append(out, &dns.A{Hdr: newHeader(owner, dns.TypeA, ttl), A: v4ToIP(hr.Host.V4)})
		}

		if hr.Host.HasV6 {
			out = append(out, &dns.AAAA{Hdr: newHeader(owner, dns.TypeAAAA, ttl), AAAA: v6ToIP(hr.Host.V6)})
		}
	}

	return out
}
