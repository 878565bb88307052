package hnsresource

import "github.com/miekg/dns"

// ProjectCNAME emits one CNAME RR per CANONICAL record whose target is NAME
// or GLUE; the target name comes from the §4.D resolver. CANONICAL records
// pointing at a bare address are a mixing mismatch and are skipped.
func ProjectCNAME(res *Resource, owner, queryName string, ttl uint32) []dns.RR {
	return projectNameRR(res, KindCanonical, owner, queryName, ttl, dns.TypeCNAME,
		func(hdr dns.RR_Header, target string) dns.RR {
			return &dns.CNAME{Hdr: hdr, Target: dns.Fqdn(target)}
		})
}

// ProjectDNAME emits one DNAME RR per DELEGATE record whose target is NAME
// or GLUE.
func ProjectDNAME(res *Resource, owner, queryName string, ttl uint32) []dns.RR {
	return projectNameRR(res, KindDelegate, owner, queryName, ttl, dns.TypeDNAME,
		func(hdr dns.RR_Header, target string) dns.RR {
			return &dns.DNAME{Hdr: hdr, Target: dns.Fqdn(target)}
		})
}

func projectNameRR(
	res *Resource, kind Kind, owner, queryName string, ttl uint32, rrtype uint16,
	build func(hdr dns.RR_Header, target string) dns.RR,
) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		hr, ok := rec.(*HostRecord)
		if !ok || hr.K != kind {
			continue
		}

		if hr.Host.Kind != TargetNAME && hr.Host.Kind != TargetGLUE {
			continue
		}

		name, applicable, err := resolveHost(hr.Host, queryName)
		if err != nil || !applicable {
			continue
		}

		out = append(out, build(newHeader(owner, rrtype, ttl), name))
	}

	return out
}
