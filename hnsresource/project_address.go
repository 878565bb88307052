package hnsresource

import "github.com/miekg/dns"

// ProjectA emits one A RR per INET4 host record (spec §4.E). Records whose
// wire kind is INET4 but whose target discriminant disagrees are a mixing
// mismatch and are silently skipped, never an error (spec §7).
func ProjectA(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		hr, ok := rec.(*HostRecord)
		if !ok || hr.K != KindInet4 || hr.Host.Kind != TargetINET4 {
			continue
		}

		out = append(out, &dns.A{Hdr: newHeader(owner, dns.TypeA, ttl), A: v4ToIP(hr.Host.INET4)})
	}

	return out
}

// ProjectAAAA emits one AAAA RR per INET6 host record.
func ProjectAAAA(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		hr, ok := rec.(*HostRecord)
		if !ok || hr.K != KindInet6 || hr.Host.Kind != TargetINET6 {
			continue
		}

		out = append(out, &dns.AAAA{Hdr: newHeader(owner, dns.TypeAAAA, ttl), AAAA: v6ToIP(hr.Host.INET6)})
	}

	return out
}
