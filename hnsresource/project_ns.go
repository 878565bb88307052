package hnsresource

import "github.com/miekg/dns"

// ProjectNS emits one NS RR per NS-kind record. A literal NS (target NAME or
// GLUE) carries its stored FQDN verbatim as the Ns field; a bare-address
// target (INET4/INET6) is a synthetic NS, whose Ns field is the fixed
// "_<b32>._synth." owner computed by synthNSOwner — a distinct scheme from
// the general §4.D target resolver, which ties its synthetic name to the
// query name's TLD instead of the literal "_synth." zone.
func ProjectNS(res *Resource, owner, queryName string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, hr := range nsRecords(res) {
		switch hr.Host.Kind {
		case TargetNAME, TargetGLUE:
			name, applicable, err := resolveHost(hr.Host, queryName)
			if err != nil || !applicable {
				continue
			}

			out = append(out, &dns.NS{Hdr: newHeader(owner, dns.TypeNS, ttl), Ns: dns.Fqdn(name)})

		case TargetINET4, TargetINET6:
			name, ok := synthNSOwner(hr.Host)
			if !ok {
				continue
			}

			out = append(out, &dns.NS{Hdr: newHeader(owner, dns.TypeNS, ttl), Ns: name})
		}
	}

	return out
}

// ProjectNSGlue emits the additional-section glue for every NS record:
// literal glue (GLUE target) is owned by its stored name; a bare-address
// target is owned by the §4.D synthetic pointer name, tied to queryName's
// TLD (distinct from the NS RR's own "_synth." owner, see ProjectNS).
func ProjectNSGlue(res *Resource, queryName string, ttl uint32) []dns.RR {
	out := projectGlue(res, KindNS, ttl)

	for _, hr := range nsRecords(res) {
		switch hr.Host.Kind {
		case TargetINET4:
			name, applicable, err := resolveHost(hr.Host, queryName)
			if err != nil || !applicable {
				continue
			}

			out = append(out, &dns.A{Hdr: newHeader(name, dns.TypeA, ttl), A: v4ToIP(hr.Host.INET4)})

		case TargetINET6:
			name, applicable, err := resolveHost(hr.Host, queryName)
			if err != nil || !applicable {
				continue
			}

			out = append(out, &dns.AAAA{Hdr: newHeader(name, dns.TypeAAAA, ttl), AAAA: v6ToIP(hr.Host.INET6)})
		}
	}

	return out
}
