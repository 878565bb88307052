package hnsresource

import "github.com/miekg/dns"

// ProjectTXT emits one TXT RR per TEXT record, each carrying a single
// character-string (spec §4.E; the wire format has no multi-segment TXT).
func ProjectTXT(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		sr, ok := rec.(*StringRecord)
		if !ok || sr.K != KindText {
			continue
		}

		out = append(out, &dns.TXT{Hdr: newHeader(owner, dns.TypeTXT, ttl), Txt: []string{sr.Text}})
	}

	return out
}
