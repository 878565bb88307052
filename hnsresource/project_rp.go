package hnsresource

import "github.com/miekg/dns"

const maxRPMboxLen = 63

// ProjectRP emits one RP RR per EMAIL record whose text is at most 63 bytes
// and forms a valid DNS name once turned into an FQDN (spec §4.E). The Txt
// field always points at the root, since the wire format carries no
// separate TXT-record pointer for RP.
func ProjectRP(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		sr, ok := rec.(*StringRecord)
		if !ok || sr.K != KindEmail || len(sr.Text) > maxRPMboxLen {
			continue
		}

		mbox := dns.Fqdn(sr.Text)
		if _, ok := dns.IsDomainName(mbox); !ok {
			continue
		}

		out = append(out, &dns.RP{
			Hdr:  newHeader(owner, dns.TypeRP, ttl),
			Mbox: mbox,
			Txt:  ".",
		})
	}

	return out
}
