package hnsresource

import (
	"encoding/hex"

	"github.com/miekg/dns"
)

// ProjectDS emits one DS RR per DS record. miekg/dns represents the digest
// as its hex-string zone-file form, so the raw wire bytes are hex-encoded.
func ProjectDS(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		dr, ok := rec.(*DSRecord)
		if !ok {
			continue
		}

		out = append(out, &dns.DS{
			Hdr:        newHeader(owner, dns.TypeDS, ttl),
			KeyTag:     dr.KeyTag,
			Algorithm:  dr.Algorithm,
			DigestType: dr.DigestType,
			Digest:     hex.EncodeToString(dr.Digest),
		})
	}

	return out
}
