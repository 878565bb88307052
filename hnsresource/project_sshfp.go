package hnsresource

import (
	"encoding/hex"

	"github.com/miekg/dns"
)

// ProjectSSHFP emits one SSHFP RR per SSH fingerprint record.
func ProjectSSHFP(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		fr, ok := rec.(*FingerprintRecord)
		if !ok || fr.K != KindSSH {
			continue
		}

		out = append(out, &dns.SSHFP{
			Hdr:         newHeader(owner, dns.TypeSSHFP, ttl),
			Algorithm:   fr.Algorithm,
			Type:        fr.KeyType,
			FingerPrint: hex.EncodeToString(fr.Fingerprint),
		})
	}

	return out
}
