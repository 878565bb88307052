package hnsresource

import (
	"encoding/hex"
	"fmt"

	"github.com/miekg/dns"
)

const maxURITargetLen = 255

// ProjectURI emits one URI RR per URL record verbatim, plus one synthesized
// from each MAGNET record ("magnet:?xt=urn:<nid>:<hex nin>") and each ADDR
// record of ctype 0 ("<currency>:<address>") or 3 ("<currency>:0x<hex
// hash>"); other ctypes have no URI representation (spec §4.E). Any
// synthesized target exceeding 255 bytes is dropped rather than truncated.
func ProjectURI(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		switch v := rec.(type) {
		case *StringRecord:
			if v.K != KindURL {
				continue
			}

			out = append(out, newURI(owner, ttl, v.Text))

		case *MagnetRecord:
			target := fmt.Sprintf("magnet:?xt=urn:%s:%s", v.NID, hex.EncodeToString(v.NIN))
			if len(target) > maxURITargetLen {
				continue
			}

			out = append(out, newURI(owner, ttl, target))

		case *AddrRecord:
			target, ok := addrURITarget(v)
			if !ok || len(target) > maxURITargetLen {
				continue
			}

			out = append(out, newURI(owner, ttl, target))
		}
	}

	return out
}

func addrURITarget(a *AddrRecord) (string, bool) {
	switch a.Ctype {
	case 0:
		return fmt.Sprintf("%s:%s", a.Currency, a.Address), true
	case 3:
		return fmt.Sprintf("%s:0x%s", a.Currency, hex.EncodeToString(a.Hash)), true
	default:
		return "", false
	}
}

func newURI(owner string, ttl uint32, target string) dns.RR {
	return &dns.URI{Hdr: newHeader(owner, dns.TypeURI, ttl), Priority: 0, Weight: 0, Target: target}
}
