package hnsresource

import (
	"net"
	"time"

	"github.com/miekg/dns"
)

const (
	rootNSTTL  = 518400
	rootSOATTL = 86400
	rootNSEC   = "."
)

// rootNSECTypeBitmap is the literal 9-byte window declaring NS, SOA, RRSIG,
// NSEC, DNSKEY for the root's empty proof (spec §6, wire formats).
var rootNSECTypeBitmap = []byte{0x00, 0x07, 0x22, 0x00, 0x00, 0x00, 0x00, 0x03, 0x80}

// newRootSOA synthesises the root zone's SOA: serial is the current UTC
// time packed as YYYYMMDDHH (spec §4.G). now is supplied by the caller
// rather than read from the clock here, keeping this function pure.
func newRootSOA(now time.Time) *dns.SOA {
	serial := uint32(now.Year())*1000000 + uint32(now.Month())*10000 + uint32(now.Day())*100 + uint32(now.Hour())

	return &dns.SOA{
		Hdr:     newHeader(".", dns.TypeSOA, rootSOATTL),
		Ns:      ".",
		Mbox:    ".",
		Serial:  serial,
		Refresh: 1800,
		Retry:   900,
		Expire:  604800,
		Minttl:  86400,
	}
}

func newRootNS() *dns.NS {
	return &dns.NS{Hdr: newHeader(".", dns.TypeNS, rootNSTTL), Ns: "."}
}

func rootAddrRR(selfAddr net.IP) dns.RR {
	if selfAddr == nil {
		return nil
	}

	if v4 := selfAddr.To4(); v4 != nil {
		return &dns.A{Hdr: newHeader(".", dns.TypeA, rootNSTTL), A: v4}
	}

	return &dns.AAAA{Hdr: newHeader(".", dns.TypeAAAA, rootNSTTL), AAAA: selfAddr}
}

// rootNSECTypeRR builds the empty-proof NSEC RR used both at the root
// (fixed bitmap) and in §4.F's referral empty-proof path (caller-supplied
// owner, empty bitmap).
func rootNSECTypeRR(owner string, next string, typeBitmap []byte) *dns.NSEC {
	rr := &dns.NSEC{
		Hdr:        newHeader(owner, dns.TypeNSEC, rootSOATTL),
		NextDomain: next,
	}

	if len(typeBitmap) > 0 {
		rr.TypeBitMap = decodeTypeBitmap(typeBitmap)
	}

	return rr
}

// decodeTypeBitmap interprets a raw NSEC type-bitmap window and returns the
// set of RR types it declares. Only the fixed root window is ever passed
// here, so this only needs to handle window block 0.
func decodeTypeBitmap(window []byte) []uint16 {
	if len(window) < 2 {
		return nil
	}

	blockLen := int(window[1])
	bitmap := window[2:]

	var types []uint16

	for i := 0; i < blockLen && i < len(bitmap); i++ {
		b := bitmap[i]
		for bit := 0; bit < 8; bit++ {
			if b&(0x80>>uint(bit)) != 0 {
				types = append(types, uint16(i*8+bit))
			}
		}
	}

	return types
}

// Root implements spec §4.G: responses for queries against the empty root
// zone. now is the clock reading used for SOA serial synthesis; selfAddr is
// the address-family hint for the root NS's glue (A or AAAA).
func Root(signer Signer, qtype uint16, selfAddr net.IP, now time.Time) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.Authoritative = true

	switch qtype {
	case dns.TypeANY, dns.TypeNS:
		if err := signInto(&m.Answer, signer, []dns.RR{newRootNS()}, false); err != nil {
			return nil, err
		}

		if addr := rootAddrRR(selfAddr); addr != nil {
			if err := signInto(&m.Extra, signer, []dns.RR{addr}, false); err != nil {
				return nil, err
			}
		}

	case dns.TypeSOA:
		if err := signInto(&m.Answer, signer, []dns.RR{newRootSOA(now)}, false); err != nil {
			return nil, err
		}

		if err := signInto(&m.Ns, signer, []dns.RR{newRootNS()}, false); err != nil {
			return nil, err
		}

		if addr := rootAddrRR(selfAddr); addr != nil {
			if err := signInto(&m.Extra, signer, []dns.RR{addr}, false); err != nil {
				return nil, err
			}
		}

	case dns.TypeDNSKEY:
		ksk, err := signer.KSK()
		if err != nil {
			return nil, err
		}

		zsk, err := signer.ZSK()
		if err != nil {
			return nil, err
		}

		if err := signInto(&m.Answer, signer, []dns.RR{ksk, zsk}, true); err != nil {
			return nil, err
		}

	case dns.TypeDS:
		ds, err := signer.DS()
		if err != nil {
			return nil, err
		}

		if err := signInto(&m.Answer, signer, []dns.RR{ds}, false); err != nil {
			return nil, err
		}

	default:
		nsec := rootNSECTypeRR(".", ".", rootNSECTypeBitmap)
		if err := signInto(&m.Ns, signer, []dns.RR{nsec}, false); err != nil {
			return nil, err
		}

		soa := newRootSOA(now)
		if err := signInto(&m.Ns, signer, []dns.RR{soa}, false); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Nx builds the NXDOMAIN response (spec §4.G). The two identical root
// NSECs, signed once over the combined rrset, is an open question in the
// source material (§9): the original pushes the NSEC RR twice without an
// intervening sign, which this mirrors rather than second-guesses.
func Nx(signer Signer, now time.Time) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.Authoritative = true
	m.Rcode = dns.RcodeNameError

	nsec := rootNSECTypeRR(".", ".", rootNSECTypeBitmap)

	rrset := []dns.RR{nsec, nsec}
	m.Ns = append(m.Ns, rrset...)

	sig, err := signer.SignZSK(rrset)
	if err != nil {
		return nil, err
	}

	m.Ns = append(m.Ns, sig)

	if err := signInto(&m.Ns, signer, []dns.RR{newRootSOA(now)}, false); err != nil {
		return nil, err
	}

	return m, nil
}

// Servfail builds an empty SERVFAIL response.
func Servfail() *dns.Msg {
	m := new(dns.Msg)
	m.Rcode = dns.RcodeServerFailure

	return m
}

// Notimp builds an empty NOTIMP response.
func Notimp() *dns.Msg {
	m := new(dns.Msg)
	m.Rcode = dns.RcodeNotImplemented

	return m
}
