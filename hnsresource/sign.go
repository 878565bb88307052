package hnsresource

import "github.com/miekg/dns"

// Signer is the external DNSSEC collaborator contract (spec §1, §4.F/§4.G):
// key material and RRSIG generation live outside this package entirely.
// The resource engine only invokes these hooks over the RRsets it composes.
type Signer interface {
	SignZSK(rrset []dns.RR) (*dns.RRSIG, error)
	SignKSK(rrset []dns.RR) (*dns.RRSIG, error)
	ZSK() (*dns.DNSKEY, error)
	KSK() (*dns.DNSKEY, error)
	DS() (*dns.DS, error)
}

// signInto signs rrset (if non-empty) and appends both the rrset and its
// RRSIG to *section. A nil rrset is a no-op: the caller never has to guard
// every call site against an empty projector result.
func signInto(section *[]dns.RR, signer Signer, rrset []dns.RR, ksk bool) error {
	if len(rrset) == 0 {
		return nil
	}

	*section = append(*section, rrset...)

	var (
		sig *dns.RRSIG
		err error
	)

	if ksk {
		sig, err = signer.SignKSK(rrset)
	} else {
		sig, err = signer.SignZSK(rrset)
	}

	if err != nil {
		return err
	}

	*section = append(*section, sig)

	return nil
}
