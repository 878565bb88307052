package hnsresource

import (
	"time"

	"github.com/miekg/dns"

	"github.com/nodarii/hnsresource/evt"
	"github.com/nodarii/hnsresource/hnserr"
)

// ToDNS implements the response composer (spec §4.F): decides between the
// referral and apex paths by inspecting query_name's label count, composes
// answer/authority/additional, sets AA, and invokes the Signer over every
// RRset it builds. It fails with ErrInvalidQueryName when query_name is not
// an FQDN or has zero labels, and passes on any error the Signer returns. now is
// threaded in explicitly (rather than read from the clock) so the composer
// stays a pure function of its inputs, per spec §5.
func ToDNS(res *Resource, signer Signer, queryName string, qtype uint16, now time.Time) (*dns.Msg, error) {
	if !dns.IsFqdn(queryName) {
		return nil, hnserr.ErrInvalidQueryName
	}

	zone, ok := tld(queryName)
	if !ok {
		return nil, hnserr.ErrInvalidQueryName
	}

	m := new(dns.Msg)

	if countLabels(queryName) > 1 {
		if err := composeReferral(m, res, signer, zone, now); err != nil {
			return nil, err
		}
	} else {
		if err := composeApex(m, res, signer, queryName, qtype); err != nil {
			return nil, err
		}

		if len(m.Answer) == 0 && len(m.Ns) == 0 {
			if err := composeFallback(m, res, signer, queryName, zone, now); err != nil {
				return nil, err
			}
		}
	}

	// AA is set whenever the answer section is non-empty, or the composer
	// took the explicit empty-proof branch (composeEmptyProof already set
	// it); a referral or a CNAME/NS fallback with a still-empty answer
	// leaves it false (spec §8 invariant 4).
	m.Authoritative = m.Authoritative || len(m.Answer) > 0

	evt.Bus().Publish(evt.ResourceComposed, queryName, qtype)

	return m, nil
}

// composeReferral implements spec §4.F step 3: the multi-label query path.
func composeReferral(m *dns.Msg, res *Resource, signer Signer, zone string, now time.Time) error {
	switch {
	case hasNSIsh(res):
		return composeDelegationNS(m, res, signer, zone, zone)

	case Has(res, KindDelegate):
		return composeDelegate(m, res, signer, zone)

	default:
		return composeEmptyProof(m, signer, zone, now)
	}
}

// composeDelegationNS pushes NS (+ DS if present) into authority and NSIP +
// NS-glue into additional, signing DS in preference to NS when a DS record
// exists in the resource (spec §4.F, §4.E NS/NSIP).
func composeDelegationNS(m *dns.Msg, res *Resource, signer Signer, nsOwner, queryZone string) error {
	ns := ProjectNS(res, nsOwner, queryZone, res.TTL)
	ds := ProjectDS(res, nsOwner, res.TTL)

	if len(ds) > 0 {
		m.Ns = append(m.Ns, ns...)

		if err := signInto(&m.Ns, signer, ds, false); err != nil {
			return err
		}
	} else if err := signInto(&m.Ns, signer, ns, false); err != nil {
		return err
	}

	m.Extra = append(m.Extra, ProjectNSGlue(res, queryZone, res.TTL)...)

	return nil
}

func composeDelegate(m *dns.Msg, res *Resource, signer Signer, zone string) error {
	dname := ProjectDNAME(res, zone, zone, res.TTL)
	if err := signInto(&m.Answer, signer, dname, false); err != nil {
		return err
	}

	glue := projectGlue(res, KindDelegate, res.TTL)

	return signInto(&m.Extra, signer, glue, false)
}

func composeEmptyProof(m *dns.Msg, signer Signer, owner string, now time.Time) error {
	m.Authoritative = true

	nsec := rootNSECTypeRR(owner, rootNSEC, nil)
	if err := signInto(&m.Ns, signer, []dns.RR{nsec}, false); err != nil {
		return err
	}

	soa := newRootSOA(now)

	return signInto(&m.Ns, signer, []dns.RR{soa}, false)
}

// composeApex implements spec §4.F step 4: the single-label (zone apex)
// query path, dispatching on qtype.
func composeApex(m *dns.Msg, res *Resource, signer Signer, owner string, qtype uint16) error {
	switch qtype {
	case dns.TypeA:
		return signInto(&m.Answer, signer, ProjectA(res, owner, res.TTL), false)

	case dns.TypeAAAA:
		return signInto(&m.Answer, signer, ProjectAAAA(res, owner, res.TTL), false)

	case dns.TypeTXT:
		return signInto(&m.Answer, signer, ProjectTXT(res, owner, res.TTL), false)

	case dns.TypeLOC:
		return signInto(&m.Answer, signer, ProjectLOC(res, owner, res.TTL), false)

	case dns.TypeDS:
		return signInto(&m.Answer, signer, ProjectDS(res, owner, res.TTL), false)

	case dns.TypeSSHFP:
		return signInto(&m.Answer, signer, ProjectSSHFP(res, owner, res.TTL), false)

	case dns.TypeURI:
		return signInto(&m.Answer, signer, ProjectURI(res, owner, res.TTL), false)

	case dns.TypeRP:
		return signInto(&m.Answer, signer, ProjectRP(res, owner, res.TTL), false)

	case dns.TypeCNAME:
		if err := signInto(&m.Answer, signer, ProjectCNAME(res, owner, owner, res.TTL), false); err != nil {
			return err
		}

		return signInto(&m.Extra, signer, projectGlue(res, KindCanonical, res.TTL), false)

	case dns.TypeDNAME:
		if err := signInto(&m.Answer, signer, ProjectDNAME(res, owner, owner, res.TTL), false); err != nil {
			return err
		}

		return signInto(&m.Extra, signer, projectGlue(res, KindDelegate, res.TTL), false)

	case dns.TypeNS:
		ns := ProjectNS(res, owner, owner, res.TTL)
		if err := signInto(&m.Ns, signer, ns, false); err != nil {
			return err
		}

		m.Extra = append(m.Extra, ProjectNSGlue(res, owner, res.TTL)...)

		return nil

	case dns.TypeMX:
		if err := signInto(&m.Answer, signer, ProjectMX(res, owner, owner, res.TTL), false); err != nil {
			return err
		}

		m.Extra = append(m.Extra, ProjectMXGlue(res, owner, res.TTL)...)

		return nil

	default:
		return nil
	}
}

// composeFallback implements spec §4.F step 6: reached only when both the
// answer and authority sections are still empty after composeApex (an
// unhandled qtype, or a resource with nothing to say about this one).
func composeFallback(m *dns.Msg, res *Resource, signer Signer, queryName, zone string, now time.Time) error {
	switch {
	case Has(res, KindCanonical):
		if err := signInto(&m.Answer, signer, ProjectCNAME(res, queryName, queryName, res.TTL), false); err != nil {
			return err
		}

		return signInto(&m.Extra, signer, projectGlue(res, KindCanonical, res.TTL), false)

	case hasNSIsh(res):
		return composeDelegationNS(m, res, signer, zone, queryName)

	default:
		return composeEmptyProof(m, signer, zone, now)
	}
}
