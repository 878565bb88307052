package hnsresource

import (
	"github.com/miekg/dns"

	"github.com/nodarii/hnsresource/b32name"
	"github.com/nodarii/hnsresource/hnserr"
)

// countLabels returns the number of labels in an FQDN, per RFC 1035
// escaping rules (delegated to miekg/dns, the external name decoder).
func countLabels(fqdn string) int {
	return len(dns.SplitDomainName(fqdn))
}

// tld returns the last label of an FQDN, as a standalone name ("example.").
func tld(fqdn string) (string, bool) {
	labels := dns.SplitDomainName(fqdn)
	if len(labels) == 0 {
		return "", false
	}

	return dns.Fqdn(labels[len(labels)-1]), true
}

// resolveHost implements spec §4.D: given a target and the query name it
// was found under, produce the on-wire DNS name. The second return value
// reports whether the target kind is one the resolver can turn into a
// name at all; callers (the projectors) skip the record when it's false.
func resolveHost(t Target, queryName string) (string, bool, error) {
	switch t.Kind {
	case TargetNAME, TargetGLUE:
		if !dns.IsFqdn(t.Name) {
			return "", false, hnserr.ErrMalformedResource
		}

		return t.Name, true, nil

	case TargetINET4:
		zone, ok := tld(queryName)
		if !ok {
			return "", false, hnserr.ErrInvalidQueryName
		}

		return b32name.EncodeV4(t.INET4) + "." + zone, true, nil

	case TargetINET6:
		zone, ok := tld(queryName)
		if !ok {
			return "", false, hnserr.ErrInvalidQueryName
		}

		return b32name.EncodeV6(t.INET6) + "." + zone, true, nil

	default:
		return "", false, nil
	}
}

// synthNSOwner computes the synthetic NS owner name "_<b32>._synth." used
// when an NS record's host target is a bare address (spec §4.E).
func synthNSOwner(t Target) (string, bool) {
	switch t.Kind {
	case TargetINET4:
		return b32name.EncodeV4(t.INET4) + "._synth.", true
	case TargetINET6:
		return b32name.EncodeV6(t.INET6) + "._synth.", true
	default:
		return "", false
	}
}
