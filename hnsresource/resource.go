// Package hnsresource decodes the compact, binary name-record blob
// retrieved from a Handshake-like naming chain and projects it onto DNS
// answer/authority/additional sections, including glue, referral
// construction, empty-proof NSEC, SOA synthesis, and DNSSEC signing hooks.
package hnsresource

// DefaultTTL is the fixed TTL applied to every record of a decoded
// Resource; it is never read from the wire (spec §3).
const DefaultTTL = 21600 // 6h, matches Handshake's conventional resource TTL

// maxRecords is the hard cap on the number of records a single Resource
// may hold (spec §3, §5).
const maxRecords = 255

// Resource is the in-memory model produced by Decode. It owns its records
// exclusively; none of them outlive the Resource (spec §3 lifecycle).
type Resource struct {
	Version uint8
	TTL     uint32
	Records []Record
}

// Get returns the first record of the given kind, if any.
func Get(r *Resource, kind Kind) (Record, bool) {
	for _, rec := range r.Records {
		if rec.Kind() == kind {
			return rec, true
		}
	}

	return nil, false
}

// Has reports whether r contains at least one record of the given kind.
func Has(r *Resource, kind Kind) bool {
	_, ok := Get(r, kind)

	return ok
}

// hasNSIsh reports whether r contains any NS record, regardless of which
// Target discriminant its host carries (literal, glue, or synthetic). Per
// §4.F/§4.E this one wire kind covers the NS/GLUE4/GLUE6/SYNTH4/SYNTH6
// cases the spec distinguishes only semantically, not on the wire — see
// DESIGN.md for why no separate wire type ids are introduced for them.
func hasNSIsh(r *Resource) bool {
	return Has(r, KindNS)
}

func nsRecords(r *Resource) []*HostRecord {
	var out []*HostRecord

	for _, rec := range r.Records {
		if hr, ok := rec.(*HostRecord); ok && hr.K == KindNS {
			out = append(out, hr)
		}
	}

	return out
}
