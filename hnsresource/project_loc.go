package hnsresource

import "github.com/miekg/dns"

// ProjectLOC emits one LOC RR per LOCATION record, a direct field-for-field
// passthrough (spec §4.E).
func ProjectLOC(res *Resource, owner string, ttl uint32) []dns.RR {
	var out []dns.RR

	for _, rec := range res.Records {
		lr, ok := rec.(*LocationRecord)
		if !ok {
			continue
		}

		out = append(out, &dns.LOC{
			Hdr:       newHeader(owner, dns.TypeLOC, ttl),
			Version:   lr.Version,
			Size:      lr.Size,
			HorizPre:  lr.HorizPre,
			VertPre:   lr.VertPre,
			Latitude:  lr.Lat,
			Longitude: lr.Lon,
			Altitude:  lr.Alt,
		})
	}

	return out
}
