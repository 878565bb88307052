// Package b32name builds and parses the synthetic NS labels used to embed
// a bare IP address in a DNS name without a separate A/AAAA lookup:
// "_<base32hex(compacted-ip)>". Base32hex matches the alphabet blocky's
// DNSSEC NSEC3 code already uses for hashed owner names
// (encoding/base32.HexEncoding), just applied to a different payload.
package b32name

import (
	"encoding/base32"
	"strings"

	"github.com/nodarii/hnsresource/hnserr"
	"github.com/nodarii/hnsresource/ipcodec"
)

// hexEncoding is the no-padding base32hex alphabet (0-9, A-V).
//
//nolint:gochecknoglobals
var hexEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// Family discriminates whether a decoded synthetic label held an IPv4 or
// IPv6 address.
type Family int

const (
	FamilyA Family = iota
	FamilyAAAA
)

const (
	minLabelLen = 2
	maxLabelLen = 29
)

// EncodeV4 returns the synthetic label ("_<b32>") for an IPv4 address.
func EncodeV4(v4 [4]byte) string {
	return encode(ipcodec.MapV4(v4))
}

// EncodeV6 returns the synthetic label ("_<b32>") for an IPv6 address.
func EncodeV6(v6 [16]byte) string {
	return encode(v6)
}

func encode(addr [16]byte) string {
	compacted := ipcodec.Compact(addr)

	return "_" + strings.ToLower(hexEncoding.EncodeToString(compacted))
}

// Decode parses a synthetic label of the form "_<b32>" and returns the
// 16-byte expanded address plus a family discriminant: FamilyA if the
// expansion carries the ::ffff: IPv4-mapped prefix, FamilyAAAA otherwise.
func Decode(label string) ([16]byte, Family, error) {
	var out [16]byte

	if len(label) < minLabelLen || len(label) > maxLabelLen || label[0] != '_' {
		return out, FamilyA, hnserr.ErrMalformedResource
	}

	raw, err := hexEncoding.DecodeString(strings.ToUpper(label[1:]))
	if err != nil {
		return out, FamilyA, hnserr.ErrMalformedResource
	}

	expanded, err := ipcodec.Expand(raw)
	if err != nil {
		return out, FamilyA, err
	}

	if _, ok := ipcodec.IsV4Mapped(expanded); ok {
		return expanded, FamilyA, nil
	}

	return expanded, FamilyAAAA, nil
}

// IsPointer reports whether name's first label parses as the "_<b32>"
// synthetic form. This is the public API named in spec §6.
func IsPointer(name string) bool {
	label := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		label = name[:i]
	}

	_, _, err := Decode(label)

	return err == nil
}
