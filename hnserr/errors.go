// Package hnserr defines the closed error taxonomy for the Handshake
// resource engine. Every failure surfaced across decode and projection
// wraps one of these sentinels so callers can classify with errors.Is
// instead of string matching.
package hnserr

import "errors"

var (
	// ErrMalformedResource is returned whenever a resource blob cannot be
	// decoded: truncated input, an unknown record type, a version byte
	// other than 0, a non-printable string byte, a field over its length
	// cap, or an IP compaction header with start+len > 16.
	ErrMalformedResource = errors.New("malformed resource")

	// ErrInvalidQueryName is returned by ToDNS when the query name has
	// zero labels.
	ErrInvalidQueryName = errors.New("invalid query name")

	// ErrOutOfMemory completes the taxonomy for allocation failures. No
	// function in this module returns it: decode and composition have no
	// allocation-failure check, and a failed allocation is not reported
	// as an error.
	ErrOutOfMemory = errors.New("out of memory")
)
