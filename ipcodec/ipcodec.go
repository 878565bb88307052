// Package ipcodec compacts and expands 16-byte IPv6 addresses for the
// Handshake resource wire format: a single header byte records the start
// and length of the longest run of zero bytes, and only the bytes outside
// that run are written to the wire.
package ipcodec

import "github.com/nodarii/hnsresource/hnserr"

// Compact elides the longest run of 0x00 bytes in a 16-byte address and
// returns the wire form: a header byte followed by the bytes before and
// after the run. Ties on run length are broken by the earliest start.
//
// When the longest run spans the whole address (all 16 bytes zero, or no
// run was found at all) the 4-bit length field cannot hold 16, so the
// header records start=0, len=0 (meaning "no compression") and all 16
// bytes are written verbatim.
func Compact(addr [16]byte) []byte {
	start, length := longestZeroRun(addr)

	if length == 16 {
		start, length = 0, 0
	}

	header := byte(start<<4) | byte(length) //nolint:gosec

	out := make([]byte, 0, 1+16-length)
	out = append(out, header)
	out = append(out, addr[:start]...)
	out = append(out, addr[start+length:]...)

	return out
}

// Expand reverses Compact. It fails if the header's start+len exceeds 16
// or if the input is shorter than the header claims.
func Expand(data []byte) ([16]byte, error) {
	var out [16]byte

	if len(data) < 1 {
		return out, hnserr.ErrMalformedResource
	}

	header := data[0]
	start := int(header >> 4)
	length := int(header & 0x0F)

	if start+length > 16 {
		return out, hnserr.ErrMalformedResource
	}

	rest := data[1:]
	tailLen := 16 - start - length

	if len(rest) < start+tailLen {
		return out, hnserr.ErrMalformedResource
	}

	copy(out[:start], rest[:start])
	// out[start:start+length] stays zero by construction
	copy(out[start+length:], rest[start:start+tailLen])

	return out, nil
}

// Consumed returns how many bytes of the wire-form buffer (including the
// header byte) a call to Expand will consume, without decoding it.
func Consumed(header byte) int {
	length := int(header & 0x0F)

	return 1 + 16 - length
}

// longestZeroRun scans addr for the longest run of 0x00 bytes, returning
// its start and length. Ties are broken by earliest start (a strictly
// longer run is required to replace the current best).
func longestZeroRun(addr [16]byte) (start, length int) {
	bestStart, bestLen := 0, 0
	curStart, curLen := 0, 0

	for i := 0; i < 16; i++ {
		if addr[i] == 0 {
			if curLen == 0 {
				curStart = i
			}

			curLen++

			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curLen = 0
		}
	}

	return bestStart, bestLen
}

// v4MappedPrefix is the 12-byte ::ffff: prefix for IPv4-mapped IPv6
// addresses (10 zero bytes followed by 0xff, 0xff).
var v4MappedPrefix = [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// MapV4 embeds a 4-byte IPv4 address into IPv4-mapped IPv6 form.
func MapV4(v4 [4]byte) [16]byte {
	var out [16]byte

	copy(out[:12], v4MappedPrefix[:])
	copy(out[12:], v4[:])

	return out
}

// IsV4Mapped reports whether addr carries the ::ffff: prefix, and if so
// returns the embedded 4-byte address.
func IsV4Mapped(addr [16]byte) (v4 [4]byte, ok bool) {
	for i := 0; i < 12; i++ {
		if addr[i] != v4MappedPrefix[i] {
			return v4, false
		}
	}

	copy(v4[:], addr[12:])

	return v4, true
}
