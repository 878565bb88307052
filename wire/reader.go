// Package wire implements the low-level cursor used to decode the
// Handshake resource blob: bounded integer, string, and name reads that
// never overrun the remaining buffer. Compression-pointer resolution for
// DNS names is delegated to github.com/miekg/dns, the external collaborator
// named in spec §1.
package wire

import (
	"github.com/miekg/dns"

	"github.com/nodarii/hnsresource/hnserr"
)

// Reader is a cursor over an immutable byte slice. msg is the full blob
// (the "message reference" from spec §4.B) so that DNS name compression
// pointers, which are relative to the start of the buffer, resolve
// correctly regardless of how far the cursor has advanced.
type Reader struct {
	msg []byte
	pos int
}

// NewReader wraps blob for decoding, starting at offset 0.
func NewReader(blob []byte) *Reader {
	return &Reader{msg: blob}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.msg) - r.pos
}

// Pos returns the current cursor offset into the original blob.
func (r *Reader) Pos() int {
	return r.pos
}

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool {
	return r.Remaining() == 0
}

// U8 reads one byte.
func (r *Reader) U8() (byte, error) {
	if r.Remaining() < 1 {
		return 0, hnserr.ErrMalformedResource
	}

	b := r.msg[r.pos]
	r.pos++

	return b, nil
}

// U16BE reads a big-endian 16-bit integer.
func (r *Reader) U16BE() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, hnserr.ErrMalformedResource
	}

	v := uint16(r.msg[r.pos])<<8 | uint16(r.msg[r.pos+1])
	r.pos += 2

	return v, nil
}

// U32BE reads a big-endian 32-bit integer.
func (r *Reader) U32BE() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, hnserr.ErrMalformedResource
	}

	v := uint32(r.msg[r.pos])<<24 | uint32(r.msg[r.pos+1])<<16 |
		uint32(r.msg[r.pos+2])<<8 | uint32(r.msg[r.pos+3])
	r.pos += 4

	return v, nil
}

// Bytes reads exactly n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, hnserr.ErrMalformedResource
	}

	b := r.msg[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// Fixed4 reads a 4-byte array (IPv4 address or similar).
func (r *Reader) Fixed4() ([4]byte, error) {
	var out [4]byte

	b, err := r.Bytes(4)
	if err != nil {
		return out, err
	}

	copy(out[:], b)

	return out, nil
}

// Fixed16 reads a 16-byte array.
func (r *Reader) Fixed16() ([16]byte, error) {
	var out [16]byte

	b, err := r.Bytes(16)
	if err != nil {
		return out, err
	}

	copy(out[:], b)

	return out, nil
}

// Fixed33 reads a 33-byte opaque blob (ONION/ONIONNG payload).
func (r *Reader) Fixed33() ([33]byte, error) {
	var out [33]byte

	b, err := r.Bytes(33)
	if err != nil {
		return out, err
	}

	copy(out[:], b)

	return out, nil
}

// printable reports whether b is allowed inside a decoded string: printable
// ASCII (0x20-0x7E) or tab/LF/CR. 0x7F (DEL) and other control bytes are
// rejected.
func printable(b byte) bool {
	if b >= 0x20 && b <= 0x7E {
		return true
	}

	return b == 0x09 || b == 0x0A || b == 0x0D
}

// Str reads a u8-length-prefixed string, rejects it if any byte fails the
// printable-ASCII guard, and rejects it if its length exceeds limit.
func (r *Reader) Str(limit int) (string, error) {
	n, err := r.U8()
	if err != nil {
		return "", err
	}

	if int(n) > limit {
		return "", hnserr.ErrMalformedResource
	}

	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}

	for _, c := range b {
		if !printable(c) {
			return "", hnserr.ErrMalformedResource
		}
	}

	return string(b), nil
}

// Blob reads a u8-length-prefixed opaque byte string, with no printable
// guard (digests, fingerprints, hashes are raw binary). Rejects it if its
// length exceeds limit.
func (r *Reader) Blob(limit int) ([]byte, error) {
	n, err := r.U8()
	if err != nil {
		return nil, err
	}

	if int(n) > limit {
		return nil, hnserr.ErrMalformedResource
	}

	return r.Bytes(int(n))
}

// Name reads an RFC 1035 (possibly compressed) domain name anchored
// against the full message buffer, via the external DNS name decoder.
func (r *Reader) Name() (string, error) {
	name, next, err := dns.UnpackDomainName(r.msg, r.pos)
	if err != nil {
		return "", hnserr.ErrMalformedResource
	}

	r.pos = next

	return name, nil
}
