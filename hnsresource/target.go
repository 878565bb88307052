package hnsresource

// TargetKind discriminates the tagged union described in spec §3: a
// Target names either a literal DNS name, a glue tuple, or a raw address.
type TargetKind uint8

const (
	TargetNAME TargetKind = iota
	TargetGLUE
	TargetINET4
	TargetINET6
	TargetONION
	TargetONIONNG
)

// wire discriminants for Target, read as the leading byte of a target body.
// INET4=0 is pinned by spec §8 scenario 2 ("decode 00 01 00 C0 00 02 01"
// yields an INET4 target from target_type byte 0x00); the rest follow the
// original protocol's address-family ordering, with GLUE appended last
// since it is this spec's own generalization, not part of the source
// union (see DESIGN.md).
const (
	targetWireINET4   = 0
	targetWireINET6   = 1
	targetWireONION   = 2
	targetWireONIONNG = 3
	targetWireNAME    = 4
	targetWireGLUE    = 5
)

// Target is the polymorphic "where does this record point" field. Only the
// fields relevant to Kind are populated; callers must check Kind before
// reading a payload field.
type Target struct {
	Kind TargetKind

	Name string // NAME, GLUE

	// GLUE IPv4/IPv6 fields: both may be absent (all-zero), signaling no
	// glue of that family. HasV4/HasV6 record whether the wire bytes were
	// non-zero, since a legitimate glue address can itself be all zeros
	// only in the pathological 0.0.0.0 case, which we still treat as
	// absent per spec §3 ("zeroed-out to signal absent").
	V4    [4]byte
	HasV4 bool
	V6    [16]byte
	HasV6 bool

	INET4 [4]byte  // INET4
	INET6 [16]byte // INET6 (expanded form)

	Onion [33]byte // ONION / ONIONNG
}
