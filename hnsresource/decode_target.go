package hnsresource

import (
	"github.com/nodarii/hnsresource/hnserr"
	"github.com/nodarii/hnsresource/ipcodec"
	"github.com/nodarii/hnsresource/wire"
)

const maxNameLen = 255

func readTarget(r *wire.Reader) (Target, error) {
	var t Target

	kindByte, err := r.U8()
	if err != nil {
		return t, err
	}

	switch kindByte {
	case targetWireNAME:
		name, err := r.Name()
		if err != nil {
			return t, err
		}

		if len(name) > maxNameLen {
			return t, hnserr.ErrMalformedResource
		}

		return Target{Kind: TargetNAME, Name: name}, nil

	case targetWireGLUE:
		return readGlueTarget(r)

	case targetWireINET4:
		v4, err := r.Fixed4()
		if err != nil {
			return t, err
		}

		return Target{Kind: TargetINET4, INET4: v4}, nil

	case targetWireINET6:
		v6, err := readCompactedV6(r)
		if err != nil {
			return t, err
		}

		return Target{Kind: TargetINET6, INET6: v6}, nil

	case targetWireONION:
		o, err := r.Fixed33()
		if err != nil {
			return t, err
		}

		return Target{Kind: TargetONION, Onion: o}, nil

	case targetWireONIONNG:
		o, err := r.Fixed33()
		if err != nil {
			return t, err
		}

		return Target{Kind: TargetONIONNG, Onion: o}, nil

	default:
		return t, hnserr.ErrMalformedResource
	}
}

func readGlueTarget(r *wire.Reader) (Target, error) {
	name, err := r.Name()
	if err != nil {
		return Target{}, err
	}

	if len(name) > maxNameLen {
		return Target{}, hnserr.ErrMalformedResource
	}

	v4, err := r.Fixed4()
	if err != nil {
		return Target{}, err
	}

	v6, err := r.Fixed16()
	if err != nil {
		return Target{}, err
	}

	return Target{
		Kind:  TargetGLUE,
		Name:  name,
		V4:    v4,
		HasV4: v4 != [4]byte{},
		V6:    v6,
		HasV6: v6 != [16]byte{},
	}, nil
}

// readCompactedV6 reads the IP-compaction header and the trailing bytes it
// declares, then expands them into a 16-byte address (spec §4.A).
func readCompactedV6(r *wire.Reader) ([16]byte, error) {
	var zero [16]byte

	header, err := r.U8()
	if err != nil {
		return zero, err
	}

	need := ipcodec.Consumed(header) - 1
	if need < 0 {
		return zero, hnserr.ErrMalformedResource
	}

	rest, err := r.Bytes(need)
	if err != nil {
		return zero, err
	}

	wireForm := append([]byte{header}, rest...)

	return ipcodec.Expand(wireForm)
}
