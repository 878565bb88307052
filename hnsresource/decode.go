package hnsresource

import (
	"fmt"

	"github.com/nodarii/hnsresource/evt"
	"github.com/nodarii/hnsresource/hnserr"
	"github.com/nodarii/hnsresource/wire"
)

const (
	maxStringLen = 255
	maxDigestLen = 64
	maxLabelLen  = 63
)

// Decode parses a Handshake resource blob into a Resource. Decoding is
// fail-fast: any malformed byte aborts the whole decode and no partial
// Resource is returned (spec §4.C, §7).
func Decode(blob []byte) (*Resource, error) {
	r := wire.NewReader(blob)

	version, err := r.U8()
	if err != nil {
		err = fmt.Errorf("%w: missing version byte", hnserr.ErrMalformedResource)
		evt.Bus().Publish(evt.ResourceDecodeFailed, err)

		return nil, err
	}

	if version != 0 {
		err := fmt.Errorf("%w: unsupported version %d", hnserr.ErrMalformedResource, version)
		evt.Bus().Publish(evt.ResourceDecodeFailed, err)

		return nil, err
	}

	res := &Resource{Version: version, TTL: DefaultTTL}

	for !r.AtEnd() {
		if len(res.Records) >= maxRecords {
			err := fmt.Errorf("%w: too many records", hnserr.ErrMalformedResource)
			evt.Bus().Publish(evt.ResourceDecodeFailed, err)

			return nil, err
		}

		typeByte, err := r.U8()
		if err != nil {
			err = fmt.Errorf("%w: truncated record type", hnserr.ErrMalformedResource)
			evt.Bus().Publish(evt.ResourceDecodeFailed, err)

			return nil, err
		}

		rec, err := decodeRecord(Kind(typeByte), r)
		if err != nil {
			err = fmt.Errorf("%w: record %d: %v", hnserr.ErrMalformedResource, len(res.Records), err)
			evt.Bus().Publish(evt.ResourceDecodeFailed, err)

			return nil, err
		}

		res.Records = append(res.Records, rec)
	}

	evt.Bus().Publish(evt.ResourceDecoded, len(res.Records))

	return res, nil
}

func decodeRecord(kind Kind, r *wire.Reader) (Record, error) {
	switch kind {
	case KindInet4, KindInet6, KindOnion, KindOnionNG, KindName, KindGlue, KindCanonical, KindDelegate, KindNS:
		host, err := readTarget(r)
		if err != nil {
			return nil, err
		}

		return &HostRecord{K: kind, Host: host}, nil

	case KindService:
		return decodeService(r)

	case KindURL, KindEmail, KindText:
		text, err := r.Str(maxStringLen)
		if err != nil {
			return nil, err
		}

		return &StringRecord{K: kind, Text: text}, nil

	case KindLocation:
		return decodeLocation(r)

	case KindMagnet:
		return decodeMagnet(r)

	case KindDS:
		return decodeDS(r)

	case KindTLS:
		return decodeTLS(r)

	case KindSSH, KindPGP:
		return decodeFingerprint(kind, r)

	case KindAddr:
		return decodeAddr(r)

	case KindExtra:
		return decodeExtra(r)

	default:
		return nil, fmt.Errorf("unknown record type %d", byte(kind))
	}
}

func decodeService(r *wire.Reader) (Record, error) {
	service, err := r.Str(maxLabelLen)
	if err != nil {
		return nil, err
	}

	protocol, err := r.Str(maxLabelLen)
	if err != nil {
		return nil, err
	}

	priority, err := r.U16BE()
	if err != nil {
		return nil, err
	}

	weight, err := r.U16BE()
	if err != nil {
		return nil, err
	}

	port, err := r.U16BE()
	if err != nil {
		return nil, err
	}

	target, err := readTarget(r)
	if err != nil {
		return nil, err
	}

	return &ServiceRecord{
		Service: service, Protocol: protocol,
		Priority: priority, Weight: weight, Port: port,
		Target: target,
	}, nil
}

func decodeLocation(r *wire.Reader) (Record, error) {
	version, err := r.U8()
	if err != nil {
		return nil, err
	}

	size, err := r.U8()
	if err != nil {
		return nil, err
	}

	horizPre, err := r.U8()
	if err != nil {
		return nil, err
	}

	vertPre, err := r.U8()
	if err != nil {
		return nil, err
	}

	lat, err := r.U32BE()
	if err != nil {
		return nil, err
	}

	lon, err := r.U32BE()
	if err != nil {
		return nil, err
	}

	alt, err := r.U32BE()
	if err != nil {
		return nil, err
	}

	return &LocationRecord{
		Version: version, Size: size, HorizPre: horizPre, VertPre: vertPre,
		Lat: lat, Lon: lon, Alt: alt,
	}, nil
}

func decodeMagnet(r *wire.Reader) (Record, error) {
	nid, err := r.Str(maxLabelLen)
	if err != nil {
		return nil, err
	}

	nin, err := r.Blob(maxDigestLen)
	if err != nil {
		return nil, err
	}

	return &MagnetRecord{NID: nid, NIN: nin}, nil
}

func decodeDS(r *wire.Reader) (Record, error) {
	keyTag, err := r.U16BE()
	if err != nil {
		return nil, err
	}

	algorithm, err := r.U8()
	if err != nil {
		return nil, err
	}

	digestType, err := r.U8()
	if err != nil {
		return nil, err
	}

	digest, err := r.Blob(maxDigestLen)
	if err != nil {
		return nil, err
	}

	return &DSRecord{KeyTag: keyTag, Algorithm: algorithm, DigestType: digestType, Digest: digest}, nil
}

func decodeTLS(r *wire.Reader) (Record, error) {
	protocol, err := r.U8()
	if err != nil {
		return nil, err
	}

	port, err := r.U16BE()
	if err != nil {
		return nil, err
	}

	usage, err := r.U8()
	if err != nil {
		return nil, err
	}

	selector, err := r.U8()
	if err != nil {
		return nil, err
	}

	matchingType, err := r.U8()
	if err != nil {
		return nil, err
	}

	cert, err := r.Blob(maxDigestLen)
	if err != nil {
		return nil, err
	}

	return &TLSRecord{
		Protocol: protocol, Port: port, Usage: usage,
		Selector: selector, MatchingType: matchingType, Certificate: cert,
	}, nil
}

func decodeFingerprint(kind Kind, r *wire.Reader) (Record, error) {
	algorithm, err := r.U8()
	if err != nil {
		return nil, err
	}

	keyType, err := r.U8()
	if err != nil {
		return nil, err
	}

	fp, err := r.Blob(maxDigestLen)
	if err != nil {
		return nil, err
	}

	return &FingerprintRecord{K: kind, Algorithm: algorithm, KeyType: keyType, Fingerprint: fp}, nil
}

func decodeAddr(r *wire.Reader) (Record, error) {
	currency, err := r.Str(maxLabelLen)
	if err != nil {
		return nil, err
	}

	address, err := r.Str(maxStringLen)
	if err != nil {
		return nil, err
	}

	ctype, err := r.U8()
	if err != nil {
		return nil, err
	}

	testnetByte, err := r.U8()
	if err != nil {
		return nil, err
	}

	version, err := r.U8()
	if err != nil {
		return nil, err
	}

	hash, err := r.Blob(maxDigestLen)
	if err != nil {
		return nil, err
	}

	return &AddrRecord{
		Currency: currency, Address: address, Ctype: ctype,
		Testnet: testnetByte != 0, Version: version, Hash: hash,
	}, nil
}

func decodeExtra(r *wire.Reader) (Record, error) {
	rtype, err := r.U8()
	if err != nil {
		return nil, err
	}

	data, err := r.Blob(maxStringLen)
	if err != nil {
		return nil, err
	}

	return &ExtraRecord{RType: rtype, Data: data}, nil
}
