package hnsresource

// Kind identifies the wire record type, per the type-id table in spec §3.
type Kind uint8

const (
	KindInet4     Kind = 1
	KindInet6     Kind = 2
	KindOnion     Kind = 3
	KindOnionNG   Kind = 4
	KindName      Kind = 5
	KindGlue      Kind = 6
	KindCanonical Kind = 7 // CNAME
	KindDelegate  Kind = 8 // DNAME
	KindNS        Kind = 9
	KindService   Kind = 10
	KindURL       Kind = 11
	KindEmail     Kind = 12
	KindText      Kind = 13
	KindLocation  Kind = 14
	KindMagnet    Kind = 15
	KindDS        Kind = 16
	KindTLS       Kind = 17
	KindSSH       Kind = 18
	KindPGP       Kind = 19
	KindAddr      Kind = 20
	KindExtra     Kind = 255
)

// Record is any decoded record body. Implementations are exhaustively
// switched over by the decoder and by each projector in §4.E; a projector
// that doesn't recognize a concrete type simply doesn't match it.
type Record interface {
	Kind() Kind
}

// HostRecord covers every record kind whose body is exactly one Target:
// INET4, INET6, ONION, ONIONNG, NAME, GLUE, CANONICAL, DELEGATE, NS.
type HostRecord struct {
	K    Kind
	Host Target
}

func (r *HostRecord) Kind() Kind { return r.K }

// ServiceRecord is an SRV-shaped record (kind SERVICE): it feeds both the
// MX projector (when service/protocol match "smtp."/"tcp.") and the SRV
// projector (for whatever service/protocol pair the caller asks for).
type ServiceRecord struct {
	Service  string
	Protocol string
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Target
}

func (r *ServiceRecord) Kind() Kind { return KindService }

// StringRecord covers URL, EMAIL, and TEXT: a single length-prefixed
// printable string capped at 255 bytes.
type StringRecord struct {
	K    Kind
	Text string
}

func (r *StringRecord) Kind() Kind { return r.K }

// LocationRecord mirrors the DNS LOC RDATA layout verbatim; the engine
// never reinterprets the opaque 32-bit lat/lon/alt patterns (spec §9).
type LocationRecord struct {
	Version  uint8
	Size     uint8
	HorizPre uint8
	VertPre  uint8
	Lat      uint32
	Lon      uint32
	Alt      uint32
}

func (r *LocationRecord) Kind() Kind { return KindLocation }

// MagnetRecord holds a BitTorrent info-hash reference: NID names the
// hash algorithm ("btih", "btmh", ...), NIN is the raw hash (<=64 bytes).
type MagnetRecord struct {
	NID string
	NIN []byte
}

func (r *MagnetRecord) Kind() Kind { return KindMagnet }

// DSRecord mirrors the DNS DS RDATA layout.
type DSRecord struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte // <=64 bytes
}

func (r *DSRecord) Kind() Kind { return KindDS }

// TLSRecord mirrors a TLSA-shaped record for opportunistic TLS discovery.
type TLSRecord struct {
	Protocol     uint8
	Port         uint16
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	Certificate  []byte // <=64 bytes
}

func (r *TLSRecord) Kind() Kind { return KindTLS }

// FingerprintRecord covers both SSH (kind SSH) and PGP (kind PGP), which
// spec §3 gives an identical layout: algorithm/key-type/fingerprint.
type FingerprintRecord struct {
	K           Kind
	Algorithm   uint8
	KeyType     uint8
	Fingerprint []byte // <=64 bytes
}

func (r *FingerprintRecord) Kind() Kind { return r.K }

// AddrRecord names a cryptocurrency payment address.
type AddrRecord struct {
	Currency string
	Address  string
	Ctype    uint8
	Testnet  bool
	Version  uint8
	Hash     []byte // <=64 bytes
}

func (r *AddrRecord) Kind() Kind { return KindAddr }

// ExtraRecord carries an opaque, forward-compatible record the decoder
// does not otherwise interpret, preserving only its declared sub-type byte
// and raw payload.
type ExtraRecord struct {
	RType uint8
	Data  []byte // <=255 bytes
}

func (r *ExtraRecord) Kind() Kind { return KindExtra }
