package hnsresource

import "github.com/miekg/dns"

// mockSigner is a deterministic stand-in for the external DNSSEC collaborator
// (spec §1), grounded on the pattern of mocked resolvers/validators used
// throughout the teacher's dnssec test suite: a zero-effort fake that lets
// the composer's signing-hook invocations be exercised without real keys.
type mockSigner struct {
	signCalls int
}

func (m *mockSigner) SignZSK(rrset []dns.RR) (*dns.RRSIG, error) {
	m.signCalls++

	return &dns.RRSIG{Hdr: dns.RR_Header{Rrtype: dns.TypeRRSIG}, Algorithm: dns.ED25519, KeyTag: 1}, nil
}

func (m *mockSigner) SignKSK(rrset []dns.RR) (*dns.RRSIG, error) {
	m.signCalls++

	return &dns.RRSIG{Hdr: dns.RR_Header{Rrtype: dns.TypeRRSIG}, Algorithm: dns.ED25519, KeyTag: 2}, nil
}

func (m *mockSigner) ZSK() (*dns.DNSKEY, error) {
	return &dns.DNSKEY{Hdr: dns.RR_Header{Rrtype: dns.TypeDNSKEY}, Flags: 256, Algorithm: dns.ED25519}, nil
}

func (m *mockSigner) KSK() (*dns.DNSKEY, error) {
	return &dns.DNSKEY{Hdr: dns.RR_Header{Rrtype: dns.TypeDNSKEY}, Flags: 257, Algorithm: dns.ED25519}, nil
}

func (m *mockSigner) DS() (*dns.DS, error) {
	return &dns.DS{Hdr: dns.RR_Header{Rrtype: dns.TypeDS}, KeyTag: 1, Algorithm: dns.ED25519}, nil
}
