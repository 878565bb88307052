package hnsresource

import (
	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProjectMX", func() {
	It("matches only smtp./tcp. SERVICE records", func() {
		res := &Resource{Records: []Record{
			&ServiceRecord{Service: "smtp.", Protocol: "tcp.", Priority: 10,
				Target: Target{Kind: TargetNAME, Name: "mail.example."}},
			&ServiceRecord{Service: "http.", Protocol: "tcp.", Priority: 10,
				Target: Target{Kind: TargetNAME, Name: "web.example."}},
		}}

		rrs := ProjectMX(res, "example.", "example.", DefaultTTL)
		Expect(rrs).Should(HaveLen(1))

		mx, ok := rrs[0].(*dns.MX)
		Expect(ok).Should(BeTrue())
		Expect(mx.Mx).Should(Equal("mail.example."))
		Expect(mx.Preference).Should(Equal(uint16(10)))
	})
})

var _ = Describe("ProjectSRV", func() {
	It("looks up an arbitrary service/protocol pair", func() {
		res := &Resource{Records: []Record{
			&ServiceRecord{Service: "xmpp-client", Protocol: "tcp.", Priority: 1, Weight: 2, Port: 5222,
				Target: Target{Kind: TargetNAME, Name: "im.example."}},
		}}

		rrs := ProjectSRV(res, "example.", "example.", "xmpp-client", "tcp.", DefaultTTL)
		Expect(rrs).Should(HaveLen(1))

		srv, ok := rrs[0].(*dns.SRV)
		Expect(ok).Should(BeTrue())
		Expect(srv.Target).Should(Equal("im.example."))
		Expect(srv.Port).Should(Equal(uint16(5222)))
	})
})

var _ = Describe("ProjectTXT", func() {
	It("emits one TXT RR per TEXT record", func() {
		res := &Resource{Records: []Record{&StringRecord{K: KindText, Text: "hello"}}}

		rrs := ProjectTXT(res, "example.", DefaultTTL)
		Expect(rrs).Should(HaveLen(1))
		Expect(rrs[0].(*dns.TXT).Txt).Should(Equal([]string{"hello"}))
	})
})

var _ = Describe("ProjectDS", func() {
	It("hex-encodes the digest", func() {
		res := &Resource{Records: []Record{
			&DSRecord{KeyTag: 99, Algorithm: 8, DigestType: 2, Digest: []byte{0xDE, 0xAD}},
		}}

		rrs := ProjectDS(res, "example.", DefaultTTL)
		Expect(rrs).Should(HaveLen(1))
		Expect(rrs[0].(*dns.DS).Digest).Should(Equal("dead"))
	})
})

var _ = Describe("ProjectURI", func() {
	It("synthesizes magnet and addr URIs, skipping unrepresentable ctypes", func() {
		res := &Resource{Records: []Record{
			&MagnetRecord{NID: "btih", NIN: []byte{0xAB}},
			&AddrRecord{Currency: "btc", Address: "1abc", Ctype: 0},
			&AddrRecord{Currency: "eth", Hash: []byte{0x01}, Ctype: 3},
			&AddrRecord{Currency: "xyz", Ctype: 9},
		}}

		rrs := ProjectURI(res, "example.", DefaultTTL)
		Expect(rrs).Should(HaveLen(3))

		Expect(rrs[0].(*dns.URI).Target).Should(Equal("magnet:?xt=urn:btih:ab"))
		Expect(rrs[1].(*dns.URI).Target).Should(Equal("btc:1abc"))
		Expect(rrs[2].(*dns.URI).Target).Should(Equal("eth:0x01"))
	})
})

var _ = Describe("ProjectA", func() {
	It("skips a record whose kind and target discriminant disagree", func() {
		res := &Resource{Records: []Record{
			&HostRecord{K: KindInet4, Host: Target{Kind: TargetINET6}},
		}}

		Expect(ProjectA(res, "example.", DefaultTTL)).Should(BeEmpty())
	})
})
