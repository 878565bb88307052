package hnsresource

import (
	"net"
	"time"

	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", func() {
	var signer *mockSigner

	BeforeEach(func() {
		signer = &mockSigner{}
	})

	It("answers SOA with a clock-derived serial, signed throughout", func() {
		now := time.Date(2026, time.July, 31, 14, 0, 0, 0, time.UTC)

		msg, err := Root(signer, dns.TypeSOA, net.ParseIP("198.51.100.9"), now)
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(HaveLen(2)) // SOA + RRSIG
		soa, ok := msg.Answer[0].(*dns.SOA)
		Expect(ok).Should(BeTrue())
		Expect(soa.Serial).Should(Equal(uint32(2026073114)))
		Expect(soa.Hdr.Name).Should(Equal("."))
		Expect(msg.Answer[1].Header().Rrtype).Should(Equal(dns.TypeRRSIG))

		Expect(msg.Ns).Should(HaveLen(2)) // NS + RRSIG
		Expect(msg.Ns[0].Header().Rrtype).Should(Equal(dns.TypeNS))
		Expect(msg.Ns[1].Header().Rrtype).Should(Equal(dns.TypeRRSIG))

		Expect(msg.Extra).Should(HaveLen(2)) // A + RRSIG
		a, ok := msg.Extra[0].(*dns.A)
		Expect(ok).Should(BeTrue())
		Expect(a.A.String()).Should(Equal("198.51.100.9"))
		Expect(msg.Extra[1].Header().Rrtype).Should(Equal(dns.TypeRRSIG))
	})

	It("answers NS, signed, with signed glue", func() {
		msg, err := Root(signer, dns.TypeNS, net.ParseIP("198.51.100.9"), time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(HaveLen(2)) // NS + RRSIG
		ns, ok := msg.Answer[0].(*dns.NS)
		Expect(ok).Should(BeTrue())
		Expect(ns.Ns).Should(Equal("."))

		Expect(msg.Extra).Should(HaveLen(2)) // A + RRSIG
	})

	It("answers DNSKEY with both keys signed by the KSK", func() {
		msg, err := Root(signer, dns.TypeDNSKEY, nil, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(HaveLen(3)) // KSK + ZSK + RRSIG
		Expect(signer.signCalls).Should(Equal(1))
	})

	It("falls back to a signed empty proof for an unhandled qtype", func() {
		msg, err := Root(signer, dns.TypeTXT, nil, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(BeEmpty())
		Expect(msg.Ns).ShouldNot(BeEmpty())
	})
})

var _ = Describe("Nx", func() {
	It("returns NXDOMAIN with two NSECs and a signed SOA", func() {
		signer := &mockSigner{}

		msg, err := Nx(signer, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Rcode).Should(Equal(dns.RcodeNameError))
		Expect(msg.Authoritative).Should(BeTrue())

		var nsecCount, soaCount int
		for _, rr := range msg.Ns {
			switch rr.(type) {
			case *dns.NSEC:
				nsecCount++
			case *dns.SOA:
				soaCount++
			}
		}
		Expect(nsecCount).Should(Equal(2))
		Expect(soaCount).Should(Equal(1))
		Expect(signer.signCalls).Should(Equal(2)) // once over the doubled NSEC rrset, once over SOA
	})
})

var _ = Describe("Servfail and Notimp", func() {
	It("builds an empty SERVFAIL response", func() {
		Expect(Servfail().Rcode).Should(Equal(dns.RcodeServerFailure))
	})

	It("builds an empty NOTIMP response", func() {
		Expect(Notimp().Rcode).Should(Equal(dns.RcodeNotImplemented))
	})
})
