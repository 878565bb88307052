package hnsresource

import (
	"time"

	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func aRecord(v4 [4]byte) Record {
	return &HostRecord{K: KindInet4, Host: Target{Kind: TargetINET4, INET4: v4}}
}

func nsRecord(name string) Record {
	return &HostRecord{K: KindNS, Host: Target{Kind: TargetNAME, Name: dns.Fqdn(name)}}
}

func dsRecord(keyTag uint16) Record {
	return &DSRecord{KeyTag: keyTag, Algorithm: 8, DigestType: 2, Digest: []byte{0xAB, 0xCD}}
}

func cnameRecord(name string) Record {
	return &HostRecord{K: KindCanonical, Host: Target{Kind: TargetNAME, Name: dns.Fqdn(name)}}
}

var _ = Describe("ToDNS", func() {
	var signer *mockSigner

	BeforeEach(func() {
		signer = &mockSigner{}
	})

	It("answers an apex A query", func() {
		res := &Resource{TTL: DefaultTTL, Records: []Record{aRecord([4]byte{192, 0, 2, 1})}}

		msg, err := ToDNS(res, signer, "example.", dns.TypeA, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(HaveLen(2)) // A + RRSIG
		a, ok := msg.Answer[0].(*dns.A)
		Expect(ok).Should(BeTrue())
		Expect(a.Hdr.Name).Should(Equal("example."))
		Expect(a.Hdr.Ttl).Should(Equal(uint32(DefaultTTL)))
		Expect(a.A.String()).Should(Equal("192.0.2.1"))
		Expect(msg.Answer[1].Header().Rrtype).Should(Equal(dns.TypeRRSIG))

		Expect(msg.Authoritative).Should(BeTrue())
		Expect(signer.signCalls).Should(Equal(1))
	})

	It("builds a referral with exactly one signed NS RRset when no DS is present", func() {
		res := &Resource{TTL: DefaultTTL, Records: []Record{nsRecord("ns1.example.")}}

		msg, err := ToDNS(res, signer, "sub.example.", dns.TypeA, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(BeEmpty())
		// NS appears exactly once, followed by its RRSIG: no duplicate push.
		Expect(msg.Ns).Should(HaveLen(2))

		ns, ok := msg.Ns[0].(*dns.NS)
		Expect(ok).Should(BeTrue())
		Expect(ns.Hdr.Name).Should(Equal("example."))
		Expect(ns.Ns).Should(Equal("ns1.example."))
		Expect(msg.Ns[1].Header().Rrtype).Should(Equal(dns.TypeRRSIG))

		Expect(msg.Authoritative).Should(BeFalse())
	})

	It("signs DS in preference to NS when a DS record is present at a delegation", func() {
		res := &Resource{TTL: DefaultTTL, Records: []Record{nsRecord("ns1.example."), dsRecord(99)}}

		msg, err := ToDNS(res, signer, "sub.example.", dns.TypeA, time.Now())
		Expect(err).Should(Succeed())

		// NS (unsigned) + DS + its RRSIG.
		Expect(msg.Ns).Should(HaveLen(3))
		Expect(msg.Ns[0].Header().Rrtype).Should(Equal(dns.TypeNS))
		Expect(msg.Ns[1].Header().Rrtype).Should(Equal(dns.TypeDS))
		Expect(msg.Ns[2].Header().Rrtype).Should(Equal(dns.TypeRRSIG))
	})

	It("answers a CNAME fallback at the apex", func() {
		res := &Resource{TTL: DefaultTTL, Records: []Record{cnameRecord("target.example.")}}

		msg, err := ToDNS(res, signer, "example.", dns.TypeA, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).ShouldNot(BeEmpty())
		cname, ok := msg.Answer[0].(*dns.CNAME)
		Expect(ok).Should(BeTrue())
		Expect(cname.Target).Should(Equal("target.example."))
		Expect(msg.Authoritative).Should(BeTrue())
	})

	It("rejects a non-FQDN query name", func() {
		res := &Resource{TTL: DefaultTTL}
		_, err := ToDNS(res, signer, "example", dns.TypeA, time.Now())
		Expect(err).Should(HaveOccurred())
	})

	It("sets AA on the empty-proof path even though the answer section is empty", func() {
		res := &Resource{TTL: DefaultTTL}

		msg, err := ToDNS(res, signer, "example.", dns.TypeA, time.Now())
		Expect(err).Should(Succeed())

		Expect(msg.Answer).Should(BeEmpty())
		Expect(msg.Ns).ShouldNot(BeEmpty())
		Expect(msg.Authoritative).Should(BeTrue())

		var sawNSEC, sawSOA bool
		for _, rr := range msg.Ns {
			switch rr.(type) {
			case *dns.NSEC:
				sawNSEC = true
			case *dns.SOA:
				sawSOA = true
			}
		}
		Expect(sawNSEC).Should(BeTrue())
		Expect(sawSOA).Should(BeTrue())
	})
})
