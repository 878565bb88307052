package hnsresource

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("decodes a version-only blob into an empty resource", func() {
		res, err := Decode([]byte{0x00})
		Expect(err).Should(Succeed())
		Expect(res.Version).Should(Equal(uint8(0)))
		Expect(res.Records).Should(BeEmpty())
	})

	It("decodes a single INET4 record", func() {
		res, err := Decode([]byte{0x00, 0x01, 0x00, 0xC0, 0x00, 0x02, 0x01})
		Expect(err).Should(Succeed())
		Expect(res.Records).Should(HaveLen(1))

		hr, ok := res.Records[0].(*HostRecord)
		Expect(ok).Should(BeTrue())
		Expect(hr.K).Should(Equal(KindInet4))
		Expect(hr.Host.Kind).Should(Equal(TargetINET4))
		Expect(hr.Host.INET4).Should(Equal([4]byte{192, 0, 2, 1}))
	})

	It("rejects a non-zero version byte", func() {
		_, err := Decode([]byte{0x01})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects an unknown record type", func() {
		_, err := Decode([]byte{0x00, 0xFE})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects a truncated record", func() {
		_, err := Decode([]byte{0x00, 0x01})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects a string containing a control byte", func() {
		_, err := Decode([]byte{0x00, byte(KindURL), 0x01, 0x01})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects a string containing DEL (0x7F)", func() {
		_, err := Decode([]byte{0x00, byte(KindURL), 0x01, 0x7F})
		Expect(err).Should(HaveOccurred())
	})

	It("rejects more records than the resource cap allows", func() {
		blob := []byte{0x00}
		for i := 0; i < maxRecords+1; i++ {
			blob = append(blob, 0x01, 0x00, 0xC0, 0x00, 0x02, 0x01)
		}

		_, err := Decode(blob)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("Get and Has", func() {
	res := &Resource{Records: []Record{
		&HostRecord{K: KindInet4, Host: Target{Kind: TargetINET4, INET4: [4]byte{1, 2, 3, 4}}},
	}}

	It("reports presence of a stored kind", func() {
		Expect(Has(res, KindInet4)).Should(BeTrue())
		Expect(Has(res, KindInet6)).Should(BeFalse())
	})

	It("returns the first record of a kind", func() {
		rec, ok := Get(res, KindInet4)
		Expect(ok).Should(BeTrue())
		Expect(rec.Kind()).Should(Equal(KindInet4))
	})

	It("reports absence of a kind not stored", func() {
		_, ok := Get(res, KindNS)
		Expect(ok).Should(BeFalse())
	})
})
