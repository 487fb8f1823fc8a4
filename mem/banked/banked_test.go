package banked_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/axisim/mem/banked"
)

func TestBanked(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Banked Memory Suite")
}

var _ = Describe("Memory", func() {
	var m *banked.Memory

	BeforeEach(func() {
		// 64-bit words, 8 byte-enable slices of 8 bits each.
		m = banked.New(banked.Config{
			WordWidth:      64,
			NumEntries:     64,
			NumBanks:       4,
			NumByteEnables: 8,
		})
	})

	It("should derive the shape from the config", func() {
		Expect(m.EntriesPerBank()).To(Equal(16))
		Expect(m.SliceWidth()).To(Equal(8))
		Expect(m.FullMask()).To(Equal(uint64(0xFF)))
	})

	It("should read zero from a fresh memory", func() {
		for bank := 0; bank < 4; bank++ {
			for idx := 0; idx < 16; idx++ {
				Expect(m.Read(idx, bank)).To(Equal(uint64(0)))
			}
		}
	})

	It("should read back a full-mask write", func() {
		m.Write(3, 1, 0xDEADBEEFCAFEF00D, m.FullMask(), true)

		Expect(m.Read(3, 1)).To(Equal(uint64(0xDEADBEEFCAFEF00D)))
	})

	It("should keep banks independent", func() {
		m.WriteWord(5, 0, 0x1111)
		m.WriteWord(5, 1, 0x2222)

		Expect(m.Read(5, 0)).To(Equal(uint64(0x1111)))
		Expect(m.Read(5, 1)).To(Equal(uint64(0x2222)))
	})

	It("should not modify anything when write enable is false", func() {
		m.WriteWord(2, 2, 0xAAAA)

		m.Write(2, 2, 0xBBBB, m.FullMask(), false)

		Expect(m.Read(2, 2)).To(Equal(uint64(0xAAAA)))
	})

	It("should interleave slices under inverse partial masks", func() {
		patternA := uint64(0xAAAAAAAAAAAAAAAA)
		patternB := uint64(0xBBBBBBBBBBBBBBBB)
		mask := uint64(0x0F) // low four slices

		m.Write(7, 3, patternA, mask, true)
		m.Write(7, 3, patternB, ^mask&m.FullMask(), true)

		// Low four bytes from A, high four bytes from B.
		Expect(m.Read(7, 3)).To(Equal(uint64(0xBBBBBBBBAAAAAAAA)))
	})

	It("should leave unmasked slices untouched", func() {
		m.WriteWord(9, 0, 0x1122334455667788)

		// Overwrite only slice 2 (bits 16..23).
		m.Write(9, 0, 0xFFFFFFFFFFFFFFFF, 1<<2, true)

		Expect(m.Read(9, 0)).To(Equal(uint64(0x1122334455FF7788)))
	})

	It("should zero every slice on clear regardless of prior writes", func() {
		for bank := 0; bank < 4; bank++ {
			for idx := 0; idx < 16; idx++ {
				m.WriteWord(idx, bank, ^uint64(0))
			}
		}

		m.Clear()

		for bank := 0; bank < 4; bank++ {
			for idx := 0; idx < 16; idx++ {
				Expect(m.Read(idx, bank)).To(Equal(uint64(0)))
			}
		}
	})

	It("should support sub-byte slice widths", func() {
		// 12-bit words in 4 slices of 3 bits.
		narrow := banked.New(banked.Config{
			WordWidth:      12,
			NumEntries:     8,
			NumBanks:       2,
			NumByteEnables: 4,
		})

		narrow.WriteWord(0, 0, 0xFFF)
		narrow.Write(0, 0, 0x000, 0b0101, true)

		// Slices 0 and 2 cleared, slices 1 and 3 kept.
		Expect(narrow.Read(0, 0)).To(Equal(uint64(0b111000111000)))
	})

	DescribeTable("should panic on out-of-range access",
		func(idx, bank int) {
			Expect(func() { m.Read(idx, bank) }).To(Panic())
			Expect(func() { m.WriteWord(idx, bank, 1) }).To(Panic())
		},
		Entry("index too large", 16, 0),
		Entry("negative index", -1, 0),
		Entry("bank too large", 0, 4),
		Entry("negative bank", 0, -1),
	)

	DescribeTable("should panic on an invalid shape",
		func(config banked.Config) {
			Expect(func() { banked.New(config) }).To(Panic())
		},
		Entry("zero word width", banked.Config{
			WordWidth: 0, NumEntries: 8, NumBanks: 2, NumByteEnables: 1}),
		Entry("word width over 64", banked.Config{
			WordWidth: 65, NumEntries: 8, NumBanks: 2, NumByteEnables: 1}),
		Entry("banks not dividing entries", banked.Config{
			WordWidth: 32, NumEntries: 10, NumBanks: 4, NumByteEnables: 1}),
		Entry("byte enables not dividing width", banked.Config{
			WordWidth: 32, NumEntries: 8, NumBanks: 2, NumByteEnables: 3}),
		Entry("zero banks", banked.Config{
			WordWidth: 32, NumEntries: 8, NumBanks: 0, NumByteEnables: 1}),
	)
})
