package accrete

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DustBand", func() {
	var p Planetesimal
	var lo, hi float64

	BeforeEach(func() {
		p = Planetesimal{Star: Sol(), Axis: 1.0, Eccn: 0.1, Mass: 1e-6}
		lo, hi = p.InnerSweptLimit(), p.OuterSweptLimit()
	})

	DescribeTable("sweeping",
		func(inner, outer float64, expected func() []DustBand) {
			b := DustBand{Inner: inner, Outer: outer, Dust: true, Gas: true}
			Expect(b.Sweep(p)).To(Equal(expected()))
		},
		Entry("wider band splits in three", 0.1, 10.0, func() []DustBand {
			return []DustBand{
				{0.1, lo, true, true},
				{lo, hi, false, true},
				{hi, 10.0, true, true},
			}
		}),
		Entry("band straddling the outer limit", 1.0, 10.0, func() []DustBand {
			return []DustBand{
				{1.0, hi, false, true},
				{hi, 10.0, true, true},
			}
		}),
		Entry("band straddling the inner limit", 0.1, 1.0, func() []DustBand {
			return []DustBand{
				{0.1, lo, true, true},
				{lo, 1.0, false, true},
			}
		}),
		Entry("contained band loses its dust", 0.9, 1.1, func() []DustBand {
			return []DustBand{{0.9, 1.1, false, true}}
		}),
		Entry("disjoint band is untouched", 5.0, 10.0, func() []DustBand {
			return []DustBand{{5.0, 10.0, true, true}}
		}),
	)

	It("removes gas swept by a gas giant", func() {
		p.GasGiant = true
		b := DustBand{Inner: 0.9, Outer: 1.1, Dust: true, Gas: true}
		Expect(b.Sweep(p)).To(Equal([]DustBand{{0.9, 1.1, false, false}}))
	})

	It("keeps gas outside the swept zone of a gas giant", func() {
		p.GasGiant = true
		b := DustBand{Inner: 0.1, Outer: 10, Dust: true, Gas: true}
		out := b.Sweep(p)
		Expect(out).To(HaveLen(3))
		Expect(out[0].Gas).To(BeTrue())
		Expect(out[1].Gas).To(BeFalse())
		Expect(out[2].Gas).To(BeTrue())
	})

	It("never gives gas back to a gasless band", func() {
		b := DustBand{Inner: 0.9, Outer: 1.1, Dust: true, Gas: false}
		Expect(b.Sweep(p)).To(Equal([]DustBand{{0.9, 1.1, false, false}}))
	})

	It("treats touching edges as disjoint", func() {
		b := DustBand{Inner: hi, Outer: hi + 1, Dust: true, Gas: true}
		Expect(b.Sweep(p)).To(Equal([]DustBand{b}))
	})
})

var _ = Describe("Bands", func() {
	star := Sol()

	It("starts as a single band of dust and gas", func() {
		bs := NewBands(star)
		Expect(bs).To(Equal(Bands{{0, 200, true, true}}))
		Expect(bs.Check(star)).To(Succeed())
	})

	Describe("Compress", func() {
		It("merges runs with identical state", func() {
			bs := Bands{
				{0, 1, true, true},
				{1, 2, true, true},
				{2, 3, false, true},
				{3, 4, false, true},
				{4, 5, false, false},
				{5, 6, true, true},
			}
			Expect(bs.Compress()).To(Equal(Bands{
				{0, 2, true, true},
				{2, 4, false, true},
				{4, 5, false, false},
				{5, 6, true, true},
			}))
		})

		It("handles empty and single lists", func() {
			Expect(Bands{}.Compress()).To(BeEmpty())
			one := Bands{{0, 1, true, false}}
			Expect(one.Compress()).To(Equal(one))
		})

		It("collapses a contained sweep back to one band", func() {
			p := Planetesimal{Star: star, Axis: 1.0, Mass: 1e-6}
			bs := Bands{{0.9, 1.1, true, true}}
			Expect(bs.Sweep(p).Compress()).To(Equal(Bands{{0.9, 1.1, false, true}}))
		})
	})

	Describe("Sweep then Compress", func() {
		It("preserves contiguity and coverage", func() {
			bs := NewBands(star)
			for _, a := range []float64{1.0, 5.0, 0.5, 20.0, 4.8} {
				p := Planetesimal{Star: star, Axis: a, Eccn: 0.05, Mass: 1e-5, GasGiant: a > 4}
				bs = bs.Sweep(p).Compress()
				Expect(bs.Check(star)).To(Succeed())
			}
		})
	})

	Describe("DustLeft", func() {
		It("is true for the pristine disk", func() {
			Expect(NewBands(star).DustLeft(star)).To(BeTrue())
		})

		It("ignores dust outside the planet-forming annulus", func() {
			bs := Bands{
				{0, 0.2, true, true},
				{0.2, 60, false, true},
				{60, 200, true, true},
			}
			Expect(bs.DustLeft(star)).To(BeFalse())
		})

		It("counts a dusty band touching the inner bound", func() {
			bs := Bands{
				{0, 0.3, true, true},
				{0.3, 200, false, true},
			}
			Expect(bs.DustLeft(star)).To(BeTrue())
		})
	})

	Describe("Check", func() {
		It("reports gaps", func() {
			bs := Bands{{0, 1, true, true}, {1.5, 200, false, true}}
			err := bs.Check(star)
			Expect(errors.Is(err, ErrBandGap)).To(BeTrue())
			var be *BandError
			Expect(errors.As(err, &be)).To(BeTrue())
			Expect(be.Index).To(Equal(1))
		})

		It("reports missing coverage", func() {
			Expect(errors.Is(Bands{{0, 100, true, true}}.Check(star), ErrBandCoverage)).To(BeTrue())
			Expect(errors.Is(Bands{{1, 200, true, true}}.Check(star), ErrBandCoverage)).To(BeTrue())
		})

		It("reports an empty list as a band error", func() {
			err := Bands{}.Check(star)
			Expect(errors.Is(err, ErrBandCoverage)).To(BeTrue())
			var be *BandError
			Expect(errors.As(err, &be)).To(BeTrue())
			Expect(be.Index).To(Equal(-1))
		})

		It("reports uncompressed neighbours", func() {
			bs := Bands{{0, 1, true, true}, {1, 200, true, true}}
			Expect(errors.Is(bs.Check(star), ErrBandNotCompressed)).To(BeTrue())
		})
	})

	It("measures dusty width inside a window", func() {
		bs := Bands{{0, 1, true, true}, {1, 3, false, true}, {3, 200, true, false}}
		Expect(bs.DustyWidth(0.5, 4)).To(BeNumerically("~", 1.5, 1e-12))
	})
})
