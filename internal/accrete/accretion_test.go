package accrete

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/accrete/internal/dole"
)

var _ = Describe("Accretion", func() {
	star := Sol()

	Describe("Collect", func() {
		var p Planetesimal

		BeforeEach(func() {
			p = Planetesimal{Star: star, Axis: 2.0, Eccn: 0.1, Mass: 1e-8}
		})

		It("ignores bands without dust", func() {
			b := DustBand{Inner: 0, Outer: 200, Dust: false, Gas: true}
			Expect(b.Collect(p)).To(BeZero())
		})

		It("ignores bands outside the feeding zone", func() {
			inside := DustBand{Inner: 0, Outer: p.InnerSweptLimit(), Dust: true, Gas: true}
			outside := DustBand{Inner: p.OuterSweptLimit(), Outer: 200, Dust: true, Gas: true}
			Expect(inside.Collect(p)).To(BeZero())
			Expect(outside.Collect(p)).To(BeZero())
		})

		It("sweeps the full toroid from a band covering the zone", func() {
			b := DustBand{Inner: 0, Outer: 200, Dust: true, Gas: true}
			width := p.OuterSweptLimit() - p.InnerSweptLimit()
			volume := 4 * math.Pi * p.Axis * p.Axis * p.ReducedMargin() * width
			Expect(b.Collect(p)).To(BeNumerically("~", volume*p.DustDensity(), 1e-20))
		})

		It("splits the zone between adjacent bands", func() {
			mid := p.Axis
			whole := DustBand{Inner: 0, Outer: 200, Dust: true, Gas: false}.Collect(p)
			left := DustBand{Inner: 0, Outer: mid, Dust: true, Gas: false}.Collect(p)
			right := DustBand{Inner: mid, Outer: 200, Dust: true, Gas: false}.Collect(p)
			Expect(left).To(BeNumerically(">", 0))
			Expect(right).To(BeNumerically(">", 0))
			Expect(left + right).To(BeNumerically("~", whole, whole*1e-9))
		})

		It("boosts density with gas above the critical mass", func() {
			p.Mass = 10 * p.CriticalMass()
			dusty := DustBand{Inner: 0, Outer: 200, Dust: true, Gas: false}.Collect(p)
			gassy := DustBand{Inner: 0, Outer: 200, Dust: true, Gas: true}.Collect(p)
			Expect(gassy / dusty).To(BeNumerically("~", p.MassDensity()/p.DustDensity(), 1e-9))
			Expect(gassy).To(BeNumerically(">", dusty))
		})
	})

	Describe("Accrete", func() {
		It("grows a nucleus in the pristine disk to a fixed point", func() {
			nucleus := Planetesimal{Star: star, Axis: 1.0, Eccn: 0.05, Mass: dole.ProtoplanetMass}
			masses := []float64{nucleus.Mass}
			p, passes := accrete(NewBands(star), nucleus, func(m float64) {
				masses = append(masses, m)
			})

			Expect(passes).To(BeNumerically(">", 1))
			Expect(p.Mass).To(BeNumerically(">", dole.ProtoplanetMass))
			Expect(p.Axis).To(Equal(nucleus.Axis))
			Expect(p.Eccn).To(Equal(nucleus.Eccn))
			Expect(p.GasGiant).To(Equal(p.Mass >= p.CriticalMass()))

			for i := 1; i < len(masses); i++ {
				Expect(masses[i]).To(BeNumerically(">=", masses[i-1]))
			}

			next := NewBands(star).Collect(p)
			Expect((next - p.Mass) / next).To(BeNumerically("<=", dole.ConvergenceThreshold))
		})

		It("returns the nucleus unchanged when nothing can be swept", func() {
			nucleus := Planetesimal{Star: star, Axis: 1.0, Eccn: 0.05, Mass: dole.ProtoplanetMass}
			empty := Bands{{0, 200, false, true}}
			Expect(Accrete(empty, nucleus)).To(Equal(nucleus))
		})

		It("grows an outer nucleus into a gas giant", func() {
			nucleus := Planetesimal{Star: star, Axis: 5.0, Eccn: 0.02, Mass: dole.ProtoplanetMass}
			p := Accrete(NewBands(star), nucleus)
			Expect(p.Mass).To(BeNumerically(">=", p.CriticalMass()))
			Expect(p.GasGiant).To(BeTrue())
		})
	})

	It("places the critical mass of a unit orbit at B", func() {
		p := Planetesimal{Star: Star{Mass: 1, Luminosity: 1}, Axis: 1, Eccn: 0, Mass: 1e-10}
		Expect(p.CriticalMass()).To(BeNumerically("~", 1.2e-5, 1e-18))
	})
})
