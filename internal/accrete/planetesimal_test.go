package accrete

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/accrete/internal/dole"
	"github.com/san-kum/accrete/internal/rng"
)

var _ = Describe("Planetesimal", func() {
	star := Sol()

	Describe("NewNucleus", func() {
		It("draws the axis first, then the eccentricity", func() {
			p := NewNucleus(star, rng.NewSequence(0.5, 0.25))

			Expect(p.Axis).To(Equal(star.Innermost() + 0.5*(star.Outermost()-star.Innermost())))
			Expect(p.Eccn).To(Equal(dole.Eccentricity(0.25)))
			Expect(p.Mass).To(Equal(dole.ProtoplanetMass))
			Expect(p.GasGiant).To(BeFalse())
		})
	})

	It("derives a grown body without mutating the receiver", func() {
		p := Planetesimal{Star: star, Axis: 1, Eccn: 0.1, Mass: 1e-15}
		q := p.WithMass(1e-6)

		Expect(p.Mass).To(Equal(1e-15))
		Expect(q.Mass).To(Equal(1e-6))
		Expect(q.Axis).To(Equal(p.Axis))
		Expect(q.Eccn).To(Equal(p.Eccn))
	})

	It("orders its limits around the orbit", func() {
		p := Planetesimal{Star: star, Axis: 2, Eccn: 0.25, Mass: 1e-4}

		Expect(p.Perihelion()).To(Equal(1.5))
		Expect(p.Aphelion()).To(Equal(2.5))
		Expect(p.InnerSweptLimit()).To(BeNumerically("<", p.InnerEffectLimit()))
		Expect(p.InnerEffectLimit()).To(BeNumerically("<", p.Perihelion()))
		Expect(p.Aphelion()).To(BeNumerically("<", p.OuterEffectLimit()))
		Expect(p.OuterEffectLimit()).To(BeNumerically("<", p.OuterSweptLimit()))
	})

	DescribeTable("String",
		func(p Planetesimal, want, not []string) {
			s := p.String()
			for _, w := range want {
				Expect(s).To(ContainSubstring(w))
			}
			for _, n := range not {
				Expect(s).NotTo(ContainSubstring(n))
			}
		},
		Entry("seed mass omits earth mass",
			Planetesimal{Axis: 1, Eccn: 0, Mass: dole.ProtoplanetMass},
			[]string{"1 0 1e-15"}, []string{"(", "giant"}),
		Entry("grown giant",
			Planetesimal{Axis: 5.2, Eccn: 0.05, Mass: 1e-3, GasGiant: true},
			[]string{"5.2 0.05 0.001", "(332.77", "giant"}, nil),
	)
})

var _ = Describe("Star", func() {
	It("validates the reference star and its bounds", func() {
		s := Sol()
		Expect(s.Validate()).To(Succeed())
		Expect(s.Innermost()).To(Equal(0.3))
		Expect(s.Outermost()).To(Equal(50.0))
		Expect(s.DustLimit()).To(Equal(200.0))
	})

	DescribeTable("rejects non-positive parameters",
		func(s Star) {
			Expect(s.Validate()).To(MatchError(ErrInvalidStar))
		},
		Entry("zero mass", Star{Mass: 0, Luminosity: 1}),
		Entry("zero luminosity", Star{Mass: 1, Luminosity: 0}),
		Entry("negative mass", Star{Mass: -1, Luminosity: 1}),
	)
})
