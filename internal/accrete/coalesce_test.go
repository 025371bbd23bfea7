package accrete

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Coalescence", func() {
	star := Sol()
	planet := func(axis, eccn, mass float64, giant bool) Planetesimal {
		return Planetesimal{Star: star, Axis: axis, Eccn: eccn, Mass: mass, GasGiant: giant}
	}

	Describe("TooClose", func() {
		It("detects overlap with a planet further out", func() {
			p := planet(1.0, 0.1, 1e-4, false)
			q := planet(1.1, 0.0, 1e-9, false)
			Expect(TooClose(p, q)).To(BeTrue())
		})

		It("detects overlap with a planet further in", func() {
			p := planet(1.1, 0.0, 1e-9, false)
			q := planet(1.0, 0.1, 1e-4, false)
			Expect(TooClose(p, q)).To(BeTrue())
		})

		It("accepts well separated planets", func() {
			p := planet(1.0, 0.01, 1e-7, false)
			q := planet(5.0, 0.01, 1e-7, false)
			Expect(TooClose(p, q)).To(BeFalse())
			Expect(TooClose(q, p)).To(BeFalse())
		})
	})

	Describe("Merge", func() {
		It("conserves mass and takes the harmonic mean axis", func() {
			a := planet(1.0, 0.1, 2e-6, false)
			q := planet(1.2, 0.05, 1e-6, true)
			r := Merge(a, q)

			Expect(r.Mass).To(Equal(q.Mass + a.Mass))
			Expect(r.Axis).To(BeNumerically("~", 3e-6/(1e-6/1.2+2e-6/1.0), 1e-12))
			Expect(r.Axis).To(BeNumerically(">", 1.0))
			Expect(r.Axis).To(BeNumerically("<", 1.2))
			Expect(r.GasGiant).To(BeTrue())
			Expect(r.Star).To(Equal(q.Star))
		})

		It("keeps circular orbits circular", func() {
			r := Merge(planet(2.0, 0, 1e-6, false), planet(2.0, 0, 3e-6, false))
			Expect(r.Eccn).To(BeNumerically("<", 1e-6))
			Expect(r.Axis).To(BeNumerically("~", 2.0, 1e-12))
		})

		It("produces an eccentricity in [0,1)", func() {
			r := Merge(planet(0.5, 0.3, 1e-7, false), planet(0.7, 0.2, 4e-7, false))
			Expect(r.Eccn).To(BeNumerically(">=", 0))
			Expect(r.Eccn).To(BeNumerically("<", 1))
		})
	})

	Describe("Planets.Coalesce", func() {
		It("inserts a distant planet in axis order", func() {
			ps := Planets{planet(0.5, 0, 1e-8, false), planet(10, 0, 1e-8, false)}
			out, entered, merged := ps.Coalesce(planet(3, 0, 1e-8, false))
			Expect(merged).To(BeFalse())
			Expect(entered.Axis).To(Equal(3.0))
			Expect(out).To(HaveLen(3))
			Expect(out.Ordered()).To(BeTrue())
			Expect(out[1].Axis).To(Equal(3.0))
		})

		It("inserts into an empty set", func() {
			out, _, merged := Planets{}.Coalesce(planet(1, 0, 1e-8, false))
			Expect(merged).To(BeFalse())
			Expect(out).To(HaveLen(1))
		})

		It("does not modify the receiver", func() {
			ps := Planets{planet(1.0, 0, 1e-8, false)}
			_, _, _ = ps.Coalesce(planet(1.01, 0, 1e-6, false))
			Expect(ps).To(HaveLen(1))
			Expect(ps[0].Mass).To(Equal(1e-8))
		})

		It("merges with the first overlapping planet only", func() {
			inner := planet(1.0, 0, 1e-8, false)
			outer := planet(1.3, 0, 1e-8, false)
			candidate := planet(1.15, 0, 1e-3, false)
			Expect(TooClose(candidate, inner)).To(BeTrue())
			Expect(TooClose(candidate, outer)).To(BeTrue())

			out, entered, merged := Planets{inner, outer}.Coalesce(candidate)
			Expect(merged).To(BeTrue())
			Expect(out).To(HaveLen(2))
			Expect(out[0]).To(Equal(entered))
			Expect(entered.Mass).To(Equal(inner.Mass + candidate.Mass))
			Expect(out[1]).To(Equal(outer))
			Expect(out.Ordered()).To(BeTrue())
		})
	})

	It("totals mass and counts giants", func() {
		ps := Planets{planet(1, 0, 1e-6, false), planet(5, 0, 1e-4, true)}
		Expect(ps.TotalMass()).To(BeNumerically("~", 1.01e-4, 1e-15))
		Expect(ps.Giants()).To(Equal(1))
	})
})
