package accrete

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/accrete/internal/rng"
)

const referenceSeed = 1660075613494

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) OnStep(ev Event) { r.events = append(r.events, ev) }

type countMetric struct{ n int }

func (c *countMetric) Name() string     { return "count" }
func (c *countMetric) Observe(ev Event) { c.n++ }
func (c *countMetric) Value() float64   { return float64(c.n) }
func (c *countMetric) Reset()           { c.n = 0 }

// dustSubset reports whether every dusty point of next inside [lo, hi] was
// already dusty in prev.
func dustSubset(prev, next Bands, lo, hi float64) bool {
	for _, nb := range next {
		if !nb.Dust {
			continue
		}
		in, out := math.Max(nb.Inner, lo), math.Min(nb.Outer, hi)
		if out <= in {
			continue
		}
		for _, pb := range prev {
			if pb.Outer <= in || pb.Inner >= out {
				continue
			}
			if !pb.Dust {
				return false
			}
		}
	}
	return true
}

var _ = Describe("Simulator", func() {
	star := Sol()

	It("rejects an invalid star", func() {
		_, err := New(Star{Mass: 0, Luminosity: 1}, rng.NewJava(1))
		Expect(errors.Is(err, ErrInvalidStar)).To(BeTrue())
		_, err = New(Star{Mass: 1, Luminosity: math.NaN()}, rng.NewJava(1))
		Expect(errors.Is(err, ErrInvalidStar)).To(BeTrue())
	})

	It("rejects a nil source", func() {
		_, err := New(star, nil)
		Expect(err).To(MatchError(ErrNilSource))
	})

	It("produces no planets from a dustless disk", func() {
		s, err := New(star, rng.NewJava(referenceSeed))
		Expect(err).NotTo(HaveOccurred())
		s.SetBands(Bands{{0, star.DustLimit(), false, true}})

		result, err := s.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Planets).To(BeEmpty())
		Expect(result.Nuclei).To(BeZero())
	})

	It("reproduces the reference system", func() {
		expected := []Planetesimal{
			{Axis: 0.4178567041419378, Eccn: 0.23408332543327948, Mass: 2.167348292635512e-7, GasGiant: false},
			{Axis: 0.6350509393941814, Eccn: 0.1885303572412591, Mass: 3.293532824112172e-7, GasGiant: false},
			{Axis: 0.8673035920013914, Eccn: 0.13998847849128285, Mass: 4.5118455137081636e-6, GasGiant: false},
			{Axis: 1.8176450702804516, Eccn: 0.047285701897312626, Mass: 1.7700577489631473e-5, GasGiant: true},
			{Axis: 3.7126415075316253, Eccn: 0.023656279732320096, Mass: 3.793535256484035e-4, GasGiant: true},
			{Axis: 8.125507250822741, Eccn: 0.021658400938846523, Mass: 4.3191013213353304e-4, GasGiant: true},
			{Axis: 18.091816336108582, Eccn: 0.021010306994702587, Mass: 4.3781415778087645e-5, GasGiant: true},
			{Axis: 38.437067887219754, Eccn: 0.17393247153991004, Mass: 2.6539942281379695e-6, GasGiant: true},
			{Axis: 48.4055131867508, Eccn: 0.1276334274500348, Mass: 6.459424409599317e-8, GasGiant: false},
		}

		planets, err := Distribute(star, rng.NewJava(referenceSeed))
		Expect(err).NotTo(HaveOccurred())
		Expect(planets).To(HaveLen(len(expected)))

		const tol = 1e-6
		for i, e := range expected {
			got := planets[i]
			Expect(got.Axis).To(BeNumerically("~", e.Axis, e.Axis*tol), "axis of planet %d", i)
			Expect(got.Eccn).To(BeNumerically("~", e.Eccn, e.Eccn*tol), "eccentricity of planet %d", i)
			Expect(got.Mass).To(BeNumerically("~", e.Mass, e.Mass*tol), "mass of planet %d", i)
			Expect(got.GasGiant).To(Equal(e.GasGiant), "gas giant flag of planet %d", i)
		}
	})

	It("is deterministic for a given seed", func() {
		a, err := Distribute(star, rng.NewMath(99))
		Expect(err).NotTo(HaveOccurred())
		b, err := Distribute(star, rng.NewMath(99))
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("draws exactly two variates per nucleus", func() {
		src := &rng.Counter{Source: rng.NewJava(7)}
		s, err := New(star, src)
		Expect(err).NotTo(HaveOccurred())
		result, err := s.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(src.Drawn).To(Equal(2 * result.Nuclei))
	})

	It("feeds every iteration to observers and metrics", func() {
		s, err := New(star, rng.NewJava(3))
		Expect(err).NotTo(HaveOccurred())
		rec := &eventRecorder{}
		count := &countMetric{}
		s.AddObserver(rec)
		s.AddMetric(count)

		result, err := s.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.events).To(HaveLen(result.Nuclei))
		Expect(result.Metrics).To(HaveKeyWithValue("count", float64(result.Nuclei)))

		accepted, merges := 0, 0
		for _, ev := range rec.events {
			if ev.Accepted {
				accepted++
			}
			if ev.Merged {
				merges++
			}
		}
		Expect(accepted).To(Equal(result.Accepted))
		Expect(merges).To(Equal(result.Merges))
		Expect(result.Accepted - result.Merges).To(Equal(len(result.Planets)))
	})

	DescribeTable("holds its invariants at every step",
		func(seed int64, mass, luminosity float64) {
			st := Star{Mass: mass, Luminosity: luminosity}
			s, err := New(st, rng.NewJava(seed))
			Expect(err).NotTo(HaveOccurred())
			s.SetChecks(true)

			lo, hi := st.Innermost(), st.Outermost()
			prev := s.Bands()
			for !s.Done() {
				ev, err := s.Step()
				Expect(err).NotTo(HaveOccurred())

				next := s.Bands()
				Expect(next.Check(st)).To(Succeed())
				Expect(dustSubset(prev, next, lo, hi)).To(BeTrue())
				Expect(next.DustyWidth(lo, hi)).To(BeNumerically("<=", prev.DustyWidth(lo, hi)+1e-12))
				Expect(s.Planets().Ordered()).To(BeTrue())

				if ev.Accepted {
					Expect(ev.Planet.Mass).To(BeNumerically(">", ev.Nucleus.Mass))
					Expect(ev.Planet.GasGiant).To(Equal(ev.Planet.Mass >= ev.Planet.CriticalMass()))
				}
				prev = next
			}

			for _, p := range s.Planets() {
				Expect(p.Eccn).To(BeNumerically(">=", 0))
				Expect(p.Eccn).To(BeNumerically("<", 1))
				Expect(p.Axis).To(BeNumerically(">", 0))
			}
		},
		Entry("reference seed around Sol", int64(referenceSeed), 1.0, 1.0),
		Entry("seed 42 around Sol", int64(42), 1.0, 1.0),
		Entry("red dwarf", int64(11223344), 0.3, 0.01),
		Entry("bright F star", int64(5), 1.3, 2.5),
	)
})
