package accrete

import (
	"math"
	"slices"
	"sort"
)

// TooClose reports whether candidate p and existing planet q have
// overlapping feeding zones. The test looks outward from p toward planets
// beyond it and inward toward planets inside it.
func TooClose(p, q Planetesimal) bool {
	dist := q.Axis - p.Axis
	var dist1, dist2 float64
	if dist > 0.0 {
		dist1 = p.OuterEffectLimit() - p.Axis
		dist2 = q.Axis - q.InnerEffectLimit()
	} else {
		dist1 = p.Axis - p.InnerEffectLimit()
		dist2 = q.OuterEffectLimit() - q.Axis
	}
	d := math.Abs(dist)
	return d <= dist1 || d <= dist2
}

// Merge coalesces candidate p into existing planet q. Mass is conserved, the
// axis is the harmonic mass-weighted mean and the eccentricity follows from
// the combined angular momentum.
func Merge(p, q Planetesimal) Planetesimal {
	mass := q.Mass + p.Mass
	axis := mass / ((q.Mass / q.Axis) + (p.Mass / p.Axis))
	term1 := q.Mass * math.Sqrt(q.Axis*(1.0-q.Eccn*q.Eccn))
	term2 := p.Mass * math.Sqrt(p.Axis*(1.0-p.Eccn*p.Eccn))
	term3 := (term1 + term2) / (mass * math.Sqrt(axis))
	term4 := 1.0 - term3*term3
	eccn := math.Sqrt(math.Abs(term4))

	return Planetesimal{
		Star:     q.Star,
		Axis:     axis,
		Eccn:     eccn,
		Mass:     mass,
		GasGiant: q.GasGiant || p.GasGiant,
	}
}

// Planets is a planet set sorted by increasing axis.
type Planets []Planetesimal

// Coalesce places p into the set. The first planet too close to p is replaced
// by their merger; the merger is not checked again against its new
// neighbours. Otherwise p is inserted in axis order. The returned planet is
// the one that entered the set.
func (ps Planets) Coalesce(p Planetesimal) (Planets, Planetesimal, bool) {
	for i, q := range ps {
		if !TooClose(p, q) {
			continue
		}
		merged := Merge(p, q)
		out := make(Planets, 0, len(ps))
		out = append(out, ps[:i]...)
		out = append(out, merged)
		out = append(out, ps[i+1:]...)
		out.sortByAxis()
		return out, merged, true
	}

	i := sort.Search(len(ps), func(i int) bool { return ps[i].Axis > p.Axis })
	out := make(Planets, 0, len(ps)+1)
	out = append(out, ps[:i]...)
	out = append(out, p)
	out = append(out, ps[i:]...)
	return out, p, false
}

func (ps Planets) sortByAxis() {
	slices.SortStableFunc(ps, func(a, b Planetesimal) int {
		switch {
		case a.Axis < b.Axis:
			return -1
		case a.Axis > b.Axis:
			return 1
		}
		return 0
	})
}

// Ordered reports whether axes strictly increase.
func (ps Planets) Ordered() bool {
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Axis >= ps[i].Axis {
			return false
		}
	}
	return true
}

func (ps Planets) Clone() Planets {
	c := make(Planets, len(ps))
	copy(c, ps)
	return c
}

// TotalMass is the summed mass of all planets.
func (ps Planets) TotalMass() float64 {
	total := 0.0
	for _, p := range ps {
		total += p.Mass
	}
	return total
}

// Giants counts gas giants.
func (ps Planets) Giants() int {
	n := 0
	for _, p := range ps {
		if p.GasGiant {
			n++
		}
	}
	return n
}
