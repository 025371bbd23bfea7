package accrete

import (
	"fmt"

	"github.com/san-kum/accrete/internal/dole"
)

// DustBand is an annulus [Inner, Outer) with uniform material state.
type DustBand struct {
	Inner float64 `json:"inner"`
	Outer float64 `json:"outer"`
	Dust  bool    `json:"dust"`
	Gas   bool    `json:"gas"`
}

func (b DustBand) String() string {
	return fmt.Sprintf("[%g, %g dust=%t gas=%t]", b.Inner, b.Outer, b.Dust, b.Gas)
}

func (b DustBand) sameState(o DustBand) bool {
	return b.Dust == o.Dust && b.Gas == o.Gas
}

// Sweep splits the band against the swept zone of p. Swept parts lose their
// dust; they keep their gas unless p is a gas giant.
func (b DustBand) Sweep(p Planetesimal) []DustBand {
	lo := p.InnerSweptLimit()
	hi := p.OuterSweptLimit()
	gas := b.Gas && !p.GasGiant

	switch {
	case b.Inner < lo && b.Outer > hi:
		return []DustBand{
			{b.Inner, lo, b.Dust, b.Gas},
			{lo, hi, false, gas},
			{hi, b.Outer, b.Dust, b.Gas},
		}
	case b.Inner < hi && b.Outer > hi:
		return []DustBand{
			{b.Inner, hi, false, gas},
			{hi, b.Outer, b.Dust, b.Gas},
		}
	case b.Inner < lo && b.Outer > lo:
		return []DustBand{
			{b.Inner, lo, b.Dust, b.Gas},
			{lo, b.Outer, false, gas},
		}
	case b.Inner >= lo && b.Outer <= hi:
		return []DustBand{{b.Inner, b.Outer, false, gas}}
	}
	return []DustBand{b}
}

// Bands is an ordered, contiguous cover of the dust disk.
type Bands []DustBand

// NewBands returns the pristine disk around star: one band of dust and gas
// from the star out to the outer dust limit.
func NewBands(star Star) Bands {
	return Bands{{
		Inner: dole.InnerDustLimit(),
		Outer: star.DustLimit(),
		Dust:  true,
		Gas:   true,
	}}
}

// Sweep returns the band list after p has cleared its feeding zone.
func (bs Bands) Sweep(p Planetesimal) Bands {
	out := make(Bands, 0, len(bs)+2)
	for _, b := range bs {
		out = append(out, b.Sweep(p)...)
	}
	return out
}

// Compress collapses runs of adjacent bands with identical material state.
func (bs Bands) Compress() Bands {
	if len(bs) == 0 {
		return Bands{}
	}
	out := make(Bands, 0, len(bs))
	cur := bs[0]
	for _, b := range bs[1:] {
		if b.sameState(cur) {
			cur.Outer = b.Outer
			continue
		}
		out = append(out, cur)
		cur = b
	}
	return append(out, cur)
}

// DustLeft reports whether any dusty band touches [innermost, outermost].
func (bs Bands) DustLeft(star Star) bool {
	inner, outer := star.Innermost(), star.Outermost()
	for _, b := range bs {
		if b.Dust && b.Outer >= inner && b.Inner <= outer {
			return true
		}
	}
	return false
}

// Check verifies contiguity, coverage of [0, star.DustLimit()] and that the
// list is compressed. Violations are reported as *BandError; an empty list
// has Index -1.
func (bs Bands) Check(star Star) error {
	if len(bs) == 0 {
		return &BandError{Index: -1, Wrapped: ErrBandCoverage}
	}
	if bs[0].Inner != dole.InnerDustLimit() {
		return &BandError{Index: 0, Band: bs[0], Wrapped: ErrBandCoverage}
	}
	last := len(bs) - 1
	if bs[last].Outer != star.DustLimit() {
		return &BandError{Index: last, Band: bs[last], Wrapped: ErrBandCoverage}
	}
	for i := 1; i < len(bs); i++ {
		if bs[i-1].Outer != bs[i].Inner {
			return &BandError{Index: i, Band: bs[i], Wrapped: ErrBandGap}
		}
		if bs[i-1].sameState(bs[i]) {
			return &BandError{Index: i, Band: bs[i], Wrapped: ErrBandNotCompressed}
		}
	}
	return nil
}

// DustyWidth is the total width of dusty bands inside [lo, hi].
func (bs Bands) DustyWidth(lo, hi float64) float64 {
	total := 0.0
	for _, b := range bs {
		if !b.Dust {
			continue
		}
		in, out := b.Inner, b.Outer
		if in < lo {
			in = lo
		}
		if out > hi {
			out = hi
		}
		if out > in {
			total += out - in
		}
	}
	return total
}

func (bs Bands) Clone() Bands {
	c := make(Bands, len(bs))
	copy(c, bs)
	return c
}
