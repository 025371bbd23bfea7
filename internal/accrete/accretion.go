package accrete

import (
	"math"

	"github.com/san-kum/accrete/internal/dole"
)

// Collect returns the mass p would hold after sweeping band b once. Bands
// without dust, or outside the feeding zone, contribute nothing.
func (b DustBand) Collect(p Planetesimal) float64 {
	if !b.Dust {
		return 0
	}

	sweptInner := p.InnerSweptLimit()
	sweptOuter := p.OuterSweptLimit()
	if b.Outer <= sweptInner || b.Inner >= sweptOuter {
		return 0
	}

	dustDensity := p.DustDensity()
	critMass := p.CriticalMass()
	density := dustDensity
	if b.Gas && p.Mass >= critMass {
		density = dole.MassDensity(dustDensity, critMass, p.Mass)
	}

	sweptWidth := sweptOuter - sweptInner
	outside := math.Max(sweptOuter-b.Outer, 0)
	inside := math.Max(b.Inner-sweptInner, 0)
	width := sweptWidth - outside - inside

	term1 := 4.0 * math.Pi * p.Axis * p.Axis
	term2 := 1.0 - p.Eccn*(outside-inside)/sweptWidth
	volume := term1 * p.ReducedMargin() * width * term2

	return volume * density
}

// Collect sums the contribution of every band in list order.
func (bs Bands) Collect(p Planetesimal) float64 {
	total := 0.0
	for _, b := range bs {
		total += b.Collect(p)
	}
	return total
}

// Accrete grows nucleus against bs until the relative growth of one pass is
// at most dole.ConvergenceThreshold. The nucleus is returned unchanged when the
// first pass yields no growth.
func Accrete(bs Bands, nucleus Planetesimal) Planetesimal {
	p, _ := accrete(bs, nucleus, nil)
	return p
}

// accrete also reports the number of passes; trace, when set, receives the
// mass accepted after each pass.
func accrete(bs Bands, nucleus Planetesimal, trace func(float64)) (Planetesimal, int) {
	p := nucleus
	passes := 0
	for {
		mass := bs.Collect(p)
		passes++
		if mass-p.Mass <= dole.ConvergenceThreshold*mass {
			break
		}
		p = p.WithMass(mass)
		if trace != nil {
			trace(mass)
		}
	}
	if passes == 1 {
		return nucleus, passes
	}
	p.GasGiant = p.Mass >= p.CriticalMass()
	return p, passes
}
