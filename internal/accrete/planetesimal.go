package accrete

import (
	"fmt"
	"strconv"

	"github.com/san-kum/accrete/internal/dole"
	"github.com/san-kum/accrete/internal/rng"
)

// Planetesimal is a body orbiting a star: semi-major axis (AU), eccentricity,
// mass (solar masses) and whether it accreted gas. Values are never mutated
// in place; use WithMass to derive a grown body.
type Planetesimal struct {
	Star     Star    `json:"-"`
	Axis     float64 `json:"axis"`
	Eccn     float64 `json:"eccentricity"`
	Mass     float64 `json:"mass"`
	GasGiant bool    `json:"gas_giant"`
}

// NewNucleus draws a protoplanet from src: first the axis variate, then the
// eccentricity variate.
func NewNucleus(star Star, src rng.Source) Planetesimal {
	axis := dole.Axis(src.Float64(), star.Innermost(), star.Outermost())
	eccn := dole.Eccentricity(src.Float64())
	return Planetesimal{
		Star: star,
		Axis: axis,
		Eccn: eccn,
		Mass: dole.ProtoplanetMass,
	}
}

func (p Planetesimal) WithMass(m float64) Planetesimal {
	p.Mass = m
	return p
}

func (p Planetesimal) Perihelion() float64    { return dole.Perihelion(p.Axis, p.Eccn) }
func (p Planetesimal) Aphelion() float64      { return dole.Aphelion(p.Axis, p.Eccn) }
func (p Planetesimal) ReducedMargin() float64 { return dole.ReducedMargin(p.Mass) }

func (p Planetesimal) InnerEffectLimit() float64 {
	return dole.InnerEffectLimit(p.Axis, p.Eccn, p.ReducedMargin())
}

func (p Planetesimal) OuterEffectLimit() float64 {
	return dole.OuterEffectLimit(p.Axis, p.Eccn, p.ReducedMargin())
}

// InnerSweptLimit is the inner edge of the feeding zone, never below zero.
func (p Planetesimal) InnerSweptLimit() float64 {
	return dole.InnerSweptLimit(p.Axis, p.Eccn, p.ReducedMargin())
}

func (p Planetesimal) OuterSweptLimit() float64 {
	return dole.OuterSweptLimit(p.Axis, p.Eccn, p.ReducedMargin())
}

func (p Planetesimal) DustDensity() float64 {
	return dole.DustDensity(p.Star.Mass, p.Axis)
}

func (p Planetesimal) CriticalMass() float64 {
	return dole.CriticalMass(p.Axis, p.Eccn, p.Star.Luminosity)
}

// MassDensity is the density swept when the body also accretes gas.
func (p Planetesimal) MassDensity() float64 {
	return dole.MassDensity(p.DustDensity(), p.CriticalMass(), p.Mass)
}

func (p Planetesimal) EarthMass() float64 { return dole.EarthMasses(p.Mass) }

// String formats as "axis eccn mass", followed by the Earth mass when the body
// grew past its seed and "giant" for gas giants.
func (p Planetesimal) String() string {
	s := fmt.Sprintf("%s %s %s", formatFloat(p.Axis), formatFloat(p.Eccn), formatFloat(p.Mass))
	if p.Mass > 2*dole.ProtoplanetMass {
		s = fmt.Sprintf("%s (%s)", s, formatFloat(p.EarthMass()))
	}
	if p.GasGiant {
		s += " giant"
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
