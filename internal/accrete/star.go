package accrete

import (
	"math"

	"github.com/san-kum/accrete/internal/dole"
)

// Star is immutable for the duration of a run. Mass and luminosity are in
// solar units.
type Star struct {
	Mass       float64 `json:"mass" yaml:"mass"`
	Luminosity float64 `json:"luminosity" yaml:"luminosity"`
}

// Sol is the reference star.
func Sol() Star {
	return Star{Mass: 1.0, Luminosity: 1.0}
}

// Innermost is the inner bound of the planet-forming annulus.
func (s Star) Innermost() float64 { return dole.InnermostPlanet(s.Mass) }

// Outermost is the outer bound of the planet-forming annulus.
func (s Star) Outermost() float64 { return dole.OutermostPlanet(s.Mass) }

// DustLimit is the outer edge of the initial dust disk.
func (s Star) DustLimit() float64 { return dole.OuterDustLimit(s.Mass) }

func (s Star) Validate() error {
	for _, v := range []float64{s.Mass, s.Luminosity} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrInvalidStar
		}
	}
	return nil
}
