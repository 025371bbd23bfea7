package dole

import "math"

const (
	// CloudEccentricity widens the swept zone beyond the effect limits.
	CloudEccentricity = 0.25
	// K is the gas/dust ratio.
	K = 50.0
	// A is the dust density coefficient.
	A = 1.5e-3
	// Alpha and N shape the radial dust density falloff.
	Alpha = 5.0
	N     = 3.0
	// B is used in the critical mass calculation.
	B = 1.2e-5
	// EccentricityCoeff shapes the random eccentricity distribution.
	EccentricityCoeff = 0.077
	// ProtoplanetMass is the seed mass of a freshly injected nucleus.
	ProtoplanetMass = 1.0e-15
	// SolarMassInEarthMasses converts solar masses to Earth masses.
	SolarMassInEarthMasses = 332775.64
	// ConvergenceThreshold is the relative growth at which accretion stops.
	ConvergenceThreshold = 0.001
)

func Perihelion(a, e float64) float64 { return a * (1.0 - e) }
func Aphelion(a, e float64) float64   { return a * (1.0 + e) }

func ReducedMass(m float64) float64 { return m / (1.0 + m) }

// ReducedMargin is (m/(1+m))^(1/4).
func ReducedMargin(m float64) float64 {
	return math.Pow(ReducedMass(m), 1.0/4.0)
}

func LowBound(inner float64) float64  { return inner / (1.0 + CloudEccentricity) }
func HighBound(outer float64) float64 { return outer / (1.0 - CloudEccentricity) }

// InnerEffectLimit takes the reduced margin w, not the mass.
func InnerEffectLimit(a, e, w float64) float64 { return Perihelion(a, e) * (1.0 - w) }
func OuterEffectLimit(a, e, w float64) float64 { return Aphelion(a, e) * (1.0 + w) }

// InnerSweptLimit is clamped at zero.
func InnerSweptLimit(a, e, w float64) float64 {
	return math.Max(LowBound(InnerEffectLimit(a, e, w)), 0)
}

func OuterSweptLimit(a, e, w float64) float64 {
	return HighBound(OuterEffectLimit(a, e, w))
}

// DustDensity at orbital radius a around a star of the given mass.
func DustDensity(stellarMass, a float64) float64 {
	return A * math.Sqrt(stellarMass) * math.Exp(-Alpha*math.Pow(a, 1.0/N))
}

// CriticalMass is the mass above which a body accretes gas as well as dust.
func CriticalMass(a, e, luminosity float64) float64 {
	return B * math.Pow(Perihelion(a, e)*math.Sqrt(luminosity), -0.75)
}

// MassDensity is the density of material swept by a body accreting gas.
func MassDensity(dustDensity, criticalMass, m float64) float64 {
	return K * dustDensity / (1.0 + math.Sqrt(criticalMass/m)*(K-1.0))
}

// ScaleCubeRootMass returns scale * m^(1/3).
func ScaleCubeRootMass(scale, m float64) float64 {
	return scale * math.Pow(m, 1.0/3.0)
}

func InnermostPlanet(stellarMass float64) float64 { return ScaleCubeRootMass(0.3, stellarMass) }
func OutermostPlanet(stellarMass float64) float64 { return ScaleCubeRootMass(50.0, stellarMass) }

func InnerDustLimit() float64 { return 0.0 }

func OuterDustLimit(stellarMass float64) float64 {
	return ScaleCubeRootMass(200.0, stellarMass)
}

// Eccentricity maps a uniform variate u in [0,1) to 1 - u^0.077, kept
// strictly below 1 for u = 0.
func Eccentricity(u float64) float64 {
	return math.Min(1.0-math.Pow(u, EccentricityCoeff), math.Nextafter(1, 0))
}

// Axis maps a uniform variate u in [0,1) onto [inner, outer).
func Axis(u, inner, outer float64) float64 {
	r := u*(outer-inner) + inner
	if r >= outer {
		r = math.Nextafter(outer, inner)
	}
	return r
}

func EarthMasses(m float64) float64 { return m * SolarMassInEarthMasses }
