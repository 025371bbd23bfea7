package export

import (
	"math"

	"github.com/san-kum/accrete/internal/accrete"
)

// Plot window in log10 AU.
const (
	minLogAU = -1.0
	maxLogAU = 2.0
)

var tickLabels = []struct {
	LogAU float64
	Label string
}{
	{-1, ".1"},
	{0, "1"},
	{1, "10"},
	{2, "100"},
}

// ticks returns log10 positions of 0.1..1, 1..10 and 10..100 AU marks.
func ticks() []float64 {
	out := make([]float64, 0, 30)
	for i := 1; i <= 10; i++ {
		au := float64(i)
		out = append(out, math.Log10(au/10), math.Log10(au), math.Log10(au*10))
	}
	return out
}

// marker is a planet reduced to plot coordinates.
type marker struct {
	X      float64
	Radius float64
	Filled bool
}

func markers(planets accrete.Planets) []marker {
	out := make([]marker, 0, len(planets))
	for _, p := range planets {
		if p.Axis <= 0 {
			continue
		}
		out = append(out, marker{
			X:      math.Log10(p.Axis),
			Radius: math.Cbrt(p.Mass),
			Filled: p.GasGiant,
		})
	}
	return out
}
