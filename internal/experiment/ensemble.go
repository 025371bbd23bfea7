package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/accrete/internal/accrete"
)

// Ensemble repeats an experiment over consecutive seeds. Runs execute one
// after another; each owns its own simulator.
type Ensemble struct {
	base    Config
	numRuns int
}

func NewEnsemble(base Config, numRuns int) *Ensemble {
	return &Ensemble{base: base, numRuns: numRuns}
}

func (e *Ensemble) Run() ([]*accrete.Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("ensemble needs at least one run, got %d", e.numRuns)
	}

	results := make([]*accrete.Result, 0, e.numRuns)
	for i := 0; i < e.numRuns; i++ {
		cfg := e.base
		cfg.Seed = e.base.Seed + int64(i)

		exp := New(cfg)
		if err := exp.Setup(nil); err != nil {
			return nil, err
		}
		result, err := exp.Run()
		if err != nil {
			return nil, fmt.Errorf("run %d (seed %d): %w", i, cfg.Seed, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Stat is the mean and standard deviation of one quantity across runs.
type Stat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summary aggregates an ensemble.
type Summary struct {
	Runs          int   `json:"runs"`
	Planets       Stat  `json:"planets"`
	Giants        Stat  `json:"giants"`
	TotalMass     Stat  `json:"total_mass"`
	LargestAxis   Stat  `json:"largest_axis"`
	Nuclei        Stat  `json:"nuclei"`
	Coalescences  Stat  `json:"coalescences"`
	AxisHistogram []int `json:"axis_histogram"`
}

// AxisBins are the log-spaced bin edges (AU) of Summary.AxisHistogram.
var AxisBins = []float64{0.1, 0.3, 1, 3, 10, 30, 100}

func Summarize(results []*accrete.Result) Summary {
	n := len(results)
	planets := make([]float64, n)
	giants := make([]float64, n)
	mass := make([]float64, n)
	largest := make([]float64, n)
	nuclei := make([]float64, n)
	merges := make([]float64, n)
	hist := make([]int, len(AxisBins)-1)

	for i, r := range results {
		planets[i] = float64(len(r.Planets))
		giants[i] = float64(r.Planets.Giants())
		mass[i] = r.Planets.TotalMass()
		nuclei[i] = float64(r.Nuclei)
		merges[i] = float64(r.Merges)

		var heaviest accrete.Planetesimal
		for _, p := range r.Planets {
			if p.Mass > heaviest.Mass {
				heaviest = p
			}
			if b := axisBin(p.Axis); b >= 0 {
				hist[b]++
			}
		}
		largest[i] = heaviest.Axis
	}

	return Summary{
		Runs:          n,
		Planets:       describe(planets),
		Giants:        describe(giants),
		TotalMass:     describe(mass),
		LargestAxis:   describe(largest),
		Nuclei:        describe(nuclei),
		Coalescences:  describe(merges),
		AxisHistogram: hist,
	}
}

func axisBin(axis float64) int {
	for i := 0; i < len(AxisBins)-1; i++ {
		if axis >= AxisBins[i] && axis < AxisBins[i+1] {
			return i
		}
	}
	return -1
}

func describe(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = 0
	}
	return Stat{Mean: mean, StdDev: std}
}
