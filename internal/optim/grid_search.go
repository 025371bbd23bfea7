package optim

import (
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/accrete/internal/accrete"
	"github.com/san-kum/accrete/internal/experiment"
)

// Objectives name the scalars a sweep can rank by, besides any metric
// recorded in Result.Metrics.
var Objectives = map[string]func(*accrete.Result) float64{
	"planets":    func(r *accrete.Result) float64 { return float64(len(r.Planets)) },
	"giants":     func(r *accrete.Result) float64 { return float64(r.Planets.Giants()) },
	"total_mass": func(r *accrete.Result) float64 { return r.Planets.TotalMass() },
	"nuclei":     func(r *accrete.Result) float64 { return float64(r.Nuclei) },
}

// Objective resolves name against Objectives, falling back to the metric of
// that name.
func Objective(name string) func(*accrete.Result) float64 {
	if f, ok := Objectives[name]; ok {
		return f
	}
	return func(r *accrete.Result) float64 { return r.Metrics[name] }
}

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]float64
	Value  float64
}

// GridSearch evaluates every combination of parameter values. Parameters
// are varied in the order given, the last one fastest.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search runs one experiment per grid cell and returns the cell with the
// lowest objective (highest when maximize is set) along with every cell
// visited. Ties keep the first cell.
func (g *GridSearch) Search(
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	objective func(*accrete.Result) float64,
	maximize bool,
) (Point, []Point, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Point{}, nil, fmt.Errorf("grid has %d names but %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := Point{Value: math.Inf(1)}
	if maximize {
		best.Value = math.Inf(-1)
	}
	var all []Point

	err := g.searchRecursive(0, make(map[string]float64), func(params map[string]float64) error {
		exp, err := buildExperiment(params)
		if err != nil {
			return err
		}
		result, err := exp.Run()
		if err != nil {
			return fmt.Errorf("grid point %v: %w", params, err)
		}

		p := Point{Params: params, Value: objective(result)}
		all = append(all, p)
		if (maximize && p.Value > best.Value) || (!maximize && p.Value < best.Value) {
			best = p
		}
		return nil
	})
	if err != nil {
		return Point{}, nil, err
	}
	return best, all, nil
}

func (g *GridSearch) searchRecursive(depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if depth == len(g.paramNames) {
		return visit(current)
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(depth+1, newParams, visit); err != nil {
			return err
		}
	}
	return nil
}

// StarExperiment builds experiments for a grid over "mass" and
// "luminosity"; parameters absent from the grid keep the base star's value.
// When luminosity is not swept it follows the mass-luminosity relation
// L = M^3.5 if followMass is set.
func StarExperiment(base experiment.Config, followMass bool) func(map[string]float64) (*experiment.Experiment, error) {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := base
		if m, ok := params["mass"]; ok {
			cfg.Star.Mass = m
		}
		if l, ok := params["luminosity"]; ok {
			cfg.Star.Luminosity = l
		} else if followMass {
			cfg.Star.Luminosity = math.Pow(cfg.Star.Mass, 3.5)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(nil); err != nil {
			return nil, err
		}
		return exp, nil
	}
}

// Names returns the swept parameter names in order.
func (g *GridSearch) Names() []string { return slices.Clone(g.paramNames) }
