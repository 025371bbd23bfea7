package experiment

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/accrete/internal/accrete"
	"github.com/san-kum/accrete/internal/metrics"
)

type Config struct {
	Star   accrete.Star
	Seed   int64
	Source string
	Checks bool
	Logger *slog.Logger
}

type Experiment struct {
	cfg       Config
	registry  *Registry
	simulator *accrete.Simulator
}

func New(cfg Config) *Experiment {
	if cfg.Source == "" {
		cfg.Source = "java"
	}
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
	}
}

// Setup builds the simulator and attaches the given metrics; nil selects
// metrics.Default.
func (e *Experiment) Setup(ms []accrete.Metric) error {
	src, err := e.registry.GetSource(e.cfg.Source, e.cfg.Seed)
	if err != nil {
		return err
	}
	s, err := accrete.New(e.cfg.Star, src)
	if err != nil {
		return err
	}
	s.SetChecks(e.cfg.Checks)
	s.SetLogger(e.cfg.Logger)

	if ms == nil {
		ms = metrics.Default()
	}
	for _, m := range ms {
		s.AddMetric(m)
	}
	e.simulator = s
	return nil
}

func (e *Experiment) Run() (*accrete.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run()
}

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *accrete.Simulator {
	return e.simulator
}
