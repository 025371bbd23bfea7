package accrete

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/accrete/internal/dole"
	"github.com/san-kum/accrete/internal/logging"
	"github.com/san-kum/accrete/internal/rng"
)

// Event describes one driver iteration.
type Event struct {
	Index    int
	Nucleus  Planetesimal
	Planet   Planetesimal // after accretion; equals Nucleus when nothing was swept
	Passes   int          // fixed-point passes spent growing the nucleus
	Accepted bool
	Merged   bool
	Result   Planetesimal // the planet that entered the set, merged or not
	Bands    int
	Planets  int
}

// Metric accumulates a scalar over the events of a run.
type Metric interface {
	Name() string
	Observe(ev Event)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(ev Event)
}

// Result is the outcome of a complete run.
type Result struct {
	Star     Star
	Planets  Planets
	Nuclei   int
	Accepted int
	Merges   int
	Metrics  map[string]float64
}

// Simulator is the accretion driver. It exclusively owns the band list and
// planet set for the duration of a run.
type Simulator struct {
	star      Star
	src       rng.Source
	bands     Bands
	planets   Planets
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
	checks    bool

	nuclei   int
	accepted int
	merges   int
}

func New(star Star, src rng.Source) (*Simulator, error) {
	if err := star.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Simulator{
		star:      star,
		src:       src,
		bands:     NewBands(star),
		planets:   Planets{},
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logging.Discard(),
	}, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	s.logger = l
}

// SetChecks enables verification of band and planet invariants after every
// accepted nucleus.
func (s *Simulator) SetChecks(on bool) { s.checks = on }

// SetBands replaces the disk the run starts from.
func (s *Simulator) SetBands(bs Bands) { s.bands = bs.Clone() }

func (s *Simulator) Star() Star       { return s.star }
func (s *Simulator) Bands() Bands     { return s.bands.Clone() }
func (s *Simulator) Planets() Planets { return s.planets.Clone() }
func (s *Simulator) Nuclei() int      { return s.nuclei }

// Done reports whether the planet-forming annulus has been cleared of dust.
func (s *Simulator) Done() bool {
	return !s.bands.DustLeft(s.star)
}

// Step injects one nucleus, grows it, and when it swept any material merges
// it into the planet set and clears its feeding zone from the disk.
func (s *Simulator) Step() (Event, error) {
	nucleus := NewNucleus(s.star, s.src)
	s.nuclei++

	p, passes := accrete(s.bands, nucleus, nil)
	ev := Event{
		Index:   s.nuclei,
		Nucleus: nucleus,
		Planet:  p,
		Passes:  passes,
	}

	if p.Mass == 0 || p.Mass == dole.ProtoplanetMass {
		logging.Trace(s.logger, "nucleus rejected", "index", s.nuclei, "axis", nucleus.Axis)
		ev.Bands = len(s.bands)
		ev.Planets = len(s.planets)
		s.notify(ev)
		return ev, nil
	}

	ev.Accepted = true
	s.accepted++

	s.planets, ev.Result, ev.Merged = s.planets.Coalesce(p)
	if ev.Merged {
		s.merges++
		s.logger.Debug("planets coalesced",
			"index", s.nuclei,
			"axis", ev.Result.Axis,
			"mass", ev.Result.Mass,
			"giant", ev.Result.GasGiant,
		)
	} else {
		s.logger.Debug("planet formed",
			"index", s.nuclei,
			"axis", p.Axis,
			"mass", p.Mass,
			"passes", passes,
			"giant", p.GasGiant,
		)
	}

	s.bands = s.bands.Sweep(p).Compress()
	ev.Bands = len(s.bands)
	ev.Planets = len(s.planets)

	if s.checks {
		if err := s.check(); err != nil {
			return ev, fmt.Errorf("step %d: %w", s.nuclei, err)
		}
	}

	s.notify(ev)
	return ev, nil
}

func (s *Simulator) notify(ev Event) {
	for _, m := range s.metrics {
		m.Observe(ev)
	}
	for _, obs := range s.observers {
		obs.OnStep(ev)
	}
}

func (s *Simulator) check() error {
	if err := s.bands.Check(s.star); err != nil {
		return err
	}
	if !s.planets.Ordered() {
		return ErrPlanetOrder
	}
	return nil
}

// Run steps until no dust remains in the planet-forming annulus.
func (s *Simulator) Run() (*Result, error) {
	for _, m := range s.metrics {
		m.Reset()
	}

	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Star:     s.star,
		Planets:  s.planets.Clone(),
		Nuclei:   s.nuclei,
		Accepted: s.accepted,
		Merges:   s.merges,
		Metrics:  make(map[string]float64),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Info("accretion complete",
		"planets", len(result.Planets),
		"nuclei", result.Nuclei,
		"merges", result.Merges,
	)
	return result, nil
}

// Distribute runs a fresh simulation around star and returns the planets in
// axis order.
func Distribute(star Star, src rng.Source) (Planets, error) {
	s, err := New(star, src)
	if err != nil {
		return nil, err
	}
	result, err := s.Run()
	if err != nil {
		return nil, err
	}
	return result.Planets, nil
}
