package metrics

import "github.com/san-kum/accrete/internal/accrete"

// PeakBands tracks the largest band list seen after compression.
type PeakBands struct {
	name string
	peak int
}

func NewPeakBands() *PeakBands {
	return &PeakBands{name: "peak_bands"}
}

func (p *PeakBands) Name() string { return p.name }

func (p *PeakBands) Observe(ev accrete.Event) {
	if ev.Bands > p.peak {
		p.peak = ev.Bands
	}
}

func (p *PeakBands) Value() float64 { return float64(p.peak) }
func (p *PeakBands) Reset()         { p.peak = 0 }

// Coalescences counts accepted nuclei that merged into an existing planet.
type Coalescences struct {
	name  string
	count int
}

func NewCoalescences() *Coalescences {
	return &Coalescences{name: "coalescences"}
}

func (c *Coalescences) Name() string { return c.name }

func (c *Coalescences) Observe(ev accrete.Event) {
	if ev.Merged {
		c.count++
	}
}

func (c *Coalescences) Value() float64 { return float64(c.count) }
func (c *Coalescences) Reset()         { c.count = 0 }
