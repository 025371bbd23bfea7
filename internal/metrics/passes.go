package metrics

import "github.com/san-kum/accrete/internal/accrete"

// MeanPasses is the average number of fixed-point passes spent on accepted
// nuclei.
type MeanPasses struct {
	name    string
	sum     int
	samples int
}

func NewMeanPasses() *MeanPasses {
	return &MeanPasses{
		name: "mean_passes",
	}
}

func (m *MeanPasses) Name() string {
	return m.name
}

func (m *MeanPasses) Observe(ev accrete.Event) {
	if !ev.Accepted {
		return
	}
	m.sum += ev.Passes
	m.samples++
}

func (m *MeanPasses) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *MeanPasses) Reset() {
	m.sum = 0
	m.samples = 0
}

// Default returns the metrics attached to every CLI run.
func Default() []accrete.Metric {
	return []accrete.Metric{
		NewRejection(),
		NewCoalescences(),
		NewPeakBands(),
		NewMeanPasses(),
	}
}
