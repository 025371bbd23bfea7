package metrics

import "github.com/san-kum/accrete/internal/accrete"

// Rejection is the fraction of nuclei that swept no material.
type Rejection struct {
	name     string
	rejected int
	samples  int
}

func NewRejection() *Rejection {
	return &Rejection{
		name: "rejection_rate",
	}
}

func (r *Rejection) Name() string {
	return r.name
}

func (r *Rejection) Observe(ev accrete.Event) {
	r.samples++
	if !ev.Accepted {
		r.rejected++
	}
}

func (r *Rejection) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return float64(r.rejected) / float64(r.samples)
}

func (r *Rejection) Reset() {
	r.rejected = 0
	r.samples = 0
}
