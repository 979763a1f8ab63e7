package metrics

import (
	"github.com/san-kum/growvec/internal/dynarray"
	"github.com/san-kum/growvec/internal/scenario"
)

// Growths counts steps that raised the capacity.
type Growths struct {
	name  string
	count int
}

func NewGrowths() *Growths {
	return &Growths{name: "growths"}
}

func (g *Growths) Name() string { return g.name }

func (g *Growths) Observe(step scenario.Step, arr *dynarray.Array[int]) {
	if step.Delta > 0 {
		g.count++
	}
}

func (g *Growths) Value() float64 { return float64(g.count) }

func (g *Growths) Reset() { g.count = 0 }

// Shrinks counts steps that lowered the capacity. Only a bulk insert into an
// array with more spare room than the inserted slice can do that.
type Shrinks struct {
	name  string
	count int
}

func NewShrinks() *Shrinks {
	return &Shrinks{name: "shrinks"}
}

func (s *Shrinks) Name() string { return s.name }

func (s *Shrinks) Observe(step scenario.Step, arr *dynarray.Array[int]) {
	if step.Delta < 0 {
		s.count++
	}
}

func (s *Shrinks) Value() float64 { return float64(s.count) }

func (s *Shrinks) Reset() { s.count = 0 }

type PeakCapacity struct {
	name string
	peak int
}

func NewPeakCapacity() *PeakCapacity {
	return &PeakCapacity{name: "peak_capacity"}
}

func (p *PeakCapacity) Name() string { return p.name }

func (p *PeakCapacity) Observe(step scenario.Step, arr *dynarray.Array[int]) {
	if step.Capacity > p.peak {
		p.peak = step.Capacity
	}
}

func (p *PeakCapacity) Value() float64 { return float64(p.peak) }

func (p *PeakCapacity) Reset() { p.peak = 0 }
