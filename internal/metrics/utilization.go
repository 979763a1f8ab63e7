package metrics

import (
	"github.com/san-kum/growvec/internal/dynarray"
	"github.com/san-kum/growvec/internal/scenario"
)

// Utilization is the mean of size/capacity over all steps. Steps on a
// zero-capacity array count as fully used.
type Utilization struct {
	name    string
	sum     float64
	samples int
}

func NewUtilization() *Utilization {
	return &Utilization{name: "utilization"}
}

func (u *Utilization) Name() string { return u.name }

func (u *Utilization) Observe(step scenario.Step, arr *dynarray.Array[int]) {
	if step.Capacity == 0 {
		u.sum += 1
	} else {
		u.sum += float64(step.Size) / float64(step.Capacity)
	}
	u.samples++
}

func (u *Utilization) Value() float64 {
	if u.samples == 0 {
		return 0
	}
	return u.sum / float64(u.samples)
}

func (u *Utilization) Reset() {
	u.sum = 0
	u.samples = 0
}

// FailureRate is the fraction of steps whose operation returned an error.
type FailureRate struct {
	name     string
	failures int
	samples  int
}

func NewFailureRate() *FailureRate {
	return &FailureRate{name: "failure_rate"}
}

func (f *FailureRate) Name() string { return f.name }

func (f *FailureRate) Observe(step scenario.Step, arr *dynarray.Array[int]) {
	f.samples++
	if step.Failed() {
		f.failures++
	}
}

func (f *FailureRate) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.failures) / float64(f.samples)
}

func (f *FailureRate) Reset() {
	f.failures = 0
	f.samples = 0
}

// Default returns one of each metric.
func Default() []scenario.Metric {
	return []scenario.Metric{
		NewGrowths(),
		NewShrinks(),
		NewPeakCapacity(),
		NewUtilization(),
		NewFailureRate(),
	}
}
