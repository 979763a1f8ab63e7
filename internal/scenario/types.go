package scenario

import "github.com/san-kum/growvec/internal/dynarray"

// Step records one executed operation and the array shape after it.
type Step struct {
	Index    int
	Op       string
	Arg      string
	Size     int
	Capacity int
	Delta    int // capacity change caused by this step
	Output   string
	Err      string
}

// Failed reports whether the operation returned an error.
func (s Step) Failed() bool { return s.Err != "" }

// Observer is notified after every step.
type Observer interface {
	OnStep(step Step, arr *dynarray.Array[int])
}

// Metric accumulates a single number over the steps of a run.
type Metric interface {
	Name() string
	Observe(step Step, arr *dynarray.Array[int])
	Value() float64
	Reset()
}

// Result is the outcome of a complete run.
type Result struct {
	Name        string
	Constructor string
	Steps       []Step
	Final       *dynarray.Array[int]
	Errors      int
	Metrics     map[string]float64
}
