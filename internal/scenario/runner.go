// Package scenario drives a dynarray.Array[int] through a configured list of
// operations and records the array's size and capacity after each one.
package scenario

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/san-kum/growvec/internal/config"
	"github.com/san-kum/growvec/internal/dynarray"
)

type Runner struct {
	logger    *zap.Logger
	metrics   []Metric
	observers []Observer
}

func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger:    logger,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Build constructs the array described by cfg.
func Build(cfg *config.Config) (*dynarray.Array[int], error) {
	switch cfg.Constructor {
	case config.ConstructorDefault, "":
		return dynarray.New[int](), nil
	case config.ConstructorCapacity:
		arr, err := dynarray.NewWithCapacity[int](cfg.Capacity)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", cfg.Name, err)
		}
		return arr, nil
	case config.ConstructorSequence:
		return dynarray.FromSlice(cfg.Initial), nil
	default:
		return nil, fmt.Errorf("scenario %s: unknown constructor: %q", cfg.Name, cfg.Constructor)
	}
}

// Start validates cfg, builds the array and returns a session positioned
// before the first step.
func (r *Runner) Start(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", cfg.Name, err)
	}
	arr, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("scenario started",
		zap.String("name", cfg.Name),
		zap.String("constructor", cfg.Constructor),
		zap.Object("array", arr))

	return &Session{
		runner:      r,
		name:        cfg.Name,
		stopOnError: cfg.StopOnError,
		arr:         arr,
		ops:         expand(cfg.Ops),
	}, nil
}

// Run executes every step of cfg, checking ctx between steps.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	s, err := r.Start(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:        cfg.Name,
		Constructor: cfg.Constructor,
		Steps:       make([]Step, 0, len(s.ops)),
		Final:       s.arr,
		Metrics:     make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for !s.Done() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		step, _ := s.Next()
		result.Steps = append(result.Steps, step)
		if step.Failed() {
			result.Errors++
		}
		for _, m := range r.metrics {
			m.Observe(step, s.arr)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	r.logger.Info("scenario finished",
		zap.String("name", cfg.Name),
		zap.Int("steps", len(result.Steps)),
		zap.Int("errors", result.Errors),
		zap.Object("array", result.Final))

	return result, nil
}

// expand flattens values and repeats into one op per step.
func expand(ops []config.OpConfig) []config.OpConfig {
	out := make([]config.OpConfig, 0, len(ops))
	for _, op := range ops {
		times := op.Repeat
		if times == 0 {
			times = 1
		}
		for n := 0; n < times; n++ {
			if op.Op == config.OpAppend && len(op.Values) > 0 {
				for _, v := range op.Values {
					out = append(out, config.OpConfig{Op: config.OpAppend, Value: v})
				}
				continue
			}
			out = append(out, op)
		}
	}
	return out
}

func formatArg(op config.OpConfig) string {
	switch op.Op {
	case config.OpAppend, config.OpContains, config.OpIndexOf:
		return strconv.Itoa(op.Value)
	case config.OpInsert, config.OpSet:
		return fmt.Sprintf("%d %d", op.Index, op.Value)
	case config.OpGet, config.OpRemove:
		return strconv.Itoa(op.Index)
	case config.OpAppendAll:
		return fmt.Sprint(op.Values)
	case config.OpInsertAll:
		return fmt.Sprintf("%d %v", op.Index, op.Values)
	default:
		return ""
	}
}
