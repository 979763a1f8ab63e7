// Package sweep runs one scenario across a range of initial capacities so
// the growth policy can be compared at each starting point.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/growvec/internal/config"
	"github.com/san-kum/growvec/internal/dynarray"
	"github.com/san-kum/growvec/internal/metrics"
	"github.com/san-kum/growvec/internal/scenario"
)

// Point is the outcome of the scenario for one initial capacity.
type Point struct {
	Capacity      int
	Steps         int
	Errors        int
	FinalSize     int
	FinalCapacity int
	Metrics       map[string]float64
}

// RunSweep runs cfg once per initial capacity in [from, to], each with its
// own runner and the default metrics. The constructor is always replaced
// with the capacity constructor, so initial elements of a sequence scenario
// are dropped. Points are returned in capacity order.
func RunSweep(ctx context.Context, logger *zap.Logger, cfg *config.Config, from, to int) ([]Point, error) {
	if from < 0 || from > to {
		return nil, fmt.Errorf("%w: capacity range [%d, %d]", dynarray.ErrInvalidArgument, from, to)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	points := make([]Point, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range points {
		capacity := from + i
		g.Go(func() error {
			run := cfg.Clone()
			run.Constructor = config.ConstructorCapacity
			run.Capacity = capacity
			run.Initial = nil

			runner := scenario.New(logger.With(zap.Int("initial_capacity", capacity)))
			for _, m := range metrics.Default() {
				runner.AddMetric(m)
			}

			result, err := runner.Run(gctx, run)
			if err != nil {
				return fmt.Errorf("capacity %d: %w", capacity, err)
			}

			points[i] = Point{
				Capacity:      capacity,
				Steps:         len(result.Steps),
				Errors:        result.Errors,
				FinalSize:     result.Final.Len(),
				FinalCapacity: result.Final.Cap(),
				Metrics:       result.Metrics,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("sweep finished",
		zap.String("name", cfg.Name),
		zap.Int("from", from),
		zap.Int("to", to))
	return points, nil
}
