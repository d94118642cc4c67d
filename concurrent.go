package rbez

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// EvaluateConcurrent is like [Evaluate] but splits ts into chunks that are
// evaluated by multiple goroutines. It is useful for large numbers of samples,
// such as when rendering a curve smoothly. The result is identical to that of
// Evaluate.
//
// The curve and ts are only read. Each goroutine writes to its own portion of
// the freshly allocated result. If ctx is canceled, no further chunks are
// started and ctx's error is returned.
func EvaluateConcurrent(ctx context.Context, ts []float64, c Curve, opts ...Option) ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, reject("evaluate", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Point, len(ts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	chunks := 0
	for lo := 0; lo < len(ts); lo += o.chunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+o.chunkSize, len(ts))
		chunks++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pts, _ := casteljau(ts[lo:hi], c, option[int]{})
			copy(out[lo:hi], pts)
			return nil
		})
	}
	Logger().Debug("concurrent evaluation",
		"samples", len(ts),
		"degree", c.Degree(),
		"chunks", chunks,
		"workers", o.workers)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
