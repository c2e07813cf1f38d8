package algorithms

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Summary is the outcome of building one algorithm's default trace.
type Summary struct {
	Name   string
	Frames int
	Err    error
}

// Survey builds the default trace of every registered algorithm
// concurrently, in Names order. Producer failures are reported per
// algorithm; only a done ctx fails the whole survey.
func (r *Registry) Survey(ctx context.Context) ([]Summary, error) {
	names := r.Names()
	out := make([]Summary, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		a := r.algorithms[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := Summary{Name: name}
			tr, err := a.Build(a.Default)
			if err != nil {
				s.Err = err
			} else {
				s.Frames = tr.Len()
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
