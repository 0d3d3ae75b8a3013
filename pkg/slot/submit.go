package slot

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SubmitFunc sends one block to the turfics API.
type SubmitFunc[R any] func(ctx context.Context, b Block) (R, error)

// SubmitAll issues one request per block concurrently. It succeeds only when
// every request succeeds; results keep the order of blocks. Already accepted
// requests are not rolled back when a sibling fails.
func SubmitAll[R any](ctx context.Context, blocks []Block, fn SubmitFunc[R]) ([]R, error) {
	results := make([]R, len(blocks))

	g, gctx := errgroup.WithContext(ctx)

	for i, b := range blocks {
		g.Go(func() error {
			r, err := fn(gctx, b)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
