// Package fetch retrieves batches of modules from a ModuleSource with
// bounded parallelism while keeping results deterministically ordered.
package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/movekit/typeaccessor/pkg/move"
	"github.com/movekit/typeaccessor/source"
)

// Result pairs a module identifier with its fetched raw bytes.
type Result struct {
	ID   move.ModuleID
	Data []byte
}

// Batch fetches every identifier in ids from src, running at most
// concurrency fetches in parallel. ids must be free of duplicates; each
// identifier is written by exactly one goroutine. The first failure cancels
// the remaining fetches and is returned as-is.
//
// Results come back in the order of ids, so callers that pass a sorted
// batch observe the same deterministic sequence as a serial drain.
func Batch(ctx context.Context, src source.ModuleSource, ids []move.ModuleID, concurrency int) ([]Result, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	// Each goroutine owns exactly one slot, so no further synchronization
	// is needed beyond the errgroup join.
	results := make([]Result, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := src.FetchModule(gctx, id)
			if err != nil {
				return err
			}
			results[i] = Result{ID: id, Data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
