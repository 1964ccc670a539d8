package bench

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/search"
)

// minChunk is the smallest number of queries handed to one verify task.
const minChunk = 1024

// Verify checks, for every query in ds, that Index, Range, Value, Ref and
// Table.Index resolve to the same position.
//
// The queries are split into chunks checked concurrently by at most workers
// goroutines. The first disagreement cancels the remaining chunks.
//
// Returns a wrapped errs.ErrDisagreement naming the query and the positions,
// or the context error.
func Verify[T constraints.Unsigned](ctx context.Context, ds *Dataset[T], workers int) error {
	if workers < 1 {
		workers = 1
	}

	queries := ds.Queries
	chunk := max(minChunk, (len(queries)+workers-1)/workers)

	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx).WithCancelOnError()
	for lo := 0; lo < len(queries); lo += chunk {
		part := queries[lo:min(lo+chunk, len(queries))]
		p.Go(func(ctx context.Context) error {
			return verifyChunk(ctx, ds, part)
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Int("queries", len(queries)).Int("workers", workers).Msg("verified")

	return nil
}

func verifyChunk[T constraints.Unsigned](ctx context.Context, ds *Dataset[T], queries []T) error {
	buf := ds.Table.Layout()
	begin, end := ds.Table.Begin(), ds.Table.End()

	for i, q := range queries {
		if i%minChunk == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		pos := search.Index(buf, len(buf), q)

		if got := search.Range(begin, end, q).Offset(); got != pos {
			return disagreement("Range", q, pos, got)
		}
		if got := ds.Table.Index(q); got != pos {
			return disagreement("Table.Index", q, pos, got)
		}
		if got := search.Value(buf, q); got != buf[pos] {
			return fmt.Errorf("%w: Value for query %d returned %d, want %d", errs.ErrDisagreement, q, got, buf[pos])
		}
		if got := search.Ref(buf, q); got != &buf[pos] {
			return fmt.Errorf("%w: Ref for query %d does not point at position %d", errs.ErrDisagreement, q, pos)
		}
	}

	return nil
}

func disagreement[T constraints.Unsigned](entry string, q T, want, got int) error {
	return fmt.Errorf("%w: %s for query %d returned position %d, Index returned %d",
		errs.ErrDisagreement, entry, q, got, want)
}
