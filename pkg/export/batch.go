package export

import (
	"context"
	"iter"
)

// Batch is one bounded slice of the queryset.
type Batch struct {
	// Start is the offset of the first record, End the offset after the last one.
	Start int
	End   int
	// Total is the size of the whole queryset.
	Total int
	// Records are the batch records, in the queryset order.
	Records []Record
}

// batches slices the queryset into batches of at most size records, in the queryset order.
// Each batch is materialized only when consumed, so the peak memory usage
// is bounded by one batch. A non-positive size disables batching.
func batches(ctx context.Context, qs Queryset, size int) iter.Seq2[Batch, error] {
	return func(yield func(Batch, error) bool) {
		total, err := qs.Count(ctx)
		if err != nil {
			yield(Batch{}, err)
			return
		}

		if size <= 0 {
			size = total
		}

		for start := 0; start < total; start += size {
			end := min(start+size, total)
			records, err := qs.Slice(ctx, start, end)
			if err != nil {
				yield(Batch{}, err)
				return
			}
			if !yield(Batch{Start: start, End: end, Total: total, Records: records}, nil) {
				return
			}
		}
	}
}
