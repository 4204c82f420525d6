package export

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// newRetryBackoff returns the default backoff for the insert retry.
func newRetryBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.RandomizationFactor = 0.2
	b.InitialInterval = 250 * time.Millisecond
	b.Multiplier = 4
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	b.Reset()
	return b
}

// loadBatch sends one batch of rows to the destination table.
// Transient transport failures are retried with a bounded backoff,
// other failures and exhausted retries are returned as an error.
// Rejected rows are returned as RowError items, rows not listed are committed,
// successfully inserted rows are not rolled back when others fail.
func (e *Exporter) loadBatch(ctx context.Context, batchIndex int, b Batch, rows []*orderedmap.OrderedMap) ([]RowError, error) {
	retry := e.newBackoff()
	var lastErr error
	for {
		insertErrs, err := e.client.InsertRows(ctx, e.def.TableID, rows)
		if err == nil {
			return e.rowErrors(batchIndex, b.Start, rows, insertErrs), nil
		}

		if !IsTransport(err) {
			return nil, err
		}
		lastErr = err

		delay := retry.NextBackOff()
		if delay == backoff.Stop {
			return nil, lastErr
		}

		e.logger.Warnf(ctx, `insert into "%s" failed, next attempt in %s: %s`, e.def.TableID, delay, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-e.clock.After(delay):
		}
	}
}

// rowErrors converts insert errors to row errors with absolute row positions.
// The relative order of the rows is preserved.
func (e *Exporter) rowErrors(batchIndex int, offset int, rows []*orderedmap.OrderedMap, insertErrs []InsertError) []RowError {
	if len(insertErrs) == 0 {
		return nil
	}

	out := make([]RowError, 0, len(insertErrs))
	for _, insertErr := range insertErrs {
		rowErr := RowError{
			Batch:    batchIndex,
			Row:      offset + insertErr.Row,
			Messages: insertErr.Messages,
		}
		if insertErr.Row >= 0 && insertErr.Row < len(rows) {
			rowErr.Record = rows[insertErr.Row]
		}
		out = append(out, rowErr)
	}
	return out
}
