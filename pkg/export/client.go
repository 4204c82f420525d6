package export

import (
	"context"
	"time"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// TableClient provides access to the destination table.
// Implementations live outside of this package, see the bigquery sub-package.
type TableClient interface {
	// TableSchema returns names of the destination table columns.
	TableSchema(ctx context.Context, tableID string) ([]string, error)
	// InsertRows inserts the rows in one bulk call.
	// Rejected rows are reported as InsertError items, rows not listed are committed,
	// so a partial success is possible. A transient failure of the whole call
	// must be wrapped by NewTransportError, such failures are retried.
	InsertRows(ctx context.Context, tableID string, rows []*orderedmap.OrderedMap) ([]InsertError, error)
	// TableHasData returns true if the table contains at least one row.
	// If pullDate is set, only rows with the pull date value are probed.
	// The call never mutates state.
	TableHasData(ctx context.Context, tableID string, pullDateField string, pullDate *time.Time) (bool, error)
}

// InsertError is one row rejected by a bulk insert call.
type InsertError struct {
	// Row is the position of the row within the insert call, starting from zero.
	Row int
	// Messages are the error details reported by the destination.
	Messages []string
}
