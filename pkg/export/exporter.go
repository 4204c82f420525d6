package export

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"github.com/keboola/go-utils/pkg/orderedmap"
	"go.opentelemetry.io/otel/attribute"

	"github.com/etlkit/bigquery-exporter/internal/pkg/ctxattr"
	"github.com/etlkit/bigquery-exporter/internal/pkg/log"
	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

type Dependencies interface {
	Clock() clockwork.Clock
	Logger() log.Logger
	TableClient() TableClient
}

// Exporter exports records described by the Definition.
// Each Export call is self-contained, the Exporter itself holds no mutable state.
type Exporter struct {
	def        Definition
	client     TableClient
	clock      clockwork.Clock
	logger     log.Logger
	newBackoff func() *backoff.ExponentialBackOff
}

// Option modifies one Export call.
type Option func(*exportOptions)

type exportOptions struct {
	pullDate       *time.Time
	queryset       Queryset
	skipIfExported bool
}

// WithPullDate sets the pull date of the run, the default is the current time.
func WithPullDate(v time.Time) Option {
	return func(o *exportOptions) {
		o.pullDate = &v
	}
}

// WithQueryset overrides the configured source for one Export call.
func WithQueryset(qs Queryset) Option {
	return func(o *exportOptions) {
		o.queryset = qs
	}
}

// WithSkipIfExported skips the export if the destination table already has data,
// scoped to the pull date if tracking is enabled. See Exporter.TableHasData.
func WithSkipIfExported() Option {
	return func(o *exportOptions) {
		o.skipIfExported = true
	}
}

// New validates the definition and creates an Exporter.
// An invalid definition is reported as a ConfigurationError, before any network I/O.
func New(d Dependencies, def Definition) (*Exporter, error) {
	def = def.withDefaults()
	if err := def.validate(context.Background()); err != nil {
		return nil, ConfigurationError{err: errors.PrefixError(err, "invalid export definition")}
	}

	return &Exporter{
		def:        def,
		client:     d.TableClient(),
		clock:      d.Clock(),
		logger:     d.Logger().WithComponent("export"),
		newBackoff: newRetryBackoff,
	}, nil
}

// Definition returns a copy of the validated definition.
func (e *Exporter) Definition() Definition {
	return e.def
}

// Export runs the export: the declared fields are validated against the table
// schema, then the queryset is read and inserted batch by batch, in the
// queryset order.
//
// Rows rejected by the destination do not stop the run, they are collected
// and returned as RowError items, so the caller must inspect the returned
// slice even when the error is nil. The run is aborted only by a failed
// schema validation, by a failed record transformation, or by a transport
// failure that exhausted its retries; the row errors collected before the
// abort are returned together with the error.
func (e *Exporter) Export(ctx context.Context, opts ...Option) ([]RowError, error) {
	o := exportOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	pullDate := e.clock.Now()
	if o.pullDate != nil {
		pullDate = *o.pullDate
	}

	qs := e.def.Source
	if o.queryset != nil {
		qs = o.queryset
	}

	ctx = ctxattr.ContextWith(ctx, attribute.String("table", e.def.TableID))

	// Pre-flight idempotency check
	if o.skipIfExported {
		hasData, err := e.TableHasData(ctx, &pullDate)
		if err != nil {
			return nil, err
		}
		if hasData {
			e.logger.Info(ctx, "Export skipped, the table already has data.")
			return nil, nil
		}
	}

	// Fail fast on a schema mismatch, before any row is read or inserted
	if err := e.validateSchema(ctx); err != nil {
		return nil, err
	}

	start := e.clock.Now()
	exported := 0
	batchIndex := 0
	var rowErrs []RowError
	for b, err := range batches(ctx, qs, e.def.BatchSize) {
		if err != nil {
			return rowErrs, errors.PrefixError(err, "cannot read source records")
		}

		e.logger.Infof(ctx, "Processing records %d - %d of %d.", b.Start, b.End, b.Total)

		rows := make([]*orderedmap.OrderedMap, 0, len(b.Records))
		for i, r := range b.Records {
			row, err := e.transformRecord(ctx, r, pullDate)
			if err != nil {
				return rowErrs, errors.PrefixErrorf(err, "cannot transform record %d", b.Start+i)
			}
			rows = append(rows, row)
		}

		errs, err := e.loadBatch(ctx, batchIndex, b, rows)
		if err != nil {
			return rowErrs, errors.PrefixErrorf(err, "cannot insert batch %d", batchIndex)
		}

		rowErrs = append(rowErrs, errs...)
		exported += len(rows) - len(errs)
		batchIndex++
	}

	e.logger.
		WithDuration(e.clock.Since(start)).
		Infof(ctx, "Exported %d records, %d rejected.", exported, len(rowErrs))

	return rowErrs, nil
}

// TableHasData returns true if the destination table contains at least one row.
// If pull date tracking is enabled and a pull date is given, the probe is
// scoped to rows with that pull date. The probe never mutates state, so it is
// safe to call before deciding whether to run an export.
func (e *Exporter) TableHasData(ctx context.Context, pullDate *time.Time) (bool, error) {
	field := ""
	if e.def.IncludePullDate && pullDate != nil {
		field = e.def.PullDateField
	} else {
		pullDate = nil
	}
	return e.client.TableHasData(ctx, e.def.TableID, field, pullDate)
}
