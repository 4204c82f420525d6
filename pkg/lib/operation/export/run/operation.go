// Package run provides the export run operation, it is shared by the CLI
// and by programmatic users of the library.
package run

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/etlkit/bigquery-exporter/internal/pkg/log"
	"github.com/etlkit/bigquery-exporter/pkg/export"
)

type Options struct {
	Definition     export.Definition
	PullDate       *time.Time
	SkipIfExported bool
}

type dependencies interface {
	Clock() clockwork.Clock
	Logger() log.Logger
	TableClient() export.TableClient
}

// Run executes one export and logs rejected rows.
// Rejected rows are returned to the caller and do not cause an error,
// see export.Exporter.Export for the abort conditions.
func Run(ctx context.Context, o Options, d dependencies) ([]export.RowError, error) {
	exporter, err := export.New(d, o.Definition)
	if err != nil {
		return nil, err
	}

	var opts []export.Option
	if o.PullDate != nil {
		opts = append(opts, export.WithPullDate(*o.PullDate))
	}
	if o.SkipIfExported {
		opts = append(opts, export.WithSkipIfExported())
	}

	rowErrs, err := exporter.Export(ctx, opts...)
	for _, rowErr := range rowErrs {
		d.Logger().Warnf(ctx, "Rejected %s", rowErr.Error())
	}
	return rowErrs, err
}
