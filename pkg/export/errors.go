package export

import (
	"fmt"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

// ConfigurationError is an invalid export definition.
// It is detected before any network I/O, nothing has been exported.
type ConfigurationError struct {
	err error
}

func (e ConfigurationError) Error() string {
	return e.err.Error()
}

func (e ConfigurationError) Unwrap() error {
	return e.err
}

// SchemaMismatchError means that a declared field is missing in the destination table.
// It is detected before any row is inserted, nothing has been exported.
type SchemaMismatchError struct {
	TableID        string
	MissingColumns []string
	err            error
}

func newSchemaMismatchError(tableID string, missing []string) SchemaMismatchError {
	errs := errors.NewMultiError()
	for _, column := range missing {
		errs.Append(errors.Errorf(`column "%s" not found`, column))
	}
	err := errors.PrefixErrorf(errs.ErrorOrNil(), `declared fields do not match schema of the table "%s"`, tableID)
	return SchemaMismatchError{TableID: tableID, MissingColumns: missing, err: err}
}

func (e SchemaMismatchError) Error() string {
	return e.err.Error()
}

func (e SchemaMismatchError) Unwrap() error {
	return e.err
}

// TransportError marks a transient failure of the destination transport,
// for example a network error or a rate limit. The loader retries such failures.
type TransportError struct {
	err error
}

// NewTransportError wraps the error, it is intended for TableClient implementations.
func NewTransportError(err error) error {
	if err == nil {
		return nil
	}
	return TransportError{err: err}
}

func (e TransportError) Error() string {
	return e.err.Error()
}

func (e TransportError) Unwrap() error {
	return e.err
}

// IsTransport returns true if the error is a transient transport failure.
func IsTransport(err error) bool {
	var target TransportError
	return errors.As(err, &target)
}

// RowError describes one row rejected by the destination table.
// Row errors do not stop the export, they are collected and returned to the caller.
type RowError struct {
	// Batch is the index of the batch the row belonged to, starting from zero.
	Batch int `json:"batch"`
	// Row is the absolute position of the row in the queryset order, starting from zero.
	Row int `json:"row"`
	// Messages are the error details reported by the destination.
	Messages []string `json:"messages"`
	// Record is the rejected destination row.
	Record *orderedmap.OrderedMap `json:"record,omitempty"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d in batch %d: %s", e.Row, e.Batch, strings.Join(e.Messages, "; "))
}
