// Package sqlsource implements the export.Queryset interface
// on top of a database/sql database.
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ccoveille/go-safecast"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/pkg/export"
)

// Queryset reads records from a SQL query.
//
// The query must not contain an ORDER BY or LIMIT clause, both are appended
// by the Queryset. The order clause is mandatory, without a deterministic
// order the offset pagination could skip or repeat records.
type Queryset struct {
	db      *sql.DB
	query   string
	orderBy string
}

// New creates a Queryset from the base query and the mandatory order clause,
// for example New(db, "SELECT id, name FROM events WHERE active = 1", "id").
func New(db *sql.DB, query string, orderBy string) (*Queryset, error) {
	if orderBy == "" {
		return nil, errors.New("order clause must be set, offset pagination requires a deterministic order")
	}
	return &Queryset{db: db, query: query, orderBy: orderBy}, nil
}

func (q *Queryset) Count(ctx context.Context) (int, error) {
	var count int64
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM (%s) AS records", q.query)
	if err := q.db.QueryRowContext(ctx, stmt).Scan(&count); err != nil {
		return 0, errors.PrefixError(err, "cannot count source records")
	}
	return safecast.ToInt(count)
}

func (q *Queryset) Slice(ctx context.Context, start int, end int) ([]export.Record, error) {
	stmt := fmt.Sprintf("%s ORDER BY %s LIMIT %d OFFSET %d", q.query, q.orderBy, end-start, start)
	rows, err := q.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, errors.PrefixError(err, "cannot read source records")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []export.Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.PrefixError(err, "cannot scan source record")
		}

		record := make(export.MapRecord, len(columns))
		for i, column := range columns {
			record[column] = values[i]
		}
		out = append(out, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.PrefixError(err, "cannot read source records")
	}
	return out, nil
}
