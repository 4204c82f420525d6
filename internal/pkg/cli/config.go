package cli

import (
	"context"
	"os"

	"github.com/etlkit/bigquery-exporter/internal/pkg/encoding/json"
	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/internal/pkg/validator"
	"github.com/etlkit/bigquery-exporter/pkg/export"
	"github.com/etlkit/bigquery-exporter/pkg/export/bigquery"
)

// Config of one export run, loaded from a JSON file.
type Config struct {
	// Table is the destination table ID, in the "dataset.table" format.
	Table string `json:"table" validate:"required"`
	// Fields are the exported field names, in the destination row order.
	Fields []string `json:"fields" validate:"required,min=1,dive,required"`
	// BatchSize limits how many rows are inserted in one call, -1 disables batching.
	BatchSize int `json:"batchSize" validate:"gte=-1"`
	// ReplaceNullsWithEmpty replaces a null value with an empty string.
	ReplaceNullsWithEmpty bool `json:"replaceNullsWithEmpty"`
	// IncludePullDate appends the pull date to every exported row.
	IncludePullDate bool `json:"includePullDate"`
	// PullDateField is the destination column for the pull date.
	PullDateField string `json:"pullDateField"`
	// BigQuery is the destination service configuration.
	BigQuery bigquery.Config `json:"bigquery" validate:"required"`
	// Source is the relational source configuration.
	Source SourceConfig `json:"source" validate:"required"`
}

// SourceConfig describes the relational source of the export.
type SourceConfig struct {
	// Driver is a database/sql driver name, for example "sqlite".
	Driver string `json:"driver" validate:"required"`
	// DSN is the data source name, its format depends on the driver.
	DSN string `json:"dsn" validate:"required"`
	// Query is the base SELECT, without an ORDER BY or LIMIT clause.
	Query string `json:"query" validate:"required"`
	// OrderBy is the mandatory order clause of the query.
	OrderBy string `json:"orderBy" validate:"required"`
}

// LoadConfig reads and validates the config file.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.PrefixErrorf(err, `cannot read config file "%s"`, path)
	}

	cfg := Config{}
	if err := json.Decode(content, &cfg); err != nil {
		return Config{}, errors.PrefixErrorf(err, `cannot decode config file "%s"`, path)
	}

	if err := validator.New().Validate(ctx, cfg); err != nil {
		return Config{}, errors.PrefixErrorf(err, `invalid config file "%s"`, path)
	}
	return cfg, nil
}

// definition converts the config to the export definition, without the source,
// the source is attached by the run command after the database is opened.
func (c Config) definition() export.Definition {
	return export.Definition{
		TableID:               c.Table,
		Fields:                c.Fields,
		BatchSize:             c.BatchSize,
		ReplaceNullsWithEmpty: c.ReplaceNullsWithEmpty,
		IncludePullDate:       c.IncludePullDate,
		PullDateField:         c.PullDateField,
	}
}
