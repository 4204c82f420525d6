// Package bigquery implements the export.TableClient interface
// on top of the Google BigQuery service.
package bigquery

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/keboola/go-utils/pkg/orderedmap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/pkg/export"
)

// Config of the BigQuery client.
type Config struct {
	// Project is the Google Cloud project ID.
	Project string `json:"project" validate:"required"`
	// CredentialsFile is a path to a service account key,
	// the application default credentials are used if empty.
	CredentialsFile string `json:"credentialsFile"`
}

// Client implements the export.TableClient interface.
type Client struct {
	client *bigquery.Client
}

// NewClient creates a BigQuery backed table client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.Project, opts...)
	if err != nil {
		return nil, errors.PrefixErrorf(err, `cannot create BigQuery client for the project "%s"`, cfg.Project)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) TableSchema(ctx context.Context, tableID string) ([]string, error) {
	dataset, table, err := splitTableID(tableID)
	if err != nil {
		return nil, err
	}

	meta, err := c.client.Dataset(dataset).Table(table).Metadata(ctx)
	if err != nil {
		return nil, wrapTransient(errors.PrefixErrorf(err, `cannot load metadata of the table "%s"`, tableID))
	}

	columns := make([]string, 0, len(meta.Schema))
	for _, field := range meta.Schema {
		columns = append(columns, field.Name)
	}
	return columns, nil
}

func (c *Client) InsertRows(ctx context.Context, tableID string, rows []*orderedmap.OrderedMap) ([]export.InsertError, error) {
	dataset, table, err := splitTableID(tableID)
	if err != nil {
		return nil, err
	}

	savers := make([]*rowSaver, 0, len(rows))
	for _, row := range rows {
		savers = append(savers, &rowSaver{row: row})
	}

	err = c.client.Dataset(dataset).Table(table).Inserter().Put(ctx, savers)
	if err == nil {
		return nil, nil
	}

	// Per-row rejections, the call itself succeeded
	var multiErr bigquery.PutMultiError
	if errors.As(err, &multiErr) {
		out := make([]export.InsertError, 0, len(multiErr))
		for _, rowErr := range multiErr {
			messages := make([]string, 0, len(rowErr.Errors))
			for _, e := range rowErr.Errors {
				messages = append(messages, e.Error())
			}
			out = append(out, export.InsertError{Row: int(rowErr.RowIndex), Messages: messages})
		}
		return out, nil
	}

	return nil, wrapTransient(errors.PrefixErrorf(err, `cannot insert rows into the table "%s"`, tableID))
}

func (c *Client) TableHasData(ctx context.Context, tableID string, pullDateField string, pullDate *time.Time) (bool, error) {
	dataset, table, err := splitTableID(tableID)
	if err != nil {
		return false, err
	}

	sql := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM `%s.%s`", dataset, table)
	var params []bigquery.QueryParameter
	if pullDateField != "" && pullDate != nil {
		sql += fmt.Sprintf(" WHERE `%s` = @pullDate", pullDateField)
		params = append(params, bigquery.QueryParameter{Name: "pullDate", Value: export.FormatTime(*pullDate)})
	}
	sql += ")"

	query := c.client.Query(sql)
	query.Parameters = params

	it, err := query.Read(ctx)
	if err != nil {
		return false, wrapTransient(errors.PrefixErrorf(err, `cannot probe the table "%s"`, tableID))
	}

	var row []bigquery.Value
	if err := it.Next(&row); err != nil && err != iterator.Done {
		return false, wrapTransient(errors.PrefixErrorf(err, `cannot probe the table "%s"`, tableID))
	}

	return len(row) == 1 && row[0] == true, nil
}

// splitTableID splits the "dataset.table" identifier.
func splitTableID(tableID string) (dataset string, table string, err error) {
	parts := strings.Split(tableID, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf(`unexpected format of the table ID "%s", expected "dataset.table"`, tableID)
	}
	return parts[0], parts[1], nil
}

// wrapTransient marks retryable service failures, see export.NewTransportError.
// Rate limits, server side failures and network failures are considered transient.
func wrapTransient(err error) error {
	if isTransient(err) {
		return export.NewTransportError(err)
	}
	return err
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
