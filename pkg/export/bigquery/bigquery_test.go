package bigquery

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/pkg/export"
)

func TestSplitTableID(t *testing.T) {
	t.Parallel()

	dataset, table, err := splitTableID("dataset.events")
	require.NoError(t, err)
	assert.Equal(t, "dataset", dataset)
	assert.Equal(t, "events", table)

	_, _, err = splitTableID("events")
	require.Error(t, err)
	assert.Equal(t, `unexpected format of the table ID "events", expected "dataset.table"`, err.Error())

	_, _, err = splitTableID("dataset.")
	require.Error(t, err)

	_, _, err = splitTableID("project.dataset.events")
	require.Error(t, err)
}

func TestWrapTransient(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "rate limit", err: &googleapi.Error{Code: 429}, transient: true},
		{name: "server error", err: &googleapi.Error{Code: 503}, transient: true},
		{name: "not found", err: &googleapi.Error{Code: 404}, transient: false},
		{name: "bad request", err: &googleapi.Error{Code: 400}, transient: false},
		{name: "other", err: errors.New("some error"), transient: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := wrapTransient(errors.PrefixError(tc.err, "operation failed"))
			assert.Equal(t, tc.transient, export.IsTransport(err))
		})
	}
}

func TestRowSaver(t *testing.T) {
	t.Parallel()

	row := orderedmap.New()
	row.Set("id", 123)
	row.Set("name", "item")
	row.Set("pull_date", "2024-05-01 12:30:45")

	values, insertID, err := (&rowSaver{row: row}).Save()
	require.NoError(t, err)
	assert.Empty(t, insertID)
	assert.Equal(t, map[string]bigquery.Value{
		"id":        123,
		"name":      "item",
		"pull_date": "2024-05-01 12:30:45",
	}, values)
}
