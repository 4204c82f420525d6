package run

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etlkit/bigquery-exporter/internal/pkg/log"
	"github.com/etlkit/bigquery-exporter/pkg/export"
)

type testDeps struct {
	logger log.DebugLogger
	client *testClient
}

func (d *testDeps) Clock() clockwork.Clock          { return clockwork.NewRealClock() }
func (d *testDeps) Logger() log.Logger              { return d.logger }
func (d *testDeps) TableClient() export.TableClient { return d.client }

type testClient struct {
	lock        sync.Mutex
	schema      []string
	rejectFirst bool
	inserted    int
}

func (c *testClient) TableSchema(_ context.Context, _ string) ([]string, error) {
	return c.schema, nil
}

func (c *testClient) InsertRows(_ context.Context, _ string, rows []*orderedmap.OrderedMap) ([]export.InsertError, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.inserted += len(rows)
	if c.rejectFirst {
		c.rejectFirst = false
		return []export.InsertError{{Row: 0, Messages: []string{"invalid value"}}}, nil
	}
	return nil, nil
}

func (c *testClient) TableHasData(_ context.Context, _ string, _ string, _ *time.Time) (bool, error) {
	return false, nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	d := &testDeps{
		logger: log.NewDebugLogger(),
		client: &testClient{schema: []string{"id", "pull_date"}, rejectFirst: true},
	}

	pullDate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rowErrs, err := Run(context.Background(), Options{
		Definition: export.Definition{
			Source:          export.SliceQueryset{export.MapRecord{"id": 1}, export.MapRecord{"id": 2}},
			TableID:         "dataset.events",
			Fields:          []string{"id"},
			IncludePullDate: true,
		},
		PullDate: &pullDate,
	}, d)
	require.NoError(t, err)

	assert.Equal(t, 2, d.client.inserted)
	require.Len(t, rowErrs, 1)
	assert.Contains(t, d.logger.WarnMessages(), "Rejected row 0 in batch 0: invalid value")
}

func TestRun_InvalidDefinition(t *testing.T) {
	t.Parallel()

	d := &testDeps{logger: log.NewDebugLogger(), client: &testClient{}}

	_, err := Run(context.Background(), Options{Definition: export.Definition{}}, d)
	require.Error(t, err)

	var confErr export.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
