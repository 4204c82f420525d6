package bigquery

import (
	"cloud.google.com/go/bigquery"
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// rowSaver adapts an ordered destination row to the bigquery.ValueSaver interface.
// The insert ID is left empty, deduplication is handled by the pull date probe,
// see export.Exporter.TableHasData.
type rowSaver struct {
	row *orderedmap.OrderedMap
}

func (s *rowSaver) Save() (map[string]bigquery.Value, string, error) {
	out := make(map[string]bigquery.Value, s.row.Len())
	for _, key := range s.row.Keys() {
		value, _ := s.row.Get(key)
		out[key] = value
	}
	return out, "", nil
}
