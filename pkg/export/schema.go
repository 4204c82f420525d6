package export

import (
	"context"
)

// validateSchema checks that every declared field, and the pull date field
// if tracking is enabled, exists in the destination table.
// Only column names are checked, type mismatches are reported by the
// destination as row errors during the insert.
func (e *Exporter) validateSchema(ctx context.Context) error {
	columns, err := e.client.TableSchema(ctx, e.def.TableID)
	if err != nil {
		return err
	}

	existing := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		existing[column] = struct{}{}
	}

	declared := e.def.Fields
	if e.def.IncludePullDate {
		declared = append(declared[:len(declared):len(declared)], e.def.PullDateField)
	}

	var missing []string
	for _, field := range declared {
		if _, found := existing[field]; !found {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return newSchemaMismatchError(e.def.TableID, missing)
	}
	return nil
}
