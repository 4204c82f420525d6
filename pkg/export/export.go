// Package export provides batch export of records from a relational source
// to a destination analytics table.
//
// An export is described by a Definition: the destination table, the ordered
// list of exported fields, the batch size and optional per-field transforms.
// The Exporter validates the declared fields against the destination table
// schema, reads the source in batches, converts each record to a destination
// row and inserts the rows with a bounded retry of transient failures.
package export
