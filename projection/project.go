package projection

import (
	"github.com/tidwall/gjson"
)

// Project flattens every item of a response body through a field spec
func Project(body []byte, spec FieldSpec) (*Table, error) {
	envelope, err := ParseEnvelope(body)
	if err != nil {
		return nil, err
	}
	return ProjectEnvelope(envelope, spec)
}

// ProjectEnvelope flattens every item of an already parsed envelope
func ProjectEnvelope(envelope *Envelope, spec FieldSpec) (*Table, error) {
	items, err := envelope.Items()
	if err != nil {
		return nil, err
	}
	return ProjectItems(items, spec), nil
}

// ProjectItems produces one record per item with exactly the field spec's columns.
// Zero items yield an empty table that still declares the columns.
func ProjectItems(items []gjson.Result, spec FieldSpec) *Table {
	table := NewTable(spec.Columns())
	table.Records = make([]Record, 0, len(items))

	for _, item := range items {
		record := make(Record, len(spec))
		for _, field := range spec {
			record[field.Name] = field.Source.Resolve(item)
		}
		table.Records = append(table.Records, record)
	}

	return table
}
