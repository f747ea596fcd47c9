package projection

// Record is one flat row: column name to scalar value
type Record map[string]interface{}

// Table is an ordered set of columns shared by all of its records
type Table struct {
	Columns []string
	Records []Record
}

// NewTable creates an empty table with the given columns
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Records: []Record{},
	}
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether a column is declared
func (t *Table) HasColumn(name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// Column returns the values of one column, in record order
func (t *Table) Column(name string) []interface{} {
	values := make([]interface{}, 0, len(t.Records))
	for _, record := range t.Records {
		values = append(values, record[name])
	}
	return values
}

// Row returns the values of one record in column order
func (t *Table) Row(i int) []interface{} {
	record := t.Records[i]
	values := make([]interface{}, 0, len(t.Columns))
	for _, column := range t.Columns {
		values = append(values, record[column])
	}
	return values
}

// Append adds a record, filling undeclared columns with nil and dropping unknown keys
func (t *Table) Append(record Record) {
	row := make(Record, len(t.Columns))
	for _, column := range t.Columns {
		row[column] = record[column]
	}
	t.Records = append(t.Records, row)
}

// Clone returns a copy whose records can be modified independently
func (t *Table) Clone() *Table {
	clone := NewTable(t.Columns)
	clone.Records = make([]Record, 0, len(t.Records))
	for _, record := range t.Records {
		row := make(Record, len(record))
		for k, v := range record {
			row[k] = v
		}
		clone.Records = append(clone.Records, row)
	}
	return clone
}
