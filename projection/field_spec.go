package projection

// Field maps one output column to its source inside an Item
type Field struct {
	Name   string
	Source Source
}

// FieldSpec is an ordered list of output columns
type FieldSpec []Field

// Columns returns the output column names in order
func (s FieldSpec) Columns() []string {
	columns := make([]string, 0, len(s))
	for _, field := range s {
		columns = append(columns, field.Name)
	}
	return columns
}

// F is a shorthand for building a Field
func F(name string, source Source) Field {
	return Field{Name: name, Source: source}
}
