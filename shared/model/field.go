package model

// Field is one column assignment in an insert or update.
// A raw field carries a SQL expression that is written verbatim instead of being bound;
// only RawField can build one.
type Field struct {
	Name  string
	Value any
	expr  string
	raw   bool
}

func NewField(name string, value any) Field {
	return Field{Name: name, Value: value}
}

func RawField(name, expression string) Field {
	return Field{Name: name, expr: expression, raw: true}
}

func (f Field) IsRaw() bool {
	return f.raw
}

// Expression is the verbatim SQL of a raw field.
func (f Field) Expression() string {
	return f.expr
}

// SetField replaces the field with the same name, or appends it.
func SetField(fields []Field, field Field) []Field {
	for i := range fields {
		if fields[i].Name == field.Name {
			fields[i] = field

			return fields
		}
	}

	return append(fields, field)
}
