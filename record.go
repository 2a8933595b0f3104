package astipsi

import "fmt"

// Record is an ordered list of fields executed against a cursor scoped to the record
type Record struct {
	Fields []Field
	Name   string
}

// NewRecord creates a new record
func NewRecord(name string, fs ...Field) *Record {
	return &Record{
		Fields: fs,
		Name:   name,
	}
}

// Decode executes the record's fields on a child of c and moves c past the bits they consumed.
// Nothing is bound when an error is returned.
func (r *Record) Decode(c *Cursor) (*Bindings, error) {
	child := c.Child()
	b := newBindings()
	for _, f := range r.Fields {
		if err := f.decode(child, b); err != nil {
			return nil, fmt.Errorf("astipsi: decoding %s failed: %w", r.Name, err)
		}
	}
	if err := c.Adopt(child); err != nil {
		return nil, fmt.Errorf("astipsi: adopting %s cursor failed: %w", r.Name, err)
	}
	return b, nil
}

// decodeRecord decodes r and builds its typed representation
func decodeRecord[T any](c *Cursor, r *Record, build func(b *Bindings) T) (t T, err error) {
	var b *Bindings
	if b, err = r.Decode(c); err != nil {
		return
	}
	return build(b), nil
}
