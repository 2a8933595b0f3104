package astipsi

// Bindings holds the values bound by a record's fields in declaration order. Fields executed later can read the
// values bound by earlier ones.
type Bindings struct {
	names  []string
	values map[string]interface{}
}

func newBindings() *Bindings {
	return &Bindings{values: make(map[string]interface{})}
}

func (b *Bindings) set(name string, v interface{}) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
}

// Names returns the bound names in the order they were first bound
func (b *Bindings) Names() []string {
	return append([]string(nil), b.names...)
}

// Has checks whether name has been bound
func (b *Bindings) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Value returns the raw value bound to name
func (b *Bindings) Value(name string) (v interface{}, ok bool) {
	v, ok = b.values[name]
	return
}

// Uint returns the unsigned integer bound to name, or 0
func (b *Bindings) Uint(name string) uint64 {
	switch v := b.values[name].(type) {
	case uint64:
		return v
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// Bool returns the flag bound to name, or false
func (b *Bindings) Bool(name string) bool {
	switch v := b.values[name].(type) {
	case bool:
		return v
	case uint64:
		return v == 1
	}
	return false
}

// String returns the text bound to name, or ""
func (b *Bindings) String(name string) string {
	v, _ := b.values[name].(string)
	return v
}

// Bytes returns the bytes bound to name, or nil
func (b *Bindings) Bytes(name string) []byte {
	v, _ := b.values[name].([]byte)
	return v
}

// Bound returns the value bound to name if it has type T, or T's zero value
func Bound[T any](b *Bindings, name string) T {
	v, _ := b.values[name].(T)
	return v
}
