package model

// Record is one decoded diagnostic snapshot: a smartctl-style JSON
// document held as a generic key tree. Field access goes through nil-safe
// accessors, so a missing section or leaf reads as absent rather than
// panicking, and every accessor is safe to call on a nil Record.
type Record map[string]any

// Has reports whether a top-level key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Section returns the nested object under key, or nil when the key is
// missing or does not hold an object.
func (r Record) Section(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// List returns the nested array under key, or nil.
func (r Record) List(key string) []any {
	if l, ok := r[key].([]any); ok {
		return l
	}
	return nil
}

// Metric reads the leaf under key as an optional integer.
func (r Record) Metric(key string) Metric {
	v, ok := r[key]
	if !ok {
		return Metric{}
	}
	return MetricFrom(v)
}

// Str returns the leaf under key as a string, or "" when missing or not
// a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}
