// Package v1 contains the entities for daily stock deal data.
package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DatasetQuery identifies one window of one upstream data series.
type DatasetQuery struct {
	Dataset   string
	DataID    string
	StartDate string
	EndDate   string
}

// Record is a single row returned by the upstream API. The schema is owned
// entirely by the upstream dataset, so a record is an open-ended mapping of
// field name to scalar value. Key order from the wire is preserved so that
// serialized output keeps the upstream column order.
type Record struct {
	keys   []string
	values map[string]any
}

// Keys returns the field names in wire order.
func (r Record) Keys() []string {
	return r.keys
}

// Value returns the value for a field name and whether the field is present.
func (r Record) Value(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.keys)
}

// UnmarshalJSON decodes a JSON object while remembering key order. Numbers
// are kept as json.Number so their upstream text is reproduced verbatim.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: expected object key, got %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}

		if _, exists := r.values[key]; !exists {
			r.keys = append(r.keys, key)
		}
		r.values[key] = value
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
