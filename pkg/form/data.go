package form

import (
	"bytes"
	"encoding/json"
)

// Data maps field labels to validated values, in field order.
// Values are string, bool or []string depending on the field.
type Data struct {
	labels []string
	values map[string]any
}

func (d *Data) set(label string, v any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.values[label] = v
}

// Get returns the value stored under label.
func (d Data) Get(label string) (any, bool) {
	v, ok := d.values[label]
	return v, ok
}

// String returns the text value under label, or "" if absent or not text.
func (d Data) String(label string) string {
	s, _ := d.values[label].(string)
	return s
}

// Bool returns the boolean value under label, or false.
func (d Data) Bool(label string) bool {
	b, _ := d.values[label].(bool)
	return b
}

// Strings returns a copy of the list value under label, or nil.
func (d Data) Strings(label string) []string {
	items, _ := d.values[label].([]string)
	if items == nil {
		return nil
	}
	return append([]string(nil), items...)
}

// Labels returns the labels in field order.
func (d Data) Labels() []string {
	return append([]string(nil), d.labels...)
}

func (d Data) Len() int {
	return len(d.labels)
}

// Map returns the values as a plain map.
func (d Data) Map() map[string]any {
	m := make(map[string]any, len(d.values))
	for k, v := range d.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the data as an object with keys in field order.
func (d Data) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range d.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.values[label])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON returns the indented JSON form of the data.
func (d Data) JSON() (string, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Errors maps field labels to the message of their first failing validator.
type Errors map[string]string
