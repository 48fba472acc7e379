// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// field is one member of a decoded JSON object.
type field struct {
	key   string
	value json.RawMessage
}

// decodeObject splits a JSON object into its members in document order. A
// repeated key keeps its first position and its last value.
func decodeObject(data []byte, what string) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%s must be a JSON object", what)
	}

	var fields []field
	pos := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s %q: %w", what, key, err)
		}
		if i, ok := pos[key]; ok {
			fields[i].value = raw
			continue
		}
		pos[key] = len(fields)
		fields = append(fields, field{key: key, value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// keyOrder lists the keys to write: the decoded order first, then known
// keys set in code, then extras added in code in sorted order.
func keyOrder(decoded, known []string, extra map[string]json.RawMessage) []string {
	seen := make(map[string]bool, len(decoded)+len(known)+len(extra))
	order := make([]string, 0, len(seen))
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}
	for _, k := range decoded {
		add(k)
	}
	for _, k := range known {
		add(k)
	}
	extras := make([]string, 0, len(extra))
	for k := range extra {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		add(k)
	}
	return order
}

// encodeObject writes the members named by order whose lookup succeeds.
func encodeObject(order []string, lookup func(key string) (any, bool)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, key := range order {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := marshalNoEscape(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", key, err)
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping, so LaTeX such as
// "a < b" survives unchanged.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// RawValue is a non-string JSON value kept byte for byte, so numbers of
// any size and nested structures are written back exactly as read.
type RawValue []byte

// MarshalJSON returns the stored bytes.
func (r RawValue) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores a copy of data.
func (r *RawValue) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// MarshalYAML decodes the value so YAML output carries native scalars,
// sequences, and mappings. Integers that fit in 64 bits stay integers.
func (r RawValue) MarshalYAML() (any, error) {
	if len(r) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(r))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return yamlScalars(v), nil
}

func yamlScalars(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(string(x), 10, 64); err == nil {
			return u
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return string(x)
	case []any:
		for i := range x {
			x[i] = yamlScalars(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = yamlScalars(x[k])
		}
	}
	return v
}

// decodeContent keeps strings as string, null as nil, and every other
// value as a RawValue.
func decodeContent(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || string(raw) == "null":
		return nil, nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	return RawValue(append([]byte(nil), raw...)), nil
}
