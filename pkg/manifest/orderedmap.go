package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedMap decodes a JSON object while preserving source key order, needed
// wherever resolution depends on "first matching key wins" (exports
// condition maps, typesVersions range maps) rather than Go's unordered
// map[string]any.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap builds an OrderedMap from explicit key order and values, for
// callers constructing one outside of JSON decoding (e.g. tests).
func NewOrderedMap(keys []string, values map[string]any) *OrderedMap {
	return &OrderedMap{keys: append([]string{}, keys...), values: values}
}

// Keys returns the object's keys in source order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Get returns the value for key and whether it was present (a present key
// with a JSON null value returns (nil, true)).
func (m *OrderedMap) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// UnmarshalJSON implements json.Unmarshaler, recording key order via the
// streaming token decoder.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("manifest: expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = map[string]any{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("manifest: expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		val, err := decodeOrderedValue(raw)
		if err != nil {
			return err
		}

		if _, exists := m.values[key]; !exists {
			m.keys = append(m.keys, key)
		}
		m.values[key] = val
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeOrderedValue decodes a single JSON value, preserving key order for
// any nested object by recursing into OrderedMap, and preserving element
// order for arrays by decoding each element the same way.
func decodeOrderedValue(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("manifest: empty JSON value")
	}
	switch trimmed[0] {
	case '{':
		nested := &OrderedMap{}
		if err := nested.UnmarshalJSON(raw); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		var rawItems []json.RawMessage
		if err := json.Unmarshal(raw, &rawItems); err != nil {
			return nil, err
		}
		items := make([]any, len(rawItems))
		for i, item := range rawItems {
			v, err := decodeOrderedValue(item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
