package manifest

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOrderedMap_PreservesKeyOrder(t *testing.T) {
	var m OrderedMap
	if err := json.Unmarshal([]byte(`{"z":1,"a":2,"m":3}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("Keys() = %v; want %v", m.Keys(), want)
	}
}

func TestOrderedMap_ExplicitNull(t *testing.T) {
	var m OrderedMap
	if err := json.Unmarshal([]byte(`{"restricted":null,"present":"value"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, ok := m.Get("restricted")
	if !ok || v != nil {
		t.Errorf("restricted key: got (%v, %v); want (nil, true)", v, ok)
	}
	_, ok = m.Get("missing")
	if ok {
		t.Error("missing key should report ok=false")
	}
}

func TestOrderedMap_GetReturnsStringValue(t *testing.T) {
	var m OrderedMap
	if err := json.Unmarshal([]byte(`{"import":"a","require":"b"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	nested, _ := m.Get("import")
	if nested != "a" {
		t.Errorf("got %v", nested)
	}
}
