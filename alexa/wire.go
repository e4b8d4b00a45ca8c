package alexa

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// The wire name of every modeled field is declared exactly once, as its
// json struct tag. wireFields reflects those tags into a wire-name →
// struct-field table; the same table drives unknown-field capture below
// and is what a codegen tool would consume to re-derive the model.

var wireFieldCache sync.Map // reflect.Type -> map[string]string

func wireFields(t reflect.Type) map[string]string {
	if cached, ok := wireFieldCache.Load(t); ok {
		return cached.(map[string]string)
	}

	fields := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields[name] = f.Name
	}

	wireFieldCache.Store(t, fields)
	return fields
}

// unmarshalExtensible decodes data into v and returns whatever object
// keys v has no field for. v must be a pointer to a struct whose own
// UnmarshalJSON is shadowed (the usual local-alias trick), otherwise
// this recurses.
func unmarshalExtensible(data []byte, v any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for wire := range wireFields(reflect.TypeOf(v).Elem()) {
		delete(raw, wire)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// marshalExtensible serializes v and merges the captured extra keys
// back into the object. Modeled fields win over a stale extra entry of
// the same name. Key order of the result is not preserved, values are.
func marshalExtensible(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}
