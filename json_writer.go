package costbasis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds one line of the ledger file: a JSON object whose keys
// keep the order in which they were appended. Its zero value is ready to use.
type jsonObjectWriter struct {
	keys   []string
	values []json.RawMessage
	err    error // first marshaling error, reported by MarshalJSON.
}

// Append adds key to the object, with value marshaled by json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	b, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.keys = append(w.keys, key)
	w.values = append(w.values, b)
	return w
}

// Optional is like Append but skips zero values: "", 0, false, nil...
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(w.values[i])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
