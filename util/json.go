// util/json.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////
// JSON

func UnmarshalJSON[T any](r io.Reader, out *T) error {
	// Unfortunately we need the contents as an array of bytes so that we
	// can issue reasonable errors.
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// Unmarshal the bytes into the given type but go through some efforts to
// return useful error messages when the JSON is invalid...
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := jsonOffset(b, jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %v", line, char, jerr)

	case *json.UnmarshalTypeError:
		line, char := jsonOffset(b, jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())

	default:
		return err
	}
}

// jsonOffset converts a byte offset into 1-based line and character
// numbers.
func jsonOffset(b []byte, offset int64) (line, char int) {
	line, char = 1, 1
	for i := 0; i < int(offset) && i < len(b); i++ {
		if b[i] == '\n' {
			line++
			char = 1
		} else {
			char++
		}
	}
	return
}

///////////////////////////////////////////////////////////////////////////

// CheckJSON checks whether the provided JSON is syntactically valid and
// then checks it against the provided type T, reporting object keys that
// T doesn't have (likely misspellings, since encoding/json silently
// ignores them) and keys that appear more than once in the same object.
func CheckJSON[T any](contents []byte, e *ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	var items any
	if err := UnmarshalJSONBytes(contents, &items); err != nil {
		e.Error(err)
		return
	}

	for _, dup := range FindDuplicateJSONKeys(contents) {
		if dup.Path != "" {
			e.Push(dup.Path)
		}
		e.ErrorString("The key %q is given more than once", dup.Key)
		if dup.Path != "" {
			e.Pop()
		}
	}

	ty := reflect.TypeOf((*T)(nil)).Elem()
	typeCheckJSON(items, ty, make(map[reflect.Type]map[string]reflect.Type), e)
}

func typeCheckJSON(item any, ty reflect.Type, structTypeCache map[reflect.Type]map[string]reflect.Type, e *ErrorLogger) {
	for ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}
	if item == nil {
		return
	}

	// Types that decode themselves from text (enums and the like) are
	// checked when they're unmarshaled.
	if reflect.PointerTo(ty).Implements(reflect.TypeOf((*interface{ UnmarshalText([]byte) error })(nil)).Elem()) {
		return
	}

	mismatch := func() {
		e.ErrorString("unexpected data format provided for object: %s", reflect.TypeOf(item))
	}

	switch ty.Kind() {
	case reflect.Array, reflect.Slice:
		array, ok := item.([]any)
		if !ok {
			mismatch()
			return
		}
		for i, elem := range array {
			e.Push(fmt.Sprintf("[%d]", i))
			typeCheckJSON(elem, ty.Elem(), structTypeCache, e)
			e.Pop()
		}

	case reflect.Map:
		m, ok := item.(map[string]any)
		if !ok {
			mismatch()
			return
		}
		for k, v := range m {
			e.Push(k)
			typeCheckJSON(v, ty.Elem(), structTypeCache, e)
			e.Pop()
		}

	case reflect.Struct:
		fields, ok := item.(map[string]any)
		if !ok {
			mismatch()
			return
		}

		// For each struct type encountered, structTypeCache holds a map
		// from the JSON name of each struct element to its corresponding
		// reflect.Type.
		types, ok := structTypeCache[ty]
		if !ok {
			types = make(map[string]reflect.Type)
			for _, field := range reflect.VisibleFields(ty) {
				if jtag, ok := field.Tag.Lookup("json"); ok {
					name, _, _ := strings.Cut(jtag, ",")
					types[name] = field.Type
				}
			}
			structTypeCache[ty] = types
		}

		for name, value := range fields {
			if fty, ok := types[name]; ok {
				e.Push(name)
				typeCheckJSON(value, fty, structTypeCache, e)
				e.Pop()
			} else {
				e.ErrorString("The entry %q is not an expected JSON object. Is it misspelled?", name)
			}
		}

	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, ok := item.(float64); !ok {
			mismatch()
		}

	case reflect.String:
		if _, ok := item.(string); !ok {
			mismatch()
		}

	case reflect.Bool:
		if _, ok := item.(bool); !ok {
			mismatch()
		}
	}
}

// DuplicateJSONKey represents a key that's repeated within a JSON object.
type DuplicateJSONKey struct {
	Path string // Dot-separated path to the object holding the key
	Key  string
}

// FindDuplicateJSONKeys scans JSON content and returns all duplicate keys
// found; invalid JSON gives whatever was found before the error.
func FindDuplicateJSONKeys(data []byte) []DuplicateJSONKey {
	dec := json.NewDecoder(bytes.NewReader(data))
	var dups []DuplicateJSONKey
	var path []string

	// value consumes one complete JSON value from the decoder, returning
	// false on a decoding error.
	var value func() bool
	value = func() bool {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		switch tok {
		case json.Delim('{'):
			seen := make(map[string]bool)
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return false
				}
				key, _ := ktok.(string)
				if seen[key] {
					dups = append(dups, DuplicateJSONKey{Path: strings.Join(path, "."), Key: key})
				}
				seen[key] = true

				path = append(path, key)
				ok := value()
				path = path[:len(path)-1]
				if !ok {
					return false
				}
			}
			_, err = dec.Token() // '}'
			return err == nil

		case json.Delim('['):
			for dec.More() {
				if !value() {
					return false
				}
			}
			_, err = dec.Token() // ']'
			return err == nil
		}
		return true
	}
	value()

	return dups
}
