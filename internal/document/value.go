package document

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the document value types.
type Value interface {
	documentValue()
}

// Null is an explicit null.
type Null struct{}

// String is a string value.
type String string

// Int is an integer value. Always int64, never float64.
type Int int64

// Bool is a boolean value.
type Bool bool

// Array is an ordered list of values.
type Array []Value

// Object maps keys to values. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Null) documentValue()   {}
func (String) documentValue() {}
func (Int) documentValue()    {}
func (Bool) documentValue()   {}
func (Array) documentValue()  {}
func (Object) documentValue() {}

// Kind names the type of v as it appears in messages.
func Kind(v Value) string {
	switch v.(type) {
	case Null, nil:
		return "null"
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Len reports the element count of a String (in bytes), Array or Object.
func Len(v Value) (int, bool) {
	switch val := v.(type) {
	case String:
		return len(val), true
	case Array:
		return len(val), true
	case Object:
		return len(val), true
	default:
		return 0, false
	}
}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
func (o Object) SortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// Records returns the records of a document: an object is one record, an
// array must hold only objects.
func Records(v Value) ([]Object, error) {
	switch val := v.(type) {
	case Object:
		return []Object{val}, nil
	case Array:
		records := make([]Object, len(val))
		for i, elem := range val {
			obj, ok := elem.(Object)
			if !ok {
				return nil, &DecodeError{Path: indexPath("$", i), Message: "record must be an object, got " + Kind(elem)}
			}
			records[i] = obj
		}
		return records, nil
	default:
		return nil, &DecodeError{Message: "document must be an object or an array of objects, got " + Kind(v)}
	}
}

// Native converts v to plain Go values: nil, string, int64, bool, []any and
// map[string]any.
func Native(v Value) any {
	switch val := v.(type) {
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Bool:
		return bool(val)
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Native(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Native(elem)
		}
		return out
	default:
		return nil
	}
}
