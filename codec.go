package refined

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the value. Encoding an unrefined value fails with
// ErrUnrefined.
func (r Refinement[T, P]) MarshalJSON() ([]byte, error) {
	if !r.refined {
		return nil, ErrUnrefined
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a T and validates it. On failure r is unchanged.
func (r *Refinement[T, P]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return r.set(v)
}

// MarshalYAML encodes the value.
func (r Refinement[T, P]) MarshalYAML() (any, error) {
	if !r.refined {
		return nil, ErrUnrefined
	}
	return r.value, nil
}

// UnmarshalYAML decodes a T and validates it. On failure r is unchanged.
func (r *Refinement[T, P]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	return r.set(v)
}

// Value implements driver.Valuer.
func (r Refinement[T, P]) Value() (driver.Value, error) {
	if !r.refined {
		return nil, ErrUnrefined
	}
	if v, ok := any(r.value).(driver.Valuer); ok {
		return v.Value()
	}
	return driver.DefaultParameterConverter.ConvertValue(r.value)
}

// Scan implements sql.Scanner. The column value is converted to T and
// validated; on failure r is unchanged.
func (r *Refinement[T, P]) Scan(src any) error {
	var v T
	if err := scanInto(&v, src); err != nil {
		return err
	}
	return r.set(v)
}

func (r *Refinement[T, P]) set(v T) error {
	out, err := Refine[T, P](v)
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// scanInto converts a driver value into *dst. It covers the value kinds
// drivers produce: int64, float64, bool, []byte, string, time.Time and nil.
func scanInto[T any](dst *T, src any) error {
	if s, ok := any(dst).(sql.Scanner); ok {
		return s.Scan(src)
	}
	dv := reflect.ValueOf(dst).Elem()
	if src == nil {
		dv.SetZero()
		return nil
	}
	sv := reflect.ValueOf(src)

	switch dk := dv.Kind(); {
	case dk == reflect.Slice && dv.Type().Elem().Kind() == reflect.Uint8 && sv.Kind() == reflect.Slice:
		// Drivers may reuse the source buffer.
		b := reflect.MakeSlice(dv.Type(), sv.Len(), sv.Len())
		reflect.Copy(b, sv)
		dv.Set(b)
		return nil
	case dk == reflect.String && sv.Kind() == reflect.String:
		dv.SetString(sv.String())
		return nil
	case dk == reflect.String && sv.Kind() == reflect.Slice && sv.Type().Elem().Kind() == reflect.Uint8:
		dv.SetString(string(sv.Bytes()))
		return nil
	case sv.Type().AssignableTo(dv.Type()):
		dv.Set(sv)
		return nil
	case dv.CanInt() && sv.CanInt():
		if dv.OverflowInt(sv.Int()) {
			return fmt.Errorf("scan %d into %s: value out of range", sv.Int(), dv.Type())
		}
		dv.SetInt(sv.Int())
		return nil
	case dv.CanUint() && sv.CanInt():
		n := sv.Int()
		if n < 0 || dv.OverflowUint(uint64(n)) {
			return fmt.Errorf("scan %d into %s: value out of range", n, dv.Type())
		}
		dv.SetUint(uint64(n))
		return nil
	case dk == reflect.Bool && sv.Kind() == reflect.Bool:
		dv.SetBool(sv.Bool())
		return nil
	}
	return fmt.Errorf("scan %T into %s: unsupported conversion", src, dv.Type())
}
