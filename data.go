package dotplot

import (
	"math"
	"reflect"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/floats"
)

// Dataset is an ordered sequence of observations.
type Dataset []float64

// NewDataset constructs a dataset from data.
//
// Data may be a slice or array of any integer or floating point type;
// field must be empty then. Or data may be a slice of structs (or
// pointers to structs) in which case field names an exported field or a
// method without parameters of numeric type whose values are collected.
func NewDataset(data interface{}, field string) (Dataset, error) {
	if data == nil {
		return nil, ewrap.Wrap(ErrNotNumeric, "nil data")
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, ewrap.Wrapf(ErrNotNumeric, "cannot convert %s to dataset", v.Type())
	}

	elem := v.Type().Elem()
	if field == "" {
		if !isNumeric(elem.Kind()) {
			return nil, ewrap.Wrapf(ErrNotNumeric, "element type %s", elem)
		}
		ds := make(Dataset, v.Len())
		for i := range ds {
			ds[i] = toFloat(v.Index(i))
		}
		return ds, nil
	}

	value, err := fieldAccessor(elem, field)
	if err != nil {
		return nil, err
	}
	ds := make(Dataset, v.Len())
	for i := range ds {
		x, err := value(i, v.Index(i))
		if err != nil {
			return nil, err
		}
		ds[i] = toFloat(x)
	}
	return ds, nil
}

// accessor extracts a value from element i of a slice.
type accessor func(i int, v reflect.Value) (reflect.Value, error)

// fieldAccessor returns an accessor for field of values of type t.
// Fields take precedence over methods of the same name. Nil pointer
// elements are an error.
func fieldAccessor(t reflect.Type, field string) (accessor, error) {
	st, ptr := t, false
	if st.Kind() == reflect.Ptr {
		st, ptr = st.Elem(), true
	}
	if st.Kind() != reflect.Struct {
		return nil, ewrap.Wrapf(ErrNotNumeric, "element type %s has no fields", t)
	}

	if f, ok := st.FieldByName(field); ok && f.PkgPath == "" {
		if !isNumeric(f.Type.Kind()) {
			return nil, ewrap.Wrapf(ErrNotNumeric, "field %s has type %s", field, f.Type)
		}
		return func(i int, v reflect.Value) (reflect.Value, error) {
			if ptr {
				if v.IsNil() {
					return reflect.Value{}, ewrap.Wrapf(ErrNotNumeric, "element %d is nil", i)
				}
				v = v.Elem()
			}
			return v.FieldByIndex(f.Index), nil
		}, nil
	}

	// Methods like "func(elemtype) [int,float]"
	m, ok := t.MethodByName(field)
	if !ok {
		return nil, ewrap.Wrapf(ErrNotNumeric, "no field or method %s in %s", field, t)
	}
	mt := m.Type
	if mt.NumIn() != 1 || mt.NumOut() != 1 || !isNumeric(mt.Out(0).Kind()) {
		return nil, ewrap.Wrapf(ErrNotNumeric, "method %s has signature %s", field, mt)
	}
	return func(i int, v reflect.Value) (reflect.Value, error) {
		if ptr && v.IsNil() {
			return reflect.Value{}, ewrap.Wrapf(ErrNotNumeric, "element %d is nil", i)
		}
		return m.Func.Call([]reflect.Value{v})[0], nil
	}, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	}
	return v.Float()
}

// Validate reports whether ds can be binned: it must be non-empty and
// contain only finite values.
func (ds Dataset) Validate() error {
	if len(ds) == 0 {
		return ErrEmptyInput
	}
	if floats.HasNaN(ds) {
		return ewrap.Wrap(ErrInvalidValue, "NaN")
	}
	for i, x := range ds {
		if math.IsInf(x, 0) {
			return ewrap.Wrapf(ErrInvalidValue, "observation %d is %g", i, x)
		}
	}
	return nil
}

// MinMax returns the smallest and largest observation in ds.
// It panics on an empty dataset.
func (ds Dataset) MinMax() (min, max float64) {
	return floats.Min(ds), floats.Max(ds)
}
