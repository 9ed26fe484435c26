package dotplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Ops struct {
	Age    int
	Origin string
	Weight float64
	Height float64
	secret float64
}

func (o Ops) BMI() float64 {
	return o.Weight / (o.Height * o.Height)
}

func (o Ops) Country() string {
	return map[string]string{"ch": "Schweiz", "de": "Deutschland"}[o.Origin]
}

func (o Ops) Other2(a int) int {
	return a
}

var measurement = []Ops{
	{Age: 20, Origin: "de", Weight: 80, Height: 1.88},
	{Age: 22, Origin: "de", Weight: 85, Height: 1.85},
	{Age: 20, Origin: "de", Weight: 90, Height: 1.95},
	{Age: 25, Origin: "de", Weight: 90, Height: 1.72},
	{Age: 20, Origin: "ch", Weight: 77, Height: 1.78},
	{Age: 20, Origin: "ch", Weight: 82, Height: 1.75},
	{Age: 28, Origin: "ch", Weight: 85, Height: 1.80},
	{Age: 47, Origin: "ch", Weight: 90, Height: 1.62},
}

func TestNewDatasetFromNumbers(t *testing.T) {
	ds, err := NewDataset([]int{3, 1, 2}, "")
	require.NoError(t, err)
	assert.Equal(t, Dataset{3, 1, 2}, ds)

	ds, err = NewDataset([3]uint8{7, 8, 9}, "")
	require.NoError(t, err)
	assert.Equal(t, Dataset{7, 8, 9}, ds)

	ds, err = NewDataset([]float32{0.5, 1.5}, "")
	require.NoError(t, err)
	assert.Equal(t, Dataset{0.5, 1.5}, ds)
}

func TestNewDatasetFromStructs(t *testing.T) {
	ages, err := NewDataset(measurement, "Age")
	require.NoError(t, err)
	require.Len(t, ages, len(measurement))
	assert.Equal(t, 20.0, ages[0])
	assert.Equal(t, 47.0, ages[7])

	bmi, err := NewDataset(measurement, "BMI")
	require.NoError(t, err)
	for i, m := range measurement {
		assert.InDelta(t, m.BMI(), bmi[i], 1e-12)
	}

	ptrs := []*Ops{&measurement[0], &measurement[1]}
	weights, err := NewDataset(ptrs, "Weight")
	require.NoError(t, err)
	assert.Equal(t, Dataset{80, 85}, weights)

	bmi, err = NewDataset(ptrs, "BMI")
	require.NoError(t, err)
	assert.InDelta(t, measurement[1].BMI(), bmi[1], 1e-12)
}

func TestNewDatasetNotNumeric(t *testing.T) {
	for _, tc := range []struct {
		name  string
		data  interface{}
		field string
	}{
		{"nil", nil, ""},
		{"strings", []string{"1", "2"}, ""},
		{"map", map[string]float64{"a": 1}, ""},
		{"scalar", 3.0, ""},
		{"struct without field", measurement, ""},
		{"string field", measurement, "Origin"},
		{"string method", measurement, "Country"},
		{"method with args", measurement, "Other2"},
		{"unexported", measurement, "secret"},
		{"unknown", measurement, "Shoesize"},
		{"field on numbers", []float64{1}, "Age"},
		{"nil element field", []*Ops{&measurement[0], nil}, "Weight"},
		{"nil element method", []*Ops{nil, &measurement[1]}, "BMI"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDataset(tc.data, tc.field)
			require.ErrorIs(t, err, ErrNotNumeric)
		})
	}
}

func TestDatasetValidate(t *testing.T) {
	require.ErrorIs(t, Dataset{}.Validate(), ErrEmptyInput)
	require.ErrorIs(t, Dataset(nil).Validate(), ErrEmptyInput)
	require.ErrorIs(t, Dataset{1, math.NaN()}.Validate(), ErrInvalidValue)
	require.ErrorIs(t, Dataset{math.Inf(-1), 1}.Validate(), ErrInvalidValue)
	require.NoError(t, Dataset{-1, 0, 1e300}.Validate())
}

func TestDatasetMinMax(t *testing.T) {
	min, max := Dataset{3, -2, 7, 7, 0}.MinMax()
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 7.0, max)
}
