package unit

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualValues(t *testing.T) {
	shared := &point{1, 2}
	ch := make(chan int)

	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"same ints", 3, 3, true},
		{"different ints", 3, 4, false},
		{"int widths", int8(5), int64(5), true},
		{"signed and unsigned", 5, uint8(5), true},
		{"negative and unsigned", -1, uint64(math.MaxUint64), false},
		{"unsigned and negative", uint(1), -1, false},
		{"int and float", 2, 2.0, true},
		{"float sum", 0.3, 0.1 + 0.1 + 0.1, true},
		{"float far apart", 0.3, 0.31, false},
		{"large floats relative", 1e20, 1e20 + 1e4, true},
		{"float32 epsilon", float32(1), 1.0000001, true},
		{"float64 epsilon", 1.0, 1.0000001, false},
		{"nan", math.NaN(), math.NaN(), false},
		{"infinity", math.Inf(1), math.Inf(1), true},
		{"strings", "abc", "abc", true},
		{"string and bytes", "abc", []byte("abc"), true},
		{"bytes differ", []byte("abc"), []byte("abd"), false},
		{"string and int", "1", 1, false},
		{"structs", point{1, 2}, point{1, 2}, true},
		{"structs differ", point{1, 2}, point{2, 1}, false},
		{"slices", []int{1, 2}, []int{1, 2}, true},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"same pointer", shared, shared, true},
		{"equal pointees", &point{1, 2}, &point{1, 2}, false},
		{"channels", ch, ch, true},
		{"bool", true, true, true},
		{"different types", point{}, struct{ X, Y int }{}, false},
		{"both nil", nil, nil, true},
		{"nil and nil pointer", nil, (*point)(nil), true},
		{"nil and value", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equal(tt.expected, tt.actual))
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want string
	}{
		{staticType[int](), "int"},
		{staticType[string](), "string"},
		{staticType[point](), "point"},
		{staticType[[]*point](), "[]*point"},
		{staticType[map[string]point](), "map[string]point"},
		{staticType[error](), "error"},
		{staticType[reflect.Kind](), "Kind"},
		{nil, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, typeName(tt.typ))
		})
	}
}

func TestRenderable(t *testing.T) {
	tests := []struct {
		name     string
		expected reflect.Type
		actual   reflect.Type
		want     bool
	}{
		{"basic", staticType[int](), staticType[float64](), true},
		{"stringer", staticType[celsius](), staticType[celsius](), true},
		{"error", staticType[error](), staticType[*notFound](), true},
		{"struct", staticType[point](), staticType[point](), false},
		{"one side", staticType[int](), staticType[[]int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderable(tt.expected, tt.actual))

			cached, ok := renderCache.Load(typePair{tt.expected, tt.actual})
			assert.True(t, ok)
			assert.Equal(t, tt.want, cached)
		})
	}
}

func TestValueDetail(t *testing.T) {
	assert.Equal(t, "\nexpected: (int) 1 != actual: (int64) 2", valueDetail(1, int64(2)))
	assert.Equal(t, "", valueDetail(point{}, point{}))
	assert.Equal(t, "\nexpected: (error) <nil> != actual: (error) not found: k",
		valueDetail[error, error](nil, &notFound{key: "k"}))
}
