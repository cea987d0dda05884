package unit

import (
	"math"
	"reflect"
)

const (
	epsilon64 = 0x1p-52 // float64 machine epsilon
	epsilon32 = 0x1p-23 // float32 machine epsilon
)

var bytesType = reflect.TypeOf([]byte(nil))

// equal implements the comparison shared by Equal and Unequal.
//
// Text compares as text, numbers compare by value across types (within a
// relative epsilon once a float is involved), and anything else must have
// identical types to be equal.
func equal(expected, actual any) bool {
	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if !ev.IsValid() || !av.IsValid() {
		return isNil(ev) && isNil(av)
	}

	if text(ev) && text(av) {
		return string(bytesOf(ev)) == string(bytesOf(av))
	}

	ek, ak := numKind(ev.Kind()), numKind(av.Kind())
	switch {
	case ek == floatKind && ak != notNumber, ak == floatKind && ek != notNumber:
		eps := epsilon64
		if ev.Kind() == reflect.Float32 || av.Kind() == reflect.Float32 {
			eps = epsilon32
		}
		return closeEnough(toFloat(ev), toFloat(av), eps)
	case ek != notNumber && ak != notNumber:
		return equalIntegers(ev, av)
	}

	if ev.Type() != av.Type() {
		return false
	}
	switch ev.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return ev.Pointer() == av.Pointer()
	}
	return reflect.DeepEqual(expected, actual)
}

// closeEnough reports whether e and a differ by no more than eps relative to
// the larger of them, with an absolute floor of eps.
func closeEnough(e, a, eps float64) bool {
	if e == a {
		return true
	}
	diff := math.Abs(e - a)
	if math.IsNaN(diff) {
		return false
	}
	return diff <= eps*math.Max(1.0, math.Abs(math.Max(e, a)))
}

func equalIntegers(ev, av reflect.Value) bool {
	switch {
	case numKind(ev.Kind()) == signedKind && numKind(av.Kind()) == signedKind:
		return ev.Int() == av.Int()
	case numKind(ev.Kind()) == unsignedKind && numKind(av.Kind()) == unsignedKind:
		return ev.Uint() == av.Uint()
	case numKind(ev.Kind()) == signedKind:
		return ev.Int() >= 0 && uint64(ev.Int()) == av.Uint()
	default:
		return av.Int() >= 0 && ev.Uint() == uint64(av.Int())
	}
}

type numberKind int

const (
	notNumber numberKind = iota
	signedKind
	unsignedKind
	floatKind
)

func numKind(k reflect.Kind) numberKind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedKind
	case reflect.Float32, reflect.Float64:
		return floatKind
	}
	return notNumber
}

func toFloat(v reflect.Value) float64 {
	switch numKind(v.Kind()) {
	case signedKind:
		return float64(v.Int())
	case unsignedKind:
		return float64(v.Uint())
	}
	return v.Float()
}

func text(v reflect.Value) bool {
	if v.Kind() == reflect.String {
		return true
	}
	return v.Kind() == reflect.Slice && v.Type().ConvertibleTo(bytesType)
}

func bytesOf(v reflect.Value) []byte {
	if v.Kind() == reflect.String {
		return []byte(v.String())
	}
	return v.Convert(bytesType).Bytes()
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
