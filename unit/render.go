package unit

import (
	"fmt"
	"reflect"
	"regexp"
	"sync"
)

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()

	// qualifier matches package qualifiers, including the import paths
	// reflect uses inside instantiated generic type names.
	qualifier = regexp.MustCompile(`[\w./-]+\.`)
)

type typePair struct {
	expected reflect.Type
	actual   reflect.Type
}

var renderCache sync.Map // typePair -> bool

// renderable reports whether values of the pair's types can be shown in a
// failure message. The answer depends only on the types and is cached.
func renderable(expected, actual reflect.Type) bool {
	key := typePair{expected, actual}
	if v, ok := renderCache.Load(key); ok {
		return v.(bool)
	}
	ok := readable(expected) && readable(actual)
	renderCache.Store(key, ok)
	return ok
}

func readable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	if t.Implements(stringerType) || t.Implements(errorType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// typeName renders t without package qualifiers: "Point", "[]Point", "int".
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return qualifier.ReplaceAllString(t.String(), "")
}

func staticType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// valueDetail renders the expected/actual line appended to comparison
// failures, or "" when either type cannot be shown.
func valueDetail[E, A any](expected E, actual A) string {
	et, at := staticType[E](), staticType[A]()
	if !renderable(et, at) {
		return ""
	}
	return fmt.Sprintf("\nexpected: (%s) %v != actual: (%s) %v",
		typeName(et), expected, typeName(at), actual)
}
