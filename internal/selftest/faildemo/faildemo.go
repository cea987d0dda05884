// Package faildemo registers cases that fail in every way a test can, to
// show how failures are reported.
package faildemo

import (
	"github.com/pkg/errors"

	"ytf/unit"
)

// Fail groups the failing cases.
type Fail struct{}

type logicError struct{ what string }

func (e *logicError) Error() string { return e.what }

func init() {
	unit.SuiteTest("_check", func(*Fail) {
		unit.Check(false)
	})
	unit.SuiteTest("_equal", func(*Fail) {
		unit.Equal("Ytf", "bloated")
	})
	unit.SuiteTest("_unequal", func(*Fail) {
		unit.Unequal("Ytf", "Ytf")
	})
	unit.SuiteTest("_fail", func(*Fail) {
		unit.Fail("My failure message")
	})
	unit.SuiteTest("_assert_throw", func(*Fail) {
		a := 0
		unit.AssertThrows[*logicError](func() error { a = 2; return nil })
		_ = a
	})
	unit.SuiteTest("_unexpected_error", func(*Fail) {
		panic(errors.New("fails here"))
	})
	unit.SuiteTest("_unexpected_panic", func(*Fail) {
		var m map[string]int
		m["key"]++
	})

	unit.Test("Test2", func() {
		someNum := float32(0)
		unit.Equal(someNum, float32(2))
	})
}
