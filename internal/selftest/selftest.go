// Package selftest registers the framework's own checks. Importing it for
// its side effects adds them to the default registry.
package selftest

import (
	"ytf/unit"
)

// LogicError is raised by code under test in the throw checks.
type LogicError struct {
	What string
}

func (e *LogicError) Error() string { return e.What }

// catchFailure runs fn and returns the assertion failure it raises. Anything
// else fn raises propagates; raising nothing fails the calling check.
func catchFailure(fn func()) (failure *unit.Failure) {
	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			f, ok := rec.(*unit.Failure)
			if !ok {
				panic(rec)
			}
			failure = f
		}()
		fn()
	}()
	if failure == nil {
		unit.Fail("no failure raised")
	}
	return failure
}
