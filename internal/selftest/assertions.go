package selftest

import (
	"strings"

	"ytf/unit"
)

type renderedType struct{}

func (renderedType) String() string { return "xxx" }

type unrenderedType struct{}

func raiseLogicError() error { panic(&LogicError{What: "throws here"}) }

func noThrow() error { return nil }

func init() {
	unit.Test("Check::True", func() {
		unit.Check(true)
	})

	unit.Test("Check::FailureQuotesExpression", func() {
		f := catchFailure(func() { unit.Check(1 == 0) })
		unit.Check(strings.Contains(f.Error(), "1 == 0"))
	})

	unit.Test("Equal::UnrenderableValuesStillCompare", func() {
		unit.Equal(unrenderedType{}, unrenderedType{})
		unit.Equal(renderedType{}, renderedType{})
	})

	unit.Test("Equal::ReportsValues", func() {
		f := catchFailure(func() { unit.Equal(1, 0) })
		unit.Check(strings.Contains(f.Error(), "expected: (int) 1 != actual: (int) 0"))
	})

	unit.Test("Equal::OmitsUnrenderableValues", func() {
		f := catchFailure(func() { unit.Equal([]int{1}, []int{2}) })
		unit.Check(!strings.Contains(f.Error(), "expected:"))
	})

	unit.Test("Equal::Epsilon", func() {
		d := 0.0
		d += 0.1
		d += 0.1
		d += 0.1
		if d == 0.3 {
			unit.Fail("rounding error")
		}
		unit.Equal(d, 0.3)
	})

	unit.Test("Unequal::Values", func() {
		unit.Unequal(1, 0)
		unit.Unequal("hello", "world")
	})

	unit.Test("Fail::CarriesMessage", func() {
		f := catchFailure(func() { unit.Fail("fails here") })
		unit.Check(strings.HasSuffix(f.Error(), "fails here"))
	})

	unit.Test("AssertThrows::Matches", func() {
		unit.AssertThrows[*LogicError](raiseLogicError)
		unit.AssertThrows[error](raiseLogicError)
	})

	unit.Test("AssertThrows::NoThrowFails", func() {
		f := catchFailure(func() { unit.AssertThrows[error](noThrow) })
		unit.Check(strings.HasSuffix(f.Error(), " failed to throw"))
	})
}
