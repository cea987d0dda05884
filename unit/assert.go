package unit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"ytf/internal/domain"
)

// Check fails the running test when cond is false. The message quotes the
// condition as written at the call site; expr, when given, is quoted instead.
func Check(cond bool, expr ...string) {
	if cond {
		return
	}
	site := caller(0)
	text := strings.Join(expr, " ")
	if text == "" {
		text = firstArg(site, "Check", "condition")
	}
	panic(domain.NewFailure(site.At(), "CHECK("+text+") failed "))
}

// Equal fails the running test unless expected and actual are equal.
//
// Strings and byte slices compare as text. Numbers compare by value across
// types; once either side is a float the comparison allows a relative
// difference of one machine epsilon (float32's when either side is a
// float32). Other values must have identical types and be equal under ==
// for pointers and channels, or reflect.DeepEqual otherwise.
func Equal[E, A any](expected E, actual A) {
	if equal(expected, actual) {
		return
	}
	site := caller(0)
	e, a := argPair(site, "Equal")
	panic(domain.NewValueFailure(site.At(), "EQUAL("+e+" == "+a+") failed ", valueDetail(expected, actual)))
}

// Unequal fails the running test when Equal would pass for the same values.
func Unequal[E, A any](expected E, actual A) {
	if !equal(expected, actual) {
		return
	}
	site := caller(0)
	e, a := argPair(site, "Unequal")
	panic(domain.NewValueFailure(site.At(), "UNEQUAL("+e+" != "+a+") failed ", valueDetail(expected, actual)))
}

// Fail fails the running test unconditionally.
func Fail(message any) {
	panic(domain.NewFailure(caller(0).At(), fmt.Sprint(message)))
}

// AssertThrows runs fn and requires it to raise an error matching K, either
// by returning it or by panicking with it. A match is consumed silently. When
// fn raises nothing the test fails; anything else fn raises propagates
// unchanged, as if AssertThrows were not there. Assertion failures inside fn
// always propagate unless K is *Failure.
func AssertThrows[K error](fn func() error) {
	site := caller(0)

	raised, err := capture(fn)
	if raised != nil {
		if e, ok := raised.(error); ok && catches[K](e) {
			return
		}
		panic(raised)
	}
	if err == nil {
		panic(domain.NewFailure(site.At(), firstArg(site, "AssertThrows", "fn")+" failed to throw"))
	}
	if !catches[K](err) {
		panic(err)
	}
}

func capture(fn func() error) (raised any, err error) {
	defer func() {
		raised = recover()
	}()
	return nil, fn()
}

// catches reports whether AssertThrows[K] consumes err. A Failure in err's
// chain is only consumed when K names *Failure itself.
func catches[K error](err error) bool {
	var target K
	var failure *domain.Failure
	if errors.As(err, &failure) {
		if _, ok := any(target).(*domain.Failure); !ok {
			return false
		}
	}
	return errors.As(err, &target)
}

func firstArg(site callSite, fn, fallback string) string {
	if args, ok := site.args(fn); ok && len(args) > 0 {
		return args[0]
	}
	return fallback
}

func argPair(site callSite, fn string) (string, string) {
	if args, ok := site.args(fn); ok && len(args) == 2 {
		return args[0], args[1]
	}
	return "expected", "actual"
}
