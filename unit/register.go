package unit

import (
	"sync"

	"github.com/pkg/errors"

	"ytf/internal/registry"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
)

// Default returns the process-wide registry that Test, SuiteTest and Main use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = registry.New(nil)
	})
	return defaultRegistry
}

// Test registers a free test case. Call it from an init function.
func Test(name string, fn func()) {
	register(Default(), name, caller(0).At(), fn)
}

// Register registers fn under name. Unlike Test it does not record where it
// was called from, which suits generated registration code.
func Register(name string, fn func()) {
	register(Default(), name, "", fn)
}

// SetUpper is implemented by suite fixtures that prepare state before each
// case.
type SetUpper interface {
	SetUp()
}

// TearDowner is implemented by suite fixtures that release state after each
// case, whether it passed or not.
type TearDowner interface {
	TearDown()
}

// SuiteTest registers a case of the suite named after the fixture type F.
// Every run of the case gets a fresh zero F.
func SuiteTest[F any](name string, body func(*F)) {
	register(Default(), suiteName[F](name), caller(0).At(), fixtureCase(nil, body))
}

// SuiteTestWith is SuiteTest with a custom fixture constructor.
func SuiteTestWith[F any](name string, setup func() *F, body func(*F)) {
	register(Default(), suiteName[F](name), caller(0).At(), fixtureCase(setup, body))
}

func suiteName[F any](name string) string {
	return typeName(staticType[F]()) + "::" + name
}

// fixtureCase builds the body of a suite case: construct, SetUp, run, and
// TearDown once SetUp has succeeded. When the body fails, TearDown still runs
// but the body's failure is the one reported.
func fixtureCase[F any](setup func() *F, body func(*F)) func() {
	return func() {
		var f *F
		if setup != nil {
			f = setup()
		}
		if f == nil {
			f = new(F)
		}

		if s, ok := any(f).(SetUpper); ok {
			s.SetUp()
		}
		td, ok := any(f).(TearDowner)
		if !ok {
			body(f)
			return
		}

		if raised := guard(func() { body(f) }); raised != nil {
			guard(td.TearDown)
			panic(raised)
		}
		td.TearDown()
	}
}

// guard runs fn and returns whatever it panicked with.
func guard(fn func()) (raised any) {
	defer func() {
		raised = recover()
	}()
	fn()
	return nil
}

func register(reg *Registry, name, location string, fn func()) {
	if _, err := reg.Register(name, location, fn); err != nil {
		panic(errors.Wrap(err, "unit"))
	}
}
