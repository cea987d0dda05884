package selftest

import (
	"ytf/unit"
)

// SuiteExample is set up before and torn down after every case.
type SuiteExample struct {
	d        float64
	tornDown bool
}

func (s *SuiteExample) SetUp()    { s.d = 0.123 }
func (s *SuiteExample) TearDown() { s.tornDown = true }

func (s *SuiteExample) invariant() bool { return !s.tornDown }

func (s *SuiteExample) makeSut() renderedType { return renderedType{} }

type resource struct {
	name  string
	calls []string
}

func (r *resource) use(call string) { r.calls = append(r.calls, call) }

// FixtureSuite holds several members prepared by SetUp.
type FixtureSuite struct {
	someNum float32
	str     string
	obj     *resource
}

func (s *FixtureSuite) SetUp() {
	s.someNum = 2.0
	s.str = "Hello"
	s.obj = &resource{name: "somename"}
	s.obj.use("doSomething")
}

func (s *FixtureSuite) TearDown() {
	s.obj.use("doSomethingElse")
}

// SpecificCtors is built by a constructor chosen per case.
type SpecificCtors struct {
	i int
	s string
}

func newSpecificCtors(i int, s string) func() *SpecificCtors {
	return func() *SpecificCtors {
		return &SpecificCtors{i: i, s: s}
	}
}

func init() {
	unit.SuiteTest("Case1", func(s *SuiteExample) {
		unit.Equal(0.123, s.d)
	})
	unit.SuiteTest("Case2", func(s *SuiteExample) {
		unit.Check(s.invariant())
	})
	unit.SuiteTest("Case3", func(s *SuiteExample) {
		unit.Unequal("hello", "world")
	})
	unit.SuiteTest("Case4", func(s *SuiteExample) {
		t := s.makeSut()
		unit.Check(t == t)
	})
	unit.SuiteTest("Case5", func(s *SuiteExample) {
		unit.Check(true)
	})

	unit.SuiteTest("Test1", func(s *FixtureSuite) {
		unit.Equal(s.someNum, 2.0)
		unit.Equal([]string{"doSomething"}, s.obj.calls)
	})
	unit.SuiteTest("Test3", func(s *FixtureSuite) {
		unit.Equal(s.str, "Hello")
	})

	unit.SuiteTestWith("CaseA", newSpecificCtors(0, "default value"), func(s *SpecificCtors) {
		unit.Equal(0, s.i)
		unit.Equal("default value", s.s)
	})
	unit.SuiteTestWith("CaseB", newSpecificCtors(123, "default value"), func(s *SpecificCtors) {
		unit.Equal(123, s.i)
	})
	unit.SuiteTestWith("CaseC", newSpecificCtors(123, "blah"), func(s *SpecificCtors) {
		unit.Equal("blah", s.s)
	})
}
