// Package unit is the API test authors write against.
//
// Tests register themselves from init functions and signal failure through
// the assertion primitives, which abort the running test:
//
//	func init() {
//		unit.Test("Parse::Empty", func() {
//			v, err := Parse("")
//			unit.Check(err == nil)
//			unit.Equal(0, v)
//		})
//		unit.SuiteTest("Reads", func(s *Store) {
//			unit.Unequal("", s.Get("key"))
//		})
//	}
//
//	func main() { unit.Run() }
//
// The resulting binary accepts test selections on its command line: an
// integer selects the test with that index, any other token selects every
// test whose name equals or contains it. Negative indices must follow "--".
package unit
