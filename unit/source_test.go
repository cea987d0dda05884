package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCall(t *testing.T) {
	tests := []struct {
		name string
		src  string
		fn   string
		want int
	}{
		{"plain", "Equal(1, 2)", "Equal", 6},
		{"qualified", "unit.Equal(1, 2)", "Equal", 11},
		{"type arguments", "Equal[int, int](1, 2)", "Equal", 16},
		{"longer identifier", "Unequal(1, 2)", "Equal", -1},
		{"skips longer identifier", "Unequal(1, 2); Equal(3, 4)", "Equal", 21},
		{"not a call", "Equal := 3", "Equal", -1},
		{"missing", "Check(x)", "Equal", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findCall(tt.src, tt.fn))
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
		ok   bool
	}{
		{"two", "1, 2)", []string{"1", "2"}, true},
		{"nested", "f(a, b), g[x]{1, 2})", []string{"f(a, b)", "g[x]{1, 2}"}, true},
		{"quoted", `"a,)", 'x')`, []string{`"a,)"`, `'x'`}, true},
		{"escaped quote", `"a\",", b)`, []string{`"a\","`, "b"}, true},
		{"raw string", "`a\\`, b)", []string{"`a\\`", "b"}, true},
		{"multi line", "func() error {\n\t\treturn nil\n\t})", []string{"func() error { return nil }"}, true},
		{"comment", "a, // b)\n c)", []string{"a", "// b) c"}, true},
		{"empty", ")", nil, true},
		{"unterminated", "a, b", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := splitArgs(tt.src)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCallSite(t *testing.T) {
	site := caller(-1)
	assert.Regexp(t, `^source_test\.go:\d+: $`, site.At())

	args, ok := site.args("caller")
	assert.True(t, ok)
	assert.Equal(t, []string{"-1"}, args)

	assert.Equal(t, "", callSite{}.At())
	_, ok = callSite{file: "does-not-exist.go", line: 1}.args("Equal")
	assert.False(t, ok)
}
