package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytf/internal/domain"
	"ytf/internal/registry"
)

func init() {
	color.NoColor = true
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(nil)
	entries := []struct {
		name string
		fn   func()
	}{
		{"Fail::_check", func() { panic(domain.NewFailure("fail.go:5: ", "CHECK(false) failed ")) }},
		{"Fail::_equal", func() { panic(domain.NewFailure("fail.go:9: ", "EQUAL(1, 2) failed ")) }},
		{"Good::Case", func() {}},
	}
	for _, e := range entries {
		_, err := reg.Register(e.name, "", e.fn)
		require.NoError(t, err)
	}
	return reg
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Main(newRegistry(t), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestMain_RunsAllByDefault(t *testing.T) {
	code, out, _ := run(t)

	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Fail::_check [FAIL], #0")
	assert.Contains(t, out, "Fail::_equal [FAIL], #1")
	assert.Contains(t, out, "Good::Case [OK], #2")
	assert.Contains(t, out, "[TOTAL](3/3)")
	assert.Contains(t, out, "fail.go:5: CHECK(false) failed ")
}

func TestMain_Selection(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		code  int
		total string
	}{
		{"suite", []string{"Good"}, 0, "[TOTAL](1/1)"},
		{"index", []string{"1"}, 1, "[TOTAL](1/1)"},
		{"union", []string{"Fail", "2"}, 2, "[TOTAL](3/3)"},
		{"no match", []string{"Missing"}, 0, "[TOTAL](0/0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, out, tt.total)
		})
	}
}

func TestMain_List(t *testing.T) {
	code, out, errOut := run(t, "--list", "Fail")

	assert.Equal(t, 0, code)
	assert.Equal(t, "Fail::_check\nFail::_equal\nGood::Case\n", out)
	assert.Equal(t, "0)\t1)\t", errOut)
	assert.NotContains(t, out, "[TOTAL]")
}

func TestMain_ListShort(t *testing.T) {
	code, out, errOut := run(t, "-l")

	assert.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Equal(t, "0)\t1)\t2)\t", errOut)
}

func TestMain_Version(t *testing.T) {
	for _, arg := range []string{"-v", "--version"} {
		code, out, _ := run(t, arg)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Ytf 1.1\n", out)
	}
}

func TestMain_Help(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		code, out, _ := run(t, arg)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "Yet another Test Framework")
		assert.Contains(t, out, "--list")
		assert.NotContains(t, out, "[TOTAL]")
	}
}

func TestMain_UnknownFlag(t *testing.T) {
	code, out, errOut := run(t, "--bogus")

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown flag")
}

func TestMain_Progress(t *testing.T) {
	code, out, _ := run(t, "--progress", "Good")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "[OK](1/1)")
}

func TestMain_DebugLogging(t *testing.T) {
	code, _, errOut := run(t, "--log-level", "debug", "Good")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "registry sealed")
	assert.Contains(t, errOut, "running selection")
	assert.Contains(t, errOut, "test finished")
}

func TestMain_DefaultLevelIsQuiet(t *testing.T) {
	_, _, errOut := run(t, "Good")

	assert.NotContains(t, errOut, "registry sealed")
	assert.NotContains(t, errOut, "test finished")
}
