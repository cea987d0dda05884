package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"ytf/internal/domain"
)

func init() {
	color.NoColor = true
}

func TestFormatter_PrintTestList(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewFormatter(&out, &errOut)

	f.PrintTestList([]domain.Listing{
		{Position: 0, Name: "Suite::A"},
		{Position: -1, Name: "Other"},
		{Position: 1, Name: "Suite::B"},
	})

	if got, want := out.String(), "Suite::A\nOther\nSuite::B\n"; got != want {
		t.Errorf("expected names %q, got %q", want, got)
	}
	if got, want := errOut.String(), "0)\t1)\t"; got != want {
		t.Errorf("expected annotations %q, got %q", want, got)
	}
}

func TestFormatter_PrintVersion(t *testing.T) {
	var out bytes.Buffer
	NewFormatter(&out, nil).PrintVersion("1.1")
	if out.String() != "Ytf 1.1\n" {
		t.Errorf("unexpected version banner %q", out.String())
	}
}

func TestFormatFailure(t *testing.T) {
	failure := domain.CaseFailure{
		Name:     "Fail::_equal",
		Location: "fail_test.go:12: ",
		Index:    1,
		Message:  "fail_test.go:14: EQUAL(\"Ytf\", \"bloated\") failed ",
	}

	stats := formatFailureStats(failure)
	if !strings.Contains(stats, "fail_test.go:12") || !strings.Contains(stats, "#1") {
		t.Errorf("stats missing location or index: %q", stats)
	}

	details := formatFailureDetails(failure)
	if !strings.Contains(details, "EQUAL(") {
		t.Errorf("details missing message: %q", details)
	}
}

func TestListItemText_UnnamedFailure(t *testing.T) {
	if got := listItemText(domain.CaseFailure{}, 2); !strings.Contains(got, "Test 3") {
		t.Errorf("expected placeholder name, got %q", got)
	}
}

func TestProgressBar_Update(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(4, &buf)
	bar.Update(2, 1)
	bar.Finish()

	if !strings.Contains(buf.String(), "Running tests") {
		t.Errorf("expected progress description in output, got %q", buf.String())
	}
}

func TestFailureViewer_NoFailures(t *testing.T) {
	if err := NewFailureViewer().View(nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
