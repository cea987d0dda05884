package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"ytf/internal/domain"
)

// BasicReporter prints one line per test case and a summary at the end of the
// run, followed by every logged failure.
type BasicReporter struct {
	out      io.Writer
	now      func() time.Time
	pass     int
	fail     int
	failures []string
	start    time.Time
	end      time.Time
}

// NewBasicReporter creates a BasicReporter writing to out, or stdout when out
// is nil.
func NewBasicReporter(out io.Writer) *BasicReporter {
	if out == nil {
		out = os.Stdout
	}
	return &BasicReporter{out: out, now: time.Now}
}

// SetClock replaces the wall clock used for the run duration.
func (r *BasicReporter) SetClock(now func() time.Time) {
	r.now = now
}

func (r *BasicReporter) RunStarting() {
	r.start = r.now()
}

func (r *BasicReporter) CaseStarting(tc domain.TestCase) {
	fmt.Fprintf(r.out, "\n%s%s", tc.Location, tc.Name)
}

func (r *BasicReporter) CaseEnded(tc domain.TestCase) {
	kind := domain.Passed
	if tc.Passed {
		r.pass++
	} else {
		kind = domain.Failed
		r.fail++
	}
	fmt.Fprintf(r.out, " [%s], #%d", kind.Display(), tc.Index)
}

func (r *BasicReporter) RunEnded() {
	r.end = r.now()
	r.printSummary()
	r.printFailures()
}

func (r *BasicReporter) LogFailure(message string) {
	r.failures = append(r.failures, message)
}

// FailCount returns the number of failed test cases.
func (r *BasicReporter) FailCount() int { return r.fail }

// PassCount returns the number of passed test cases.
func (r *BasicReporter) PassCount() int { return r.pass }

// Total returns the number of executed test cases.
func (r *BasicReporter) Total() int { return r.pass + r.fail }

// Failures returns the logged failure messages in logging order.
func (r *BasicReporter) Failures() []string {
	out := make([]string, len(r.failures))
	copy(out, r.failures)
	return out
}

// Duration returns the wall time between RunStarting and RunEnded.
func (r *BasicReporter) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r *BasicReporter) printSummary() {
	total := r.Total()
	fmt.Fprintln(r.out)
	color.New(color.FgCyan).Fprintf(r.out, "[TOTAL](%d/%d)\n", total, total)
	color.New(color.FgGreen).Fprintf(r.out, "[OK](%d/%d)\n", r.pass, total)
	if r.fail > 0 {
		color.New(color.FgRed).Fprintf(r.out, "[FAIL](%d/%d)\n", r.fail, total)
	}
	fmt.Fprintf(r.out, "[DURATION] %g seconds\n", r.Duration().Seconds())
}

func (r *BasicReporter) printFailures() {
	if len(r.failures) == 0 {
		return
	}
	color.New(color.FgRed, color.Bold).Fprintln(r.out, "[ALL FAILURES]")
	for _, failure := range r.failures {
		fmt.Fprintln(r.out, failure)
	}
}
