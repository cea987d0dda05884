package report

import (
	"io"

	"ytf/internal/domain"
	"ytf/internal/ui"
)

// ProgressReporter renders a progress bar while the run is in flight. It keeps
// no failure log of its own.
type ProgressReporter struct {
	total  int
	out    io.Writer
	bar    *ui.ProgressBar
	passed int
	failed int
}

// NewProgressReporter creates a ProgressReporter for total selected cases.
func NewProgressReporter(total int, out io.Writer) *ProgressReporter {
	return &ProgressReporter{total: total, out: out}
}

func (p *ProgressReporter) RunStarting() {
	p.bar = ui.NewProgressBar(p.total, p.out)
}

func (p *ProgressReporter) CaseStarting(domain.TestCase) {}

func (p *ProgressReporter) CaseEnded(tc domain.TestCase) {
	if tc.Passed {
		p.passed++
	} else {
		p.failed++
	}
	if p.bar != nil {
		p.bar.Update(p.passed, p.failed)
	}
}

func (p *ProgressReporter) RunEnded() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

func (p *ProgressReporter) LogFailure(string) {}

func (p *ProgressReporter) FailCount() int { return p.failed }
