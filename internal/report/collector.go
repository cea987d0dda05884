package report

import "ytf/internal/domain"

// Collector pairs every logged failure with the test case that was running
// when it was logged.
type Collector struct {
	current  domain.TestCase
	failures []domain.CaseFailure
	failed   int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) RunStarting() {
	c.failures = nil
	c.failed = 0
}

func (c *Collector) CaseStarting(tc domain.TestCase) {
	c.current = tc
}

func (c *Collector) CaseEnded(tc domain.TestCase) {
	if !tc.Passed {
		c.failed++
	}
}

func (c *Collector) RunEnded() {}

func (c *Collector) LogFailure(message string) {
	c.failures = append(c.failures, domain.CaseFailure{
		Name:     c.current.Name,
		Location: c.current.Location,
		Index:    c.current.Index,
		Message:  message,
	})
}

func (c *Collector) FailCount() int { return c.failed }

// Failures returns the collected failures in logging order.
func (c *Collector) Failures() []domain.CaseFailure {
	out := make([]domain.CaseFailure, len(c.failures))
	copy(out, c.failures)
	return out
}
