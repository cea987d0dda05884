package report

import "ytf/internal/domain"

// Reporter receives the lifecycle events of a test run.
type Reporter interface {
	RunStarting()
	CaseStarting(tc domain.TestCase)
	CaseEnded(tc domain.TestCase)
	RunEnded()
	LogFailure(message string)
	// FailCount is valid after RunEnded and is the run's exit status.
	FailCount() int
}

// Reporters fans every event out to each member in order.
type Reporters []Reporter

func (reps Reporters) RunStarting() {
	for _, r := range reps {
		r.RunStarting()
	}
}

func (reps Reporters) CaseStarting(tc domain.TestCase) {
	for _, r := range reps {
		r.CaseStarting(tc)
	}
}

func (reps Reporters) CaseEnded(tc domain.TestCase) {
	for _, r := range reps {
		r.CaseEnded(tc)
	}
}

func (reps Reporters) RunEnded() {
	for _, r := range reps {
		r.RunEnded()
	}
}

func (reps Reporters) LogFailure(message string) {
	for _, r := range reps {
		r.LogFailure(message)
	}
}

// FailCount returns the count of the first member, which is expected to be
// the primary reporter.
func (reps Reporters) FailCount() int {
	if len(reps) == 0 {
		return 0
	}
	return reps[0].FailCount()
}
