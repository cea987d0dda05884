package registry

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ytf/internal/domain"
	"ytf/internal/report"
	"ytf/internal/selection"
)

// Run executes, in registration order, every test case matching pred. Each
// case is isolated: whatever it raises is recorded and the loop carries on.
func (r *Registry) Run(pred selection.Predicate, rep report.Reporter) {
	r.Seal()

	for i := range r.cases {
		if !pred(r.cases[i]) {
			continue
		}
		r.runCase(&r.cases[i], rep)
	}
}

func (r *Registry) runCase(tc *domain.TestCase, rep report.Reporter) {
	rep.CaseStarting(*tc)

	outcome := Invoke(tc.Func)
	tc.Passed = outcome.OK()
	switch outcome.Kind {
	case domain.Failed:
		rep.LogFailure(outcome.Message)
	case domain.Errored:
		rep.LogFailure(fmt.Sprintf("%s%s: %s", tc.Location, tc.Name, outcome.Message))
	}
	r.log.WithFields(logrus.Fields{
		"name":    tc.Name,
		"index":   tc.Index,
		"outcome": outcome.Kind,
	}).Debug("test finished")

	rep.CaseEnded(*tc)
}

// Invoke calls fn and converts whatever it raises into an Outcome. A *Failure
// anywhere in the raised error's chain is an assertion failure; any other
// panic value is an unknown error.
func Invoke(fn func()) (outcome domain.Outcome) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		outcome = classify(rec)
	}()

	fn()
	return domain.Outcome{Kind: domain.Passed}
}

func classify(rec interface{}) domain.Outcome {
	if err, ok := rec.(error); ok {
		var failure *domain.Failure
		if errors.As(err, &failure) {
			return domain.Outcome{Kind: domain.Failed, Message: failure.Error()}
		}
		return domain.Outcome{Kind: domain.Errored, Message: "unknown error: " + err.Error()}
	}
	return domain.Outcome{Kind: domain.Errored, Message: fmt.Sprintf("unknown error: %v", rec)}
}
