package execution

import (
	"github.com/sirupsen/logrus"

	"ytf/internal/registry"
	"ytf/internal/report"
	"ytf/internal/selection"
)

// Executor drives one test run: it parses the selection tokens, makes one
// full registry pass per token and brackets the run with the reporter's start
// and end events.
type Executor struct {
	registry *registry.Registry
	log      logrus.FieldLogger
}

// NewExecutor creates an Executor over reg.
func NewExecutor(reg *registry.Registry, log logrus.FieldLogger) *Executor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Executor{registry: reg, log: log}
}

// Selected returns how many executions the tokens will produce. A case
// selected by two tokens is counted twice, as it runs twice.
func (e *Executor) Selected(tokens []string) int {
	total := 0
	for _, sel := range selection.ParseAll(tokens) {
		total += e.registry.Count(sel.Match)
	}
	return total
}

// Execute runs the selected cases against rep and returns rep's fail count.
func (e *Executor) Execute(tokens []string, rep report.Reporter) int {
	rep.RunStarting()
	for _, sel := range selection.ParseAll(tokens) {
		e.log.WithFields(logrus.Fields{
			"token": sel.Token,
			"mode":  sel.Mode,
		}).Debug("running selection")
		e.registry.Run(sel.Match, rep)
	}
	rep.RunEnded()
	return rep.FailCount()
}
