package commands

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ytf/internal/config"
	"ytf/internal/execution"
	"ytf/internal/registry"
	"ytf/internal/report"
	"ytf/internal/ui"
)

// RunCommand runs the selected tests
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	viewer    ui.Viewer
	log       logrus.FieldLogger
	out       io.Writer
	errOut    io.Writer
	failCount int
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	out io.Writer,
	errOut io.Writer,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: reg,
		viewer:   viewer,
		log:      logrus.StandardLogger(),
		out:      out,
		errOut:   errOut,
	}
}

// SetLogger sets the diagnostic logger
func (rc *RunCommand) SetLogger(log logrus.FieldLogger) {
	rc.log = log
}

// FailCount returns the number of failed tests of the last run
func (rc *RunCommand) FailCount() int {
	return rc.failCount
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	executor := execution.NewExecutor(rc.registry, rc.log)

	collector := report.NewCollector()
	reporters := report.Reporters{report.NewBasicReporter(rc.out), collector}
	if rc.config.Progress {
		if n := executor.Selected(args); n > 0 {
			reporters = append(reporters, report.NewProgressReporter(n, rc.errOut))
		}
	}

	rc.failCount = executor.Execute(args, reporters)

	if rc.config.Browse && rc.failCount > 0 {
		return rc.viewer.View(collector.Failures())
	}
	return nil
}
