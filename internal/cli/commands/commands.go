package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ytf/internal/cli"
	"ytf/internal/config"
	"ytf/internal/logging"
	"ytf/internal/registry"
	"ytf/internal/ui"
)

const (
	// ExitUsage is returned by Main when the command line cannot be parsed.
	ExitUsage = 255
	// MaxFailures caps the fail count Main reports so it stays a valid exit
	// status distinct from ExitUsage.
	MaxFailures = ExitUsage - 1
)

const usage = `Ytf - Yet another Test Framework.

Runs the tests compiled into this binary. Each argument selects tests:
an integer selects the test with that index, anything else selects every
test whose name equals it or contains it (so "Suite" selects all of
"Suite::Case1", "Suite::Case2", ...). With no arguments every test runs.
The exit status is the number of failed tests.`

// Commands holds the commands of a test binary
type Commands struct {
	Run  *RunCommand
	List *ListCommand

	config    *config.Config
	registry  *registry.Registry
	formatter *ui.Formatter
	out       io.Writer
	errOut    io.Writer
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry, out, errOut io.Writer) *Commands {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	formatter := ui.NewFormatter(out, errOut)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:       NewRunCommand(cfg, reg, out, errOut, viewer),
		List:      NewListCommand(cfg, reg, formatter),
		config:    cfg,
		registry:  reg,
		formatter: formatter,
		out:       out,
		errOut:    errOut,
	}
}

// Register wires the commands into the root command
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.SetOut(c.out)
	rootCmd.SetErr(c.errOut)

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*c.config = *cfg
		if c.config.NoColor {
			color.NoColor = true
		}

		log := logging.New(c.config.LogLevel, c.errOut, c.config.NoColor)
		log.WithFields(logrus.Fields{
			"args":     args,
			"list":     c.config.Flags.List,
			"progress": c.config.Progress,
			"browse":   c.config.Browse,
		}).Debug("configuration loaded")
		c.registry.SetLogger(log)
		c.Run.SetLogger(log)
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if flags.Version {
			c.formatter.PrintVersion(c.config.Version)
			return nil
		}
		if flags.List {
			return c.List.Execute(cmd, args)
		}
		return c.Run.Execute(cmd, args)
	}

	rootCmd.Flags().BoolVarP(&flags.Version, "version", "v", false, "Print the framework version")
	rootCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List test cases, optionally only those matching the first argument")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while tests run")
	rootCmd.Flags().BoolVar(&flags.Browse, "browse", false, "Browse failures interactively when the run has failures")
	rootCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")
	rootCmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Dotenv file to load before reading the environment")
}

// ExitCode returns the number of failed tests of the last run
func (c *Commands) ExitCode() int {
	return c.Run.FailCount()
}

// NewRootCommand creates the root command of a test binary
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "ytf [flags] [Suite|Suite::Case|index]...",
		Short:         "Run the tests compiled into this binary",
		Long:          usage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Main runs the dispatcher for reg with the given arguments (without the
// program name) and returns the process exit status: the number of failed
// tests, capped at MaxFailures.
func Main(reg *registry.Registry, args []string, out, errOut io.Writer) int {
	if errOut == nil {
		errOut = os.Stderr
	}

	rootCmd := NewRootCommand()
	cfg := config.New()
	var flags cli.Flags

	cmds := NewCommands(cfg, reg, out, errOut)
	cmds.Register(rootCmd, &flags)

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitUsage
	}
	return min(cmds.ExitCode(), MaxFailures)
}
