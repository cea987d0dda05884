package unit

import (
	"os"

	"ytf/internal/cli/commands"
)

// EntrySymbol is the name under which a loadable test module exports a
// func([]string) int such as Main, for runners that load tests at run time.
const EntrySymbol = "RunYtfTests"

// Main runs the command line dispatcher over the registered tests. args
// exclude the program name. The result is the number of failed tests, or
// commands.ExitUsage when args cannot be parsed.
func Main(args []string) int {
	return commands.Main(Default(), args, os.Stdout, os.Stderr)
}

// Run calls Main with the process arguments and exits with its result.
func Run() {
	os.Exit(Main(os.Args[1:]))
}
