package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"ytf/internal/domain"
)

// Formatter writes listings and other non-run output.
type Formatter struct {
	out    io.Writer
	errOut io.Writer
}

// NewFormatter creates a Formatter. Names go to out; position annotations go
// to errOut so that piping the listing yields bare names. Nil writers default
// to stdout and stderr.
func NewFormatter(out, errOut io.Writer) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Formatter{out: out, errOut: errOut}
}

// PrintTestList prints one line per registered test.
func (f *Formatter) PrintTestList(listing []domain.Listing) {
	for _, entry := range listing {
		if entry.Position >= 0 {
			fmt.Fprintf(f.errOut, "%d)\t", entry.Position)
		}
		fmt.Fprintln(f.out, colorName(entry.Name))
	}
}

// PrintVersion prints the version banner.
func (f *Formatter) PrintVersion(version string) {
	fmt.Fprintf(f.out, "Ytf %s\n", version)
}

func colorName(name string) string {
	suite, testCase, ok := strings.Cut(name, "::")
	if !ok {
		return color.YellowString(name)
	}
	return color.CyanString(suite) + "::" + color.YellowString(testCase)
}
