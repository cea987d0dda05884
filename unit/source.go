package unit

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// maxCallLines bounds how far a call's argument list is followed across lines.
const maxCallLines = 40

var sourceLines sync.Map // file path -> []string, nil when unreadable

type callSite struct {
	file string
	line int
}

// caller reports the call site skip frames above its own caller.
func caller(skip int) callSite {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return callSite{}
	}
	return callSite{file: file, line: line}
}

// At renders the site as the "file:line: " prefix of failure messages.
func (cs callSite) At() string {
	if cs.file == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", filepath.Base(cs.file), cs.line)
}

// args returns the source text of the arguments passed to fn at the call
// site. It is best effort: calls it cannot find yield ok == false.
func (cs callSite) args(fn string) ([]string, bool) {
	lines := readLines(cs.file)
	if cs.line < 1 || cs.line > len(lines) {
		return nil, false
	}
	end := min(cs.line-1+maxCallLines, len(lines))
	src := strings.Join(lines[cs.line-1:end], "\n")

	start := findCall(src, fn)
	if start < 0 {
		return nil, false
	}
	return splitArgs(src[start:])
}

func readLines(path string) []string {
	if path == "" {
		return nil
	}
	if v, ok := sourceLines.Load(path); ok {
		return v.([]string)
	}
	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(string(data), "\n")
	}
	sourceLines.Store(path, lines)
	return lines
}

// findCall returns the offset just past the opening parenthesis of the first
// call to fn in src, or -1.
func findCall(src, fn string) int {
	for from := 0; from < len(src); {
		i := strings.Index(src[from:], fn)
		if i < 0 {
			return -1
		}
		i += from
		from = i + len(fn)
		if i > 0 && isIdent(src[i-1]) {
			continue
		}

		j := skipSpace(src, from)
		if j < len(src) && src[j] == '[' {
			j = skipBalanced(src, j, '[', ']')
			if j < 0 {
				return -1
			}
			j = skipSpace(src, j)
		}
		if j < len(src) && src[j] == '(' {
			return j + 1
		}
	}
	return -1
}

// splitArgs splits an argument list, starting after its opening parenthesis,
// at top-level commas.
func splitArgs(src string) ([]string, bool) {
	var (
		args  []string
		depth int
		start int
	)
	flush := func(end int) {
		if arg := strings.Join(strings.Fields(src[start:end]), " "); arg != "" {
			args = append(args, arg)
		}
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				flush(i)
				return args, true
			}
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		case '"', '\'', '`':
			i = skipQuoted(src, i)
			if i < 0 {
				return nil, false
			}
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					return nil, false
				}
				i += nl
			}
		}
	}
	return nil, false
}

// skipQuoted returns the offset of the quote closing the literal opened at i.
func skipQuoted(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			if quote != '`' {
				j++
			}
		case quote:
			return j
		}
	}
	return -1
}

func skipBalanced(src string, i int, open, close byte) int {
	depth := 0
	for ; i < len(src); i++ {
		switch src[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

func skipSpace(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

func isIdent(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
