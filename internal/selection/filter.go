package selection

import (
	"strconv"
	"strings"

	"ytf/internal/domain"
)

// Mode is the addressing mode a selection token resolved to.
type Mode int

const (
	// ModeAll selects every test case.
	ModeAll Mode = iota
	// ModeIndex selects the test case with a given index.
	ModeIndex
	// ModeName selects test cases by exact name or substring.
	ModeName
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeIndex:
		return "index"
	case ModeName:
		return "name"
	default:
		return "unknown"
	}
}

// Predicate decides whether a test case takes part in the current run.
type Predicate func(tc domain.TestCase) bool

// Selection is a parsed selection token.
type Selection struct {
	Token string
	Mode  Mode
	Match Predicate
}

// All selects every test case.
func All() Selection {
	return Selection{
		Mode:  ModeAll,
		Match: func(domain.TestCase) bool { return true },
	}
}

// ByIndex selects the test case registered with index n.
func ByIndex(n int) Selection {
	return Selection{
		Token: strconv.Itoa(n),
		Mode:  ModeIndex,
		Match: func(tc domain.TestCase) bool { return tc.Index == n },
	}
}

// ByName selects test cases whose name equals token or contains it, so "Suite"
// selects every "Suite::Case".
func ByName(token string) Selection {
	return Selection{
		Token: token,
		Mode:  ModeName,
		Match: func(tc domain.TestCase) bool { return MatchesName(token, tc.Name) },
	}
}

// Parse resolves one token. A token that is a whole integer addresses an index
// and never matches by name; anything else is a name filter. Parse never fails.
func Parse(token string) Selection {
	if n, err := strconv.Atoi(token); err == nil {
		sel := ByIndex(n)
		sel.Token = token
		return sel
	}
	return ByName(token)
}

// ParseAll resolves every token. No tokens means a single All selection.
func ParseAll(tokens []string) []Selection {
	if len(tokens) == 0 {
		return []Selection{All()}
	}

	selections := make([]Selection, 0, len(tokens))
	for _, token := range tokens {
		selections = append(selections, Parse(token))
	}
	return selections
}

// MatchesName reports whether filter selects name. There is no suite or word
// boundary awareness: "Test" matches "MyTests::Case".
func MatchesName(filter, name string) bool {
	return name == filter || strings.Contains(name, filter)
}
