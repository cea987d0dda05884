// Package registry holds the ordered list of registered test cases and runs
// selected subsets of it.
//
// A Registry has two phases. While open it accepts registrations; the first
// List, Run or Seal call closes it and from then on Register fails with
// ErrSealed. Indices are handed out in registration order and never reused.
package registry

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ytf/internal/domain"
	"ytf/internal/selection"
)

// ErrSealed is returned by Register once the registry has started listing or
// executing tests.
var ErrSealed = errors.New("registry: registration is closed")

// Registry is the ordered collection of test cases. It is not safe for
// concurrent use: registration and execution happen on one goroutine.
type Registry struct {
	cases  []domain.TestCase
	sealed bool
	log    logrus.FieldLogger
}

// New creates an open Registry. A nil logger discards log output.
func New(log logrus.FieldLogger) *Registry {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Registry{log: log}
}

// SetLogger replaces the diagnostic logger. Registration usually happens
// before the runner's configuration is known, so the runner installs its
// logger here once it is.
func (r *Registry) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		r.log = log
	}
}

// Register appends a test case and returns it with its assigned index.
// Duplicate names are accepted and get their own index.
func (r *Registry) Register(name, location string, fn func()) (domain.TestCase, error) {
	if r.sealed {
		return domain.TestCase{}, errors.Wrapf(ErrSealed, "cannot register %q", name)
	}
	if fn == nil {
		return domain.TestCase{}, errors.Errorf("registry: test %q has no body", name)
	}

	tc := domain.TestCase{
		Name:     name,
		Location: location,
		Func:     fn,
		Index:    len(r.cases),
	}
	r.cases = append(r.cases, tc)
	r.log.WithFields(logrus.Fields{"name": name, "index": tc.Index}).Debug("registered test")
	return tc, nil
}

// Seal closes the registration phase. Sealing twice is a no-op.
func (r *Registry) Seal() {
	if r.sealed {
		return
	}
	r.sealed = true
	r.log.WithField("tests", len(r.cases)).Debug("registry sealed")
}

// Sealed reports whether registration is closed.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered test cases.
func (r *Registry) Len() int {
	return len(r.cases)
}

// Cases returns a copy of the registered test cases in registration order.
func (r *Registry) Cases() []domain.TestCase {
	out := make([]domain.TestCase, len(r.cases))
	copy(out, r.cases)
	return out
}

// Count returns how many test cases match pred.
func (r *Registry) Count(pred selection.Predicate) int {
	n := 0
	for _, tc := range r.cases {
		if pred(tc) {
			n++
		}
	}
	return n
}

// List enumerates every registered case without executing anything. Cases
// matching filter (every case when filter is empty) carry their position
// among the matches.
func (r *Registry) List(filter string) []domain.Listing {
	r.Seal()

	listing := make([]domain.Listing, 0, len(r.cases))
	pos := 0
	for _, tc := range r.cases {
		entry := domain.Listing{Position: -1, Name: tc.Name}
		if filter == "" || selection.MatchesName(filter, tc.Name) {
			entry.Position = pos
			pos++
		}
		listing = append(listing, entry)
	}
	return listing
}
