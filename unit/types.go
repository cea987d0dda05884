package unit

import (
	"ytf/internal/domain"
	"ytf/internal/registry"
)

type (
	// Failure is the value assertion primitives panic with.
	Failure = domain.Failure
	// TestCase describes one registered test.
	TestCase = domain.TestCase
	// Registry is an ordered collection of test cases.
	Registry = registry.Registry
)

var (
	// ErrAssertion matches every Failure under errors.Is.
	ErrAssertion = domain.ErrAssertion
	// ErrSealed is wrapped by registration panics once tests have started.
	ErrSealed = registry.ErrSealed
)
