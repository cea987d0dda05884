package domain

// TestCase describes one registered test.
type TestCase struct {
	Name     string // "Suite::Case" or bare "Case"; not required to be unique
	Location string // "file:line: " captured at registration
	Func     func() // Test body; signals failure by panicking
	Index    int    // Assigned on registration, dense and 0-based
	Passed   bool   // Result of the last execution attempt
}

// Listing is one line of a test listing.
type Listing struct {
	// Position among the cases matching the listing filter, or -1 when the
	// case does not match.
	Position int
	Name     string
}
