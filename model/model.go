package model

// Report holds the result of one run for display.
type Report struct {
	Path         string
	Outcome      string
	Found        bool
	Replacements int
	DryRun       bool
	// Message is the single status line printed to stdout.
	Message string
	// Hint explains a not-found outcome in more detail.
	Hint    string
	Preview string
}
