package domain

// ComparisonResult is one evaluated (input, package) pair.
type ComparisonResult struct {
	Package string  `json:"package"`
	Input   string  `json:"input"`
	Branch  string  `json:"branch"`
	Current Version `json:"current"`
	Latest  Version `json:"latest"`
	Status  Status  `json:"status"`
}

// InputCount is the number of outdated packages for one input.
type InputCount struct {
	Input string
	Count int
}

// Summary is derived from a result list alone.
type Summary struct {
	Outdated        int
	OutdatedByInput []InputCount
	NextSteps       []string
}

// HasUpdates reports whether any package is outdated.
func (s Summary) HasUpdates() bool {
	return s.Outdated > 0
}

// OnlyOutdated returns the outdated results, keeping order.
func OnlyOutdated(results []ComparisonResult) []ComparisonResult {
	out := make([]ComparisonResult, 0, len(results))
	for _, r := range results {
		if r.Status == StatusOutdated {
			out = append(out, r)
		}
	}
	return out
}
