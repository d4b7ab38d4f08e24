package domain

// Status classifies a current/latest version pair.
type Status string

const (
	// StatusEqual means current and latest are identical.
	StatusEqual Status = "equal"
	// StatusOutdated means current and latest differ.
	StatusOutdated Status = "outdated"
	// StatusUnknown means at least one side could not be resolved.
	StatusUnknown Status = "unknown"
)

// Compare classifies a version pair.
// Comparison is exact string equality; no version ordering is applied,
// so a revision moving backwards is still reported as outdated.
func Compare(current, latest Version) Status {
	if current.IsNotFound() || latest.IsNotFound() {
		return StatusUnknown
	}
	if current.String() == latest.String() {
		return StatusEqual
	}
	return StatusOutdated
}
