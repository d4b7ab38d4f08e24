package domain

import "encoding/json"

// Outcome classifies how a version lookup ended.
type Outcome uint8

const (
	// OutcomeNotFound means the oracle could not produce a version.
	OutcomeNotFound Outcome = iota
	// OutcomeResolved means the oracle printed a version string.
	OutcomeResolved
	// OutcomeNoLock means the input has no locked revision to resolve against.
	OutcomeNoLock
)

const (
	// NotFoundText is the rendered form of an unresolved version.
	NotFoundText = "not found"
	// NoLockText is the rendered form of a version that has no lock to resolve against.
	NoLockText = "no lock"
)

// Version is the result of resolving a package version.
// The zero value is NotFound.
type Version struct {
	value   string
	outcome Outcome
}

// Resolved returns a Version carrying an oracle-provided value.
// An empty value is treated as NotFound.
func Resolved(value string) Version {
	if value == "" {
		return NotFound()
	}
	return Version{value: value, outcome: OutcomeResolved}
}

// NotFound returns the Version for a failed resolution.
func NotFound() Version {
	return Version{outcome: OutcomeNotFound}
}

// NoLock returns the Version for an input without a locked revision.
func NoLock() Version {
	return Version{outcome: OutcomeNoLock}
}

// ParseVersion turns a rendered version back into a Version.
func ParseVersion(s string) Version {
	switch s {
	case NotFoundText, "":
		return NotFound()
	case NoLockText:
		return NoLock()
	default:
		return Resolved(s)
	}
}

// Outcome returns how the lookup ended.
func (v Version) Outcome() Outcome {
	return v.outcome
}

// IsResolved reports whether the version holds an oracle value.
func (v Version) IsResolved() bool {
	return v.outcome == OutcomeResolved
}

// IsNotFound reports whether the lookup failed.
func (v Version) IsNotFound() bool {
	return v.outcome == OutcomeNotFound
}

// String renders the version the way reports show it.
func (v Version) String() string {
	switch v.outcome {
	case OutcomeResolved:
		return v.value
	case OutcomeNoLock:
		return NoLockText
	default:
		return NotFoundText
	}
}

// MarshalJSON encodes the rendered form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes the rendered form.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = ParseVersion(s)
	return nil
}
