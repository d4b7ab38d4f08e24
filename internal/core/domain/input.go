package domain

import (
	"fmt"
	"time"
)

// UnknownBranch is the branch label used when none can be inferred.
const UnknownBranch = "unknown"

// InputRecord describes one flake input as pinned in the lock graph.
type InputRecord struct {
	Name           string
	URL            string
	LockedRevision string
	Branch         string
	LastModified   time.Time
}

// HasLock reports whether the input is pinned to a revision.
func (r InputRecord) HasLock() bool {
	return r.LockedRevision != ""
}

// PinnedRef returns the source reference of the locked revision.
func (r InputRecord) PinnedRef() string {
	return r.URL + "/" + r.LockedRevision
}

// BranchLabel returns the branch, or UnknownBranch when it is empty.
func (r InputRecord) BranchLabel() string {
	if r.Branch == "" {
		return UnknownBranch
	}
	return r.Branch
}

// RevisionAge renders how long ago the locked revision was modified, relative to now.
func (r InputRecord) RevisionAge(now time.Time) string {
	if r.LastModified.IsZero() {
		return "N/A"
	}
	days := int(now.Sub(r.LastModified).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
