package evaluator

import (
	"strings"

	"go.trai.ch/freshness/internal/core/domain"
)

// SourceRefs composes the source references a pair is resolved against.
type SourceRefs interface {
	// Current returns the reference of the locked revision, or false when the input is not locked.
	Current(record domain.InputRecord) (string, bool)
	// Latest returns the reference of the upstream head.
	Latest(record domain.InputRecord) string
}

// PinnedRefs resolves current at {url}/{rev} and latest at the bare {url}.
type PinnedRefs struct{}

// Current implements SourceRefs.
func (PinnedRefs) Current(record domain.InputRecord) (string, bool) {
	if !record.HasLock() {
		return "", false
	}
	return record.PinnedRef(), true
}

// Latest implements SourceRefs.
func (PinnedRefs) Latest(record domain.InputRecord) string {
	return record.URL
}

// BranchRefs resolves current at {base}/{rev} and latest at {base}/{branch},
// where base is the input's forge coordinates or Base when it has none.
type BranchRefs struct {
	Base string
}

// Current implements SourceRefs.
func (b BranchRefs) Current(record domain.InputRecord) (string, bool) {
	if !record.HasLock() {
		return "", false
	}
	return b.base(record) + "/" + record.LockedRevision, true
}

// Latest implements SourceRefs.
func (b BranchRefs) Latest(record domain.InputRecord) string {
	return b.base(record) + "/" + record.BranchLabel()
}

func (b BranchRefs) base(record domain.InputRecord) string {
	if base, ok := forgeBase(record.URL); ok {
		return base
	}
	return b.Base
}

// forgeBase reduces a forge URL such as github:owner/repo/ref?dir=x to github:owner/repo.
func forgeBase(url string) (string, bool) {
	scheme, rest, ok := strings.Cut(url, ":")
	if !ok {
		return "", false
	}
	switch scheme {
	case "github", "gitlab", "sourcehut":
	default:
		return "", false
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return scheme + ":" + parts[0] + "/" + parts[1], true
}
