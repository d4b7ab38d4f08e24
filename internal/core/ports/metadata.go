package ports

import (
	"context"

	"go.trai.ch/freshness/internal/core/domain"
)

// MetadataExtractor reads input records from a flake's lock graph.
type MetadataExtractor interface {
	// Extract returns one record per lock node keyed by input name.
	// An empty map means the metadata is unavailable.
	Extract(ctx context.Context, flakePath string) map[string]domain.InputRecord

	// ExtractPrimary returns the record of a single input, filling in the fallback branch.
	ExtractPrimary(ctx context.Context, flakePath, input string) domain.InputRecord
}
