package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/engine/evaluator"
)

func result(input, pkg string, status domain.Status) domain.ComparisonResult {
	return domain.ComparisonResult{Input: input, Package: pkg, Status: status}
}

func TestSummarize(t *testing.T) {
	results := []domain.ComparisonResult{
		result("tools", "fmt", domain.StatusOutdated),
		result("nixpkgs", "hello", domain.StatusEqual),
		result("nixpkgs", "jq", domain.StatusOutdated),
		result("tools", "lint", domain.StatusOutdated),
		result("nixpkgs", "git", domain.StatusUnknown),
	}

	summary := evaluator.Summarize(results)

	assert.True(t, summary.HasUpdates())
	assert.Equal(t, 3, summary.Outdated)
	assert.Equal(t, []domain.InputCount{
		{Input: "tools", Count: 2},
		{Input: "nixpkgs", Count: 1},
	}, summary.OutdatedByInput)
	assert.Equal(t, []string{
		"nix flake lock --update-input tools",
		"nix flake lock --update-input nixpkgs",
		evaluator.UpdateAllCommand,
	}, summary.NextSteps)
}

func TestSummarize_NothingOutdated(t *testing.T) {
	summary := evaluator.Summarize([]domain.ComparisonResult{
		result("nixpkgs", "hello", domain.StatusEqual),
		result("nixpkgs", "git", domain.StatusUnknown),
	})

	assert.False(t, summary.HasUpdates())
	assert.Empty(t, summary.OutdatedByInput)
	assert.Empty(t, summary.NextSteps)
}

func TestSummarizePrimary(t *testing.T) {
	summary := evaluator.SummarizePrimary([]domain.ComparisonResult{
		result("nixpkgs", "hello", domain.StatusOutdated),
	}, "nixpkgs")

	assert.Equal(t, 1, summary.Outdated)
	assert.Equal(t, []string{"nix flake lock --update-input nixpkgs"}, summary.NextSteps)
}
