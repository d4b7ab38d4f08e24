package evaluator

import "go.trai.ch/freshness/internal/core/domain"

// UpdateAllCommand is the last next step whenever any input is outdated.
const UpdateAllCommand = "nix flake update --refresh --commit-lock-file  # Update all inputs"

// Summarize aggregates results across inputs. Counts and next steps follow the
// order in which inputs first appear among the outdated results.
func Summarize(results []domain.ComparisonResult) domain.Summary {
	var summary domain.Summary
	index := make(map[string]int)

	for _, r := range results {
		if r.Status != domain.StatusOutdated {
			continue
		}
		summary.Outdated++

		i, seen := index[r.Input]
		if !seen {
			i = len(summary.OutdatedByInput)
			index[r.Input] = i
			summary.OutdatedByInput = append(summary.OutdatedByInput, domain.InputCount{Input: r.Input})
		}
		summary.OutdatedByInput[i].Count++
	}

	if summary.Outdated == 0 {
		return summary
	}

	for _, c := range summary.OutdatedByInput {
		summary.NextSteps = append(summary.NextSteps, updateInputCommand(c.Input))
	}
	summary.NextSteps = append(summary.NextSteps, UpdateAllCommand)
	return summary
}

// SummarizePrimary aggregates the results of a single tracked input.
func SummarizePrimary(results []domain.ComparisonResult, input string) domain.Summary {
	summary := Summarize(results)
	if summary.Outdated == 0 {
		return summary
	}
	summary.NextSteps = []string{updateInputCommand(input)}
	return summary
}

func updateInputCommand(input string) string {
	return "nix flake lock --update-input " + input
}
