package domain

// ReportMode selects the report layout.
type ReportMode uint8

const (
	// ReportCheck is the multi-input report.
	ReportCheck ReportMode = iota
	// ReportHealth is the primary-input report with revision age.
	ReportHealth
)

// Report is everything a renderer needs for one run.
type Report struct {
	Mode ReportMode
	// Results holds the rows to display, already filtered when UpdatesOnly is set.
	Results []ComparisonResult
	// Summary is computed over the unfiltered result list.
	Summary Summary
	// Branch is the tracked branch in health mode.
	Branch string
	// RevisionAge is the rendered age of the locked revision in health mode.
	RevisionAge string
}
