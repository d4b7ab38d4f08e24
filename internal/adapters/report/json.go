package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/zerr"
)

// JSONRenderer renders the displayed results as indented JSON. Health reports
// wrap the results together with the revision age.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type healthDocument struct {
	RevisionAge string                    `json:"revision_age"`
	Packages    []domain.ComparisonResult `json:"packages"`
}

// Render writes the report to w.
func (JSONRenderer) Render(w io.Writer, report domain.Report) error {
	results := report.Results
	if results == nil {
		results = []domain.ComparisonResult{}
	}

	var doc any = results
	if report.Mode == domain.ReportHealth {
		doc = healthDocument{RevisionAge: report.RevisionAge, Packages: results}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}

var _ ports.Reporter = JSONRenderer{}
