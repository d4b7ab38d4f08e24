package ports

import (
	"io"

	"go.trai.ch/freshness/internal/core/domain"
)

// Reporter renders a finished report.
type Reporter interface {
	Render(w io.Writer, report domain.Report) error
}
