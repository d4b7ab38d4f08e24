// Package report renders evaluation reports as terminal tables or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/freshness/internal/ui/output"
	"go.trai.ch/freshness/internal/ui/style"
)

// Status cell texts.
const (
	StatusEqualText    = style.Check + " up to date"
	StatusOutdatedText = style.Update + " update available"
	StatusUnknownText  = style.Unknown
	AllUpToDateText    = style.Check + " All packages are up to date!"
)

// TableRenderer renders a report as a table followed by a legend, a summary and next steps.
type TableRenderer struct {
	profile termenv.Profile
}

// NewTableRenderer creates a TableRenderer using the given colour profile.
func NewTableRenderer(profile termenv.Profile) *TableRenderer {
	return &TableRenderer{profile: profile}
}

type palette struct {
	header   lipgloss.Style
	cell     lipgloss.Style
	border   lipgloss.Style
	heading  lipgloss.Style
	info     lipgloss.Style
	equal    lipgloss.Style
	outdated lipgloss.Style
	latest   lipgloss.Style
	unknown  lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		header:   style.Header.Renderer(r).Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
		border:   style.Muted.Renderer(r),
		heading:  style.Heading.Renderer(r),
		info:     style.Info.Renderer(r),
		equal:    style.Equal.Renderer(r),
		outdated: style.Outdated.Renderer(r),
		latest:   style.Latest.Renderer(r),
		unknown:  style.Pending.Renderer(r),
	}
}

// Render writes the report to w.
func (t *TableRenderer) Render(w io.Writer, report domain.Report) error {
	p := newPalette(output.NewRenderer(w, t.profile))

	var b strings.Builder
	if len(report.Results) > 0 {
		b.WriteString("\n")
		b.WriteString(t.table(p, report))
		b.WriteString("\n")
		writeLegend(&b, p, report)
	}
	writeSummary(&b, p, report)

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *TableRenderer) table(p palette, report domain.Report) string {
	health := report.Mode == domain.ReportHealth

	headers := []string{"Input", "Package", "Current", "Latest", "Status"}
	statusCol := 4
	if health {
		headers = []string{"Package", "Current", "Revision Age", "Latest", "Status"}
	}

	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		if health {
			rows = append(rows, []string{r.Package, r.Current.String(), report.RevisionAge, r.Latest.String(), statusText(r.Status)})
			continue
		}
		rows = append(rows, []string{r.Input, r.Package, r.Current.String(), r.Latest.String(), statusText(r.Status)})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			if col != statusCol || row < 0 || row >= len(report.Results) {
				return p.cell
			}
			return statusStyle(p, report.Results[row].Status).Padding(0, 1)
		})

	return tbl.String()
}

func writeLegend(b *strings.Builder, p palette, report domain.Report) {
	b.WriteString("\n" + p.info.Render("Color Legend:") + "\n")
	for _, r := range report.Results {
		label := r.Input + "." + r.Package
		if report.Mode == domain.ReportHealth {
			label = r.Package
		}

		switch r.Status {
		case domain.StatusOutdated:
			fmt.Fprintf(b, "  %s: %s %s %s\n", label,
				p.outdated.Render(r.Current.String()), style.Arrow, p.latest.Render(r.Latest.String()))
		case domain.StatusEqual:
			fmt.Fprintf(b, "  %s: %s (up to date)\n", label, p.equal.Render(r.Current.String()))
		case domain.StatusUnknown:
		}
	}
}

func writeSummary(b *strings.Builder, p palette, report domain.Report) {
	summary := report.Summary
	if !summary.HasUpdates() {
		b.WriteString("\n" + p.equal.Render(AllUpToDateText) + "\n")
		return
	}

	b.WriteString("\n" + p.heading.Render("Summary:") + "\n")
	fmt.Fprintf(b, "  %s %d packages with updates available\n", style.Bullet, summary.Outdated)
	if report.Mode == domain.ReportHealth {
		fmt.Fprintf(b, "  %s Branch: %s\n", style.Bullet, report.Branch)
		fmt.Fprintf(b, "  %s Current Revision Age: %s\n", style.Bullet, report.RevisionAge)
	} else {
		for _, c := range summary.OutdatedByInput {
			fmt.Fprintf(b, "  %s %s: %d packages need updates\n", style.Bullet, c.Input, c.Count)
		}
	}

	b.WriteString("\n" + p.info.Render("Next steps:") + "\n")
	for _, step := range summary.NextSteps {
		b.WriteString("  " + step + "\n")
	}
}

func statusText(s domain.Status) string {
	switch s {
	case domain.StatusEqual:
		return StatusEqualText
	case domain.StatusOutdated:
		return StatusOutdatedText
	default:
		return StatusUnknownText
	}
}

func statusStyle(p palette, s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusEqual:
		return p.equal
	case domain.StatusOutdated:
		return p.outdated
	default:
		return p.unknown
	}
}

var _ ports.Reporter = (*TableRenderer)(nil)
