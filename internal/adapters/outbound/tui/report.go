package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/teicheck/teicheck/internal/domain"
)

var (
	dim        = lipgloss.Color("#6B7280") // muted gray
	faint      = lipgloss.Color("#3F3F46") // very dim
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
)

// ReportOptions selects which report sections are emitted.
type ReportOptions struct {
	Catalog         bool
	IncludeMetadata bool
}

var (
	resultHeaders   = []string{"File", "Status", "Tests"}
	metadataHeaders = []string{"Identifier", "Key", "Language", "Metadata"}
)

// WriteRun renders the full report for a run to the logger's writer:
// summary counts first, then one titled table per section.
func WriteRun(l *Logger, run *domain.TestRun, opts ReportOptions) {
	if opts.Catalog {
		l.Info(fmt.Sprintf("Found %d collection(s)", run.Collections), domain.VerbosityMinimal, 0)
	}
	l.Info(fmt.Sprintf("Found %d resource(s)", run.Resources), domain.VerbosityMinimal, 0)

	if opts.Catalog {
		l.Header("Report: Catalog files", domain.VerbosityMinimal)
		writeResultTable(l, run.CatalogResults)

		if opts.IncludeMetadata && run.Catalog != nil {
			l.Header("Report: Metadata", domain.VerbosityMinimal)
			writeMetadataTable(l, run.Catalog)
		}
	}

	l.Header("Report: TEI files", domain.VerbosityMinimal)
	writeResultTable(l, run.DocumentResults)
}

func writeResultTable(l *Logger, results []domain.FileResult) {
	var rows [][]string
	for _, fr := range results {
		l.AppendIf(&rows, []string{
			fr.Path,
			l.Checkmark(fr.Result.Status),
			strings.Join(l.FilterLogs(fr.Result.Logs), "\n"),
		}, domain.VerbosityMinimal)
	}
	fmt.Fprintln(l.out, RenderGrid(resultHeaders, rows))
}

func writeMetadataTable(l *Logger, catalog *domain.Catalog) {
	var rows [][]string
	for _, c := range catalog.Collections {
		rows = append(rows, []string{c.Identifier, "title", "", c.Title})
		if c.Description != "" {
			rows = append(rows, []string{c.Identifier, "description", "", c.Description})
		}
		for _, m := range c.DublinCore {
			rows = append(rows, []string{c.Identifier, "dc:" + m.Term, m.Language, m.Value})
		}
		for _, m := range c.Extensions {
			rows = append(rows, []string{c.Identifier, m.Term, m.Language, m.Value})
		}
	}
	fmt.Fprintln(l.out, RenderPlain(metadataHeaders, rows))
}

// RenderHistory formats saved run summaries for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		verdict := passStyle.Render(fmt.Sprintf("%d passed", e.Passed))
		if e.Failed > 0 {
			verdict += "  " + failStyle.Render(fmt.Sprintf("%d failed", e.Failed))
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			verdict,
			dimStyle.Render(fmt.Sprintf("%d collection(s), %d resource(s)", e.Collections, e.Resources)),
		)
	}

	return b.String()
}
