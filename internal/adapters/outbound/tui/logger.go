package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/teicheck/teicheck/internal/domain"
)

const (
	wrapWidth  = 88
	lineIndent = "    "

	successGlyph = "✔"
	failureGlyph = "✗"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	infoCol = lipgloss.Color("#22D3EE") // cyan
)

// Styles is the formatting context for a Logger. Holding the styles on the
// logger instead of process-wide state keeps rendering testable without a
// real terminal.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
}

// DefaultStyles returns the standard report palette.
func DefaultStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Foreground(success),
		Failure: lipgloss.NewStyle().Foreground(danger),
		Info:    lipgloss.NewStyle().Foreground(infoCol),
		Header:  lipgloss.NewStyle().Bold(true),
	}
}

// Logger filters and renders report output under a fixed verbosity level.
// It owns no state beyond the level, the styles, and the destination writer;
// inputs are never mutated.
type Logger struct {
	level  domain.Verbosity
	styles Styles
	out    io.Writer
}

// NewLogger creates a Logger writing to out at the given level.
func NewLogger(level domain.Verbosity, out io.Writer) *Logger {
	return &Logger{level: level, styles: DefaultStyles(), out: out}
}

// WithStyles replaces the logger's formatting context.
func (l *Logger) WithStyles(s Styles) *Logger {
	l.styles = s
	return l
}

// Level returns the configured verbosity.
func (l *Logger) Level() domain.Verbosity { return l.level }

func (l *Logger) print(s string, importance domain.Verbosity, indent int, style lipgloss.Style) {
	if !l.level.Allows(importance) {
		return
	}
	fmt.Fprintln(l.out, strings.Repeat("\t", indent)+style.Render(s))
}

// Header emits a bold small-caps section banner, preceded by a blank line.
// The blank line is written outside the styled block: lipgloss pads every
// line of a rendered block to the widest line, which would turn an embedded
// leading newline into a line of styled spaces.
func (l *Logger) Header(title string, importance domain.Verbosity) {
	if !l.level.Allows(importance) {
		return
	}
	fmt.Fprintln(l.out)
	l.print("==== "+ToSmallCaps(TitleCase(title))+" ====", importance, 0, l.styles.Header)
}

// Info emits an informational line, optionally indented by tabs.
func (l *Logger) Info(msg string, importance domain.Verbosity, indent int) {
	l.print("INFO: "+msg, importance, indent, l.styles.Info)
}

// FilterLogs selects and renders the log entries that qualify for display.
// Failures are always included; successes only at details or verbose.
// Output order matches input order.
func (l *Logger) FilterLogs(logs []domain.Log) []string {
	var out []string
	for _, lg := range logs {
		if !lg.Status || l.level <= domain.VerbosityDetails {
			out = append(out, l.renderLog(lg))
		}
	}
	return out
}

func (l *Logger) renderLog(lg domain.Log) string {
	if lg.Details == "" {
		glyph := successGlyph
		if !lg.Status {
			glyph = failureGlyph
		}
		return humanize(lg.Name) + ": " + l.Colorize(glyph, lg.Status)
	}
	return humanize(lg.Name) + ": " + l.colorizeSegments(Wrap(lg.Details, wrapWidth), lg.Status)
}

// AppendIf appends row to rows iff the active level permits the required
// importance. The slice grows by exactly zero or one entries; existing rows
// are never reordered.
func (l *Logger) AppendIf(rows *[][]string, row []string, importance domain.Verbosity) {
	if l.level.Allows(importance) {
		*rows = append(*rows, row)
	}
}

// Colorize applies the status color policy to an already-rendered string.
// Failures are always red; successes are green only at details or verbose.
// Wrapped blocks are colorized segment by segment so the continuation
// indent itself never carries color.
func (l *Logger) Colorize(s string, status bool) string {
	if strings.Contains(s, "\n"+lineIndent) {
		return l.colorizeSegments(strings.Split(s, "\n"+lineIndent), status)
	}
	return l.colorizeSegment(s, status)
}

func (l *Logger) colorizeSegments(segments []string, status bool) string {
	colored := make([]string, len(segments))
	for i, seg := range segments {
		colored[i] = l.colorizeSegment(seg, status)
	}
	return strings.Join(colored, "\n"+lineIndent)
}

func (l *Logger) colorizeSegment(s string, status bool) string {
	if !status {
		return l.styles.Failure.Render(s)
	}
	if l.level <= domain.VerbosityDetails {
		return l.styles.Success.Render(s)
	}
	return s
}

// Checkmark renders the top-level pass/fail glyph. Unlike inline successes
// it is colorized at every level, so the overall verdict stays visible even
// in minimal reports.
func (l *Logger) Checkmark(status bool) string {
	if status {
		return l.styles.Success.Render(successGlyph)
	}
	return l.styles.Failure.Render(failureGlyph)
}

// Wrap breaks text into lines no wider than width columns. Width is
// measured in runes so multi-byte text wraps at the same column as ASCII
// and overlong words are never split mid-rune.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  []rune
	)
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(line) > 0 && len(line)+1+len(runes) > width {
			flush()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, runes...)
	}
	flush()
	return lines
}

// humanize turns a camelCase check identifier into a lowercase display name
// ("wellFormed" -> "well formed"). Names carrying punctuation are shown
// verbatim; camelcase.Split would keep the separators as segments.
func humanize(name string) string {
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return name
		}
	}
	return strings.ToLower(strings.Join(camelcase.Split(name), " "))
}
