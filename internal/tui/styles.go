package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains lipgloss styles for CLI output
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Key      lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")), // Orange
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")),
	}
}

// PlainStyles returns styles with no color for --no-color and piped output
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Subtitle: plain,
		Status:   plain,
		Error:    plain,
		Success:  plain,
		Warning:  plain,
		Muted:    plain,
		Border:   plain,
		Key:      plain,
	}
}

// MatchSummary holds the routing details shown after a workflow build
type MatchSummary struct {
	Agent        string
	Phase        string
	Model        string
	Confidence   float64
	Intent       string
	Domain       string
	Keywords     []string
	Alternatives []string
	FilePath     string
	Digest       string
	DryRun       bool
}

// RenderMatchSummary renders the routing summary box shown after a
// workflow is generated
func (s Styles) RenderMatchSummary(summary MatchSummary) string {
	var b strings.Builder

	b.WriteString(s.Title.Render("Workflow generated"))
	b.WriteString("\n\n")

	b.WriteString(s.Muted.Render("Agent:      ") + s.Status.Render(summary.Agent))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Phase:      ") + summary.Phase)
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Model:      ") + summary.Model)
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Confidence: ") + s.confidenceStyle(summary.Confidence).Render(fmt.Sprintf("%.0f%%", summary.Confidence*100)))
	b.WriteString("\n")

	if summary.Intent != "" || summary.Domain != "" {
		b.WriteString(s.Muted.Render("Parsed:     ") + fmt.Sprintf("intent=%s domain=%s", summary.Intent, summary.Domain))
		b.WriteString("\n")
	}
	if len(summary.Keywords) > 0 {
		b.WriteString(s.Muted.Render("Keywords:   ") + strings.Join(summary.Keywords, ", "))
		b.WriteString("\n")
	}

	if len(summary.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Warning.Render("Low confidence match."))
		b.WriteString(" Alternatives: " + strings.Join(summary.Alternatives, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if summary.DryRun {
		b.WriteString(s.Subtitle.Render("Dry run, nothing written. Target: " + summary.FilePath))
	} else {
		b.WriteString(s.Success.Render("✓ ") + summary.FilePath)
	}
	if summary.Digest != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("blake3: " + summary.Digest))
	}

	return b.String()
}

func (s Styles) confidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence >= 0.7:
		return s.Success
	case confidence >= 0.5:
		return s.Warning
	default:
		return s.Error
	}
}
