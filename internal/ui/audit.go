package ui

import (
	"fmt"
	"io"
	"strings"
)

// AuditView mirrors audit.Result to avoid circular imports
type AuditView struct {
	Source       string
	Valid        bool
	Errors       []string
	Warnings     []string
	Observations int
	WithCharge   int
	Coverage     float64
	MinCoverage  float64
}

// AuditUI provides a rich UI for the audit command
type AuditUI struct {
	writer io.Writer
	quiet  bool
}

// NewAuditUI creates a new UI handler for the audit command
func NewAuditUI(w io.Writer, quiet bool) *AuditUI {
	return &AuditUI{writer: w, quiet: quiet}
}

// PrintReport renders the audit result
func (a *AuditUI) PrintReport(v AuditView) {
	if a.quiet {
		return
	}

	var output strings.Builder

	if v.Valid {
		output.WriteString(Success.Bold(true).Render("✓ Dataset Audit Passed"))
	} else {
		output.WriteString(Error.Bold(true).Render("✗ Dataset Audit Failed"))
	}
	output.WriteString("\n\n")

	output.WriteString(a.renderCoverage(v))

	if len(v.Errors) > 0 {
		output.WriteString("\n\n")
		output.WriteString(renderIssues(Error.Render(fmt.Sprintf("▼ Errors (%d)", len(v.Errors))), GetCrossMark(), v.Errors, false))
	}

	if len(v.Warnings) > 0 {
		output.WriteString("\n\n")
		output.WriteString(renderIssues(Warning.Render(fmt.Sprintf("▼ Warnings (%d)", len(v.Warnings))), GetWarnMark(), v.Warnings, true))
	}

	if v.Valid {
		fmt.Fprintln(a.writer, SuccessBox.Render(output.String()))
	} else {
		fmt.Fprintln(a.writer, ErrorBox.Render(output.String()))
	}
}

func (a *AuditUI) renderCoverage(v AuditView) string {
	var sb strings.Builder

	sb.WriteString(SectionHeader.Render("Dataset"))
	sb.WriteString("\n")
	if v.Source != "" {
		sb.WriteString(FormatKeyValue("Source", Highlight.Render(v.Source)))
		sb.WriteString("\n")
	}
	sb.WriteString(FormatKeyValue("Observations", fmt.Sprintf("%d", v.Observations)))
	sb.WriteString("\n")

	bar := renderScoreBar(v.Coverage, 40)
	sb.WriteString(FormatKeyValue("Charge coverage", bar+" "+renderScorePercentage(v.Coverage)))
	sb.WriteString("\n")
	sb.WriteString(Dim.Render(fmt.Sprintf("(%d of %d with charge, minimum %.0f%%)", v.WithCharge, v.Observations, v.MinCoverage*100)))

	return sb.String()
}

func renderIssues(header, mark string, issues []string, dim bool) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, issue := range issues {
		if dim {
			issue = Dim.Render(issue)
		}
		sb.WriteString("  " + mark + " " + issue + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderScoreBar draws a 0..1 score as a coloured bar.
func renderScoreBar(score float64, width int) string {
	filled := cells(score, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if score >= 0.8 {
		return Success.Render(bar)
	} else if score >= 0.5 {
		return Warning.Render(bar)
	}
	return Error.Render(bar)
}

// renderScorePercentage formats the score as a percentage
func renderScorePercentage(score float64) string {
	formatted := fmt.Sprintf("%.1f%%", score*100)

	if score >= 0.8 {
		return Success.Render(formatted)
	} else if score >= 0.5 {
		return Warning.Render(formatted)
	}
	return Error.Render(formatted)
}

// PrintSummary prints the one-line audit summary.
func (a *AuditUI) PrintSummary(line string) {
	fmt.Fprintln(a.writer, line)
}
