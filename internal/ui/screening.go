package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"fortio.org/safecast"
)

// ScreeningRow mirrors one screening.Entry.
type ScreeningRow struct {
	System          string
	Metal           string
	Charge          float64
	ObservedEnergy  float64
	PredictedEnergy float64
	Residual        float64
	Stability       string
	Tone            string
	Ratio           float64
	CostPerKg       float64
	ChargeOptimal   bool
	Application     string
	LowCost         bool
}

// FitView mirrors screening.FitStats.
type FitView struct {
	N              int
	MAE            float64
	RMSE           float64
	MaxAbs         float64
	MaxAbsSystem   string
	ClassAgreement float64
}

// ScreeningView mirrors screening.Report.
type ScreeningView struct {
	ID       string
	Basis    string
	Sort     string
	Rows     []ScreeningRow
	Frontier []ScreeningRow
	Skipped  []string
	Fit      FitView
}

// ScreeningUI renders screening reports.
type ScreeningUI struct {
	writer io.Writer
	quiet  bool
}

// NewScreeningUI creates a new UI handler for the screen command
func NewScreeningUI(w io.Writer, quiet bool) *ScreeningUI {
	return &ScreeningUI{writer: w, quiet: quiet}
}

const ratioBarWidth = 20

// PrintReport renders the ranking table, frontier and fit statistics.
func (s *ScreeningUI) PrintReport(v ScreeningView, showFrontier bool) {
	if s.quiet {
		return
	}

	var out strings.Builder
	out.WriteString(Success.Bold(true).Render("Catalyst Screening Report"))
	out.WriteString("\n")
	out.WriteString(Dim.Render(fmt.Sprintf("%s · basis: %s · sorted by %s", v.ID, v.Basis, v.Sort)))
	out.WriteString("\n\n")

	if len(v.Rows) == 0 {
		out.WriteString(FormatStatus("warning", "No systems matched the filters"))
	} else {
		out.WriteString(s.renderTable(v.Rows))
	}

	if showFrontier && len(v.Frontier) > 0 {
		out.WriteString("\n\n")
		out.WriteString(SectionHeader.Render("Stability / Cost Frontier"))
		out.WriteString("\n")
		for _, r := range v.Frontier {
			out.WriteString(fmt.Sprintf("  %s %s %s\n", ToneDot(r.Tone), Highlight.Render(r.System),
				Dim.Render(fmt.Sprintf("→ %s · %s · ratio %.2f", FormatEnergy(r.PredictedEnergy), FormatCost(r.CostPerKg), r.Ratio))))
		}
	}

	out.WriteString("\n")
	out.WriteString(s.renderFit(v.Fit))

	if len(v.Skipped) > 0 {
		out.WriteString("\n\n")
		out.WriteString(FormatStatus("info", Dim.Render("skipped (no charge): "+strings.Join(v.Skipped, ", "))))
	}

	fmt.Fprintln(s.writer, SuccessBox.Render(strings.TrimRight(out.String(), "\n")))
}

func (s *ScreeningUI) renderTable(rows []ScreeningRow) string {
	maxRatio := 0.0
	for _, r := range rows {
		maxRatio = math.Max(maxRatio, r.Ratio)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers("#", "System", "Q (e)", "ΔE obs", "ΔE pred", "Stability", "Ratio", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Foreground(ColorSecondary).Bold(true)
			}
			return st
		})

	for i, r := range rows {
		charge := fmt.Sprintf("%.2f", r.Charge)
		if r.ChargeOptimal {
			charge = Success.Render(charge)
		}
		t.Row(
			strconv.Itoa(i+1),
			r.System,
			charge,
			fmt.Sprintf("%.2f", r.ObservedEnergy),
			fmt.Sprintf("%.3f", r.PredictedEnergy),
			ToneStyle(r.Tone).Render(r.Stability),
			fmt.Sprintf("%.2f", r.Ratio),
			renderRatioBar(r.Ratio, maxRatio, ratioBarWidth),
		)
	}
	return t.String()
}

func (s *ScreeningUI) renderFit(f FitView) string {
	if f.N == 0 {
		return Dim.Render("model fit: no charged systems")
	}
	return Dim.Render(fmt.Sprintf("model fit over %d systems: MAE %.3f eV · RMSE %.3f eV · worst %s (%.3f eV) · class agreement %.0f%%",
		f.N, f.MAE, f.RMSE, f.MaxAbsSystem, f.MaxAbs, f.ClassAgreement*100))
}

// renderRatioBar draws ratio on a log scale relative to top; ratios
// span several orders of magnitude between base and precious metals.
func renderRatioBar(ratio, top float64, width int) string {
	frac := 0.0
	if ratio > 0 && top > 0 {
		frac = math.Log10(1+ratio) / math.Log10(1+top)
	}
	filled := cells(frac, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case frac >= 0.8:
		return Success.Render(bar)
	case frac >= 0.3:
		return Warning.Render(bar)
	default:
		return Error.Render(bar)
	}
}

// cells converts a 0..1 fraction into a cell count clamped to [0, width].
func cells(frac float64, width int) int {
	n, err := safecast.Round[int](frac * float64(width))
	if err != nil || n < 0 {
		return 0
	}
	return min(n, width)
}

// PrintShortlist renders the recommended systems for follow-up.
func (s *ScreeningUI) PrintShortlist(rows []ScreeningRow) {
	if s.quiet || len(rows) == 0 {
		return
	}
	var out strings.Builder
	out.WriteString(Title.Render(fmt.Sprintf("Top %d systems for experimental follow-up", len(rows))))
	out.WriteString("\n")
	for i, r := range rows {
		out.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, Highlight.Render(r.System)))
		out.WriteString(fmt.Sprintf("   %s Formation energy: %.2f eV\n", GetBullet(), r.ObservedEnergy))
		out.WriteString(fmt.Sprintf("   %s Bader charge: %.2f e\n", GetBullet(), r.Charge))
		out.WriteString(fmt.Sprintf("   %s Stability: %s\n", GetBullet(), ToneStyle(r.Tone).Render(r.Stability)))
		out.WriteString(fmt.Sprintf("   %s Performance-cost ratio: %.3f\n", GetBullet(), r.Ratio))
		if r.Application != "" {
			out.WriteString(fmt.Sprintf("   %s Best application: %s\n", GetBullet(), r.Application))
		}
		if r.LowCost {
			out.WriteString(fmt.Sprintf("   %s Cost advantage: about 90%% cheaper than Pt-based catalysts\n", GetCheckMark()))
		}
	}
	fmt.Fprintln(s.writer, HighlightBox.Render(strings.TrimRight(out.String(), "\n")))
}

// PrintSimpleReport prints one plain line per row (no styling).
func (s *ScreeningUI) PrintSimpleReport(v ScreeningView) {
	for i, r := range v.Rows {
		fmt.Fprintf(s.writer, "%d | %s | Q: %.2f e | Observed: %.2f eV | Predicted: %.3f eV | Stability: %s | Ratio: %.2f\n",
			i+1, r.System, r.Charge, r.ObservedEnergy, r.PredictedEnergy, r.Stability, r.Ratio)
	}
}
