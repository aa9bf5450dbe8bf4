package ui

import (
	"fmt"
	"io"
	"strings"
)

// PredictionView mirrors engine.Result for rendering.
type PredictionView struct {
	Metal   string
	Support string
	Charge  float64

	Electronegativity float64
	AtomicRadius      float64
	DElectrons        int
	CostPerKg         float64

	BandGap         float64
	LatticeConstant float64
	ToleranceFactor *float64

	Equation string

	PredictedEnergy      float64
	Stability            string
	Tone                 string
	PerformanceCostRatio float64

	ChargeOptimal bool
	ChargeNote    string

	Promising   bool
	Actions     []string
	Application string
	NextSteps   []string
}

// System returns the "metal/support" identifier.
func (v PredictionView) System() string { return v.Metal + "/" + v.Support }

// PredictionUI renders single-system predictions.
type PredictionUI struct {
	writer io.Writer
	quiet  bool
}

// NewPredictionUI creates a new UI handler for the predict command
func NewPredictionUI(w io.Writer, quiet bool) *PredictionUI {
	return &PredictionUI{writer: w, quiet: quiet}
}

// PrintReport renders the full boxed prediction report.
func (p *PredictionUI) PrintReport(v PredictionView) {
	if p.quiet {
		return
	}

	var out strings.Builder
	out.WriteString(Title.Render("Prediction for " + v.System()))
	out.WriteString("\n")
	if v.Equation != "" {
		out.WriteString(Subtitle.Render(v.Equation))
		out.WriteString("\n")
	}
	out.WriteString("\n")

	out.WriteString(p.renderInputs(v))
	out.WriteString("\n\n")
	out.WriteString(p.renderResults(v))
	out.WriteString("\n\n")
	out.WriteString(p.renderRecommendations(v))

	box := SuccessBox
	if !v.Promising {
		box = HighlightBox
	}
	fmt.Fprintln(p.writer, box.Render(out.String()))
}

func (p *PredictionUI) renderInputs(v PredictionView) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Input Parameters"))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Bader charge", fmt.Sprintf("%.3f e", v.Charge)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Electronegativity", fmt.Sprintf("%.2f", v.Electronegativity)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Atomic radius", fmt.Sprintf("%.2f Å", v.AtomicRadius)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("d electrons", fmt.Sprintf("%d", v.DElectrons)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Metal cost", FormatCost(v.CostPerKg)))
	sb.WriteString("\n")
	sb.WriteString(Dim.Render(fmt.Sprintf("%s: band gap %.1f eV · a = %.2f Å · tolerance %s",
		v.Support, v.BandGap, v.LatticeConstant, formatTolerance(v.ToleranceFactor))))
	return sb.String()
}

func (p *PredictionUI) renderResults(v PredictionView) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Results"))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Predicted formation energy", Highlight.Render(FormatEnergy(v.PredictedEnergy))))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Stability", ToneDot(v.Tone)+" "+ToneStyle(v.Tone).Render(v.Stability)))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Performance-cost ratio", fmt.Sprintf("%.2f", v.PerformanceCostRatio)))
	sb.WriteString("\n")
	if v.ChargeOptimal {
		sb.WriteString(FormatKeyValue("Charge transfer", FormatStatus("success", Success.Render(v.ChargeNote))))
	} else {
		sb.WriteString(FormatKeyValue("Charge transfer", FormatStatus("warning", Warning.Render(v.ChargeNote))))
	}
	return sb.String()
}

func (p *PredictionUI) renderRecommendations(v PredictionView) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Recommendations"))
	sb.WriteString("\n")
	for i, a := range v.Actions {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, a))
	}
	if v.Application != "" {
		sb.WriteString(fmt.Sprintf("  %d. Recommended for: %s\n", len(v.Actions)+1, Secondary.Render(v.Application)))
	}
	if len(v.NextSteps) > 0 {
		sb.WriteString("\n")
		sb.WriteString(SectionHeader.Render("Next Steps"))
		sb.WriteString("\n")
		for i, s := range v.NextSteps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PrintSimpleReport prints a minimal, unstyled report.
func (p *PredictionUI) PrintSimpleReport(v PredictionView) {
	fmt.Fprintf(p.writer, "System: %s\n", v.System())
	fmt.Fprintf(p.writer, "Bader charge: %.3f e\n", v.Charge)
	fmt.Fprintf(p.writer, "Predicted formation energy: %.3f eV\n", v.PredictedEnergy)
	fmt.Fprintf(p.writer, "Stability: %s\n", v.Stability)
	fmt.Fprintf(p.writer, "Performance-cost ratio: %.2f\n", v.PerformanceCostRatio)
	fmt.Fprintf(p.writer, "Charge transfer: %s\n", v.ChargeNote)
}

func formatTolerance(t *float64) string {
	if t == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *t)
}
