package cmd

import (
	"fmt"
	"strings"

	"github.com/yousci/yousci-cli/internal/audit"
	"github.com/yousci/yousci-cli/internal/dataset"
	"github.com/yousci/yousci-cli/internal/engine"
	"github.com/yousci/yousci-cli/internal/reference"
	"github.com/yousci/yousci-cli/internal/screening"
	"github.com/yousci/yousci-cli/internal/ui"
)

// The ui package cannot import the domain packages, so results are converted
// into its mirror types here.

func predictionView(res engine.Result) ui.PredictionView {
	rec := res.Recommendation
	return ui.PredictionView{
		Metal:                res.Request.Metal,
		Support:              res.Request.Support,
		Charge:               res.Request.Charge,
		Electronegativity:    res.Metal.Electronegativity,
		AtomicRadius:         res.Metal.AtomicRadius,
		DElectrons:           res.Metal.DElectrons,
		CostPerKg:            res.Metal.CostPerKg,
		BandGap:              res.Support.BandGap,
		LatticeConstant:      res.Support.LatticeConstant,
		ToleranceFactor:      res.Support.ToleranceFactor,
		Equation:             engine.Equation(),
		PredictedEnergy:      res.PredictedEnergy,
		Stability:            res.Stability.String(),
		Tone:                 string(res.Stability.Tone()),
		PerformanceCostRatio: res.PerformanceCostRatio,
		ChargeOptimal:        res.ChargeVerdict == engine.Optimal,
		ChargeNote:           res.ChargeVerdict.Describe(),
		Promising:            rec.Promising,
		Actions:              rec.Actions,
		Application:          rec.Application,
		NextSteps:            rec.NextSteps,
	}
}

func screeningRow(e screening.Entry, b screening.Basis) ui.ScreeningRow {
	st := e.Stability(b)
	return ui.ScreeningRow{
		System:          e.System,
		Metal:           e.Metal,
		Charge:          e.Charge,
		ObservedEnergy:  e.ObservedEnergy,
		PredictedEnergy: e.Prediction.PredictedEnergy,
		Residual:        e.Residual,
		Stability:       st.String(),
		Tone:            string(st.Tone()),
		Ratio:           e.Ratio(b),
		CostPerKg:       e.Cost(),
		ChargeOptimal:   e.Prediction.ChargeVerdict == engine.Optimal,
		Application:     engine.Application(e.Support),
		LowCost:         engine.LowCostMetal(e.Metal),
	}
}

func screeningRows(entries []screening.Entry, b screening.Basis) []ui.ScreeningRow {
	rows := make([]ui.ScreeningRow, len(entries))
	for i, e := range entries {
		rows[i] = screeningRow(e, b)
	}
	return rows
}

func screeningView(r screening.Report) ui.ScreeningView {
	return ui.ScreeningView{
		ID:       r.ID,
		Basis:    string(r.Basis),
		Sort:     string(r.Sort),
		Rows:     screeningRows(r.Entries, r.Basis),
		Frontier: screeningRows(r.Frontier, r.Basis),
		Skipped:  r.Skipped,
		Fit: ui.FitView{
			N:              r.Fit.N,
			MAE:            r.Fit.MAE,
			RMSE:           r.Fit.RMSE,
			MaxAbs:         r.Fit.MaxAbs,
			MaxAbsSystem:   r.Fit.MaxAbsSystem,
			ClassAgreement: r.Fit.ClassAgreement,
		},
	}
}

func auditView(r audit.Result, source string, minCoverage float64) ui.AuditView {
	return ui.AuditView{
		Source:       source,
		Valid:        r.Valid,
		Errors:       r.Errors,
		Warnings:     r.Warnings,
		Observations: r.Observations,
		WithCharge:   r.WithCharge,
		Coverage:     r.Coverage,
		MinCoverage:  minCoverage,
	}
}

func observationRows(obs []dataset.Observation) []ui.ObservationRow {
	rows := make([]ui.ObservationRow, len(obs))
	for i, o := range obs {
		st := engine.Classify(o.FormationEnergy)
		rows[i] = ui.ObservationRow{
			System:          o.System(),
			FormationEnergy: o.FormationEnergy,
			Charge:          o.MetalCharge,
			Stability:       st.String(),
			Tone:            string(st.Tone()),
		}
	}
	return rows
}

func metalRows() []ui.MetalRow {
	var rows []ui.MetalRow
	for _, m := range reference.Metals() {
		rows = append(rows, ui.MetalRow{
			Symbol:            m.Symbol,
			Electronegativity: m.Electronegativity,
			AtomicRadius:      m.AtomicRadius,
			DElectrons:        m.DElectrons,
			CostPerKg:         m.CostPerKg,
		})
	}
	return rows
}

func supportRows() []ui.SupportRow {
	var rows []ui.SupportRow
	for _, s := range reference.Supports() {
		rows = append(rows, ui.SupportRow{
			Compound:        s.Compound,
			BandGap:         s.BandGap,
			LatticeConstant: s.LatticeConstant,
			ToleranceFactor: s.ToleranceFactor,
		})
	}
	return rows
}

// scatterPoints pairs each charge with the energy of its own observation;
// observations without a charge are left out.
func scatterPoints(obs []dataset.Observation) []ui.ScatterPoint {
	var pts []ui.ScatterPoint
	for _, o := range dataset.WithCharge(obs) {
		st := engine.Classify(o.FormationEnergy)
		pts = append(pts, ui.ScatterPoint{
			Label:  o.System(),
			Charge: *o.MetalCharge,
			Energy: o.FormationEnergy,
			Tone:   string(st.Tone()),
		})
	}
	return pts
}

func browserItems(entries []screening.Entry) []ui.BrowserItem {
	items := make([]ui.BrowserItem, len(entries))
	for i, e := range entries {
		res := e.Prediction
		var detail strings.Builder
		detail.WriteString(ui.Title.Render(e.System))
		detail.WriteString("\n\n")
		detail.WriteString(ui.FormatKeyValue("Bader charge", fmt.Sprintf("%.2f e", e.Charge)))
		detail.WriteString("\n")
		detail.WriteString(ui.FormatKeyValue("Observed ΔE", fmt.Sprintf("%.2f eV", e.ObservedEnergy)))
		detail.WriteString("\n")
		detail.WriteString(ui.FormatKeyValue("Predicted ΔE", ui.FormatEnergy(res.PredictedEnergy)))
		detail.WriteString("\n")
		tone := string(res.Stability.Tone())
		detail.WriteString(ui.FormatKeyValue("Stability", ui.ToneStyle(tone).Render(res.Stability.String())))
		detail.WriteString("\n")
		detail.WriteString(ui.FormatKeyValue("Performance-cost", fmt.Sprintf("%.2f", res.PerformanceCostRatio)))
		detail.WriteString("\n")
		detail.WriteString(ui.FormatKeyValue("Charge", res.ChargeVerdict.Describe()))
		if app := res.Recommendation.Application; app != "" {
			detail.WriteString("\n")
			detail.WriteString(ui.FormatKeyValue("Application", app))
		}

		items[i] = ui.BrowserItem{
			System:  e.System,
			Summary: fmt.Sprintf("Q %.2f e · ΔE %.2f eV · %s", e.Charge, e.ObservedEnergy, e.ObservedStability),
			Detail:  detail.String(),
		}
	}
	return items
}
