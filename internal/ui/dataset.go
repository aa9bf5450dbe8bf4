package ui

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// ObservationRow mirrors dataset.Observation with its observed class.
type ObservationRow struct {
	System          string
	FormationEnergy float64
	Charge          *float64
	Stability       string
	Tone            string
}

// MetalRow mirrors reference.MetalProperties.
type MetalRow struct {
	Symbol            string
	Electronegativity float64
	AtomicRadius      float64
	DElectrons        int
	CostPerKg         float64
}

// SupportRow mirrors reference.SupportProperties.
type SupportRow struct {
	Compound        string
	BandGap         float64
	LatticeConstant float64
	ToleranceFactor *float64
}

// DatasetUI renders the observation and reference tables.
type DatasetUI struct {
	writer io.Writer
	quiet  bool
}

// NewDatasetUI creates a new UI handler for the dataset command
func NewDatasetUI(w io.Writer, quiet bool) *DatasetUI {
	return &DatasetUI{writer: w, quiet: quiet}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Foreground(ColorSecondary).Bold(true)
			}
			return st
		})
}

// PrintObservations renders the joined dataset.
func (d *DatasetUI) PrintObservations(rows []ObservationRow) {
	if d.quiet {
		return
	}
	t := newTable("#", "System", "ΔE form (eV)", "Q Bader (e)", "Stability")
	charged := 0
	for i, r := range rows {
		charge := Muted.Render("n/a")
		if r.Charge != nil {
			charge = fmt.Sprintf("%.2f", *r.Charge)
			charged++
		}
		t.Row(strconv.Itoa(i+1), r.System, fmt.Sprintf("%.2f", r.FormationEnergy), charge,
			ToneStyle(r.Tone).Render(r.Stability))
	}
	fmt.Fprintln(d.writer, SectionHeader.Render("Observations"))
	fmt.Fprintln(d.writer, t.String())
	fmt.Fprintln(d.writer, Dim.Render(fmt.Sprintf("%d systems, %d with Bader charge", len(rows), charged)))
}

// PrintReference renders the metal and support descriptor tables.
func (d *DatasetUI) PrintReference(metals []MetalRow, supports []SupportRow) {
	if d.quiet {
		return
	}
	mt := newTable("Metal", "χ (Pauling)", "R (Å)", "d e⁻", "Cost")
	for _, m := range metals {
		mt.Row(m.Symbol, fmt.Sprintf("%.2f", m.Electronegativity), fmt.Sprintf("%.2f", m.AtomicRadius),
			strconv.Itoa(m.DElectrons), FormatCost(m.CostPerKg))
	}
	st := newTable("Support", "Band gap (eV)", "Lattice (Å)", "Tolerance")
	for _, s := range supports {
		st.Row(s.Compound, fmt.Sprintf("%.1f", s.BandGap), fmt.Sprintf("%.2f", s.LatticeConstant),
			formatTolerance(s.ToleranceFactor))
	}
	fmt.Fprintln(d.writer, SectionHeader.Render("Metals"))
	fmt.Fprintln(d.writer, mt.String())
	fmt.Fprintln(d.writer, SectionHeader.Render("Supports"))
	fmt.Fprintln(d.writer, st.String())
}
