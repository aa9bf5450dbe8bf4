package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// ScatterPoint is one (charge, energy) observation on the plot.
type ScatterPoint struct {
	Label  string
	Charge float64
	Energy float64
	Tone   string
}

// ScatterBand is the shaded charge window and its peak marker.
type ScatterBand struct {
	Min, Max, Peak float64
}

const (
	minPlotWidth  = 20
	minPlotHeight = 8
	axisLabelW    = 8
)

type axis struct{ lo, hi float64 }

func (a axis) frac(v float64) float64 { return (v - a.lo) / (a.hi - a.lo) }

func newAxis(lo, hi float64) axis {
	if hi-lo < 1e-9 {
		lo, hi = lo-0.5, hi+0.5
	}
	pad := (hi - lo) * 0.05
	return axis{lo - pad, hi + pad}
}

// RenderScatter draws charge (x) against formation energy (y). The band
// columns are shaded and the peak column is marked. Width and height are
// clamped to a usable minimum.
func RenderScatter(points []ScatterPoint, band ScatterBand, width, height int) string {
	width = max(width, minPlotWidth)
	height = max(height, minPlotHeight)
	if len(points) == 0 {
		return Dim.Render("no charged observations to plot")
	}

	xlo, xhi := band.Min, band.Max
	ylo, yhi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		xlo, xhi = math.Min(xlo, p.Charge), math.Max(xhi, p.Charge)
		ylo, yhi = math.Min(ylo, p.Energy), math.Max(yhi, p.Energy)
	}
	xa, ya := newAxis(xlo, xhi), newAxis(ylo, yhi)

	grid := make([][]string, height)
	bandLo, bandHi := cells(xa.frac(band.Min), width-1), cells(xa.frac(band.Max), width-1)
	peak := cells(xa.frac(band.Peak), width-1)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			switch {
			case c == peak:
				grid[r][c] = Muted.Render("│")
			case c >= bandLo && c <= bandHi:
				grid[r][c] = Dim.Render("·")
			default:
				grid[r][c] = " "
			}
		}
	}
	for _, p := range points {
		c := cells(xa.frac(p.Charge), width-1)
		r := (height - 1) - cells(ya.frac(p.Energy), height-1)
		grid[r][c] = ToneStyle(p.Tone).Render("●")
	}

	var sb strings.Builder
	sb.WriteString(Title.Render("Formation energy vs Bader charge"))
	sb.WriteString("\n\n")
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.2f", ya.hi)
		case height / 2:
			label = fmt.Sprintf("%.2f", (ya.hi+ya.lo)/2)
		case height - 1:
			label = fmt.Sprintf("%.2f", ya.lo)
		}
		sb.WriteString(Dim.Render(fmt.Sprintf("%*s ┤", axisLabelW, label)))
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", axisLabelW+1) + "└" + strings.Repeat("─", width) + "\n")

	lo, hi := fmt.Sprintf("%.2f", xa.lo), fmt.Sprintf("%.2f", xa.hi)
	gap := max(width-len(lo)-len(hi), 1)
	sb.WriteString(Dim.Render(strings.Repeat(" ", axisLabelW+2) + lo + strings.Repeat(" ", gap) + hi))
	sb.WriteString("\n")
	sb.WriteString(Dim.Render(fmt.Sprintf("%*s x: Bader charge (e) · y: ΔE_form (eV)", axisLabelW+1, "")))
	sb.WriteString("\n")
	sb.WriteString(Dim.Render(fmt.Sprintf("%*s · optimal band %.2f-%.2f e   │ peak %.2f e", axisLabelW+1, "", band.Min, band.Max, band.Peak)))
	return sb.String()
}

// ScatterUI prints the scatter plot with a legend.
type ScatterUI struct {
	writer io.Writer
	quiet  bool
}

// NewScatterUI creates a new UI handler for the plot command
func NewScatterUI(w io.Writer, quiet bool) *ScatterUI {
	return &ScatterUI{writer: w, quiet: quiet}
}

// PrintPlot renders the plot followed by one legend line per point.
func (s *ScatterUI) PrintPlot(points []ScatterPoint, band ScatterBand, width, height int) {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.writer, RenderScatter(points, band, width, height))
	fmt.Fprintln(s.writer)
	for _, p := range points {
		fmt.Fprintf(s.writer, "  %s %-12s %s\n", ToneDot(p.Tone), p.Label,
			Dim.Render(fmt.Sprintf("Q %.2f e · ΔE %.2f eV", p.Charge, p.Energy)))
	}
}
