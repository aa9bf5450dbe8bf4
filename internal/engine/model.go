// Package engine evaluates the fixed-coefficient stability model and the
// judgments derived from it: stability class, performance-cost ratio and the
// optimal charge-transfer window.
//
// All functions are pure. Evaluate is the request/response entry point used
// by the presentation layer.
package engine

import "fmt"

// Model coefficients of
//
//	ΔE_form = α + β1·Q_Bader + β2·χ + β3·R_atomic
//
// fitted offline (R² = 0.9919). They are constants, not trained at runtime.
const (
	Intercept      = 0.335  // α, eV
	ChargeCoef     = -4.578 // β1, eV per e
	ElectronegCoef = -0.183 // β2, eV per Pauling unit
	RadiusCoef     = -0.277 // β3, eV per Å
	ModelRSquared  = 0.9919
)

const modelEquationFmt = "ΔE_form = %.3f %+.3f·Q_Bader %+.3f·χ %+.3f·R_atomic"

// Predict returns the predicted formation energy in eV for a metal charge
// (e), Pauling electronegativity and atomic radius (Å). Inputs are not
// checked for physical plausibility.
func Predict(charge, electronegativity, atomicRadius float64) float64 {
	// Conversions round each product, so no platform fuses them into FMAs.
	return Intercept +
		float64(ChargeCoef*charge) +
		float64(ElectronegCoef*electronegativity) +
		float64(RadiusCoef*atomicRadius)
}

// Equation renders the model with its coefficients.
func Equation() string {
	return fmt.Sprintf(modelEquationFmt, Intercept, ChargeCoef, ElectronegCoef, RadiusCoef)
}
