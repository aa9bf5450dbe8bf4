package engine

// Recommendation is the follow-up advice attached to a Result.
type Recommendation struct {
	Promising   bool     `json:"promising" yaml:"promising"`
	Actions     []string `json:"actions" yaml:"actions"`
	Application string   `json:"application,omitempty" yaml:"application,omitempty"`
	NextSteps   []string `json:"nextSteps" yaml:"nextSteps"`
}

// Application returns the target application of a support, or "" when none
// is known.
func Application(support string) string {
	switch support {
	case "SrTiO3", "TiO2":
		return "Water splitting (OER)"
	case "BaZrO3":
		return "High-temperature fuel cells"
	case "LaFeO3":
		return "CO₂ reduction"
	}
	return ""
}

// LowCostMetal reports whether metal is one of the earth-abundant
// alternatives to Pt/Pd.
func LowCostMetal(metal string) bool { return metal == "Ni" || metal == "Co" }

// Recommend builds the advice for a system with the given class.
func Recommend(metal, support string, s Stability) Recommendation {
	rec := Recommendation{
		Promising: s.Promising(),
		NextSteps: []string{
			"Experimental synthesis of " + metal + "/" + support,
			"XRD/TEM characterization",
			"Electrochemical testing in relevant conditions",
		},
	}
	if !rec.Promising {
		rec.Actions = []string{
			"Consider alternative metal/support combination",
			"Adjust synthesis parameters to increase charge transfer",
		}
		return rec
	}

	rec.Actions = []string{
		"This system is promising for experimental validation",
		"Consider socketed geometry for enhanced stability",
	}
	if LowCostMetal(metal) {
		rec.Actions = append(rec.Actions, "Cost-effective alternative to Pt/Pd (about 90% savings vs Pt-based catalysts)")
	}
	rec.Application = Application(support)
	return rec
}
