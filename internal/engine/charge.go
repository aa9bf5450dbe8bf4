package engine

import "fmt"

// Optimal charge-transfer window in e, both ends inclusive.
const (
	OptimalChargeMin  = 0.45
	OptimalChargeMax  = 0.60
	OptimalChargePeak = 0.55
)

// ChargeVerdict places a metal charge relative to the optimal window. It is
// independent of the stability class.
type ChargeVerdict int

const (
	Optimal ChargeVerdict = iota
	BelowOptimal
	AboveOptimal
)

var verdictNames = [...]string{"Optimal", "BelowOptimal", "AboveOptimal"}

// CheckCharge compares charge with [OptimalChargeMin, OptimalChargeMax].
func CheckCharge(charge float64) ChargeVerdict {
	switch {
	case charge < OptimalChargeMin:
		return BelowOptimal
	case charge > OptimalChargeMax:
		return AboveOptimal
	default:
		return Optimal
	}
}

func (v ChargeVerdict) String() string {
	if v < Optimal || v > AboveOptimal {
		return fmt.Sprintf("ChargeVerdict(%d)", int(v))
	}
	return verdictNames[v]
}

// Describe is the human wording of the verdict.
func (v ChargeVerdict) Describe() string {
	switch v {
	case Optimal:
		return fmt.Sprintf("optimal (%.2f-%.2f e range)", OptimalChargeMin, OptimalChargeMax)
	case BelowOptimal:
		return fmt.Sprintf("below optimal (< %.2f e)", OptimalChargeMin)
	default:
		return fmt.Sprintf("above optimal (> %.2f e)", OptimalChargeMax)
	}
}

func (v ChargeVerdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *ChargeVerdict) UnmarshalText(b []byte) error {
	for i, n := range verdictNames {
		if n == string(b) {
			*v = ChargeVerdict(i)
			return nil
		}
	}
	return fmt.Errorf("unknown charge verdict %q", string(b))
}
