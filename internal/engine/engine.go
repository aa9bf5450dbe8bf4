package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/yousci/yousci-cli/internal/dataset"
	"github.com/yousci/yousci-cli/internal/reference"
)

// ErrNonFiniteInput is returned by Evaluate for NaN or infinite charges.
var ErrNonFiniteInput = errors.New("non-finite input")

// Request is one screening question: how stable is Metal on Support at the
// given Bader charge?
type Request struct {
	Metal   string  `json:"metal" yaml:"metal"`
	Support string  `json:"support" yaml:"support"`
	Charge  float64 `json:"charge" yaml:"charge"`
}

// System returns the combined "metal/support" identifier.
func (r Request) System() string { return dataset.SystemID(r.Metal, r.Support) }

// Result is the answer to a Request. It is created per call and carries no
// identity beyond it.
type Result struct {
	Request Request                     `json:"request" yaml:"request"`
	Metal   reference.MetalProperties   `json:"metalProperties" yaml:"metalProperties"`
	Support reference.SupportProperties `json:"supportProperties" yaml:"supportProperties"`

	PredictedEnergy      float64       `json:"predictedEnergy" yaml:"predictedEnergy"`
	Stability            Stability     `json:"stability" yaml:"stability"`
	PerformanceCostRatio float64       `json:"performanceCostRatio" yaml:"performanceCostRatio"`
	ChargeVerdict        ChargeVerdict `json:"chargeVerdict" yaml:"chargeVerdict"`

	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Evaluate resolves the descriptors of req and runs the model. Unknown metals
// or supports abort the request with an error wrapping
// reference.ErrUnknownMetal or reference.ErrUnknownSupport.
func Evaluate(req Request) (Result, error) {
	if math.IsNaN(req.Charge) || math.IsInf(req.Charge, 0) {
		return Result{}, fmt.Errorf("charge %v: %w", req.Charge, ErrNonFiniteInput)
	}
	metal, err := reference.Metal(req.Metal)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate %s: %w", req.System(), err)
	}
	support, err := reference.Support(req.Support)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate %s: %w", req.System(), err)
	}

	energy := Predict(req.Charge, metal.Electronegativity, metal.AtomicRadius)
	stability := Classify(energy)
	res := Result{
		Request:              req,
		Metal:                metal,
		Support:              support,
		PredictedEnergy:      energy,
		Stability:            stability,
		PerformanceCostRatio: PerformanceCostRatio(energy, metal.CostPerKg),
		ChargeVerdict:        CheckCharge(req.Charge),
		Recommendation:       Recommend(req.Metal, req.Support, stability),
	}
	logf(req.System(), "q=%.3f energy=%.5f class=%s pcr=%.4f charge=%s",
		req.Charge, res.PredictedEnergy, res.Stability.Key(), res.PerformanceCostRatio, res.ChargeVerdict)
	return res, nil
}

// EvaluateObservation evaluates an observation at its joined charge. ok is
// false, with a nil error, when the observation has no charge.
func EvaluateObservation(o dataset.Observation) (res Result, ok bool, err error) {
	if !o.HasCharge() {
		return Result{}, false, nil
	}
	res, err = Evaluate(Request{Metal: o.Metal, Support: o.Support, Charge: *o.MetalCharge})
	if err != nil {
		return Result{}, false, err
	}
	return res, true, nil
}
