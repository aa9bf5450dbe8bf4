// Package screening evaluates every charged observation of a dataset with the
// stability model, ranks the systems and extracts the stability/cost
// trade-off frontier.
package screening

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/yousci/yousci-cli/internal/dataset"
	"github.com/yousci/yousci-cli/internal/engine"
)

// Basis selects which formation energy drives ranking and the frontier.
type Basis string

const (
	BasisPredicted Basis = "predicted"
	BasisObserved  Basis = "observed"
)

// SortKey orders a screening report.
type SortKey string

const (
	SortEnergy   SortKey = "energy"   // most negative first
	SortRatio    SortKey = "ratio"    // highest performance-cost ratio first
	SortCharge   SortKey = "charge"   // closest to the optimal charge peak first
	SortResidual SortKey = "residual" // largest |predicted - observed| first
)

// ParseBasis validates a basis name.
func ParseBasis(s string) (Basis, error) {
	switch b := Basis(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BasisPredicted, nil
	case BasisPredicted, BasisObserved:
		return b, nil
	}
	return "", fmt.Errorf("invalid basis %q (expected predicted|observed)", s)
}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortEnergy, nil
	case SortEnergy, SortRatio, SortCharge, SortResidual:
		return k, nil
	}
	return "", fmt.Errorf("invalid sort key %q (expected energy|ratio|charge|residual)", s)
}

// Entry is one screened system.
type Entry struct {
	System  string  `json:"system" yaml:"system"`
	Metal   string  `json:"metal" yaml:"metal"`
	Support string  `json:"support" yaml:"support"`
	Charge  float64 `json:"charge" yaml:"charge"`

	ObservedEnergy    float64          `json:"observedEnergy" yaml:"observedEnergy"`
	ObservedStability engine.Stability `json:"observedStability" yaml:"observedStability"`
	ObservedRatio     float64          `json:"observedRatio" yaml:"observedRatio"`

	Prediction engine.Result `json:"prediction" yaml:"prediction"`
	// Residual is predicted minus observed energy, in eV.
	Residual float64 `json:"residual" yaml:"residual"`
}

// Energy returns the formation energy on the given basis.
func (e Entry) Energy(b Basis) float64 {
	if b == BasisObserved {
		return e.ObservedEnergy
	}
	return e.Prediction.PredictedEnergy
}

// Ratio returns the performance-cost ratio on the given basis.
func (e Entry) Ratio(b Basis) float64 {
	if b == BasisObserved {
		return e.ObservedRatio
	}
	return e.Prediction.PerformanceCostRatio
}

// Stability returns the class on the given basis.
func (e Entry) Stability(b Basis) engine.Stability {
	if b == BasisObserved {
		return e.ObservedStability
	}
	return e.Prediction.Stability
}

// Cost is the metal cost per kg.
func (e Entry) Cost() float64 { return e.Prediction.Metal.CostPerKg }

// FitStats compares predictions with the observed energies.
type FitStats struct {
	N            int     `json:"n" yaml:"n"`
	MAE          float64 `json:"mae" yaml:"mae"`
	RMSE         float64 `json:"rmse" yaml:"rmse"`
	MaxAbs       float64 `json:"maxAbs" yaml:"maxAbs"`
	MaxAbsSystem string  `json:"maxAbsSystem,omitempty" yaml:"maxAbsSystem,omitempty"`
	// ClassAgreement is the share of systems whose predicted class equals
	// the observed class, 0..1.
	ClassAgreement float64 `json:"classAgreement" yaml:"classAgreement"`
}

// Options control Screen.
type Options struct {
	Basis Basis
	Sort  SortKey
	// MinStability drops entries less stable than the class on Basis.
	MinStability *engine.Stability
	// Top keeps the first Top entries after sorting; 0 keeps all.
	Top int
}

// Report is the outcome of Screen.
type Report struct {
	ID       string   `json:"id" yaml:"id"`
	Basis    Basis    `json:"basis" yaml:"basis"`
	Sort     SortKey  `json:"sort" yaml:"sort"`
	Entries  []Entry  `json:"entries" yaml:"entries"`
	Frontier []Entry  `json:"frontier" yaml:"frontier"`
	Skipped  []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Fit      FitStats `json:"fit" yaml:"fit"`
}

// Screen evaluates every observation that carries a charge. Observations
// without a charge are listed in Skipped. An observation whose metal or
// support is unknown fails the whole screen.
func Screen(obs []dataset.Observation, opts Options) (Report, error) {
	if opts.Basis == "" {
		opts.Basis = BasisPredicted
	}
	if opts.Sort == "" {
		opts.Sort = SortEnergy
	}

	report := Report{
		ID:    "urn:uuid:" + uuid.New().String(),
		Basis: opts.Basis,
		Sort:  opts.Sort,
	}

	var all []Entry
	for _, o := range obs {
		res, ok, err := engine.EvaluateObservation(o)
		if err != nil {
			return Report{}, fmt.Errorf("screen: %w", err)
		}
		if !ok {
			report.Skipped = append(report.Skipped, o.System())
			logf(o.System(), "skipped: no charge")
			continue
		}
		all = append(all, Entry{
			System:            o.System(),
			Metal:             o.Metal,
			Support:           o.Support,
			Charge:            *o.MetalCharge,
			ObservedEnergy:    o.FormationEnergy,
			ObservedStability: engine.Classify(o.FormationEnergy),
			ObservedRatio:     engine.PerformanceCostRatio(o.FormationEnergy, res.Metal.CostPerKg),
			Prediction:        res,
			Residual:          res.PredictedEnergy - o.FormationEnergy,
		})
	}

	report.Fit = Fit(all)
	report.Frontier = Frontier(all, opts.Basis)

	var kept []Entry
	for _, e := range all {
		if opts.MinStability != nil && !e.Stability(opts.Basis).AtLeast(*opts.MinStability) {
			continue
		}
		kept = append(kept, e)
	}
	Sort(kept, opts.Sort, opts.Basis)
	if opts.Top > 0 && len(kept) > opts.Top {
		kept = kept[:opts.Top]
	}
	report.Entries = kept

	logf("", "screened=%d kept=%d skipped=%d frontier=%d", len(all), len(kept), len(report.Skipped), len(report.Frontier))
	return report, nil
}

// Sort orders entries in place by key on basis b. Ties fall back to the
// system identifier so the order is deterministic.
func Sort(entries []Entry, key SortKey, b Basis) {
	slices.SortStableFunc(entries, func(x, y Entry) int {
		var c int
		switch key {
		case SortRatio:
			c = cmp.Compare(y.Ratio(b), x.Ratio(b))
		case SortCharge:
			c = cmp.Compare(math.Abs(x.Charge-engine.OptimalChargePeak), math.Abs(y.Charge-engine.OptimalChargePeak))
		case SortResidual:
			c = cmp.Compare(math.Abs(y.Residual), math.Abs(x.Residual))
		default:
			c = cmp.Compare(x.Energy(b), y.Energy(b))
		}
		if c != 0 {
			return c
		}
		return strings.Compare(x.System, y.System)
	})
}

// Fit computes error statistics of the predictions over entries.
func Fit(entries []Entry) FitStats {
	var st FitStats
	if len(entries) == 0 {
		return st
	}
	var sumAbs, sumSq float64
	agree := 0
	for _, e := range entries {
		a := math.Abs(e.Residual)
		sumAbs += a
		sumSq += e.Residual * e.Residual
		if a > st.MaxAbs {
			st.MaxAbs = a
			st.MaxAbsSystem = e.System
		}
		if e.Prediction.Stability == e.ObservedStability {
			agree++
		}
	}
	n := float64(len(entries))
	st.N = len(entries)
	st.MAE = sumAbs / n
	st.RMSE = math.Sqrt(sumSq / n)
	st.ClassAgreement = float64(agree) / n
	return st
}
