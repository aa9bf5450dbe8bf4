package dataset

import "strings"

type key struct{ metal, support string }

// Duplicate describes several charge records sharing one (metal, support)
// key. Kept is the first record in input order; Ignored lists the rest.
type Duplicate struct {
	System  string    `json:"system" yaml:"system"`
	Kept    float64   `json:"kept" yaml:"kept"`
	Ignored []float64 `json:"ignored" yaml:"ignored"`
}

// JoinReport collects the data-quality findings of a Join.
type JoinReport struct {
	// Duplicates are charge keys that appeared more than once.
	Duplicates []Duplicate `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	// Malformed are charge identifiers that could not be split.
	Malformed []string `json:"malformed,omitempty" yaml:"malformed,omitempty"`
	// Unmatched are charge systems with no formation record.
	Unmatched []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
	// MissingCharge are formation systems that got no charge.
	MissingCharge []string `json:"missingCharge,omitempty" yaml:"missingCharge,omitempty"`
}

// Clean reports whether the join found nothing to surface. Missing charges
// are a valid state and do not count.
func (r JoinReport) Clean() bool {
	return len(r.Duplicates) == 0 && len(r.Malformed) == 0 && len(r.Unmatched) == 0
}

// Join left-joins formation records with charge records on (metal, support).
//
// Every formation record is kept, in order. A formation record without a
// matching charge gets a nil MetalCharge. When several charge records share a
// key the first one wins and the rest are reported as a Duplicate. Formation
// metal and support names are trimmed before matching, the same way charge
// identifiers are. Neither input slice is modified.
func Join(formation []FormationRecord, charges []ChargeRecord) ([]Observation, JoinReport) {
	var report JoinReport

	index := make(map[key]float64, len(charges))
	dupAt := make(map[key]int)
	var order []key
	for _, c := range charges {
		metal, support, ok := SplitSystem(c.System)
		if !ok {
			report.Malformed = append(report.Malformed, c.System)
			logf(c.System, "malformed charge identifier")
			continue
		}
		k := key{metal, support}
		kept, seen := index[k]
		if !seen {
			index[k] = c.MetalCharge
			order = append(order, k)
			continue
		}
		i, ok := dupAt[k]
		if !ok {
			report.Duplicates = append(report.Duplicates, Duplicate{System: SystemID(metal, support), Kept: kept})
			i = len(report.Duplicates) - 1
			dupAt[k] = i
		}
		report.Duplicates[i].Ignored = append(report.Duplicates[i].Ignored, c.MetalCharge)
		logf(SystemID(metal, support), "duplicate charge record %.2f ignored, keeping %.2f", c.MetalCharge, kept)
	}

	used := make(map[key]bool, len(index))
	out := make([]Observation, 0, len(formation))
	for _, f := range formation {
		metal, support := strings.TrimSpace(f.Metal), strings.TrimSpace(f.Support)
		obs := Observation{Metal: metal, Support: support, FormationEnergy: f.FormationEnergy}
		k := key{metal, support}
		if q, ok := index[k]; ok {
			obs.MetalCharge = &q
			used[k] = true
		} else {
			report.MissingCharge = append(report.MissingCharge, obs.System())
		}
		out = append(out, obs)
	}

	for _, k := range order {
		if !used[k] {
			report.Unmatched = append(report.Unmatched, SystemID(k.metal, k.support))
		}
	}
	return out, report
}
