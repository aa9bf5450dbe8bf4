// Package dataset holds the built-in observation records and the left join
// that merges formation energies with Bader charges.
package dataset

import (
	"slices"
	"strings"
)

// SystemSeparator splits a combined "metal/support" identifier.
const SystemSeparator = "/"

// FormationRecord is one literature formation (adhesion) energy.
type FormationRecord struct {
	Metal           string  `json:"metal" yaml:"metal"`
	Support         string  `json:"support" yaml:"support"`
	FormationEnergy float64 `json:"formationEnergy" yaml:"formationEnergy"` // eV
}

// ChargeRecord is one Bader charge keyed by a combined identifier such as
// "Ni/SrTiO3".
type ChargeRecord struct {
	System      string  `json:"system" yaml:"system"`
	MetalCharge float64 `json:"metalCharge" yaml:"metalCharge"` // e
}

// Observation is a joined record. MetalCharge is nil when no charge record
// matched the (metal, support) pair.
type Observation struct {
	Metal           string   `json:"metal" yaml:"metal"`
	Support         string   `json:"support" yaml:"support"`
	FormationEnergy float64  `json:"formationEnergy" yaml:"formationEnergy"`
	MetalCharge     *float64 `json:"metalCharge,omitempty" yaml:"metalCharge,omitempty"`
}

// System returns the combined "metal/support" identifier.
func (o Observation) System() string { return SystemID(o.Metal, o.Support) }

// HasCharge reports whether a charge record was joined.
func (o Observation) HasCharge() bool { return o.MetalCharge != nil }

// SystemID builds the combined identifier.
func SystemID(metal, support string) string { return metal + SystemSeparator + support }

// SplitSystem splits id on the first separator. ok is false when the
// separator is missing or either side is empty.
func SplitSystem(id string) (metal, support string, ok bool) {
	metal, support, found := strings.Cut(id, SystemSeparator)
	metal, support = strings.TrimSpace(metal), strings.TrimSpace(support)
	if !found || metal == "" || support == "" {
		return "", "", false
	}
	return metal, support, true
}

// Formation returns a copy of the built-in formation records.
func Formation() []FormationRecord { return slices.Clone(formationRecords) }

// Charges returns a copy of the built-in charge records.
func Charges() []ChargeRecord { return slices.Clone(chargeRecords) }

// Load joins the built-in records.
func Load() ([]Observation, JoinReport) {
	return Join(formationRecords, chargeRecords)
}

// WithCharge filters obs down to the rows that carry a charge.
func WithCharge(obs []Observation) []Observation {
	var out []Observation
	for _, o := range obs {
		if o.HasCharge() {
			out = append(out, o)
		}
	}
	return out
}

var formationRecords = []FormationRecord{
	{"Pd", "SrTiO3", -2.45},
	{"Ni", "LaFeO3", -1.89},
	{"Ag", "TiO2", -1.12},
	{"Pt", "BaZrO3", -3.10},
	{"Au", "LaFeO3", -1.55},
	{"Co", "SrTiO3", -2.15},
	{"Ni", "SrTiO3", -1.95},
	{"Pd", "LaFeO3", -2.30},
	{"Pt", "TiO2", -3.40},
	{"Ag", "BaZrO3", -1.25},
	{"Ni", "BaZrO3", -2.05},
	{"Co", "LaFeO3", -2.10},
	{"Au", "SrTiO3", -1.40},
	{"Pd", "BaZrO3", -2.55},
	{"Pt", "LaFeO3", -3.25},
	{"Ag", "SrTiO3", -1.15},
	{"Ni", "TiO2", -1.80},
	{"Co", "BaZrO3", -2.20},
	{"Au", "TiO2", -1.35},
	{"Pd", "TiO2", -2.40},
}

var chargeRecords = []ChargeRecord{
	{"Pd/SrTiO3", 0.45},
	{"Ni/LaFeO3", 0.32},
	{"Ag/TiO2", 0.15},
	{"Pt/BaZrO3", 0.58},
	{"Au/LaFeO3", 0.22},
	{"Co/SrTiO3", 0.38},
	{"Ni/SrTiO3", 0.35},
	{"Pd/LaFeO3", 0.42},
	{"Pt/TiO2", 0.62},
	{"Ag/BaZrO3", 0.18},
	{"Co/LaFeO3", 0.40},
	{"Au/SrTiO3", 0.25},
	{"Pd/BaZrO3", 0.48},
	{"Pt/LaFeO3", 0.65},
	{"Ag/SrTiO3", 0.20},
	{"Ni/TiO2", 0.38},
	{"Co/BaZrO3", 0.42},
	{"Au/TiO2", 0.28},
	{"Pd/TiO2", 0.52},
	{"Pt/SrTiO3", 0.68},
}
