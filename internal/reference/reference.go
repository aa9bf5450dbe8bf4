// Package reference holds the static descriptor tables for the metals and
// perovskite supports known to the screening model.
//
// The tables are populated at init and never mutated. Accessors return copies,
// so callers cannot alter what other callers see.
package reference

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownMetal   = errors.New("unknown metal")
	ErrUnknownSupport = errors.New("unknown support")
)

// MetalProperties are the per-metal descriptors.
type MetalProperties struct {
	Symbol            string  `json:"symbol" yaml:"symbol"`
	Electronegativity float64 `json:"electronegativity" yaml:"electronegativity"` // Pauling scale
	AtomicRadius      float64 `json:"atomicRadius" yaml:"atomicRadius"`           // Å
	DElectrons        int     `json:"dElectrons" yaml:"dElectrons"`
	CostPerKg         float64 `json:"costPerKg" yaml:"costPerKg"` // USD
}

// SupportProperties are the per-support descriptors. ToleranceFactor is nil
// for supports where the Goldschmidt factor does not apply (non-perovskites).
type SupportProperties struct {
	Compound        string   `json:"compound" yaml:"compound"`
	BandGap         float64  `json:"bandGap" yaml:"bandGap"`                 // eV
	LatticeConstant float64  `json:"latticeConstant" yaml:"latticeConstant"` // Å
	ToleranceFactor *float64 `json:"toleranceFactor,omitempty" yaml:"toleranceFactor,omitempty"`
}

// HasToleranceFactor reports whether the tolerance factor is defined.
func (s SupportProperties) HasToleranceFactor() bool { return s.ToleranceFactor != nil }

// LookupError is returned by Metal and Support when the key is absent.
// It wraps ErrUnknownMetal or ErrUnknownSupport.
type LookupError struct {
	Kind  error
	Key   string
	Known []string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v %q", e.Kind, e.Key)
}

func (e *LookupError) Unwrap() error { return e.Kind }

// Hint lists the keys that would have resolved.
func (e *LookupError) Hint() string {
	return "known: " + strings.Join(e.Known, ", ")
}

func tolerance(v float64) *float64 { return &v }

// metalOrder and supportOrder fix the presentation order (dropdown order of
// the interactive form).
var (
	metalOrder   = []string{"Ni", "Co", "Pt", "Pd", "Au", "Ag"}
	supportOrder = []string{"LaFeO3", "SrTiO3", "BaZrO3", "TiO2"}
)

var metals = map[string]MetalProperties{
	"Ni": {Symbol: "Ni", Electronegativity: 1.91, AtomicRadius: 1.24, DElectrons: 8, CostPerKg: 20},
	"Co": {Symbol: "Co", Electronegativity: 1.88, AtomicRadius: 1.25, DElectrons: 7, CostPerKg: 33},
	"Pt": {Symbol: "Pt", Electronegativity: 2.28, AtomicRadius: 1.39, DElectrons: 9, CostPerKg: 32000},
	"Pd": {Symbol: "Pd", Electronegativity: 2.20, AtomicRadius: 1.37, DElectrons: 10, CostPerKg: 62000},
	"Au": {Symbol: "Au", Electronegativity: 2.54, AtomicRadius: 1.44, DElectrons: 10, CostPerKg: 59000},
	"Ag": {Symbol: "Ag", Electronegativity: 1.93, AtomicRadius: 1.44, DElectrons: 10, CostPerKg: 850},
}

var supports = map[string]SupportProperties{
	"LaFeO3": {Compound: "LaFeO3", BandGap: 2.1, LatticeConstant: 5.56, ToleranceFactor: tolerance(0.96)},
	"SrTiO3": {Compound: "SrTiO3", BandGap: 3.2, LatticeConstant: 3.91, ToleranceFactor: tolerance(1.00)},
	"BaZrO3": {Compound: "BaZrO3", BandGap: 3.0, LatticeConstant: 4.19, ToleranceFactor: tolerance(1.01)},
	"TiO2":   {Compound: "TiO2", BandGap: 3.0, LatticeConstant: 4.59},
}

// Metal returns the properties of the metal with the given symbol.
func Metal(symbol string) (MetalProperties, error) {
	m, ok := metals[symbol]
	if !ok {
		logf(symbol, "metal lookup failed")
		return MetalProperties{}, &LookupError{Kind: ErrUnknownMetal, Key: symbol, Known: MetalSymbols()}
	}
	return m, nil
}

// Support returns the properties of the support compound.
func Support(compound string) (SupportProperties, error) {
	s, ok := supports[compound]
	if !ok {
		logf(compound, "support lookup failed")
		return SupportProperties{}, &LookupError{Kind: ErrUnknownSupport, Key: compound, Known: SupportCompounds()}
	}
	if s.ToleranceFactor != nil {
		s.ToleranceFactor = tolerance(*s.ToleranceFactor)
	}
	return s, nil
}

// MetalSymbols returns the metal keys in presentation order.
func MetalSymbols() []string { return slices.Clone(metalOrder) }

// SupportCompounds returns the support keys in presentation order.
func SupportCompounds() []string { return slices.Clone(supportOrder) }

// Metals returns all metal rows in presentation order.
func Metals() []MetalProperties {
	out := make([]MetalProperties, 0, len(metalOrder))
	for _, sym := range metalOrder {
		out = append(out, metals[sym])
	}
	return out
}

// Supports returns all support rows in presentation order.
func Supports() []SupportProperties {
	out := make([]SupportProperties, 0, len(supportOrder))
	for _, c := range supportOrder {
		s, _ := Support(c)
		out = append(out, s)
	}
	return out
}
