package reference

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMetal_Known(t *testing.T) {
	m, err := Metal("Ni")
	if err != nil {
		t.Fatalf("Metal(Ni) err = %v", err)
	}
	want := MetalProperties{Symbol: "Ni", Electronegativity: 1.91, AtomicRadius: 1.24, DElectrons: 8, CostPerKg: 20}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Metal(Ni) mismatch:\n%s", diff)
	}
}

func TestMetal_Unknown(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	t.Cleanup(func() { SetLogger(nil) })

	_, err := Metal("Fe")
	if !errors.Is(err, ErrUnknownMetal) {
		t.Fatalf("err = %v, want ErrUnknownMetal", err)
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if le.Key != "Fe" {
		t.Errorf("Key = %q, want Fe", le.Key)
	}
	if !strings.Contains(le.Hint(), "Ni, Co, Pt, Pd, Au, Ag") {
		t.Errorf("Hint() = %q", le.Hint())
	}
	if !strings.Contains(buf.String(), "system=Fe") {
		t.Errorf("expected lookup failure to be logged, got %q", buf.String())
	}
}

func TestMetal_IsCaseSensitive(t *testing.T) {
	if _, err := Metal("ni"); !errors.Is(err, ErrUnknownMetal) {
		t.Fatalf("expected lowercase symbol to be unknown, err = %v", err)
	}
}

func TestSupport_Unknown(t *testing.T) {
	_, err := Support("CeO2")
	if !errors.Is(err, ErrUnknownSupport) {
		t.Fatalf("err = %v, want ErrUnknownSupport", err)
	}
	if errors.Is(err, ErrUnknownMetal) {
		t.Fatalf("support lookup must not report an unknown metal")
	}
}

func TestSupport_ToleranceFactor(t *testing.T) {
	tests := []struct {
		compound string
		want     *float64
	}{
		{"LaFeO3", tolerance(0.96)},
		{"SrTiO3", tolerance(1.00)},
		{"BaZrO3", tolerance(1.01)},
		{"TiO2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.compound, func(t *testing.T) {
			s, err := Support(tt.compound)
			if err != nil {
				t.Fatalf("Support(%s) err = %v", tt.compound, err)
			}
			if diff := cmp.Diff(tt.want, s.ToleranceFactor); diff != "" {
				t.Errorf("ToleranceFactor mismatch:\n%s", diff)
			}
			if s.HasToleranceFactor() != (tt.want != nil) {
				t.Errorf("HasToleranceFactor() = %v", s.HasToleranceFactor())
			}
		})
	}
}

func TestSupport_ReturnsCopy(t *testing.T) {
	s, _ := Support("SrTiO3")
	*s.ToleranceFactor = 42
	again, _ := Support("SrTiO3")
	if *again.ToleranceFactor != 1.00 {
		t.Fatalf("reference table was mutated through a returned value: %v", *again.ToleranceFactor)
	}
}

func TestKeyOrder(t *testing.T) {
	if diff := cmp.Diff([]string{"Ni", "Co", "Pt", "Pd", "Au", "Ag"}, MetalSymbols()); diff != "" {
		t.Errorf("MetalSymbols mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"LaFeO3", "SrTiO3", "BaZrO3", "TiO2"}, SupportCompounds()); diff != "" {
		t.Errorf("SupportCompounds mismatch:\n%s", diff)
	}
	syms := MetalSymbols()
	syms[0] = "Xx"
	if MetalSymbols()[0] != "Ni" {
		t.Errorf("MetalSymbols must return a fresh slice")
	}
	if len(Metals()) != 6 || len(Supports()) != 4 {
		t.Errorf("Metals/Supports sizes = %d/%d", len(Metals()), len(Supports()))
	}
}
