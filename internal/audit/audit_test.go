package audit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yousci/yousci-cli/internal/dataset"
)

func TestAudit_BuiltInDataset(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	t.Cleanup(func() { SetLogger(nil) })

	r := Audit(dataset.Formation(), dataset.Charges(), Options{})
	if !r.Valid {
		t.Fatalf("expected built-in dataset to pass, errors: %v", r.Errors)
	}
	if r.Observations != 20 || r.WithCharge != 19 {
		t.Errorf("observations=%d withCharge=%d", r.Observations, r.WithCharge)
	}
	if len(r.Warnings) != 2 {
		t.Fatalf("warnings = %v", r.Warnings)
	}
	if !strings.Contains(r.Warnings[0], "Pt/SrTiO3") || !strings.Contains(r.Warnings[1], "Ni/BaZrO3") {
		t.Errorf("warnings = %v", r.Warnings)
	}
	if !strings.Contains(buf.String(), "coverage=95.0%") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestAudit_StrictPromotesWarnings(t *testing.T) {
	r := Audit(dataset.Formation(), dataset.Charges(), Options{Strict: true})
	if r.Valid {
		t.Fatalf("strict audit should fail on warnings")
	}
	if len(r.Errors) != 2 || len(r.Warnings) != 0 {
		t.Errorf("errors=%v warnings=%v", r.Errors, r.Warnings)
	}
}

func TestAudit_DuplicatesMalformedAndUnknownKeys(t *testing.T) {
	formation := []dataset.FormationRecord{
		{Metal: "Ni", Support: "SrTiO3", FormationEnergy: -1.95},
		{Metal: "Fe", Support: "CeO2", FormationEnergy: -1.0},
		{Metal: "Fe", Support: "CeO2", FormationEnergy: -1.1},
	}
	charges := []dataset.ChargeRecord{
		{System: "Ni/SrTiO3", MetalCharge: 0.35},
		{System: "Ni/SrTiO3", MetalCharge: 0.40},
		{System: "NiSrTiO3", MetalCharge: 0.40},
	}
	r := Audit(formation, charges, Options{})
	if r.Valid {
		t.Fatalf("expected audit to fail")
	}
	joined := strings.Join(r.Errors, "\n")
	for _, want := range []string{
		"Ni/SrTiO3: 2 charge records, first (0.35 e) used",
		`charge identifier "NiSrTiO3"`,
		`Fe/CeO2: unknown metal "Fe"`,
		`Fe/CeO2: unknown support "CeO2"`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors missing %q:\n%s", want, joined)
		}
	}
	// repeated rows report each unresolved key once
	if strings.Count(joined, `unknown metal "Fe"`) != 1 {
		t.Errorf("unknown metal reported more than once:\n%s", joined)
	}
}

func TestAudit_MinCoverage(t *testing.T) {
	formation := []dataset.FormationRecord{
		{Metal: "Ni", Support: "SrTiO3", FormationEnergy: -1.95},
		{Metal: "Ni", Support: "TiO2", FormationEnergy: -1.80},
	}
	charges := []dataset.ChargeRecord{{System: "Ni/SrTiO3", MetalCharge: 0.35}}

	r := Audit(formation, charges, Options{MinCoverage: 0.9})
	if r.Valid || r.Coverage != 0.5 {
		t.Fatalf("valid=%v coverage=%v", r.Valid, r.Coverage)
	}
	r = Audit(formation, charges, Options{MinCoverage: 0.5})
	if !r.Valid {
		t.Fatalf("coverage at the minimum should pass: %v", r.Errors)
	}
}

func TestAudit_Empty(t *testing.T) {
	r := Audit(nil, nil, Options{MinCoverage: 0.5})
	if r.Coverage != 0 || r.Valid {
		t.Fatalf("empty audit = %+v", r)
	}
}

func TestFormatSummary(t *testing.T) {
	r := Audit(dataset.Formation(), dataset.Charges(), Options{})
	want := "Audit: PASSED | Observations: 20 | Charge coverage: 95.0% | Errors: 0 | Warnings: 2"
	if got := FormatSummary(r); got != want {
		t.Fatalf("FormatSummary = %q, want %q", got, want)
	}
}
