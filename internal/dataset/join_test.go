package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func charge(v float64) *float64 { return &v }

func TestSplitSystem(t *testing.T) {
	tests := []struct {
		id            string
		metal, suppor string
		ok            bool
	}{
		{"Ni/SrTiO3", "Ni", "SrTiO3", true},
		{" Pt / BaZrO3 ", "Pt", "BaZrO3", true},
		{"Ni/Sr/TiO3", "Ni", "Sr/TiO3", true},
		{"NiSrTiO3", "", "", false},
		{"/SrTiO3", "", "", false},
		{"Ni/", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m, s, ok := SplitSystem(tt.id)
			if m != tt.metal || s != tt.suppor || ok != tt.ok {
				t.Fatalf("SplitSystem(%q) = (%q, %q, %v), want (%q, %q, %v)", tt.id, m, s, ok, tt.metal, tt.suppor, tt.ok)
			}
		})
	}
}

func TestJoin_LeftJoinKeepsEveryFormationRecord(t *testing.T) {
	formation := []FormationRecord{
		{"Ni", "SrTiO3", -1.95},
		{"Ni", "BaZrO3", -2.05},
		{"Pt", "TiO2", -3.40},
	}
	charges := []ChargeRecord{
		{"Pt/TiO2", 0.62},
		{"Ni/SrTiO3", 0.35},
	}

	got, report := Join(formation, charges)
	want := []Observation{
		{Metal: "Ni", Support: "SrTiO3", FormationEnergy: -1.95, MetalCharge: charge(0.35)},
		{Metal: "Ni", Support: "BaZrO3", FormationEnergy: -2.05},
		{Metal: "Pt", Support: "TiO2", FormationEnergy: -3.40, MetalCharge: charge(0.62)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Join mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Ni/BaZrO3"}, report.MissingCharge); diff != "" {
		t.Errorf("MissingCharge mismatch:\n%s", diff)
	}
	if !report.Clean() {
		t.Errorf("expected clean report, got %+v", report)
	}
}

func TestJoin_MissingChargeIsNilNotZero(t *testing.T) {
	got, _ := Join([]FormationRecord{{"Ag", "TiO2", -1.12}}, nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].MetalCharge != nil || got[0].HasCharge() {
		t.Fatalf("MetalCharge = %v, want nil", got[0].MetalCharge)
	}
}

func TestJoin_DuplicateFirstMatchWinsAndIsSurfaced(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	t.Cleanup(func() { SetLogger(nil) })

	charges := []ChargeRecord{
		{"Ni/SrTiO3", 0.35},
		{"Ni/SrTiO3", 0.50},
		{" Ni / SrTiO3", 0.55},
	}
	got, report := Join([]FormationRecord{{"Ni", "SrTiO3", -1.95}}, charges)

	if *got[0].MetalCharge != 0.35 {
		t.Fatalf("MetalCharge = %v, want first match 0.35", *got[0].MetalCharge)
	}
	want := []Duplicate{{System: "Ni/SrTiO3", Kept: 0.35, Ignored: []float64{0.50, 0.55}}}
	if diff := cmp.Diff(want, report.Duplicates); diff != "" {
		t.Fatalf("Duplicates mismatch:\n%s", diff)
	}
	if report.Clean() {
		t.Errorf("report with duplicates must not be clean")
	}
	if strings.Count(buf.String(), "duplicate charge record") != 2 {
		t.Errorf("expected two duplicate log lines, got %q", buf.String())
	}
}

func TestJoin_MalformedAndUnmatched(t *testing.T) {
	charges := []ChargeRecord{
		{"PtSrTiO3", 0.68},
		{"Pt/SrTiO3", 0.68},
		{"Ni/SrTiO3", 0.35},
	}
	_, report := Join([]FormationRecord{{"Ni", "SrTiO3", -1.95}}, charges)

	if diff := cmp.Diff([]string{"PtSrTiO3"}, report.Malformed); diff != "" {
		t.Errorf("Malformed mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Pt/SrTiO3"}, report.Unmatched); diff != "" {
		t.Errorf("Unmatched mismatch:\n%s", diff)
	}
}

func TestJoin_TrimsFormationNames(t *testing.T) {
	formation := []FormationRecord{{" Ni", "SrTiO3 ", -1.95}}
	obs, report := Join(formation, []ChargeRecord{{"Ni/SrTiO3", 0.35}})

	if len(obs) != 1 || obs[0].MetalCharge == nil {
		t.Fatalf("expected padded formation record to match, got %+v", obs)
	}
	if obs[0].Metal != "Ni" || obs[0].Support != "SrTiO3" {
		t.Errorf("names not trimmed: metal=%q support=%q", obs[0].Metal, obs[0].Support)
	}
	if *obs[0].MetalCharge != 0.35 {
		t.Errorf("MetalCharge = %v, want 0.35", *obs[0].MetalCharge)
	}
	if len(report.Unmatched) != 0 || len(report.MissingCharge) != 0 {
		t.Errorf("expected clean match, got %+v", report)
	}
	if formation[0].Metal != " Ni" || formation[0].Support != "SrTiO3 " {
		t.Errorf("formation input mutated: %+v", formation[0])
	}
}

func TestJoin_IsIdempotentAndDoesNotMutateInputs(t *testing.T) {
	formation := Formation()
	charges := Charges()
	formationBefore := Formation()
	chargesBefore := Charges()

	first, firstReport := Join(formation, charges)
	second, secondReport := Join(formation, charges)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("joins differ:\n%s", diff)
	}
	if diff := cmp.Diff(firstReport, secondReport); diff != "" {
		t.Fatalf("reports differ:\n%s", diff)
	}
	if diff := cmp.Diff(formationBefore, formation); diff != "" {
		t.Errorf("formation input mutated:\n%s", diff)
	}
	if diff := cmp.Diff(chargesBefore, charges); diff != "" {
		t.Errorf("charge input mutated:\n%s", diff)
	}

	*first[0].MetalCharge = 99
	if *second[0].MetalCharge == 99 {
		t.Errorf("observations from separate joins share charge storage")
	}
}

func TestLoad_BuiltInDataset(t *testing.T) {
	obs, report := Load()
	if len(obs) != 20 {
		t.Fatalf("len(obs) = %d, want 20", len(obs))
	}
	if obs[0].System() != "Pd/SrTiO3" || *obs[0].MetalCharge != 0.45 {
		t.Errorf("first row = %s %v", obs[0].System(), obs[0].MetalCharge)
	}
	if diff := cmp.Diff([]string{"Ni/BaZrO3"}, report.MissingCharge); diff != "" {
		t.Errorf("MissingCharge mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Pt/SrTiO3"}, report.Unmatched); diff != "" {
		t.Errorf("Unmatched mismatch:\n%s", diff)
	}
	if len(report.Duplicates) != 0 || len(report.Malformed) != 0 {
		t.Errorf("unexpected findings: %+v", report)
	}
	if got := len(WithCharge(obs)); got != 19 {
		t.Errorf("WithCharge = %d rows, want 19", got)
	}
}
