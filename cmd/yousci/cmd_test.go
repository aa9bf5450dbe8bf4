package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/dataset"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func TestPredict_JSON(t *testing.T) {
	out, err := execute(t, "predict", "--metal", "Ni", "--support", "SrTiO3", "--charge", "0.35", "--format", "json")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	var got struct {
		PredictedEnergy float64 `json:"predictedEnergy"`
		Stability       string  `json:"stability"`
		ChargeVerdict   string  `json:"chargeVerdict"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if math.Abs(got.PredictedEnergy-(-1.96031)) > 1e-9 {
		t.Fatalf("predictedEnergy = %v", got.PredictedEnergy)
	}
	if got.Stability != "Medium" || got.ChargeVerdict != "BelowOptimal" {
		t.Fatalf("stability = %q, chargeVerdict = %q", got.Stability, got.ChargeVerdict)
	}
}

func TestPredict_TextReport(t *testing.T) {
	out, err := execute(t, "predict", "-m", "Co", "-s", "BaZrO3", "-q", "0.58")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	for _, want := range []string{"Prediction for Co/BaZrO3", "Very High", "optimal (0.45-0.60 e range)", "High-temperature fuel cells"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q.\nGot:\n%s", want, out)
		}
	}
}

func TestPredict_QuietPrintsNothing(t *testing.T) {
	out, err := execute(t, "predict", "-m", "Ni", "-s", "TiO2", "-q", "0.5", "--log-level", "quiet")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if out != "" {
		t.Fatalf("quiet output = %q", out)
	}
}

func TestPredict_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown metal", []string{"predict", "-m", "Fe", "-s", "TiO2", "-q", "0.4"}, "known: Ni, Co, Pt, Pd, Au, Ag"},
		{"unknown support", []string{"predict", "-m", "Ni", "-s", "MgO", "-q", "0.4"}, "known: LaFeO3, SrTiO3, BaZrO3, TiO2"},
		{"bad format", []string{"predict", "-m", "Ni", "-s", "TiO2", "-q", "0.4", "--format", "xml"}, "invalid --format"},
		{"missing inputs", []string{"predict", "-m", "Ni"}, "--metal, --support and --charge are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !apperr.IsUser(err) {
				t.Fatalf("expected user error, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestPredict_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "predict", "-m", "Ni", "-s", "TiO2", "-q", "0.4", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "invalid --log-level") {
		t.Fatalf("err = %v", err)
	}
}

type screenDoc struct {
	Entries []struct {
		System string `json:"system"`
	} `json:"entries"`
	Frontier []struct {
		System string `json:"system"`
	} `json:"frontier"`
	Skipped []string `json:"skipped"`
	Fit     struct {
		N int `json:"n"`
	} `json:"fit"`
}

func TestScreen_JSON(t *testing.T) {
	out, err := execute(t, "screen", "--format", "json", "--top", "3")
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	var doc screenDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(doc.Entries))
	}
	if doc.Fit.N != 19 || len(doc.Skipped) != 1 || doc.Skipped[0] != "Ni/BaZrO3" {
		t.Fatalf("fit.n = %d, skipped = %v", doc.Fit.N, doc.Skipped)
	}
	var frontier []string
	for _, f := range doc.Frontier {
		frontier = append(frontier, f.System)
	}
	if strings.Join(frontier, ",") != "Ni/TiO2,Co/BaZrO3,Pt/LaFeO3" {
		t.Fatalf("frontier = %v", frontier)
	}
}

func TestScreen_TextWithShortlist(t *testing.T) {
	out, err := execute(t, "screen", "--sort", "ratio", "--shortlist", "3")
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	for _, want := range []string{"Catalyst Screening Report", "sorted by ratio", "Top 3 systems for experimental follow-up", "Ni/SrTiO3", "Co/BaZrO3", "Pt/TiO2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestScreen_InvalidOptions(t *testing.T) {
	for _, args := range [][]string{
		{"screen", "--sort", "price"},
		{"screen", "--basis", "guessed"},
		{"screen", "--min-stability", "great"},
		{"screen", "--top", "-1"},
	} {
		if _, err := execute(t, args...); !apperr.IsUser(err) {
			t.Fatalf("%v: expected user error, got %v", args, err)
		}
	}
}

func TestAudit(t *testing.T) {
	out, err := execute(t, "audit", "--plain-summary")
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	want := "Audit: PASSED | Observations: 20 | Charge coverage: 95.0% | Errors: 0 | Warnings: 2"
	if strings.TrimSpace(out) != want {
		t.Fatalf("summary = %q, want %q", strings.TrimSpace(out), want)
	}

	if _, err := execute(t, "audit", "--strict", "--log-level", "quiet"); err == nil {
		t.Fatalf("strict audit of the built-in dataset should fail")
	}
	if _, err := execute(t, "audit", "--min-coverage", "1.5"); !apperr.IsUser(err) {
		t.Fatalf("expected user error for min-coverage, got %v", err)
	}
}

func TestDatasetExportAndReuse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "catalysts.yaml")

	out, err := execute(t, "dataset", "--output", path)
	if err != nil {
		t.Fatalf("dataset export: %v", err)
	}
	if !strings.Contains(out, "Exported 20 formation and 20 charge records") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = execute(t, "screen", "--dataset", path, "--format", "json")
	if err != nil {
		t.Fatalf("screen with exported dataset: %v", err)
	}
	var doc screenDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Entries) != 19 {
		t.Fatalf("entries = %d, want 19", len(doc.Entries))
	}
}

func TestDataset_Tables(t *testing.T) {
	out, err := execute(t, "dataset")
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	for _, want := range []string{"Observations", "Ni/BaZrO3", "20 systems, 19 with Bader charge", "Metals", "$62,000/kg", "Supports", "LaFeO3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDataset_MissingFile(t *testing.T) {
	_, err := execute(t, "screen", "--dataset", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}

func TestPlot(t *testing.T) {
	out, err := execute(t, "plot", "--width", "50", "--height", "12")
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(out, "optimal band 0.45-0.60 e") || !strings.Contains(out, "Co/BaZrO3") {
		t.Fatalf("unexpected plot:\n%s", out)
	}
	if strings.Contains(out, "Ni/BaZrO3") {
		t.Fatalf("uncharged observation plotted")
	}
	if _, err := execute(t, "plot", "--width", "0"); !apperr.IsUser(err) {
		t.Fatalf("expected user error, got %v", err)
	}
}

func TestExplore_NeedsTerminal(t *testing.T) {
	if isInteractiveTerminal() {
		t.Skip("running on a terminal")
	}
	_, err := execute(t, "explore")
	if !apperr.IsUser(err) {
		t.Fatalf("expected user error, got %v", err)
	}
}

func TestScatterPointsPairsChargeWithOwnEnergy(t *testing.T) {
	obs, _ := dataset.Load()
	pts := scatterPoints(obs)
	if len(pts) != 19 {
		t.Fatalf("points = %d, want 19", len(pts))
	}
	byLabel := map[string]float64{}
	for _, p := range pts {
		byLabel[p.Label] = p.Charge
	}
	for _, o := range dataset.WithCharge(obs) {
		if byLabel[o.System()] != *o.MetalCharge {
			t.Fatalf("%s charge = %v, want %v", o.System(), byLabel[o.System()], *o.MetalCharge)
		}
	}
}

func TestEvaluationError(t *testing.T) {
	plain := errors.New("boom")
	if got := evaluationError(plain); got != plain {
		t.Fatalf("unrelated error was rewrapped: %v", got)
	}
}
