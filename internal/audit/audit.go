// Package audit checks the data quality of the formation/charge join: key
// ambiguity, records that cannot be joined, and keys the reference tables
// cannot resolve.
package audit

import (
	"errors"
	"fmt"

	"github.com/yousci/yousci-cli/internal/dataset"
	"github.com/yousci/yousci-cli/internal/reference"
)

// Options tune which findings invalidate the dataset.
type Options struct {
	// Strict turns warnings into errors.
	Strict bool
	// MinCoverage is the minimum share (0..1) of observations with a charge.
	MinCoverage float64
}

// Result is the outcome of Audit.
type Result struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`

	Observations int     `json:"observations" yaml:"observations"`
	WithCharge   int     `json:"withCharge" yaml:"withCharge"`
	Coverage     float64 `json:"coverage" yaml:"coverage"`

	Join dataset.JoinReport `json:"join" yaml:"join"`
}

// Audit joins formation and charges and reports what a careful reader of the
// data would flag.
func Audit(formation []dataset.FormationRecord, charges []dataset.ChargeRecord, opts Options) Result {
	obs, join := dataset.Join(formation, charges)

	result := Result{
		Valid:        true,
		Errors:       []string{},
		Warnings:     []string{},
		Observations: len(obs),
		Join:         join,
	}

	// 1. Join ambiguity
	for _, d := range join.Duplicates {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s: %d charge records, first (%.2f e) used, ignored %v", d.System, 1+len(d.Ignored), d.Kept, d.Ignored))
	}
	for _, id := range join.Malformed {
		result.Errors = append(result.Errors, fmt.Sprintf("charge identifier %q is not metal%ssupport", id, dataset.SystemSeparator))
	}

	// 2. Reference resolution
	seen := map[string]bool{}
	for _, o := range obs {
		for _, err := range unresolved(o) {
			msg := fmt.Sprintf("%s: %v", o.System(), err)
			if !seen[msg] {
				seen[msg] = true
				result.Errors = append(result.Errors, msg)
			}
		}
	}

	// 3. Coverage
	for _, o := range obs {
		if o.HasCharge() {
			result.WithCharge++
		}
	}
	if result.Observations > 0 {
		result.Coverage = float64(result.WithCharge) / float64(result.Observations)
	}
	for _, s := range join.Unmatched {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: charge record has no formation record", s))
	}
	for _, s := range join.MissingCharge {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: no charge record, excluded from prediction", s))
	}
	if opts.MinCoverage > 0 && result.Coverage < opts.MinCoverage {
		result.Errors = append(result.Errors,
			fmt.Sprintf("charge coverage %.1f%% is below the %.1f%% minimum", result.Coverage*100, opts.MinCoverage*100))
	}

	if opts.Strict && len(result.Warnings) > 0 {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = []string{}
	}
	result.Valid = len(result.Errors) == 0

	logf("observations=%d coverage=%.1f%% errors=%d warnings=%d",
		result.Observations, result.Coverage*100, len(result.Errors), len(result.Warnings))
	return result
}

func unresolved(o dataset.Observation) []error {
	var errs []error
	if _, err := reference.Metal(o.Metal); errors.Is(err, reference.ErrUnknownMetal) {
		errs = append(errs, err)
	}
	if _, err := reference.Support(o.Support); errors.Is(err, reference.ErrUnknownSupport) {
		errs = append(errs, err)
	}
	return errs
}

// FormatSummary returns a one-line summary of the audit.
func FormatSummary(r Result) string {
	status := "PASSED"
	if !r.Valid {
		status = "FAILED"
	}
	return fmt.Sprintf("Audit: %s | Observations: %d | Charge coverage: %.1f%% | Errors: %d | Warnings: %d",
		status, r.Observations, r.Coverage*100, len(r.Errors), len(r.Warnings))
}
