package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/audit"
	yio "github.com/yousci/yousci-cli/internal/io"
	"github.com/yousci/yousci-cli/internal/ui"
)

var (
	auditStrict       bool
	auditMinCoverage  float64
	auditFormat       string
	auditPlainSummary bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the dataset join for duplicates, unmatched records and unknown keys",
	Long: "Joins formation energies with Bader charges and reports ambiguous charge keys, malformed identifiers, " +
		"records that cannot be joined, keys missing from the reference tables and the charge coverage.",
	Example: "  yousci audit\n" +
		"  yousci audit --dataset data/catalysts.yaml --strict --min-coverage 0.9",
	RunE: runAudit,
}

func runAudit(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	format, err := validateFormat(viper.GetString("audit.format"), "text", yio.FormatJSON, yio.FormatYAML)
	if err != nil {
		return apperr.Wrap(err, "")
	}
	minCoverage := viper.GetFloat64("audit.min-coverage")
	if minCoverage < 0 || minCoverage > 1 {
		return apperr.Userf("invalid --min-coverage %v (expected 0.0-1.0)", minCoverage)
	}

	file, err := loadDatasetFile()
	if err != nil {
		return err
	}
	result := audit.Audit(file.Formation, file.Charges, audit.Options{
		Strict:      viper.GetBool("audit.strict"),
		MinCoverage: minCoverage,
	})

	switch {
	case format != "text":
		if err := yio.Encode(rc.out, result, format); err != nil {
			return err
		}
	case viper.GetBool("audit.plain-summary"):
		ui.NewAuditUI(rc.out, false).PrintSummary(audit.FormatSummary(result))
	default:
		ui.NewAuditUI(rc.out, rc.quiet).PrintReport(auditView(result, datasetSource(), minCoverage))
	}

	if !result.Valid {
		return fmt.Errorf("audit failed with %d error(s)", len(result.Errors))
	}
	return nil
}

func init() {
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Strict mode: treat warnings as errors")
	auditCmd.Flags().Float64Var(&auditMinCoverage, "min-coverage", 0.0, "Minimum share of observations with a charge (0.0-1.0)")
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "", "Output format: text|json|yaml")
	auditCmd.Flags().BoolVar(&auditPlainSummary, "plain-summary", false, "Print a single-line plain summary (no styling)")

	// Bind all flags to viper for config file support
	viper.BindPFlag("audit.strict", auditCmd.Flags().Lookup("strict"))
	viper.BindPFlag("audit.min-coverage", auditCmd.Flags().Lookup("min-coverage"))
	viper.BindPFlag("audit.format", auditCmd.Flags().Lookup("format"))
	viper.BindPFlag("audit.plain-summary", auditCmd.Flags().Lookup("plain-summary"))
}
