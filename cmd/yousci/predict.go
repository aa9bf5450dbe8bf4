package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/engine"
	yio "github.com/yousci/yousci-cli/internal/io"
	"github.com/yousci/yousci-cli/internal/reference"
	"github.com/yousci/yousci-cli/internal/ui"
)

var (
	predictMetal        string
	predictSupport      string
	predictCharge       float64
	predictFormat       string
	predictOutput       string
	predictInteractive  bool
	predictPlainSummary bool
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the formation energy and stability of one metal/support system",
	Long: "Evaluates the linear stability model for a metal on a perovskite support at the given Bader charge. " +
		"Use --interactive (or omit the inputs on a terminal) to pick them in a form.",
	Example: "  yousci predict --metal Ni --support SrTiO3 --charge 0.35\n" +
		"  yousci predict -m Co -s BaZrO3 -q 0.58 --format json",
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	format, err := validateFormat(viper.GetString("predict.format"), "text", yio.FormatJSON, yio.FormatYAML)
	if err != nil {
		return apperr.Wrap(err, "")
	}

	req := engine.Request{
		Metal:   strings.TrimSpace(viper.GetString("predict.metal")),
		Support: strings.TrimSpace(viper.GetString("predict.support")),
		Charge:  viper.GetFloat64("predict.charge"),
	}
	chargeSet := cmd.Flags().Changed("charge") || viper.IsSet("predict.charge")
	complete := req.Metal != "" && req.Support != "" && chargeSet

	interactive := viper.GetBool("predict.interactive")
	if !complete && !interactive {
		if !isInteractiveTerminal() {
			return apperr.User("--metal, --support and --charge are required (or run with --interactive on a terminal)")
		}
		interactive = true
	}

	if interactive {
		defaults := ui.PredictInput{Metal: req.Metal, Support: req.Support}
		if chargeSet {
			defaults.Charge = req.Charge
		}
		in, err := ui.RunPredictForm(reference.MetalSymbols(), reference.SupportCompounds(), defaults)
		if err != nil {
			return err
		}
		req = engine.Request{Metal: in.Metal, Support: in.Support, Charge: in.Charge}
	}

	res, err := engine.Evaluate(req)
	if err != nil {
		return evaluationError(err)
	}

	if path := viper.GetString("predict.output"); path != "" {
		if err := yio.WriteDocument(res, path, yio.FormatAuto); err != nil {
			return err
		}
		if !rc.quiet {
			fmt.Fprintln(rc.err, ui.FormatStatus("success", "Prediction written to "+ui.Secondary.Render(path)))
		}
	}

	switch {
	case format != "text":
		return yio.Encode(rc.out, res, format)
	case viper.GetBool("predict.plain-summary"):
		ui.NewPredictionUI(rc.out, false).PrintSimpleReport(predictionView(res))
	default:
		ui.NewPredictionUI(rc.out, rc.quiet).PrintReport(predictionView(res))
	}
	return nil
}

// evaluationError turns model input errors into user errors that name the
// accepted values.
func evaluationError(err error) error {
	var le *reference.LookupError
	switch {
	case errors.As(err, &le):
		return apperr.Wrap(err, le.Hint())
	case errors.Is(err, engine.ErrNonFiniteInput):
		return apperr.Wrap(err, "charge must be a finite number")
	}
	return err
}

func init() {
	predictCmd.Flags().StringVarP(&predictMetal, "metal", "m", "", "Metal symbol (Ni, Co, Pt, Pd, Au, Ag)")
	predictCmd.Flags().StringVarP(&predictSupport, "support", "s", "", "Support compound (LaFeO3, SrTiO3, BaZrO3, TiO2)")
	predictCmd.Flags().Float64VarP(&predictCharge, "charge", "q", 0, "Bader charge of the metal in e")
	predictCmd.Flags().StringVarP(&predictFormat, "format", "f", "", "Output format: text|json|yaml")
	predictCmd.Flags().StringVarP(&predictOutput, "output", "o", "", "Also write the result to this file (.json or .yaml)")
	predictCmd.Flags().BoolVarP(&predictInteractive, "interactive", "i", false, "Pick metal, support and charge in a form")
	predictCmd.Flags().BoolVar(&predictPlainSummary, "plain-summary", false, "Print a plain summary (no styling)")

	// Bind all flags to viper for config file support
	viper.BindPFlag("predict.metal", predictCmd.Flags().Lookup("metal"))
	viper.BindPFlag("predict.support", predictCmd.Flags().Lookup("support"))
	viper.BindPFlag("predict.charge", predictCmd.Flags().Lookup("charge"))
	viper.BindPFlag("predict.format", predictCmd.Flags().Lookup("format"))
	viper.BindPFlag("predict.output", predictCmd.Flags().Lookup("output"))
	viper.BindPFlag("predict.interactive", predictCmd.Flags().Lookup("interactive"))
	viper.BindPFlag("predict.plain-summary", predictCmd.Flags().Lookup("plain-summary"))
}
