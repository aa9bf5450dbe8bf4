package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/engine"
	yio "github.com/yousci/yousci-cli/internal/io"
	"github.com/yousci/yousci-cli/internal/screening"
	"github.com/yousci/yousci-cli/internal/ui"
)

var (
	screenSort         string
	screenBasis        string
	screenTop          int
	screenMinStability string
	screenFrontier     bool
	screenShortlist    int
	screenFormat       string
	screenOutput       string
	screenPlainSummary bool
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Rank every charged system of the dataset by stability and cost",
	Long: "Evaluates the model for every observation with a Bader charge, ranks the systems, " +
		"reports the stability/cost frontier and how well the model fits the observed energies.",
	Example: "  yousci screen --sort ratio --top 5\n" +
		"  yousci screen --basis observed --min-stability high --shortlist 3",
	RunE: runScreen,
}

// screenOptions reads the screening options (from config, env, or flag).
func screenOptions() (screening.Options, error) {
	basis, err := screening.ParseBasis(viper.GetString("screen.basis"))
	if err != nil {
		return screening.Options{}, apperr.Wrap(err, "")
	}
	sortKey, err := screening.ParseSortKey(viper.GetString("screen.sort"))
	if err != nil {
		return screening.Options{}, apperr.Wrap(err, "")
	}
	top := viper.GetInt("screen.top")
	if top < 0 {
		return screening.Options{}, apperr.Userf("invalid --top %d (must be >= 0)", top)
	}

	opts := screening.Options{Basis: basis, Sort: sortKey, Top: top}
	if s := viper.GetString("screen.min-stability"); s != "" {
		floor, err := engine.ParseStability(s)
		if err != nil {
			return screening.Options{}, apperr.Wrap(err, "expected very-high|high|medium|low|very-low")
		}
		opts.MinStability = &floor
	}
	return opts, nil
}

func runScreen(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	format, err := validateFormat(viper.GetString("screen.format"), "text", yio.FormatJSON, yio.FormatYAML)
	if err != nil {
		return apperr.Wrap(err, "")
	}
	opts, err := screenOptions()
	if err != nil {
		return err
	}

	obs, _, err := loadObservations()
	if err != nil {
		return err
	}
	report, err := screening.Screen(obs, opts)
	if err != nil {
		return evaluationError(err)
	}

	if path := viper.GetString("screen.output"); path != "" {
		if err := yio.WriteDocument(report, path, yio.FormatAuto); err != nil {
			return err
		}
		if !rc.quiet {
			fmt.Fprintln(rc.err, ui.FormatStatus("success", "Screening report written to "+ui.Secondary.Render(path)))
		}
	}

	switch {
	case format != "text":
		return yio.Encode(rc.out, report, format)
	case viper.GetBool("screen.plain-summary"):
		ui.NewScreeningUI(rc.out, false).PrintSimpleReport(screeningView(report))
		return nil
	}

	screenUI := ui.NewScreeningUI(rc.out, rc.quiet)
	screenUI.PrintReport(screeningView(report), viper.GetBool("screen.frontier"))

	if n := viper.GetInt("screen.shortlist"); n > 0 {
		// The shortlist ranks the full dataset, not the filtered view.
		all, err := screening.Screen(obs, screening.Options{Basis: screening.BasisObserved})
		if err != nil {
			return evaluationError(err)
		}
		screenUI.PrintShortlist(screeningRows(screening.Top(all.Entries, n), screening.BasisObserved))
	}
	return nil
}

func init() {
	screenCmd.Flags().StringVar(&screenSort, "sort", "", "Sort key: energy|ratio|charge|residual")
	screenCmd.Flags().StringVar(&screenBasis, "basis", "", "Energy basis for ranking: predicted|observed")
	screenCmd.Flags().IntVar(&screenTop, "top", 0, "Keep only the first N systems (0 keeps all)")
	screenCmd.Flags().StringVar(&screenMinStability, "min-stability", "", "Drop systems less stable than this class")
	screenCmd.Flags().BoolVar(&screenFrontier, "frontier", true, "Show the stability/cost frontier")
	screenCmd.Flags().IntVar(&screenShortlist, "shortlist", 0, "Print the N best frontier systems for experimental follow-up")
	screenCmd.Flags().StringVarP(&screenFormat, "format", "f", "", "Output format: text|json|yaml")
	screenCmd.Flags().StringVarP(&screenOutput, "output", "o", "", "Also write the report to this file (.json or .yaml)")
	screenCmd.Flags().BoolVar(&screenPlainSummary, "plain-summary", false, "Print one plain line per system (no styling)")

	// Bind all flags to viper for config file support
	viper.BindPFlag("screen.sort", screenCmd.Flags().Lookup("sort"))
	viper.BindPFlag("screen.basis", screenCmd.Flags().Lookup("basis"))
	viper.BindPFlag("screen.top", screenCmd.Flags().Lookup("top"))
	viper.BindPFlag("screen.min-stability", screenCmd.Flags().Lookup("min-stability"))
	viper.BindPFlag("screen.frontier", screenCmd.Flags().Lookup("frontier"))
	viper.BindPFlag("screen.shortlist", screenCmd.Flags().Lookup("shortlist"))
	viper.BindPFlag("screen.format", screenCmd.Flags().Lookup("format"))
	viper.BindPFlag("screen.output", screenCmd.Flags().Lookup("output"))
	viper.BindPFlag("screen.plain-summary", screenCmd.Flags().Lookup("plain-summary"))
}
