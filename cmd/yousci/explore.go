package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/screening"
	"github.com/yousci/yousci-cli/internal/ui"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse the dataset and print full reports for the chosen systems",
	Long: "Opens a list of every charged system with its prediction alongside. " +
		"Select systems with s or space and confirm with enter to print their reports.",
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	if !isInteractiveTerminal() {
		return apperr.User("explore needs an interactive terminal; use 'yousci screen' instead")
	}

	obs, _, err := loadObservations()
	if err != nil {
		return err
	}
	report, err := screening.Screen(obs, screening.Options{Basis: screening.BasisObserved})
	if err != nil {
		return evaluationError(err)
	}
	// Browse in dataset order.
	entries := make([]screening.Entry, 0, len(report.Entries))
	bySystem := make(map[string]screening.Entry, len(report.Entries))
	for _, e := range report.Entries {
		bySystem[e.System] = e
	}
	seen := map[string]bool{}
	for _, o := range obs {
		if e, ok := bySystem[o.System()]; ok && !seen[e.System] {
			seen[e.System] = true
			entries = append(entries, e)
		}
	}

	chosen, err := ui.RunBrowser(browserItems(entries))
	if err != nil {
		return err
	}

	predictUI := ui.NewPredictionUI(rc.out, rc.quiet)
	for _, system := range chosen {
		predictUI.PrintReport(predictionView(bySystem[system].Prediction))
	}
	return nil
}
