package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/apperr"
	yio "github.com/yousci/yousci-cli/internal/io"
	"github.com/yousci/yousci-cli/internal/ui"
)

var (
	datasetOutput    string
	datasetFormat    string
	datasetReference bool
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Show the joined observations and the reference tables",
	Long: "Prints the formation energies joined with their Bader charges, plus the metal and support descriptors. " +
		"Use --output to export the records as an editable dataset file for --dataset.",
	Example: "  yousci dataset\n" +
		"  yousci dataset --output data/catalysts.yaml",
	RunE: runDataset,
}

func runDataset(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	file, err := loadDatasetFile()
	if err != nil {
		return err
	}

	if path := viper.GetString("dataset.output"); path != "" {
		if err := yio.WriteDocument(file, path, viper.GetString("dataset.export-format")); err != nil {
			return apperr.Wrap(err, "")
		}
		if !rc.quiet {
			fmt.Fprintln(rc.out, ui.FormatStatus("success", fmt.Sprintf("Exported %d formation and %d charge records to %s",
				len(file.Formation), len(file.Charges), ui.Secondary.Render(path))))
		}
		return nil
	}

	obs, _, err := loadObservations()
	if err != nil {
		return err
	}
	datasetUI := ui.NewDatasetUI(rc.out, rc.quiet)
	datasetUI.PrintObservations(observationRows(obs))
	if viper.GetBool("dataset.reference") {
		datasetUI.PrintReference(metalRows(), supportRows())
	}
	return nil
}

func init() {
	datasetCmd.Flags().StringVarP(&datasetOutput, "output", "o", "", "Export the records to this file instead of printing them")
	datasetCmd.Flags().StringVarP(&datasetFormat, "format", "f", "", "Export format: json|yaml|auto")
	datasetCmd.Flags().BoolVar(&datasetReference, "reference", true, "Also print the metal and support tables")

	// Bind all flags to viper for config file support
	viper.BindPFlag("dataset.output", datasetCmd.Flags().Lookup("output"))
	viper.BindPFlag("dataset.export-format", datasetCmd.Flags().Lookup("format"))
	viper.BindPFlag("dataset.reference", datasetCmd.Flags().Lookup("reference"))
}
