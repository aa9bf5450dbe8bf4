package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/apperr"
	"github.com/yousci/yousci-cli/internal/engine"
	"github.com/yousci/yousci-cli/internal/ui"
)

var (
	plotWidth  int
	plotHeight int
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot observed formation energy against Bader charge",
	Long:  "Draws a terminal scatter plot of every observation with a charge, shading the optimal charge window and marking its peak.",
	RunE:  runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	width, height := viper.GetInt("plot.width"), viper.GetInt("plot.height")
	if width <= 0 || height <= 0 {
		return apperr.Userf("invalid plot size %dx%d", width, height)
	}

	obs, _, err := loadObservations()
	if err != nil {
		return err
	}

	band := ui.ScatterBand{Min: engine.OptimalChargeMin, Max: engine.OptimalChargeMax, Peak: engine.OptimalChargePeak}
	ui.NewScatterUI(rc.out, rc.quiet).PrintPlot(scatterPoints(obs), band, width, height)
	return nil
}

func init() {
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "Plot width in columns")
	plotCmd.Flags().IntVar(&plotHeight, "height", 16, "Plot height in rows")

	// Bind all flags to viper for config file support
	viper.BindPFlag("plot.width", plotCmd.Flags().Lookup("width"))
	viper.BindPFlag("plot.height", plotCmd.Flags().Lookup("height"))
}
