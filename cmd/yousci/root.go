package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yousci/yousci-cli/internal/audit"
	"github.com/yousci/yousci-cli/internal/dataset"
	"github.com/yousci/yousci-cli/internal/engine"
	yio "github.com/yousci/yousci-cli/internal/io"
	"github.com/yousci/yousci-cli/internal/reference"
	"github.com/yousci/yousci-cli/internal/screening"
	"github.com/yousci/yousci-cli/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "yousci",
	Short: "Screen metal/perovskite catalysts by predicted stability and cost",
	Long:  longDescription,

	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var cfgFile string
var version string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.yousci.yaml or ./config/defaults.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: quiet|standard|debug")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("dataset", "", "Dataset file (json|yaml) to use instead of the built-in records")
	rootCmd.PersistentFlags().String("dataset-format", "", "Dataset file format: json|yaml|auto")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("dataset.path", rootCmd.PersistentFlags().Lookup("dataset"))
	viper.BindPFlag("dataset.format", rootCmd.PersistentFlags().Lookup("dataset-format"))

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(predictCmd, screenCmd, datasetCmd, auditCmd, plotCmd, exploreCmd)
}

func initConfig() {
	// Enable environment variable support (e.g., YOUSCI_SCREEN_SORT)
	// Replace dots and dashes: screen.min-stability -> YOUSCI_SCREEN_MIN_STABILITY
	viper.SetEnvPrefix("YOUSCI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		announceConfig()
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.AddConfigPath("./config")

	// Try .yousci first
	viper.SetConfigName(".yousci")
	err = viper.ReadInConfig()

	// If not found, try defaults.yaml
	notFound := &viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil:
		// The config file is optional
	default:
		announceConfig()
	}
}

func announceConfig() {
	if logLevelFromConfig() == "quiet" {
		return
	}
	configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
	fmt.Fprintln(os.Stderr, configMsg)
}

const longDescription = "Predicts the formation energy of a metal cluster on a perovskite support from its Bader charge, " +
	"classifies its stability, scores it against metal cost and checks the charge against the optimal window."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}

func logLevelFromConfig() string {
	return strings.ToLower(strings.TrimSpace(viper.GetString("log-level")))
}

// runContext is the per-invocation state shared by the subcommands.
type runContext struct {
	level string
	quiet bool
	out   io.Writer
	err   io.Writer
}

// newRunContext resolves the effective log level and output settings (from
// config, env, or flag) and wires internal package logging.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	level := logLevelFromConfig()
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		// ok
	default:
		return nil, fmt.Errorf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}

	noColor := viper.GetBool("no-color")
	ui.SetPlain(noColor)

	rc := &runContext{
		level: level,
		quiet: level == "quiet",
		out:   ui.NewOutput(cmd.OutOrStdout(), noColor),
		err:   ui.NewOutput(cmd.ErrOrStderr(), noColor),
	}

	// Wire internal package logging for debug mode
	var logw io.Writer
	if level == "debug" {
		logw = cmd.ErrOrStderr()
	}
	reference.SetLogger(logw)
	dataset.SetLogger(logw)
	engine.SetLogger(logw)
	screening.SetLogger(logw)
	audit.SetLogger(logw)

	return rc, nil
}

// datasetSource names where the records come from, for reports.
func datasetSource() string {
	if p := strings.TrimSpace(viper.GetString("dataset.path")); p != "" {
		return p
	}
	return "built-in"
}

// loadDatasetFile returns the records from --dataset, or the built-in ones.
func loadDatasetFile() (yio.DatasetFile, error) {
	path := strings.TrimSpace(viper.GetString("dataset.path"))
	if path == "" {
		return yio.BuiltIn(), nil
	}
	return yio.ReadDataset(path, viper.GetString("dataset.format"))
}

// loadObservations loads and joins the dataset.
func loadObservations() ([]dataset.Observation, dataset.JoinReport, error) {
	file, err := loadDatasetFile()
	if err != nil {
		return nil, dataset.JoinReport{}, err
	}
	obs, report := dataset.Join(file.Formation, file.Charges)
	return obs, report, nil
}

// isInteractiveTerminal reports whether both stdin and stdout are terminals.
func isInteractiveTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// validateFormat checks a --format value.
func validateFormat(format string, allowed ...string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid --format %q (expected %s)", format, strings.Join(allowed, "|"))
}
