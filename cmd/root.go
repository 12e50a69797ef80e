// Package cmd provides the root command and CLI setup for sensorgrid.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sensorgrid/internal/adapter"
	"github.com/mouse-blink/sensorgrid/internal/config"
	"github.com/mouse-blink/sensorgrid/internal/controller"
	"github.com/mouse-blink/sensorgrid/internal/domain"
	applog "github.com/mouse-blink/sensorgrid/internal/log"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// defaults seeds the flag defaults shown in help. The environment and
// dotenv files are applied when a command runs.
var defaults = config.Default()

var logger zerolog.Logger
var workflow domain.Workflow

var reportsFlag string
var logLevelFlag string
var logFormatFlag string
var outputFlag string
var envFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensorgrid",
		Short: "Sensor coverage analysis on an integer grid",
		Long: `Sensorgrid reads sensor records of the form

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

Every sensor covers the taxicab diamond reaching its closest beacon.
Sensorgrid counts the cells of a row that cannot hold an undiscovered
beacon and locates the single uncovered cell of a square search area.

Input is read from the file given as argument, or from stdin when the
argument is "-" or missing.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVarP(&reportsFlag, "reports", "r", defaults.Reports, "directory where reports are saved (empty disables saving)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", defaults.LogLevel, "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", string(defaults.LogFormat), "log format (pretty or json)")
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", defaults.Output, "renderer: auto, plain or styled")
	cmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "load configuration from this .env file, overriding the environment")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.DefaultDotEnv, envFileFlag)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	if err := applyConfig(cmd, cfg); err != nil {
		return err
	}

	mode, err := controller.ParseOutputMode(outputFlag)
	if err != nil {
		return err
	}

	logger = applog.NewLogger(cmd.ErrOrStderr(), logLevelFlag, config.LogFormat(logFormatFlag))

	if workflow == nil {
		workflow = newWorkflow(cmd, mode)
	}

	return nil
}

// applyConfig copies cfg into every flag the user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg config.Config) error {
	values := map[string]string{
		"reports":    cfg.Reports,
		"log-level":  cfg.LogLevel,
		"log-format": string(cfg.LogFormat),
		"output":     cfg.Output,
		"row":        strconv.Itoa(cfg.Row),
		"bound":      strconv.Itoa(cfg.Bound),
		"multiplier": strconv.FormatInt(cfg.Multiplier, 10),
		"parallel":   strconv.Itoa(cfg.Parallel),
	}

	for name, value := range values {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}

		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, mode controller.OutputMode) domain.Workflow {
	ui := controller.NewUI(cmd, mode)

	return domain.NewWorkflow(
		adapter.NewLocalSensorSourceAdapter(cmd.InOrStdin()),
		adapter.NewReportStore(),
		ui,
		domain.NewAnalyzer(),
		logger,
	)
}

func parseInput(args []string) m.Path {
	if len(args) == 0 {
		return m.Stdin
	}

	return m.Path(args[0])
}

func expectedAnswer(cmd *cobra.Command, value int64) *int64 {
	if !cmd.Flags().Changed("expect") {
		return nil
	}

	return &value
}
