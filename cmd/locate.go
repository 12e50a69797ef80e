package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sensorgrid/internal/domain"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// locateCmd represents the locate command.
var locateCmd = newLocateCmd()
var boundFlag int
var multiplierFlag int64
var parallelFlag int
var locateExpectFlag int64

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate [input]",
		Short: "Locate the single cell no sensor covers",
		Long: `Locate the single cell within [0,bound]x[0,bound] that no sensor covers
and print its tuning frequency, x*multiplier + y.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Locate(cmd.Context(), domain.LocateArgs{
				InputArgs: domain.InputArgs{
					Input:   parseInput(args),
					Reports: m.Path(reportsFlag),
					Expect:  expectedAnswer(cmd, locateExpectFlag),
				},
				Bound:      boundFlag,
				Multiplier: multiplierFlag,
				Parallel:   parallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&boundFlag, "bound", "b", defaults.Bound, "upper bound of the square search area")
	cmd.Flags().Int64VarP(&multiplierFlag, "multiplier", "m", defaults.Multiplier, "x multiplier of the tuning frequency")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", defaults.Parallel, "number of parallel workers searching rows")
	cmd.Flags().Int64Var(&locateExpectFlag, "expect", 0, "fail when the tuning frequency differs from this value")

	return cmd
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
