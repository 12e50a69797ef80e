package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sensorgrid/internal/domain"
	m "github.com/mouse-blink/sensorgrid/internal/model"
)

// countCmd represents the count command.
var countCmd = newCountCmd()
var rowFlag int
var countExpectFlag int64

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [input]",
		Short: "Count the cells of a row that cannot contain a beacon",
		Long: `Count the cells of a row that are covered by at least one sensor,
leaving out the cells where a known beacon sits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Count(domain.CountArgs{
				InputArgs: domain.InputArgs{
					Input:   parseInput(args),
					Reports: m.Path(reportsFlag),
					Expect:  expectedAnswer(cmd, countExpectFlag),
				},
				Row: rowFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&rowFlag, "row", "y", defaults.Row, "row to inspect")
	cmd.Flags().Int64Var(&countExpectFlag, "expect", 0, "fail when the count differs from this value")

	return cmd
}

func init() {
	rootCmd.AddCommand(countCmd)
}
