package main

import (
	"os"

	"github.com/aretw0/duet/internal/cli"
	"github.com/aretw0/duet/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve the given days, or every registered day",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := cli.ParseDays(args)
		if err != nil {
			return err
		}
		engine, _, err := cli.CreateEngine(runOptions(cmd))
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		noColor, _ := cmd.Flags().GetBool("no-color")
		color := !noColor && tui.IsTerminal(os.Stdout)
		if color {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		rows := cli.Solve(ctx, engine, days)
		return cli.PrintAnswers(cmd.OutOrStdout(), rows, tui.NewPalette(color))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
