package main

import (
	"github.com/aretw0/duet/internal/cli"
	"github.com/aretw0/duet/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [day...]",
	Short: "Render a markdown report of answers and executed instructions",
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

		render := tui.NewRenderer()
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			render = nil
		}
		return cli.Report(cmd.OutOrStdout(), cli.Solve(ctx, engine, days), render)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
