package main

import (
	"github.com/aretw0/duet/internal/cli"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [day...]",
	Short: "Solve days and print the collected metrics in Prometheus text format",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := cli.ParseDays(args)
		if err != nil {
			return err
		}
		opts := runOptions(cmd)
		opts.Metrics = true
		engine, _, err := cli.CreateEngine(opts)
		if err != nil {
			return err
		}
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		// Failures are part of the metrics; they are not reported here.
		cli.Solve(ctx, engine, days)
		return engine.Metrics().WriteText(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
