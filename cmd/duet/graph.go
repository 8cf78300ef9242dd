package main

import (
	"github.com/aretw0/duet/internal/cli"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <day>",
	Short: "Export a machine program as a Mermaid flowchart",
	Long:  `Parses the input of day 18 or day 23 and outputs a Mermaid diagram (graph TD) of its control flow.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := puzzle.ParseDay(args[0])
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("input")
		if path == "" {
			engine, _, err := cli.CreateEngine(runOptions(cmd))
			if err != nil {
				return err
			}
			path = engine.InputPath(day)
		}
		return cli.Graph(cmd.OutOrStdout(), day, path)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Program file (defaults to the day's input)")
}
