package main

import (
	"fmt"
	"os"

	"github.com/aretw0/duet/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "duet",
	Short: "Duet solves Advent of Code 2017 puzzles with parser combinators",
	Long: `Duet parses puzzle inputs with a small combinator library and runs the
register machines they describe, including a pair of actors exchanging values.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runOptions collects the persistent flags of cmd.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	inputs, _ := flags.GetString("inputs")
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	debug, _ := flags.GetBool("debug")
	return cli.RunOptions{
		ConfigPath: configPath,
		Inputs:     inputs,
		LogLevel:   level,
		LogFormat:  format,
		Debug:      debug,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default duet.yaml)")
	rootCmd.PersistentFlags().String("inputs", "", "Directory containing puzzle inputs")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every solve")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
