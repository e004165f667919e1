package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memberd",
	Short: "Member directory service",
	Long: `memberd is a small member directory service backed by PostgreSQL.

It stores members and their keywords, and serves them as ordered
dictionaries over a REST API.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
