package main

import (
	"fmt"
	"os"

	"github.com/aacamara/cscx-mvp6/internal/verify/config"
	"github.com/aacamara/cscx-mvp6/internal/verify/flows"
	"github.com/aacamara/cscx-mvp6/internal/verify/runner"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var extendedFlag bool

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "cscx-verify",
	Short: "CSCX.AI core flow verification",
	Long: `cscx-verify drives a headless browser against a running CSCX.AI
deployment and verifies the 8 critical user flows, capturing screenshots
and a machine-readable summary.json.

Configuration is taken from the environment (or a .env file):
  FRONTEND_URL  target UI       (default http://localhost:3002)
  BACKEND_URL   target API      (default http://localhost:3001)`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		list := flows.Registry()
		if extendedFlag {
			list = flows.Extended()
		}
		exitCode = runner.Run(cfg, list, os.Stdout)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered verification flows",
	Run: func(cmd *cobra.Command, args []string) {
		for i, fl := range flows.Extended() {
			marker := ""
			if i >= len(flows.Registry()) {
				marker = "  (extended)"
			}
			fmt.Printf("%2d. %-20s %s%s\n", i+1, fl.Name, fl.Title, marker)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVar(&extendedFlag, "extended", false, "also run the keyboard shortcut and code block copy flows")
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
