// Fui-demo hosts example applications built with fui.
//
// Each subcommand starts an interactive action picker or form in the
// terminal and prints the submitted data once the program has exited.
//
// Usage:
//
//	fui-demo [command] [flags]
//
// Logging is silent unless --log-level (or FUI_LOG_LEVEL) is set; log lines
// go to --log-file (or FUI_LOG_FILE) so they never mix with the interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fui/internal/logging"
	"github.com/muurk/fui/internal/version"
)

// Global flags
var (
	logLevel   string
	logFile    string
	altScreen  bool
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fui-demo",
	Short: "Example terminal forms built with fui",
	Long: `Example applications for the fui terminal form toolkit.

Pick an action, fill in its form and submit it with ctrl+f. The collected
data is printed after the form closes.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Empty flags fall back to FUI_LOG_LEVEL / FUI_LOG_FILE
		if err := logging.Initialize(logLevel, logFile); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default "+logging.DefaultLogFile+")")
	rootCmd.PersistentFlags().BoolVar(&altScreen, "alt-screen", false, "Draw the interface on the alternate screen")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print submitted data as JSON")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fui-demo %s\n", version.Full())
	},
}
