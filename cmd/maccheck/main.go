package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "maccheck: %v\n", err)
		}
		os.Exit(1)
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "maccheck [flags] [-- command [args...]]",
	Short: "Refuse to run on unsupported macOS releases and Mac models",
	Long: `maccheck fails when the host runs macOS 14.4 or newer, or when the
hardware model is MacBookPro16,1.

When the check passes and a command follows "--", maccheck replaces
itself with that command.

Examples:
  maccheck
  maccheck --all --output json
  maccheck --os-version 13.0 --model MacBookPro14,1
  maccheck -- ./server --port 8080`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd, verbose)
	},
	RunE: runMacCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log how host facts are read")
}

// configureLogging sends logrus output to stderr, at debug level when verbose.
func configureLogging(cmd *cobra.Command, verbose bool) {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
