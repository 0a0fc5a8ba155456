package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fileman/cmd/fileman/opts"
	"github.com/walteh/fileman/pkg/log"
	"github.com/walteh/fileman/pkg/status"
)

var (
	// Flags
	configFile string
	debugLog   bool
)

// newRootOpts creates a new rootOpts with initialized dependencies.
// ConfigFile is filled in after flag parsing, see newRootCmd.
func newRootOpts(ctx context.Context) *opts.RootOpts {
	return &opts.RootOpts{
		StatusMgr:  status.New(),
		UserLogger: log.New(os.Stdout, zerolog.InfoLevel),
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".fileman.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugLog {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
