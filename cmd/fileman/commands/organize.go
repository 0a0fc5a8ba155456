package commands

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fileman/cmd/fileman/opts"
	"github.com/walteh/fileman/pkg/config"
	"github.com/walteh/fileman/pkg/log"
	"github.com/walteh/fileman/pkg/organize"
	"github.com/walteh/fileman/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewOrganizeCmd creates a new organize command
func NewOrganizeCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [source] [target]",
		Short: "Move files from source into a date-bucketed tree under target",
		Long: `Organize discovers every file under source, buckets each one by its
creation month (YYYY/YYYY-MM), and renames it into target with a stable
sequential name. It will:
1. Recursively collect all files under source
2. Seed each bucket's counter from its pre-existing file count
3. Rename files one at a time, stopping at the first error`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "organize").Logger().WithContext(ctx)

			cfg, err := resolveConfig(ctx, rootOpts.ConfigFile, args)
			if err != nil {
				return errors.Errorf("resolving configuration: %w", err)
			}

			org, err := organize.New(organize.Options{
				Config:    cfg,
				StatusMgr: rootOpts.StatusMgr,
			})
			if err != nil {
				return errors.Errorf("creating organizer: %w", err)
			}

			rootOpts.UserLogger.StartRunOperation(ctx, log.RunOperation{
				Source: cfg.Source,
				Target: cfg.Target,
			})
			defer rootOpts.UserLogger.EndRunOperation(ctx)
			// Runs before EndRunOperation, so aborted runs still list
			// every outcome recorded up to the failure
			defer logFileOperations(ctx, rootOpts)

			if err := org.Run(ctx); err != nil {
				return errors.Errorf("organizing files: %w", err)
			}

			summary := rootOpts.StatusMgr.Summarize()
			pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).
				Printfln("organized %d files into %d buckets (%d ignored)",
					summary.Moved, summary.Buckets, summary.Ignored)

			return nil
		},
	}

	return cmd
}

// logFileOperations renders every tracked file outcome through the
// user logger, in discovery order.
func logFileOperations(ctx context.Context, rootOpts *opts.RootOpts) {
	for _, info := range rootOpts.StatusMgr.ListFiles(ctx) {
		rootOpts.UserLogger.LogFileOperation(ctx, log.FileOperation{
			Source:      filepath.Base(info.Source),
			Destination: info.Destination,
			Bucket:      info.Bucket,
			Status:      strings.ToUpper(info.Status.String()),
			IsMoved:     info.Status == status.StatusMoved,
			IsIgnored:   info.Status == status.StatusIgnored,
			IsFailed:    info.Status == status.StatusFailed,
		})
	}
}

// resolveConfig builds the run configuration either from positional
// source/target arguments or from the config file.
func resolveConfig(ctx context.Context, configFile string, args []string) (*config.Config, error) {
	if len(args) == 1 {
		return nil, errors.Errorf("both source and target are required when passed as arguments")
	}
	if len(args) == 2 {
		cfg := &config.Config{Source: args[0], Target: args[1]}
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating config: %w", err)
		}
		return cfg, nil
	}
	return config.Load(ctx, configFile)
}
