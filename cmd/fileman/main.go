// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/fileman/cmd/fileman/commands"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	if err := newRootCmd(ctx).ExecuteContext(ctx); err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println("command failed")
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command with all subcommands attached
func newRootCmd(ctx context.Context) *cobra.Command {
	rootOpts := newRootOpts(ctx)

	rootCmd := &cobra.Command{
		Use:   "fileman",
		Short: "A tool for organizing large quantities of files by creation date",
		Long: `fileman reorganizes a flat or nested collection of files into a
target tree bucketed by creation date (YYYY/YYYY-MM), giving each file a
stable sequential name within its bucket.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
			// Flags are only populated once parsing has run
			rootOpts.ConfigFile = configFile
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewOrganizeCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}
