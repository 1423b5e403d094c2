// Copyright 2025 the original author or authors.
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

// Package cli holds the root command and the plumbing shared by the sf
// subcommands.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/madronegeo/sf/crs"
)

// RootCmd is the root of the sf command tree. Subcommand packages attach
// themselves in their init functions.
var RootCmd = &cobra.Command{
	Use:   "sf",
	Short: "Work with planar simple-features datasets",
	Long: `sf reads, measures, transforms and relates planar simple-features
datasets held as GeoJSON or delimited coordinate tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		level, err := flags.GetString("log-level")
		if err != nil {
			return err
		}

		setupLogging(level)

		crsFile, err := flags.GetString("crs-file")
		if err != nil {
			return err
		}

		if crsFile != "" {
			n, err := crs.LoadRegistryFile(crsFile)
			if err != nil {
				return err
			}

			slog.Debug("registered coordinate reference systems", "file", crsFile, "count", n)
		}

		return nil
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("crs-file", "", "YAML file of extra CRS definitions to register")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes structured logs to stderr so data written to stdout
// stays parseable.
func setupLogging(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(handler))
}
