/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for strata.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/cmd/check"
	"bennypowers.dev/strata/cmd/convert"
	"bennypowers.dev/strata/cmd/list"
	"bennypowers.dev/strata/cmd/merge"
	"bennypowers.dev/strata/cmd/search"
	"bennypowers.dev/strata/cmd/validate"
	"bennypowers.dev/strata/cmd/version"
	"bennypowers.dev/strata/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Merge and resolve multi-dimensional design token systems",
	Long: `strata loads a core design token system together with its platform
extensions and theme overrides, checks that they agree, merges them and
resolves token values for a mode selection.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logger.ParseLevel(viper.GetString("log-level")))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project directory containing .config/strata.yaml")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, silent")

	viper.SetEnvPrefix("STRATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(merge.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
