/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package merge provides the merge command for strata.
package merge

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/internal/logger"
	mergelib "bennypowers.dev/strata/merge"
)

// Cmd is the merge cobra command.
var Cmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the core system with its extensions and themes",
	Long: `Merge the core token system with its platform extensions and theme
overrides, and print the merged catalog or a summary of what changed.`,
	Args:    cobra.NoArgs,
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Merge only this platform's extension")
	Cmd.Flags().StringP("theme", "t", "", "Apply only this theme's overrides")
	Cmd.Flags().Bool("include-omitted", false, "Keep tokens that extensions omit")
	Cmd.Flags().StringP("format", "f", "summary", "Output format: summary, json, yaml")
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := cli.LoadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	data, err := ws.Merge(mergelib.Options{
		TargetPlatformID: viper.GetString("platform"),
		TargetThemeID:    viper.GetString("theme"),
		IncludeOmitted:   viper.GetBool("include-omitted"),
	})
	if err != nil {
		return err
	}
	if n := data.Analytics.ExcludedThemeOverrides; n > 0 {
		logger.Warn("%d theme overrides were excluded", n)
	}

	return write(cmd.OutOrStdout(), data, viper.GetString("format"))
}

func write(w io.Writer, data *mergelib.MergedData, format string) error {
	switch format {
	case "json":
		return cli.WriteJSON(w, data)
	case "yaml", "yml":
		return cli.WriteYAML(w, data)
	case "summary", "":
		writeSummary(w, data)
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected summary, json or yaml", format)
	}
}

func writeSummary(w io.Writer, data *mergelib.MergedData) {
	a := data.Analytics
	t := cli.NewTable(w, table.Row{"Metric", "Count"})
	t.AppendRows([]table.Row{
		{"Tokens", a.TotalTokens},
		{"Overridden", a.OverriddenTokens},
		{"New", a.NewTokens},
		{"Omitted", a.OmittedTokens},
		{"Platforms", a.PlatformCount},
		{"Themes", a.ThemeCount},
		{"Theme overrides", a.TotalThemeOverrides},
		{"Applied theme overrides", a.ValidThemeOverrides},
		{"Excluded theme overrides", a.ExcludedThemeOverrides},
	})
	t.Render()

	if len(data.OmittedModes) > 0 {
		fmt.Fprintf(w, "Omitted modes: %s\n", strings.Join(data.OmittedModes, ", "))
	}
	if len(data.OmittedDimensions) > 0 {
		fmt.Fprintf(w, "Omitted dimensions: %s\n", strings.Join(data.OmittedDimensions, ", "))
	}
	if len(data.PlatformOmittedTokens) > 0 {
		fmt.Fprintf(w, "Omitted tokens: %s\n", strings.Join(data.PlatformOmittedTokens, ", "))
	}
}
