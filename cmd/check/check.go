/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for strata.
package check

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/integrity"
	"bennypowers.dev/strata/internal/cli"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check referential integrity across documents",
	Long: `Check that the core system, its extensions and its theme files
reference each other consistently: taxonomies, value types, modes, aliases,
themes, system ids and file keys.`,
	Args:    cobra.NoArgs,
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Exit with an error when any check fails")
	Cmd.Flags().Bool("quiet", false, "Only print violations")
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := cli.LoadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	report := integrity.Check(ws.System, ws.Extensions, ws.ThemeFiles)
	writeReport(cmd.OutOrStdout(), report, viper.GetBool("quiet"))

	if !report.OK() && viper.GetBool("strict") {
		return fmt.Errorf("integrity check failed: %d violations", report.Count())
	}
	return nil
}

func writeReport(w io.Writer, report integrity.Report, quiet bool) {
	if !quiet {
		t := cli.NewTable(w, table.Row{"Check", "Status", "Violations"})
		for _, res := range report.Results {
			status := "ok"
			if len(res.Violations) > 0 {
				status = "FAIL"
			}
			t.AppendRow(table.Row{res.Name, status, len(res.Violations)})
		}
		t.Render()
	}

	for _, res := range report.Results {
		for _, v := range res.Violations {
			fmt.Fprintf(w, "%s: %s\n", res.Name, v)
		}
	}

	if !quiet && report.OK() {
		fmt.Fprintln(w, "All checks passed.")
	}
}
