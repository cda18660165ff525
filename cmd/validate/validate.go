/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for strata.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/fs"
	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/load"
	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/token"
	"bennypowers.dev/strata/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token system documents",
	Long: `Validate core systems, platform extensions and theme override files
against their schemas. With no files, validates every document the project
config names.`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	files := args
	if len(files) == 0 {
		paths, err := cli.DocumentPaths(filesystem, cli.Root())
		if err != nil {
			return err
		}
		files = paths
	}

	opts := options{
		strict: viper.GetBool("strict"),
		quiet:  viper.GetBool("quiet"),
	}
	if !validateFiles(filesystem, files, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

type options struct {
	strict bool
	quiet  bool
}

// validateFiles validates each file and reports whether all passed.
func validateFiles(filesystem fs.FileSystem, files []string, out, errOut io.Writer, opts options) bool {
	ok := true
	for _, file := range files {
		if !opts.quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		doc, err := load.LoadDocument(filesystem, file)
		if err != nil {
			ok = false
			var verrs validator.Errors
			if errors.As(err, &verrs) {
				for _, e := range verrs {
					fmt.Fprintf(errOut, "  error: %s\n", describe(e))
				}
				continue
			}
			fmt.Fprintf(errOut, "  error: %v\n", err)
			continue
		}

		var advice query.Result
		if doc.System != nil {
			advice = adviseSystem(doc.System)
		}
		for _, e := range advice.Errors {
			fmt.Fprintf(errOut, "  error: %s\n", e)
		}
		for _, w := range advice.Warnings {
			fmt.Fprintf(errOut, "  warning: %s\n", w)
		}
		if !advice.IsValid || (opts.strict && len(advice.Warnings) > 0) {
			ok = false
			continue
		}

		if !opts.quiet {
			fmt.Fprintf(out, "  %s ok%s\n", doc.Kind, summary(doc))
		}
	}

	if ok && !opts.quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return ok
}

func describe(e validator.ValidationError) string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

func summary(doc *load.Document) string {
	switch {
	case doc.System != nil:
		return fmt.Sprintf(", %d tokens", len(doc.System.Tokens))
	case doc.Extension != nil:
		return fmt.Sprintf(", %d overrides", len(doc.Extension.TokenOverrides))
	case doc.ThemeFile != nil:
		return fmt.Sprintf(", %d overrides", len(doc.ThemeFile.Overrides))
	}
	return ""
}

// adviseSystem runs the per-entity checks over a validated system.
func adviseSystem(sys *token.System) query.Result {
	var all query.Result
	add := func(subject string, r query.Result) {
		for _, e := range r.Errors {
			all.Errors = append(all.Errors, subject+": "+e)
		}
		for _, w := range r.Warnings {
			all.Warnings = append(all.Warnings, subject+": "+w)
		}
	}
	for _, d := range sys.Dimensions {
		add("dimension "+d.ID, query.ValidateDimension(sys, d))
	}
	for _, c := range sys.TokenCollections {
		add("collection "+c.ID, query.ValidateCollection(sys, c))
	}
	for _, p := range sys.Platforms {
		add("platform "+p.ID, query.ValidatePlatform(p))
	}
	for _, t := range sys.Tokens {
		add("token "+t.ID, query.ValidateToken(sys, t))
	}
	all.IsValid = len(all.Errors) == 0
	return all
}
