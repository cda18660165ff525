/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for strata.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/config"
	convertlib "bennypowers.dev/strata/convert"
	"bennypowers.dev/strata/fs"
	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/internal/logger"
	"bennypowers.dev/strata/load"
	"bennypowers.dev/strata/merge"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Render the merged catalog for a platform",
	Long: `Render the merged token catalog for a platform, resolved for a mode
selection, using the platform's naming and value rules.

Output Formats:
  css        CSS custom properties (default)
  json       Flat name to value JSON
  android    Android XML resources
  yaml       Flat name to value YAML

Examples:
  # Write every output listed in .config/strata.yaml
  strata convert

  # Dark mode CSS on stdout
  strata convert --mode color-scheme=mode-dark

  # iOS values as JSON
  strata convert --platform ios --format json -o dist/ios.json

  # Android resources, compact density
  strata convert -p android -m density=compact -o res/values/tokens.xml`,
	Args:    cobra.NoArgs,
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: config outputs, else stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().StringP("platform", "p", "", "Platform whose naming and value rules apply")
	Cmd.Flags().StringP("theme", "t", "", "Apply only this theme's overrides")
	Cmd.Flags().StringArrayP("mode", "m", nil, "Select a mode as dimension=mode (repeatable)")
	Cmd.Flags().String("header", "", "Comment written at the top of the output")
	Cmd.Flags().String("selector", "", "CSS rule selector (default :root)")
	Cmd.Flags().Bool("include-private", false, "Also render private tokens")
}

func run(cmd *cobra.Command, args []string) error {
	modes, _ := cmd.Flags().GetStringArray("mode")
	sel, err := cli.ParseSelection(modes)
	if err != nil {
		return err
	}

	ws, err := cli.LoadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	c := converter{
		ws:             ws,
		fs:             fs.NewOSFileSystem(),
		stdout:         cmd.OutOrStdout(),
		theme:          viper.GetString("theme"),
		includePrivate: viper.GetBool("include-private"),
	}

	single := config.Output{
		Path:     viper.GetString("output"),
		Format:   viper.GetString("format"),
		Platform: viper.GetString("platform"),
		Modes:    sel,
		Header:   viper.GetString("header"),
		Selector: viper.GetString("selector"),
	}
	flagged := cmd.Flags().Changed("output") || cmd.Flags().Changed("format") ||
		cmd.Flags().Changed("platform") || cmd.Flags().Changed("mode")
	if flagged || len(ws.Config.Outputs) == 0 {
		return c.convert(single)
	}
	return c.convertAll(ws.Config.Outputs)
}

// converter renders outputs of one workspace.
type converter struct {
	ws             *load.Workspace
	fs             fs.FileSystem
	stdout         io.Writer
	theme          string
	includePrivate bool
}

// convertAll renders every output, reporting failures together.
func (c converter) convertAll(outputs []config.Output) error {
	var failures int
	for _, o := range outputs {
		if err := c.convert(o); err != nil {
			logger.Warn("%s: %v", o.Path, err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("failed to generate %d output(s)", failures)
	}
	return nil
}

// convert renders one output. An output without a path goes to stdout.
func (c converter) convert(o config.Output) error {
	opts, err := c.ws.Config.ConvertOptions(o)
	if err != nil {
		return err
	}
	opts.IncludePrivate = c.includePrivate

	data, err := c.ws.Merge(merge.Options{
		TargetPlatformID: opts.PlatformID,
		TargetThemeID:    c.theme,
	})
	if err != nil {
		return err
	}

	out, err := convertlib.Convert(data, opts)
	if err != nil {
		return err
	}
	for _, id := range out.Skipped {
		logger.Warn("skipped %s: alias chain points at a missing token", id)
	}

	if o.Path == "" {
		_, err := c.stdout.Write(out.Data)
		return err
	}

	path := o.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.ws.Root, path)
	}
	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", o.Path, err)
	}
	if err := c.fs.WriteFile(path, out.Data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", o.Path, err)
	}
	logger.Info("Wrote %s", o.Path)
	return nil
}
