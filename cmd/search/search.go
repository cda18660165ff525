/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for strata.
package search

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/token"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search tokens by id, name, or description",
	Long:    `Search the merged catalog by token id, display name, or description with optional regex support.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Merge only this platform's extension")
	Cmd.Flags().Bool("name", false, "Search ids and display names only")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := cli.LoadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	data, err := ws.Merge(merge.Options{TargetPlatformID: viper.GetString("platform")})
	if err != nil {
		return err
	}

	matches, err := query.Search(data.MergedTokens, args[0], query.SearchOptions{
		Regex:    viper.GetBool("regex"),
		NameOnly: viper.GetBool("name"),
	})
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), matches, viper.GetString("format"))
}

type match struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Tier        token.Tier `json:"tier"`
	Description string     `json:"description,omitempty"`
}

func write(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case "json":
		out := make([]match, 0, len(tokens))
		for _, t := range tokens {
			out = append(out, match{
				ID:          t.ID,
				Name:        t.DisplayName,
				Type:        t.ResolvedValueTypeID,
				Tier:        t.TokenTier,
				Description: t.Description,
			})
		}
		return cli.WriteJSON(w, out)
	case "names":
		for _, t := range tokens {
			fmt.Fprintln(w, t.ID)
		}
		return nil
	case "table", "":
		if len(tokens) == 0 {
			fmt.Fprintln(w, "(0 tokens)")
			return nil
		}
		t := cli.NewTable(w, table.Row{"Token", "Name", "Type", "Tier"})
		for _, tok := range tokens {
			t.AppendRow(table.Row{tok.ID, tok.DisplayName, tok.ResolvedValueTypeID, tok.TokenTier})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected table, json or names", format)
	}
}
