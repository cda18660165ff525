/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for strata.
package list

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/strata/internal/cli"
	"bennypowers.dev/strata/internal/logger"
	"bennypowers.dev/strata/merge"
	"bennypowers.dev/strata/query"
	"bennypowers.dev/strata/schema"
	"bennypowers.dev/strata/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List merged tokens with their resolved values",
	Long: `List the tokens of the merged catalog, resolved for a mode selection,
with optional filtering by collection, tier and value type.`,
	Args:    cobra.NoArgs,
	PreRunE: cli.BindFlags,
	RunE:    run,
}

func init() {
	Cmd.Flags().StringP("platform", "p", "", "Merge only this platform's extension")
	Cmd.Flags().StringP("theme", "t", "", "Apply only this theme's overrides")
	Cmd.Flags().StringArrayP("mode", "m", nil, "Select a mode as dimension=mode (repeatable)")
	Cmd.Flags().String("collection", "", "Filter by collection id")
	Cmd.Flags().String("tier", "", "Filter by tier: PRIMITIVE, SEMANTIC, COMPONENT")
	Cmd.Flags().String("type", "", "Filter by resolved value type id")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

// Row is one listed token.
type Row struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Collection  string     `json:"collection,omitempty"`
	Type        string     `json:"type"`
	Tier        token.Tier `json:"tier"`
	Value       string     `json:"value"`
	Chain       []string   `json:"aliasChain,omitempty"`
	Description string     `json:"description,omitempty"`

	isColor bool
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
	data, err := ws.Merge(merge.Options{
		TargetPlatformID: viper.GetString("platform"),
		TargetThemeID:    viper.GetString("theme"),
	})
	if err != nil {
		return err
	}

	filter := query.Filter{
		CollectionID: viper.GetString("collection"),
		ValueTypeID:  viper.GetString("type"),
		Tier:         token.Tier(strings.ToUpper(viper.GetString("tier"))),
	}
	sys := query.FromMerged(data)
	rows, err := Rows(sys, filter, sel)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch viper.GetString("format") {
	case "json":
		return cli.WriteJSON(w, rows)
	case "table", "":
		Table(w, sys, rows, cli.IsColorTerminal(w))
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected table or json", viper.GetString("format"))
	}
}

// Rows resolves the tokens that match the filter, in catalog order.
// Tokens whose value cannot be resolved are listed without one.
func Rows(sys *token.System, filter query.Filter, sel query.Selection) ([]Row, error) {
	tokens := filter.Apply(sys.Tokens)
	rows := make([]Row, 0, len(tokens))
	for _, t := range tokens {
		row := Row{
			ID:          t.ID,
			Name:        t.DisplayName,
			Collection:  t.TokenCollectionID,
			Type:        t.ResolvedValueTypeID,
			Tier:        t.TokenTier,
			Description: t.Description,
		}
		resolved, err := query.ResolveValue(sys, t.ID, sel)
		switch {
		case errors.Is(err, schema.ErrInvalidSelection):
			return nil, err
		case err != nil:
			logger.Warn("%v", err)
		default:
			row.Value = resolved.Value.String()
			row.Chain = resolved.Chain
			if vt, ok := sys.ValueType(t.ResolvedValueTypeID); ok && vt.Type == token.TypeColor {
				_, perr := csscolorparser.Parse(row.Value)
				row.isColor = perr == nil
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Table renders rows as one table per collection.
func Table(w io.Writer, sys *token.System, rows []Row, color bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(0 tokens)")
		return
	}

	var order []string
	groups := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := groups[r.Collection]; !ok {
			order = append(order, r.Collection)
		}
		groups[r.Collection] = append(groups[r.Collection], r)
	}

	for i, id := range order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		t := cli.NewTable(w, table.Row{"Token", "Type", "Tier", "Value"})
		t.SetTitle(Heading(sys, id))
		for _, r := range groups[id] {
			value := r.Value
			if len(r.Chain) > 0 {
				value += " (via " + strings.Join(r.Chain, ", ") + ")"
			}
			if color && r.isColor {
				value = Swatch(r.Value) + value
			}
			t.AppendRow(table.Row{r.ID, r.Type, r.Tier, value})
		}
		t.Render()
	}
}

// Heading returns the title of a collection's table.
func Heading(sys *token.System, collectionID string) string {
	if collectionID == "" {
		return "Ungrouped"
	}
	name := collectionID
	if c, ok := sys.Collection(collectionID); ok && c.Name != "" {
		name = c.Name
	}
	return cases.Title(language.English).String(name)
}

// Swatch returns a 24-bit ANSI color block for the given color value.
func Swatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}
