package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/catalog"
	"github.com/spf13/pflag"
)

func runList(_ context.Context, cfg *config.Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	flags.SetOutput(out)
	dataFile := flags.StringP("data", "d", cfg.DataFile, "character table to read")
	rarity := flags.IntP("rarity", "r", 0, "only list characters of this rarity (0 for all)")
	search := flags.StringP("search", "s", "", "only list names containing this text")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cat, err := catalog.Load(*dataFile)
	if err != nil {
		return err
	}

	// "list <name>" shows the art choices of one character
	if flags.NArg() > 0 {
		name := strings.Join(flags.Args(), " ")
		choices, err := cat.ArtChoices(name)
		if err != nil {
			return err
		}
		for _, choice := range choices {
			fmt.Fprintln(out, choice)
		}
		return nil
	}

	matches := make(map[string]bool)
	for _, n := range cat.Search(*search) {
		matches[n] = true
	}

	// Highest rarity first, then by name
	shown := 0
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRARITY\tELEMENT\tCOLOUR")
	for _, r := range cat.Rarities() {
		if *rarity != 0 && r != *rarity {
			continue
		}
		for _, name := range cat.Names(r) {
			if !matches[name] {
				continue
			}
			rows, err := cat.Rows(name)
			if err != nil {
				return err
			}
			row := rows[0]
			element := row.Element
			if row.SubElement != "" {
				element += "/" + row.SubElement
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", row.Name, row.Rarity, element, row.BaseColour)
			shown++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d of %d characters\n", shown, cat.Len())
	return nil
}
