package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/catalog"
	"github.com/dixieflatline76/Starpaper/pkg/wallpaper"
	"github.com/spf13/pflag"
)

// runClean deletes the wallpapers of the named characters, or of every
// character in the table when no name is given.
func runClean(_ context.Context, cfg *config.Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("clean", pflag.ContinueOnError)
	flags.SetOutput(out)
	dataFile := flags.StringP("data", "d", cfg.DataFile, "character table to read")
	outputDir := flags.StringP("output-dir", "o", cfg.OutputDir, "directory holding the wallpapers")
	if err := flags.Parse(args); err != nil {
		return err
	}

	names := flags.Args()
	if len(names) == 0 {
		cat, err := catalog.Load(*dataFile)
		if err != nil {
			return err
		}
		names = cat.Names(0)
	}

	tuning := tuningFromConfig(cfg)
	tuning.OutputDir = *outputDir
	compositor := wallpaper.NewCompositor(tuning, nil, nil)

	removed := 0
	for _, name := range names {
		if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
			return fmt.Errorf("%q is not a character name", name)
		}
		path := compositor.Path(name)
		ok, err := compositor.Remove(path)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "Removed %s\n", path)
			removed++
		}
	}
	fmt.Fprintf(out, "%d wallpapers removed\n", removed)
	return nil
}
