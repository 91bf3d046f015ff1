package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/catalog"
	"github.com/dixieflatline76/Starpaper/pkg/fetch"
	"github.com/dixieflatline76/Starpaper/pkg/layout"
	"github.com/dixieflatline76/Starpaper/pkg/sysinfo"
	"github.com/dixieflatline76/Starpaper/pkg/wallpaper"
	"github.com/dixieflatline76/Starpaper/util/log"
	"github.com/spf13/pflag"
)

func runGenerate(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	return generate(ctx, cfg, args, out, newGetter(cfg))
}

func generate(ctx context.Context, cfg *config.Config, args []string, out io.Writer, getter fetch.Getter) error {
	flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flags.SetOutput(out)
	dataFile := flags.StringP("data", "d", cfg.DataFile, "character table to read")
	art := flags.StringP("art", "a", catalog.Ascension0, `art to draw ("Ascension 0", "Ascension 3" or a skin such as "Skin1")`)
	background := flags.StringP("background", "b", "", "background colour as #rrggbb (default: the character's base colour)")
	align := flags.String("align", layout.Right.String(), "character alignment: Right, Left or Centred")
	faction := flags.BoolP("faction", "f", false, "draw the faction logo")
	outputDir := flags.StringP("output-dir", "o", cfg.OutputDir, "directory for the wallpaper")
	screen := flags.Bool("screen", false, "size the wallpaper to this desktop instead of the configured canvas")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("generate needs a character name")
	}

	alignment, err := layout.ParseAlignment(*align)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(*dataFile)
	if err != nil {
		return err
	}
	req, err := cat.Request(catalog.Selection{
		Name:          strings.Join(flags.Args(), " "),
		Art:           *art,
		Background:    *background,
		Alignment:     alignment,
		RenderFaction: *faction,
	})
	if err != nil {
		return err
	}

	tuning := tuningFromConfig(cfg)
	tuning.OutputDir = *outputDir
	if *screen {
		size, err := sysinfo.ScreenSize(ctx)
		if err != nil {
			return err
		}
		log.Printf("Using the desktop size %dx%d", size.X, size.Y)
		tuning.Canvas = size
	}
	path, err := wallpaper.NewCompositor(tuning, getter, nil).Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generating %s: %w", req.Name, err)
	}
	fmt.Fprintln(out, path)
	return nil
}
