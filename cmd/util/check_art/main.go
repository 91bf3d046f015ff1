package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/layout"
	"github.com/spf13/pflag"
	_ "golang.org/x/image/webp"
)

func main() {
	width := pflag.Int("width", 1920, "canvas width")
	height := pflag.Int("height", 1080, "canvas height")
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Println("Usage: check_art [--width W] [--height H] <art file>")
		os.Exit(2)
	}
	path := pflag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		fmt.Printf("Error decoding config: %v\n", err)
		os.Exit(1)
	}

	art := image.Pt(cfg.Width, cfg.Height)
	canvas := image.Pt(*width, *height)
	defaults := config.Default().Canvas
	base := image.Pt(defaults.ArtOffset.X, defaults.ArtOffset.Y)

	fmt.Printf("File: %s (%s)\n", path, format)
	fmt.Printf("Dimensions: %dx%d\n", art.X, art.Y)
	fmt.Printf("Canvas: %dx%d\n", canvas.X, canvas.Y)

	for _, align := range layout.Alignments {
		pos, err := layout.ArtCoords(align, art, canvas, base)
		if err != nil {
			fmt.Printf("%-8s error: %v\n", align, err)
			continue
		}
		visible := image.Rectangle{Min: pos, Max: pos.Add(art)}.Intersect(image.Rectangle{Max: canvas})
		fmt.Printf("%-8s offset %v, visible %dx%d\n", align, pos, visible.Dx(), visible.Dy())
	}
}
