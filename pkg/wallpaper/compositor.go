// Package wallpaper composes character wallpapers: solid background, blurred
// two-tone shadow, optional faction logo and the character art on top.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Starpaper/pkg/colour"
	"github.com/dixieflatline76/Starpaper/pkg/fetch"
	"github.com/dixieflatline76/Starpaper/pkg/layout"
	"github.com/dixieflatline76/Starpaper/util/log"
	"github.com/google/uuid"
)

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("invalid wallpaper request")

// Request describes one wallpaper.
type Request struct {
	Name             string
	ArtURL           string
	FactionLogoURL   string
	BackgroundColour string // canvas fill, hex
	BaseColour       string // shadow source, hex
	Alignment        layout.Alignment
	RenderFaction    bool
}

// FileName is the name of the generated wallpaper.
func (r Request) FileName() string {
	return r.Name + ".png"
}

// Validate checks the request before anything is downloaded.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRequest)
	case strings.ContainsAny(r.Name, `/\`) || r.Name == "." || r.Name == "..":
		return fmt.Errorf("%w: name %q is not a file name", ErrInvalidRequest, r.Name)
	case r.ArtURL == "":
		return fmt.Errorf("%w: no art URL for %s", ErrInvalidRequest, r.Name)
	case r.RenderFaction && r.FactionLogoURL == "":
		return fmt.Errorf("%w: %s has no faction logo", ErrInvalidRequest, r.Name)
	}
	if _, err := colour.Parse(r.BackgroundColour); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidRequest, err)
	}
	if _, err := colour.Parse(r.BaseColour); err != nil {
		return fmt.Errorf("%w: base colour: %v", ErrInvalidRequest, err)
	}
	return nil
}

// Compositor renders Requests into images.
type Compositor struct {
	tuning    Tuning
	fetcher   fetch.Getter
	processor ImageProcessor
}

// NewCompositor creates a Compositor. A nil processor uses NewImageProcessor.
func NewCompositor(tuning Tuning, fetcher fetch.Getter, processor ImageProcessor) *Compositor {
	if processor == nil {
		processor = NewImageProcessor()
	}
	return &Compositor{
		tuning:    tuning,
		fetcher:   fetcher,
		processor: processor,
	}
}

// Render builds the wallpaper in memory.
func (c *Compositor) Render(ctx context.Context, req Request) (*image.NRGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	background := colour.MustParse(req.BackgroundColour)
	base := colour.MustParse(req.BaseColour)

	art, err := c.loadImage(ctx, req.ArtURL)
	if err != nil {
		return nil, fmt.Errorf("character art: %w", err)
	}

	var logo *image.NRGBA
	if req.RenderFaction {
		logo, err = c.loadImage(ctx, req.FactionLogoURL)
		if err != nil {
			return nil, fmt.Errorf("faction logo: %w", err)
		}
		logo = fadeAlpha(scale(logo, c.tuning.FactionScale), c.tuning.FactionOpacity)
	}

	artPos, err := layout.ArtCoords(req.Alignment, art.Bounds().Size(), c.tuning.Canvas, c.tuning.ArtOffset)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(c.tuning.Canvas.X, c.tuning.Canvas.Y, background.NRGBA())

	// Far shadow first so the nearer, brighter one sits on top
	tones := colour.ShadowTones(base, c.tuning.ShadowDeltas...)
	for i, tone := range tones {
		pos := artPos.Add(c.tuning.ShadowOffset.Mul(len(tones) - i))
		canvas = imaging.Overlay(canvas, silhouette(art, tone.NRGBA()), pos, 1)
	}

	// Only the shadows are on the canvas at this point
	canvas, err = c.processor.Blur(ctx, canvas, c.tuning.BlurRadius, c.tuning.BlurKind)
	if err != nil {
		return nil, fmt.Errorf("blurring shadows: %w", err)
	}

	if logo != nil {
		logoPos := layout.LogoCoords(req.Alignment, logo.Bounds().Size(), c.tuning.Canvas, c.tuning.LogoOffset)
		canvas = imaging.Overlay(canvas, logo, logoPos, 1)
	}

	return imaging.Overlay(canvas, art, artPos, 1), nil
}

// Generate renders the wallpaper and writes it as <OutputDir>/<name>.png.
// It returns the path of the file.
func (c *Compositor) Generate(ctx context.Context, req Request) (string, error) {
	img, err := c.Render(ctx, req)
	if err != nil {
		return "", err
	}

	data, err := c.processor.EncodeImage(ctx, img, "image/png")
	if err != nil {
		return "", err
	}

	target := c.Path(req.Name)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	// Write next to the target and rename so readers never see a partial file
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("writing wallpaper: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("saving wallpaper: %w", err)
	}

	log.Printf("Generated %s (%dx%d, %s aligned)", target, img.Bounds().Dx(), img.Bounds().Dy(), req.Alignment)
	return target, nil
}

// Path returns where the wallpaper of the named character is written.
func (c *Compositor) Path(name string) string {
	dir := c.tuning.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, Request{Name: name}.FileName())
}

// Remove deletes a generated wallpaper and reports whether it existed.
// A file that is already gone is not an error.
func (c *Compositor) Remove(path string) (bool, error) {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("removing wallpaper: %w", err)
	}
	return true, nil
}

func (c *Compositor) loadImage(ctx context.Context, url string) (*image.NRGBA, error) {
	data, err := c.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := c.processor.DecodeImage(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return img, nil
}
