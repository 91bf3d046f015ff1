package main

import (
	"image"
	"time"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/fetch"
	"github.com/dixieflatline76/Starpaper/pkg/scraper"
	"github.com/dixieflatline76/Starpaper/pkg/wallpaper"
)

const httpTimeout = 2 * time.Minute

// newGetter builds the shared HTTP client for wiki pages and artwork.
func newGetter(cfg *config.Config) *fetch.Client {
	httpClient := fetch.NewHTTPClient(cfg.Scraper.UserAgent, httpTimeout)
	return fetch.NewClient(httpClient, fetch.Options{Interval: cfg.Scraper.RequestInterval})
}

func tuningFromConfig(cfg *config.Config) wallpaper.Tuning {
	c := cfg.Canvas
	deltas := make([]float64, len(c.ShadowDeltas))
	copy(deltas, c.ShadowDeltas)
	return wallpaper.Tuning{
		Canvas:         image.Pt(c.Width, c.Height),
		ArtOffset:      image.Pt(c.ArtOffset.X, c.ArtOffset.Y),
		LogoOffset:     image.Pt(c.LogoOffset.X, c.LogoOffset.Y),
		ShadowOffset:   image.Pt(c.ShadowOffset.X, c.ShadowOffset.Y),
		ShadowDeltas:   deltas,
		BlurRadius:     c.BlurRadius,
		BlurKind:       wallpaper.BlurKind(c.BlurKind),
		FactionOpacity: c.FactionOpacity,
		FactionScale:   c.FactionScale,
		OutputDir:      cfg.OutputDir,
	}
}

func scraperOptions(cfg *config.Config) scraper.Options {
	return scraper.Options{
		BaseURL:        cfg.Scraper.BaseURL,
		CategoryURL:    cfg.Scraper.CategoryURL,
		Workers:        cfg.Scraper.Workers,
		PaletteQuality: cfg.Scraper.PaletteQuality,
	}
}
