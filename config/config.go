package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Package config provides configuration management for the wallpaper generator and scraper

// Config struct to hold all configuration data
type Config struct {
	OutputDir string        `json:"output_dir"`
	DataFile  string        `json:"data_file"`
	CacheFile string        `json:"cache_file"`
	Canvas    CanvasConfig  `json:"canvas"`
	Scraper   ScraperConfig `json:"scraper"`
}

// Point is a pixel coordinate or offset.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CanvasConfig holds the composition settings that used to be inline constants.
type CanvasConfig struct {
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	ArtOffset      Point     `json:"art_offset"`
	LogoOffset     Point     `json:"logo_offset"`
	ShadowOffset   Point     `json:"shadow_offset"`
	ShadowDeltas   []float64 `json:"shadow_deltas"`
	BlurRadius     int       `json:"blur_radius"`
	BlurKind       string    `json:"blur_kind"` // "box" or "gaussian"
	FactionOpacity float64   `json:"faction_opacity"`
	FactionScale   float64   `json:"faction_scale"`
}

// ScraperConfig holds the wiki scraping settings.
type ScraperConfig struct {
	BaseURL         string        `json:"base_url"`
	CategoryURL     string        `json:"category_url"`
	Parser          string        `json:"parser"`
	Workers         int           `json:"workers"`
	RequestInterval time.Duration `json:"request_interval"`
	UserAgent       string        `json:"user_agent"`
	PaletteQuality  int           `json:"palette_quality"`
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton instance of Config.
func GetConfig() *Config {
	once.Do(func() {
		cfg, err := LoadFrom(GetFilename())
		if err != nil {
			// Missing or broken file, fall back to defaults
			if !errors.Is(err, fs.ErrNotExist) {
				fmt.Println("Error loading config:", err)
			}
			cfg = Default()
		}
		instance = cfg
	})
	return instance
}

// ResetConfig drops the singleton so the next GetConfig reloads it. Used by tests.
func ResetConfig() {
	once = sync.Once{}
	instance = nil
}

// GetFilename returns the path to the user's config file
func GetFilename() string {
	return filepath.Join(GetPath(), "config.json")
}

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// No home (containers, CI): keep everything next to the binary
		return "." + strings.ToLower(AppName)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// Default returns a Config populated with the default values.
func Default() *Config {
	c := &Config{}
	c.setDefaultValues()
	return c
}

// LoadFrom reads the config file at filename. Keys missing from the file keep their defaults.
func LoadFrom(filename string) (*Config, error) {
	c := Default()
	if err := c.loadFromFile(filename); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, nil
}

// loadFromFile loads configuration from the specified file
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, c)
}

// setDefaultValues sets default values for the configuration
func (c *Config) setDefaultValues() {
	c.OutputDir = "."
	c.DataFile = DefaultDataFile
	c.CacheFile = DefaultCacheFile
	c.Canvas = CanvasConfig{
		Width:          1920,
		Height:         1080,
		ArtOffset:      Point{X: 500, Y: -100},
		LogoOffset:     Point{X: 0, Y: 15},
		ShadowOffset:   Point{X: 10, Y: 10},
		ShadowDeltas:   []float64{0.6, 0.35},
		BlurRadius:     10,
		BlurKind:       "box",
		FactionOpacity: 0.2,
		FactionScale:   1,
	}
	c.Scraper = ScraperConfig{
		BaseURL:         DefaultBaseURL,
		CategoryURL:     DefaultCategoryURL,
		Parser:          "gallery",
		Workers:         1,
		RequestInterval: 250 * time.Millisecond,
		UserAgent:       AppName + "/" + version(),
		PaletteQuality:  10,
	}
}

// Validate reports settings that would make generation impossible.
func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.BlurRadius < 0:
		return fmt.Errorf("invalid blur radius %d", c.Canvas.BlurRadius)
	case c.Canvas.FactionOpacity < 0 || c.Canvas.FactionOpacity > 1:
		return fmt.Errorf("faction opacity %v outside [0,1]", c.Canvas.FactionOpacity)
	case c.Canvas.FactionScale <= 0:
		return fmt.Errorf("invalid faction scale %v", c.Canvas.FactionScale)
	case c.Scraper.Workers < 1:
		return fmt.Errorf("invalid worker count %d", c.Scraper.Workers)
	}
	return nil
}

// Save writes the configuration to filename, creating its directory if needed.
func (c *Config) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ") // Use indentation for readability
	if err != nil {
		return fmt.Errorf("encoding config data: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func version() string {
	if AppVersion == "" {
		return "dev"
	}
	return AppVersion
}
