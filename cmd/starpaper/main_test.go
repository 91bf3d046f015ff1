package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/scraper"
	"github.com/dixieflatline76/Starpaper/pkg/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup writes a config and a character table whose art is served by srv.
func setup(t *testing.T, artBase string) (configFile string, cfg *config.Config) {
	t.Helper()
	dir := t.TempDir()

	cfg = config.Default()
	cfg.DataFile = filepath.Join(dir, "data.csv")
	cfg.CacheFile = filepath.Join(dir, "pages.json")
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Canvas.Width, cfg.Canvas.Height = 320, 180
	cfg.Canvas.BlurRadius = 2
	cfg.Scraper.RequestInterval = 0
	configFile = filepath.Join(dir, "config.json")
	require.NoError(t, cfg.Save(configFile))

	records := []scraper.Record{
		{Name: "Vice", Rarity: 6, Element: "Fire", SubElement: "Thunder", Ascension0: artBase + "/Vice.png",
			FactionLogo: artBase + "/Logo.png", BaseColour: "#a03020", Skin: "Skin1", SkinURL: artBase + "/Vice_S1.png"},
		{Name: "Leaf", Rarity: 3, Element: "Forest", Ascension0: artBase + "/Leaf.png", BaseColour: "#208020", Skin: "Skin1"},
	}
	require.NoError(t, scraper.SaveCSV(cfg.DataFile, records))
	return configFile, cfg
}

func artServer(t *testing.T) *httptest.Server {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 60, 90))
	for y := 20; y < 70; y++ {
		for x := 10; x < 50; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_NoCommand(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), nil, &out))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	assert.Error(t, run(context.Background(), []string{"paint"}, &out))
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), config.AppName+" "))

	configFile, _ := setup(t, "https://img.test")
	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-c", configFile, "version"}, &out))
	assert.Equal(t, config.AppName+" "+versionString()+"\n", out.String())
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "nope.json"), "list"}, &out)
	assert.Error(t, err)
}

func TestRun_List(t *testing.T) {
	configFile, _ := setup(t, "https://img.test")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-c", configFile, "list"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	// Highest rarity first
	assert.Contains(t, lines[1], "Fire/Thunder")
	assert.Contains(t, lines[2], "Leaf")
	assert.Equal(t, "2 of 2 characters", lines[3])

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-c", configFile, "list", "--rarity", "6"}, &out))
	assert.NotContains(t, out.String(), "Leaf")
	assert.Contains(t, out.String(), "1 of 2 characters")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-c", configFile, "list", "--search", "lea"}, &out))
	assert.Contains(t, out.String(), "Leaf")
	assert.NotContains(t, out.String(), "Vice")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-c", configFile, "list", "Vice"}, &out))
	assert.Equal(t, "Ascension 0\nSkin1\n", out.String())
}

func TestRun_Generate(t *testing.T) {
	srv := artServer(t)
	configFile, cfg := setup(t, srv.URL)

	var out bytes.Buffer
	args := []string{"-c", configFile, "generate", "--art", "Skin1", "--align", "left", "--faction", "Vice"}
	require.NoError(t, run(context.Background(), args, &out))

	path := strings.TrimSpace(out.String())
	assert.Equal(t, filepath.Join(cfg.OutputDir, "Vice.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(320, 180), img.Bounds().Size())
}

func TestRun_GenerateErrors(t *testing.T) {
	srv := artServer(t)
	configFile, _ := setup(t, srv.URL)

	tests := []struct {
		name string
		args []string
	}{
		{"no name", []string{"generate"}},
		{"bad alignment", []string{"generate", "--align", "diagonal", "Vice"}},
		{"unknown character", []string{"generate", "Nobody"}},
		{"missing art", []string{"generate", "--art", "Ascension 3", "Leaf"}},
		{"no faction logo", []string{"generate", "--faction", "Leaf"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(context.Background(), append([]string{"-c", configFile}, tc.args...), &out))
		})
	}
}

func TestRun_Clean(t *testing.T) {
	srv := artServer(t)
	configFile, cfg := setup(t, srv.URL)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-c", configFile, "generate", "Vice"}, &out))
	path := strings.TrimSpace(out.String())

	out.Reset()
	require.NoError(t, run(ctx, []string{"-c", configFile, "clean", "Vice"}, &out))
	assert.Equal(t, "Removed "+path+"\n1 wallpapers removed\n", out.String())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Nothing left: every character in the table is checked, none removed
	out.Reset()
	require.NoError(t, run(ctx, []string{"-c", configFile, "clean"}, &out))
	assert.Equal(t, "0 wallpapers removed\n", out.String())

	out.Reset()
	assert.Error(t, run(ctx, []string{"-c", configFile, "clean", "../Vice"}, &out))
	assert.Error(t, run(ctx, []string{"-c", configFile, "clean", ".."}, &out))
	assert.DirExists(t, cfg.OutputDir)
}

func TestTuningFromConfig(t *testing.T) {
	cfg := config.Default()
	tuning := tuningFromConfig(cfg)
	assert.Equal(t, wallpaper.DefaultTuning(), tuning)

	// The tuning owns its deltas
	tuning.ShadowDeltas[0] = 9
	assert.Equal(t, 0.6, cfg.Canvas.ShadowDeltas[0])
}
