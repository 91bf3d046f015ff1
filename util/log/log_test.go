//go:build !release

package log

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	// Capture standard log output
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{
			name: "Print",
			fn: func() {
				Print("scraping Victoria")
			},
			expected: "scraping Victoria",
		},
		{
			name: "Printf",
			fn: func() {
				Printf("scraped %d characters", 42)
			},
			expected: "scraped 42 characters",
		},
		{
			name: "Println",
			fn: func() {
				Println("exported data.csv")
			},
			expected: "exported data.csv",
		},
		{
			name: "Debug",
			fn: func() {
				Debug("skipping page")
			},
			expected: "[DEBUG] skipping page",
		},
		{
			name: "Debugf",
			fn: func() {
				Debugf("wallpaper %s", "Vice.png")
			},
			expected: "[DEBUG] wallpaper Vice.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected log to contain %q, but got %q", tt.expected, buf.String())
			}
		})
	}
}


func TestUseFileNamesTheSession(t *testing.T) {
	tests := []struct {
		session  string
		expected string
	}{
		{"Starpaper", "starpaper.log"},
		{"Starpaper scrape", "starpaper-scrape.log"},
		{"  Starpaper   generate ", "starpaper-generate.log"},
		{"a/b:c", "a-b-c.log"},
		{"", "starpaper.log"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			name, err := UseFile(tt.session)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}
