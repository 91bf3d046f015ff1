// Package sysinfo reports the desktop resolution so wallpapers can match the screen.
package sysinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupported is returned on platforms where the screen resolution cannot be read.
var ErrUnsupported = errors.New("screen size detection not supported on this platform")

// matches "1920x1080", "3456 x 2234" or "2880 x 1864 Retina"
var resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

// ScreenSize returns the primary desktop size in pixels.
func ScreenSize(ctx context.Context) (image.Point, error) {
	w, h, err := screenDimensions(ctx)
	if err != nil {
		return image.Point{}, err
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("implausible screen size %dx%d", w, h)
	}
	return image.Pt(w, h), nil
}

func parseResolution(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("no resolution in %q", s)
	}
	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}
	return width, height, nil
}

// parseXdpyinfo reads "dimensions:    1920x1080 pixels (508x285 millimeters)".
func parseXdpyinfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "dimensions:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return parseResolution(fields[1])
		}
	}
	return 0, 0, errors.New("no dimensions in xdpyinfo output")
}

type systemProfilerOutput struct {
	Displays []struct {
		NDRVs []struct {
			Resolution string `json:"_spdisplays_pixels"` // e.g. "3420 x 2214"
			Main       string `json:"spdisplays_main"`
		} `json:"spdisplays_ndrvs"`
	} `json:"SPDisplaysDataType"`
}

// parseSystemProfiler reads `system_profiler SPDisplaysDataType -json`,
// preferring the main display and falling back to the first one.
func parseSystemProfiler(data []byte) (int, int, error) {
	var profiler systemProfilerOutput
	if err := json.Unmarshal(data, &profiler); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	first := ""
	for _, gpu := range profiler.Displays {
		for _, display := range gpu.NDRVs {
			if display.Main == "spdisplays_yes" {
				return parseResolution(display.Resolution)
			}
			if first == "" {
				first = display.Resolution
			}
		}
	}
	if first != "" {
		return parseResolution(first)
	}
	return 0, 0, errors.New("no displays found in system_profiler output")
}
