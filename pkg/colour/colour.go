// Package colour derives wallpaper colours: hex helpers, shadow tones and the
// dominant colour of a piece of character art.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for anything that is not a 6 digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// White is used whenever a colour cannot be derived.
var White = RGB{R: 255, G: 255, B: 255}

// RGB is an opaque 8 bit colour.
type RGB struct {
	R, G, B uint8
}

// Parse reads "#rrggbb" or "rrggbb".
func Parse(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParse is Parse for constants. It panics on bad input.
func MustParse(hex string) RGB {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as lower-case "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Increment boosts the most saturated channel(s) by (1+delta), clamped to 255.
// Channels already at 255 are left alone. A negative result yields White.
func (c RGB) Increment(delta float64) RGB {
	ch := c.channels()
	maxCh := ch[0]
	for _, v := range ch[1:] {
		if v > maxCh {
			maxCh = v
		}
	}

	for i, v := range ch {
		if v != maxCh || v == 255 {
			continue
		}
		updated := int(float64(v) * (1 + delta))
		if updated < 0 {
			return White
		}
		if updated > 255 {
			updated = 255
		}
		ch[i] = uint8(updated)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}
}

// Complement returns 255-v for every channel.
func (c RGB) Complement() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// IncrementColour is Increment on a hex string.
func IncrementColour(hex string, delta float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return c.Increment(delta).Hex(), nil
}

// ComplementHex is Complement on a hex string.
func ComplementHex(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return c.Complement().Hex(), nil
}

// ShadowTones cascades Increment over deltas: each tone is derived from the previous one.
func ShadowTones(base RGB, deltas ...float64) []RGB {
	tones := make([]RGB, 0, len(deltas))
	current := base
	for _, d := range deltas {
		current = current.Increment(d)
		tones = append(tones, current)
	}
	return tones
}
