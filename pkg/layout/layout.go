// Package layout places character art and faction logos on the wallpaper canvas.
//
// The breakpoints were tuned by eye for a 1920x1080 canvas and are kept as-is.
package layout

import (
	"fmt"
	"image"
	"strings"
)

// Alignment is the side of the canvas the character is drawn on.
type Alignment int

// Alignment constants
const (
	Right Alignment = iota
	Left
	Centred
)

// Alignments lists every alignment in menu order.
var Alignments = []Alignment{Right, Left, Centred}

// String returns the string representation of an Alignment
func (a Alignment) String() string {
	switch a {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Centred:
		return "Centred"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment reads an alignment name, case-insensitively. "Centered" is accepted.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "centred", "centered", "center", "centre":
		return Centred, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// Art width breakpoints
const (
	narrowArt = 800
	mediumArt = 1300
	wideArt   = 1700

	leftMedium = -150
	leftWide   = -700
)

// Art height breakpoints
const (
	shortArt  = 1200
	tallArt   = 1300
	towerArt  = 1500
	shortArtY = 50
	tallArtY  = 0
	towerArtY = -275
)

// ArtCoords returns where the top-left corner of the art goes.
// art and canvas are sizes; base is the configured default offset used by the
// buckets that have no fixed position.
func ArtCoords(align Alignment, art, canvas, base image.Point) (image.Point, error) {
	quarter := floorDiv(canvas.X, 4)
	half := floorDiv(canvas.X, 2)

	var x int
	switch align {
	case Right:
		switch {
		case art.X < narrowArt:
			x = int(float64(quarter) * 2.5)
		case art.X < mediumArt:
			x = quarter * 2
		case art.X < half:
			x = quarter * 3
		default:
			x = base.X
		}
	case Left:
		switch {
		case art.X < narrowArt:
			x = 0
		case art.X < mediumArt:
			x = leftMedium
		case art.X > wideArt:
			x = leftWide
		case art.X < half:
			x = quarter
		default:
			x = -base.X
		}
	case Centred:
		x = floorDiv(canvas.X-art.X, 2)
	default:
		return image.Point{}, fmt.Errorf("unknown alignment %v", align)
	}

	var y int
	switch {
	case art.Y < canvas.Y:
		y = shortArtY
	case art.Y < shortArt:
		y = shortArtY
	case art.Y < tallArt:
		y = tallArtY
	case art.Y > towerArt:
		y = towerArtY
	default:
		y = base.Y
	}

	return image.Pt(x, y), nil
}

// LogoCoords anchors the logo to the right edge when the art is on the left,
// otherwise the logo stays at base.
func LogoCoords(align Alignment, logo, canvas, base image.Point) image.Point {
	if align == Left {
		return image.Pt(canvas.X-logo.X, base.Y)
	}
	return base
}

// floorDiv rounds towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
