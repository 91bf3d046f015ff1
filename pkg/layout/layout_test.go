package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	canvas = image.Pt(1920, 1080)
	base   = image.Pt(500, -100)
)

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input    string
		expected Alignment
		hasError bool
	}{
		{"Right", Right, false},
		{"left", Left, false},
		{"Centred", Centred, false},
		{"centered", Centred, false},
		{" CENTRE ", Centred, false},
		{"top", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			a, err := ParseAlignment(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a)
		})
	}
}

func TestAlignmentString(t *testing.T) {
	for _, a := range Alignments {
		parsed, err := ParseAlignment(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "Alignment(9)", Alignment(9).String())
}

func TestArtCoords_X(t *testing.T) {
	tests := []struct {
		name     string
		align    Alignment
		width    int
		expected int
	}{
		{"right narrow", Right, 500, 1200},
		{"right narrow edge", Right, 799, 1200},
		{"right medium", Right, 800, 960},
		{"right medium edge", Right, 1299, 960},
		{"right wide uses base", Right, 1300, 500},
		{"right huge uses base", Right, 2600, 500},

		{"left narrow", Left, 500, 0},
		{"left medium", Left, 800, -150},
		{"left medium edge", Left, 1299, -150},
		{"left wide uses negated base", Left, 1300, -500},
		{"left wide edge", Left, 1700, -500},
		{"left very wide", Left, 1701, -700},

		{"centred narrow", Centred, 500, 710},
		{"centred exact", Centred, 1920, 0},
		{"centred odd overflow floors", Centred, 1921, -1},
		{"centred overflow", Centred, 2001, -41},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ArtCoords(tc.align, image.Pt(tc.width, 900), canvas, base)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.X)
		})
	}
}

func TestArtCoords_Y(t *testing.T) {
	tests := []struct {
		height   int
		expected int
	}{
		{600, 50},
		{1079, 50},
		{1080, 50},
		{1199, 50},
		{1200, 0},
		{1299, 0},
		{1300, -100},
		{1500, -100},
		{1501, -275},
		{3000, -275},
	}

	for _, tc := range tests {
		for _, align := range Alignments {
			p, err := ArtCoords(align, image.Pt(700, tc.height), canvas, base)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.Y, "height %d, %v", tc.height, align)
		}
	}
}

func TestArtCoords_HalfCanvasBucket(t *testing.T) {
	// Only reachable when half the canvas is wider than the medium breakpoint
	big := image.Pt(3840, 2160)

	p, err := ArtCoords(Right, image.Pt(1500, 2000), big, base)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2880, 50), p)

	p, err = ArtCoords(Left, image.Pt(1500, 2000), big, base)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(960, 50), p)

	// The very wide bucket is checked before the half canvas one on the left
	p, err = ArtCoords(Left, image.Pt(1800, 2000), big, base)
	require.NoError(t, err)
	assert.Equal(t, -700, p.X)
}

func TestArtCoords_UnknownAlignment(t *testing.T) {
	_, err := ArtCoords(Alignment(42), image.Pt(100, 100), canvas, base)
	assert.Error(t, err)
}

func TestLogoCoords(t *testing.T) {
	logoBase := image.Pt(0, 15)
	logo := image.Pt(400, 300)

	assert.Equal(t, image.Pt(1520, 15), LogoCoords(Left, logo, canvas, logoBase))
	assert.Equal(t, logoBase, LogoCoords(Right, logo, canvas, logoBase))
	assert.Equal(t, logoBase, LogoCoords(Centred, logo, canvas, logoBase))
}
