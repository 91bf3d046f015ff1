package wallpaper

import "image"

// BlurKind selects the filter used to soften the shadows.
type BlurKind string

// Blur kinds
const (
	BlurBox      BlurKind = "box"
	BlurGaussian BlurKind = "gaussian"
)

// Tuning holds the magic numbers of the composition.
// They were inline constants tuned for a 1920x1080 canvas and are centralized
// here so they can come from the config file.
type Tuning struct {
	Canvas       image.Point // wallpaper size
	ArtOffset    image.Point // fallback art position for the buckets without a fixed one
	LogoOffset   image.Point // faction logo position unless anchored right
	ShadowOffset image.Point // step between the art and each shadow layer

	// ShadowDeltas drive the shadow tones. Each tone increments the previous one,
	// the first tone is drawn furthest from the art.
	ShadowDeltas []float64

	BlurRadius int
	BlurKind   BlurKind

	FactionOpacity float64 // multiplier applied to the logo's alpha
	FactionScale   float64 // logo resize ratio

	OutputDir string
}

// DefaultTuning returns the values the wallpapers were designed with.
func DefaultTuning() Tuning {
	return Tuning{
		Canvas:         image.Pt(1920, 1080),
		ArtOffset:      image.Pt(500, -100),
		LogoOffset:     image.Pt(0, 15),
		ShadowOffset:   image.Pt(10, 10),
		ShadowDeltas:   []float64{0.6, 0.35},
		BlurRadius:     10,
		BlurKind:       BlurBox,
		FactionOpacity: 0.2,
		FactionScale:   1,
		OutputDir:      ".",
	}
}
