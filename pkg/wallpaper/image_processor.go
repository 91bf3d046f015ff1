package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // wiki art is often served as webp
)

// ImageProcessor turns downloaded bytes into pixels and back.
type ImageProcessor interface {
	DecodeImage(ctx context.Context, imgBytes []byte) (*image.NRGBA, error)
	EncodeImage(ctx context.Context, img image.Image, contentType string) ([]byte, error)
	Blur(ctx context.Context, img *image.NRGBA, radius int, kind BlurKind) (*image.NRGBA, error)
}

// imageProcessor is the imaging backed ImageProcessor.
type imageProcessor struct {
	jpegQuality int
}

// NewImageProcessor returns the default ImageProcessor.
func NewImageProcessor() ImageProcessor {
	return &imageProcessor{jpegQuality: 95}
}

// DecodeImage decodes png, jpeg, gif or webp bytes into non-premultiplied RGBA.
func (p *imageProcessor) DecodeImage(ctx context.Context, imgBytes []byte) (*image.NRGBA, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(imgBytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// EncodeImage encodes an image to a byte slice.
func (p *imageProcessor) EncodeImage(ctx context.Context, img image.Image, contentType string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	switch contentType {
	case "image/png":
		err = imaging.Encode(&buf, img, imaging.PNG)
	case "image/jpeg":
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.jpegQuality))
	default:
		return nil, fmt.Errorf("unsupported format: %s", contentType)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return buf.Bytes(), nil
}

// Blur softens img. A radius of 0 returns img untouched.
func (p *imageProcessor) Blur(ctx context.Context, img *image.NRGBA, radius int, kind BlurKind) (*image.NRGBA, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return img, nil
	}

	switch kind {
	case BlurBox, "":
		return boxBlur(img, radius), nil
	case BlurGaussian:
		return imaging.Blur(img, float64(radius)/2), nil
	default:
		return nil, fmt.Errorf("unknown blur kind %q", kind)
	}
}

// silhouette returns an image the size of art filled with c, using art's alpha.
func silhouette(art *image.NRGBA, c color.NRGBA) *image.NRGBA {
	b := art.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := art.Pix[y*art.Stride : y*art.Stride+b.Dx()*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+b.Dx()*4]
		for x := 0; x < len(src); x += 4 {
			dst[x] = c.R
			dst[x+1] = c.G
			dst[x+2] = c.B
			dst[x+3] = src[x+3]
		}
	}
	return out
}

// fadeAlpha multiplies every alpha value by opacity, truncating.
func fadeAlpha(img *image.NRGBA, opacity float64) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i]) * opacity)
	}
	return out
}

// scale resizes img by ratio. A ratio of 1 returns img.
func scale(img *image.NRGBA, ratio float64) *image.NRGBA {
	if ratio == 1 {
		return img
	}
	w := int(float64(img.Bounds().Dx()) * ratio)
	h := int(float64(img.Bounds().Dy()) * ratio)
	if w < 1 || h < 1 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
