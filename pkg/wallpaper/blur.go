package wallpaper

import "image"

// boxBlur averages every channel over a (2r+1)x(2r+1) window. Pixels outside
// the image repeat the nearest edge pixel. imaging only ships a gaussian blur.
func boxBlur(img *image.NRGBA, radius int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	// Horizontal pass
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := tmp.Pix[y*tmp.Stride : y*tmp.Stride+w*4]
		blurLine(src, dst, w, 4, radius)
	}

	// Vertical pass, one column at a time
	col := make([]uint8, h*4)
	res := make([]uint8, h*4)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			copy(col[y*4:y*4+4], tmp.Pix[y*tmp.Stride+x*4:y*tmp.Stride+x*4+4])
		}
		blurLine(col, res, h, 4, radius)
		for y := 0; y < h; y++ {
			copy(out.Pix[y*out.Stride+x*4:y*out.Stride+x*4+4], res[y*4:y*4+4])
		}
	}
	return out
}

// blurLine runs a sliding window sum over n pixels of size bpp.
func blurLine(src, dst []uint8, n, bpp, radius int) {
	window := 2*radius + 1
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}

	for c := 0; c < bpp; c++ {
		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += int(src[clamp(i)*bpp+c])
		}
		for i := 0; i < n; i++ {
			dst[i*bpp+c] = uint8((sum + window/2) / window)
			sum += int(src[clamp(i+radius+1)*bpp+c]) - int(src[clamp(i-radius)*bpp+c])
		}
	}
}
