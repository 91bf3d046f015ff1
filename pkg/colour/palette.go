package colour

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // wiki art is often served as webp
)

// Quantizer constants for the modified median cut.
const (
	sigBits           = 5
	rShift            = 8 - sigBits
	histSize          = 1 << (3 * sigBits)
	fractByPopulation = 0.75
	maxIterations     = 1000
	thumbSize         = 256

	minAlpha  = 125
	whiteSkip = 250

	// DefaultQuality samples every 10th pixel of the thumbnail.
	DefaultQuality = 10
)

// Palette is an ordered list of colours, most dominant first.
type Palette []RGB

// Hex returns the palette as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Extract quantizes img into at most count colours.
// Transparent and near-white pixels are ignored; an image made only of those yields {White}.
// The result is a pure function of the pixels: boxes are ranked by population,
// then population*volume, then creation order.
func Extract(img image.Image, count, quality int) Palette {
	if count < 1 {
		count = 1
	}
	if quality < 1 {
		quality = 1
	}

	hist, total := histogram(img, quality)
	if total == 0 {
		return Palette{White}
	}

	boxes := []*vbox{newBox(hist, [3]int{0, 0, 0}, [3]int{31, 31, 31})}
	seq := 1

	cut := func(target int, key func(*vbox) int) {
		for iter := 0; len(boxes) < target && iter < maxIterations; iter++ {
			i := pickBox(boxes, key)
			if i < 0 {
				return
			}
			a, b := boxes[i].split(hist)
			a.seq = boxes[i].seq
			b.seq = seq
			seq++
			boxes[i] = a
			boxes = append(boxes, b)
		}
	}
	cut(int(math.Ceil(fractByPopulation*float64(count))), func(b *vbox) int { return b.count })
	cut(count, func(b *vbox) int { return b.count * b.volume() })

	sort.SliceStable(boxes, func(i, j int) bool {
		bi, bj := boxes[i], boxes[j]
		if bi.count != bj.count {
			return bi.count > bj.count
		}
		if vi, vj := bi.count*bi.volume(), bj.count*bj.volume(); vi != vj {
			return vi > vj
		}
		return bi.seq < bj.seq
	})

	palette := make(Palette, len(boxes))
	for i, b := range boxes {
		palette[i] = b.avg
	}
	return palette
}

// Dominant returns the most dominant colour of img.
func Dominant(img image.Image, quality int) RGB {
	return Extract(img, 2, quality)[0]
}

// DominantFromBytes decodes an encoded image and returns its dominant colour as hex.
func DominantFromBytes(data []byte, quality int) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return Dominant(img, quality).Hex(), nil
}

func histIndex(r, g, b int) int {
	return r<<(2*sigBits) | g<<sigBits | b
}

// histogram counts sampled pixels of a thumbnail of img into 5 bit buckets.
func histogram(img image.Image, quality int) ([]int, int) {
	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Box)
	hist := make([]int, histSize)
	total := 0

	pixels := len(thumb.Pix) / 4
	for p := 0; p < pixels; p += quality {
		px := thumb.Pix[p*4 : p*4+4]
		r, g, b, a := px[0], px[1], px[2], px[3]
		if a < minAlpha {
			continue
		}
		if r > whiteSkip && g > whiteSkip && b > whiteSkip {
			continue
		}
		hist[histIndex(int(r>>rShift), int(g>>rShift), int(b>>rShift))]++
		total++
	}
	return hist, total
}

// vbox is a box in quantized colour space. Bounds are inclusive and tight
// around the populated cells.
type vbox struct {
	lo, hi [3]int
	count  int
	avg    RGB
	seq    int
}

// newBox scans the cells inside [lo, hi], tightening the bounds and computing
// population and average colour.
func newBox(hist []int, lo, hi [3]int) *vbox {
	b := &vbox{lo: hi, hi: lo}
	var sum [3]float64
	mult := float64(int(1) << rShift)

	for r := lo[0]; r <= hi[0]; r++ {
		for g := lo[1]; g <= hi[1]; g++ {
			for bl := lo[2]; bl <= hi[2]; bl++ {
				n := hist[histIndex(r, g, bl)]
				if n == 0 {
					continue
				}
				cell := [3]int{r, g, bl}
				for i, v := range cell {
					if v < b.lo[i] {
						b.lo[i] = v
					}
					if v > b.hi[i] {
						b.hi[i] = v
					}
					sum[i] += float64(n) * (float64(v) + 0.5) * mult
				}
				b.count += n
			}
		}
	}

	if b.count == 0 {
		b.lo, b.hi = lo, hi
		return b
	}
	var avg [3]uint8
	for i := range sum {
		v := int(sum[i] / float64(b.count))
		if v > 255 {
			v = 255
		}
		avg[i] = uint8(v)
	}
	b.avg = RGB{R: avg[0], G: avg[1], B: avg[2]}
	return b
}

func (b *vbox) volume() int {
	return (b.hi[0] - b.lo[0] + 1) * (b.hi[1] - b.lo[1] + 1) * (b.hi[2] - b.lo[2] + 1)
}

func (b *vbox) splittable() bool {
	return b.count > 1 && b.volume() > 1
}

// split cuts the box along its longest axis at the population median.
// Both halves are non-empty because the bounds are tight.
func (b *vbox) split(hist []int) (*vbox, *vbox) {
	axis := 0
	for i := 1; i < 3; i++ {
		if b.hi[i]-b.lo[i] > b.hi[axis]-b.lo[axis] {
			axis = i
		}
	}

	cut := b.hi[axis] - 1
	cum := 0
	for s := b.lo[axis]; s < b.hi[axis]; s++ {
		cum += b.sliceCount(hist, axis, s)
		if cum*2 >= b.count {
			cut = s
			break
		}
	}

	loHi := b.hi
	loHi[axis] = cut
	hiLo := b.lo
	hiLo[axis] = cut + 1
	return newBox(hist, b.lo, loHi), newBox(hist, hiLo, b.hi)
}

// sliceCount is the population of the plane axis == s inside the box.
func (b *vbox) sliceCount(hist []int, axis, s int) int {
	lo, hi := b.lo, b.hi
	lo[axis], hi[axis] = s, s
	n := 0
	for r := lo[0]; r <= hi[0]; r++ {
		for g := lo[1]; g <= hi[1]; g++ {
			for bl := lo[2]; bl <= hi[2]; bl++ {
				n += hist[histIndex(r, g, bl)]
			}
		}
	}
	return n
}

// pickBox returns the splittable box with the highest key, or -1.
func pickBox(boxes []*vbox, key func(*vbox) int) int {
	best, bestKey := -1, -1
	for i, b := range boxes {
		if !b.splittable() {
			continue
		}
		if k := key(b); k > bestKey {
			best, bestKey = i, k
		}
	}
	return best
}
