package scraper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const thumb = "/revision/latest/scale-to-width-down/185?cb=20210101"

// Character page in the gallery layout.
const galleryInfoPage = `<html><body>
<div class="char-header">
  <div class="rarity_star star6"></div>
  <div class="aurorian_element1"><img alt="Element Fire.png" src="/icons/fire.png"></div>
  <div class="aurorian_element2"><img alt="Element Thunder.png" src="/icons/thunder.png"></div>
</div>
</body></html>`

const galleryPage = `<html><body>
<div id="gallery-0">
  <div class="wikia-gallery-item"><img src="https://img.test/Vice_Logo.png` + thumb + `"><div class="lightbox-caption">Character Logo</div></div>
</div>
<div id="gallery-1">
  <div class="wikia-gallery-item"><img src="https://img.test/Vice.png` + thumb + `"><div class="lightbox-caption">Base</div></div>
  <div class="wikia-gallery-item"><img src="data:image/gif;base64,R0lGOD" data-src="https://img.test/Vice_A3.png` + thumb + `"><div class="lightbox-caption">Ascension 3</div></div>
  <div class="wikia-gallery-item"><img src="https://img.test/Vice_Equip.png"><div class="lightbox-caption">Equipment</div></div>
  <div class="wikia-gallery-item"><img src="https://img.test/Vice_Summer.png` + thumb + `"><div class="lightbox-caption">Summer Breeze</div></div>
  <div class="wikia-gallery-item"><img src="https://img.test/Vice_Night.jpg` + thumb + `"><div class="lightbox-caption">Night Watch</div></div>
</div>
</body></html>`

const npcInfoPage = `<html><body><div class="char-header"><p>Story character</p></div></body></html>`

// Character page in the infobox layout.
const infoboxPage = `<html><body>
<aside class="portable-infobox">
  <div class="pi-item pi-data" data-source="rarity"><h3 class="pi-data-label">Rarity</h3><div class="pi-data-value">5★</div></div>
  <div class="pi-item pi-data" data-source="element"><div class="pi-data-value"><img alt="Element Water.png" src="/icons/water.png"></div></div>
  <div class="pi-item pi-data" data-source="faction"><div class="pi-data-value"><a href="/wiki/Tribe"><img src="https://img.test/Tribe_Logo.png` + thumb + `"></a></div></div>
</aside>
<div class="tabber wds-tabber">
  <div class="wds-tabs__wrapper"><ul class="wds-tabs">
    <li class="wds-tabs__tab"><div class="wds-tabs__tab-label"><a href="#">Base</a></div></li>
    <li class="wds-tabs__tab"><div class="wds-tabs__tab-label"><a href="#">Ascension 3</a></div></li>
    <li class="wds-tabs__tab"><div class="wds-tabs__tab-label"><a href="#">Festive</a></div></li>
  </ul></div>
  <div class="wds-tab__content wds-is-current"><figure><a class="image" href="https://img.test/Nya.png/revision/latest?cb=1"><img src="https://img.test/Nya.png` + thumb + `"></a></figure></div>
  <div class="wds-tab__content"><figure><a class="image" href="https://img.test/Nya_A3.png/revision/latest?cb=1"><img src="x"></a></figure></div>
  <div class="wds-tab__content"><figure><img src="https://img.test/Nya_Festive.png` + thumb + `"></figure></div>
</div>
</body></html>`

const listingPage = `<html><body>
<ul class="category-page__members-for-char">
  <li><a class="category-page__member-link" href="/wiki/Vice" title="Vice">Vice</a></li>
  <li><a class="category-page__member-link" href="/wiki/Guide" title="Guide">Guide</a></li>
  <li><a class="category-page__member-link" href="https://elsewhere.test/wiki/Nya">  Nya  </a></li>
  <li><a class="category-page__member-link">No link</a></li>
</ul>
<a href="/wiki/Other">Not a member</a>
</body></html>`

func mustParseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := parseHTML([]byte(s))
	require.NoError(t, err)
	return doc
}

// solidPNG encodes a w x h image of one colour.
func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
