package scraper

import (
	"strings"

	"golang.org/x/net/html"
)

// GalleryParser reads the layout where the character page carries the rarity
// and element icons, and a separate "/Gallery" page carries the artwork:
// tab 0 has the faction logo, tab 1 the ascension art and skins.
type GalleryParser struct{}

// Name returns "gallery".
func (GalleryParser) Name() string {
	return "gallery"
}

// GalleryURL returns the gallery sub page.
func (GalleryParser) GalleryURL(pageURL string) string {
	return strings.TrimSuffix(pageURL, "/") + "/Gallery"
}

// ParseInfo implements PageParser.
func (GalleryParser) ParseInfo(info *html.Node) (CharacterPage, error) {
	var page CharacterPage

	// The rarity doubles as the playable character check
	star := findFirst(info, byTagClass("div", "rarity_star"))
	if star == nil {
		return page, notPlayable("no rarity")
	}
	rarity, ok := rarityFromClasses(classes(star))
	if !ok {
		return page, notPlayable("unreadable rarity %q", attr(star, "class"))
	}
	page.Rarity = rarity

	mainIcon := findFirst(findFirst(info, byTagClass("div", "aurorian_element1")), byTag("img"))
	page.Element = elementFromAlt(attr(mainIcon, "alt"))
	if page.Element == "" {
		return page, notPlayable("no element")
	}
	subIcon := findFirst(findFirst(info, byTagClass("div", "aurorian_element2")), byTag("img"))
	page.SubElement = elementFromAlt(attr(subIcon, "alt"))
	return page, nil
}

// ParseGallery implements PageParser. Tab 0 holds the faction logo, tab 1
// the ascension art and skins.
func (GalleryParser) ParseGallery(page *CharacterPage, gallery *html.Node) error {
	general := findFirst(gallery, byID("gallery-0"))
	if general == nil {
		return notPlayable("no gallery")
	}
	for _, item := range galleryItems(general) {
		if strings.Contains(text(item), "Character Logo") {
			page.FactionLogo = itemImage(item)
			break
		}
	}

	artworks := findFirst(gallery, byID("gallery-1"))
	if artworks == nil {
		return notPlayable("no artwork gallery")
	}
	for _, item := range galleryItems(artworks) {
		caption := text(item)
		url := itemImage(item)
		if url == "" {
			continue
		}
		switch {
		case page.Ascension0 == "" && strings.Contains(caption, "Base"):
			page.Ascension0 = url
		case page.Ascension3 == "" && strings.Contains(caption, "Ascension"):
			page.Ascension3 = url
		case caption == "Equipment", caption == "Base", caption == "Ascension 3":
		default:
			page.Skins = append(page.Skins, url)
		}
	}
	if page.Ascension0 == "" {
		return notPlayable("no base art")
	}
	return nil
}

// rarityFromClasses reads "star6" out of `class="rarity_star star6"`.
func rarityFromClasses(cls []string) (int, bool) {
	for _, c := range cls {
		if c == "rarity_star" || !strings.HasPrefix(c, "star") {
			continue
		}
		return rarityFromText(strings.TrimPrefix(c, "star"))
	}
	return 0, false
}

func galleryItems(n *html.Node) []*html.Node {
	return findAll(n, byTagClass("div", "wikia-gallery-item"))
}

func itemImage(item *html.Node) string {
	img := findFirst(item, byTag("img"))
	if img == nil {
		return ""
	}
	return originalArtURL(imageURL(img))
}
