package scraper

import (
	"strings"

	"golang.org/x/net/html"
)

// InfoboxParser reads the layout where everything sits on the character page:
// a portable infobox keyed by data-source, and a tabber whose tabs hold the
// ascension art and skins.
type InfoboxParser struct{}

// Name returns "infobox".
func (InfoboxParser) Name() string {
	return "infobox"
}

// GalleryURL returns "", the art is on the character page.
func (InfoboxParser) GalleryURL(string) string {
	return ""
}

// ParseInfo implements PageParser.
func (InfoboxParser) ParseInfo(info *html.Node) (CharacterPage, error) {
	var page CharacterPage

	rarity := infoboxValue(info, "rarity")
	if rarity == nil {
		return page, notPlayable("no rarity")
	}
	r, ok := rarityFromText(text(rarity) + " " + attr(findFirst(rarity, byTag("img")), "alt"))
	if !ok {
		return page, notPlayable("unreadable rarity %q", text(rarity))
	}
	page.Rarity = r

	page.Element = infoboxElement(info, "element")
	if page.Element == "" {
		return page, notPlayable("no element")
	}
	page.SubElement = infoboxElement(info, "sub_element")

	if faction := infoboxValue(info, "faction"); faction != nil {
		if img := findFirst(faction, byTag("img")); img != nil {
			page.FactionLogo = originalArtURL(imageURL(img))
		}
	}
	return page, nil
}

// ParseGallery implements PageParser. gallery is the character page.
func (InfoboxParser) ParseGallery(page *CharacterPage, gallery *html.Node) error {
	tabber := findFirst(gallery, byTagClass("", "wds-tabber"))
	if tabber == nil {
		return notPlayable("no artwork tabs")
	}
	labels := findAll(tabber, byTagClass("", "wds-tabs__tab-label"))
	panels := findAll(tabber, byTagClass("", "wds-tab__content"))
	for i := 0; i < len(labels) && i < len(panels); i++ {
		url := panelImage(panels[i])
		if url == "" {
			continue
		}
		switch label := text(labels[i]); {
		case page.Ascension0 == "" && (strings.Contains(label, "Base") || label == "Ascension 0"):
			page.Ascension0 = url
		case page.Ascension3 == "" && strings.Contains(label, "Ascension"):
			page.Ascension3 = url
		case label == "Equipment":
		default:
			page.Skins = append(page.Skins, url)
		}
	}
	if page.Ascension0 == "" {
		return notPlayable("no base art")
	}
	return nil
}

// infoboxValue returns the value cell of the infobox row with the given data-source.
func infoboxValue(doc *html.Node, source string) *html.Node {
	row := findFirst(doc, byAttr("data-source", source))
	if row == nil {
		return nil
	}
	if value := findFirst(row, byTagClass("", "pi-data-value")); value != nil {
		return value
	}
	return row
}

func infoboxElement(doc *html.Node, source string) string {
	value := infoboxValue(doc, source)
	if value == nil {
		return ""
	}
	if img := findFirst(value, byTag("img")); img != nil {
		if el := elementFromAlt(attr(img, "alt")); el != "" {
			return el
		}
	}
	return text(value)
}

// panelImage prefers the link to the full size file over the thumbnail.
func panelImage(panel *html.Node) string {
	if a := findFirst(panel, byTagClass("a", "image")); a != nil {
		if href := attr(a, "href"); href != "" {
			return originalArtURL(href)
		}
	}
	if img := findFirst(panel, byTag("img")); img != nil {
		return originalArtURL(imageURL(img))
	}
	return ""
}
