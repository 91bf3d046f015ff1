package scraper

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// ErrNotPlayable marks pages that are not playable characters, or that lack
// the art needed to build a wallpaper.
var ErrNotPlayable = errors.New("not a playable character")

// CharacterPage is what a parser extracts from a character's wiki pages.
type CharacterPage struct {
	Rarity      int
	Element     string
	SubElement  string
	Ascension0  string
	Ascension3  string
	FactionLogo string
	Skins       []string
}

// PageParser extracts a CharacterPage from wiki markup. The wiki layout has
// changed several times, each strategy understands one revision of it.
//
// Parsing runs in two steps so pages that are not playable characters are
// rejected before their gallery is requested.
type PageParser interface {
	// Name identifies the strategy in configuration.
	Name() string
	// ParseInfo reads the character page. It returns ErrNotPlayable when the
	// page lacks the rarity or element of a playable character.
	ParseInfo(info *html.Node) (CharacterPage, error)
	// GalleryURL returns an extra page holding the artwork, or "" when
	// everything is on the character page.
	GalleryURL(pageURL string) string
	// ParseGallery fills the artwork of page from the gallery page (the
	// character page when GalleryURL returns ""). It returns ErrNotPlayable
	// when the base art is missing.
	ParseGallery(page *CharacterPage, gallery *html.Node) error
}

var parsers = map[string]PageParser{
	GalleryParser{}.Name(): GalleryParser{},
	InfoboxParser{}.Name(): InfoboxParser{},
}

// ParserByName returns the strategy registered under name.
func ParserByName(name string) (PageParser, error) {
	p, ok := parsers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown page parser %q (available: %s)", name, strings.Join(ParserNames(), ", "))
	}
	return p, nil
}

// ParserNames lists the registered strategies.
func ParserNames() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func notPlayable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotPlayable, fmt.Sprintf(format, args...))
}

// imageURL returns the real source of an img, skipping lazy-load placeholders.
func imageURL(img *html.Node) string {
	src := attr(img, "src")
	if src == "" || strings.HasPrefix(src, "data:") {
		src = attr(img, "data-src")
	}
	return src
}

var imageExts = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}

// originalArtURL strips the thumbnail suffix the wiki appends after the file
// name, e.g. ".../Vice.png/revision/latest/scale-to-width-down/185?cb=1".
func originalArtURL(src string) string {
	lower := strings.ToLower(src)
	cut := -1
	for _, ext := range imageExts {
		i := strings.Index(lower, ext)
		if i < 0 {
			continue
		}
		end := i + len(ext)
		// ".jpg" must not match the start of ".jpgfoo"
		if end < len(lower) && lower[end] != '/' && lower[end] != '?' && lower[end] != '#' {
			continue
		}
		if cut < 0 || end < cut {
			cut = end
		}
	}
	if cut < 0 {
		return src
	}
	return src[:cut]
}

// elementFromAlt turns an icon alt text such as "Element Fire.png" into "Fire".
func elementFromAlt(alt string) string {
	name := strings.TrimSpace(alt)
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// rarityFromText returns the first number in s if it is a valid rarity.
func rarityFromText(s string) (int, bool) {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	r, err := strconv.Atoi(s[start:end])
	if err != nil || r < 1 || r > 6 {
		return 0, false
	}
	return r, true
}
