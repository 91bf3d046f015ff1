package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// CharacterLink is one entry of the character category.
type CharacterLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ParseListing collects the character links of a category page. Relative
// links are resolved against baseURL.
func ParseListing(doc *html.Node, baseURL string) ([]CharacterLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	var links []CharacterLink
	for _, a := range findAll(doc, byTagClass("a", "category-page__member-link")) {
		href := attr(a, "href")
		name := text(a)
		if href == "" || name == "" {
			continue
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return nil, fmt.Errorf("character link %q: %w", href, err)
		}
		links = append(links, CharacterLink{
			Name: name,
			URL:  base.ResolveReference(ref).String(),
		})
	}
	return links, nil
}
