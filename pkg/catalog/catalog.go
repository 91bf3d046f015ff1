// Package catalog answers questions about the scraped character table: who
// is available, which art each character has, and what to render for a choice.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dixieflatline76/Starpaper/pkg/layout"
	"github.com/dixieflatline76/Starpaper/pkg/scraper"
	"github.com/dixieflatline76/Starpaper/pkg/wallpaper"
)

// Art choices that are not skins.
const (
	Ascension0 = "Ascension 0"
	Ascension3 = "Ascension 3"
)

var (
	// ErrUnknownCharacter is returned for names not in the table.
	ErrUnknownCharacter = errors.New("unknown character")
	// ErrUnknownArt is returned for art choices the character does not have.
	ErrUnknownArt = errors.New("unknown art choice")
)

// Catalog is a read-only view of the character table, sorted by name.
type Catalog struct {
	records []scraper.Record
	byName  map[string][]scraper.Record
}

// New builds a Catalog. Rows keep their relative order within a character.
func New(records []scraper.Record) *Catalog {
	sorted := make([]scraper.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	byName := make(map[string][]scraper.Record)
	for _, r := range sorted {
		byName[r.Name] = append(byName[r.Name], r)
	}
	return &Catalog{records: sorted, byName: byName}
}

// Load reads the CSV table at path.
func Load(path string) (*Catalog, error) {
	records, err := scraper.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return New(records), nil
}

// Len is the number of characters.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// Rarities lists the rarities present, highest first.
func (c *Catalog) Rarities() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range c.records {
		if !seen[r.Rarity] {
			seen[r.Rarity] = true
			out = append(out, r.Rarity)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Names lists the characters of the given rarity in name order. A rarity of
// 0 lists everyone.
func (c *Catalog) Names(rarity int) []string {
	var names []string
	for _, r := range c.records {
		if rarity != 0 && r.Rarity != rarity {
			continue
		}
		if len(names) > 0 && names[len(names)-1] == r.Name {
			continue
		}
		names = append(names, r.Name)
	}
	return names
}

// Search lists the characters whose name contains query, ignoring case.
func (c *Catalog) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	var names []string
	for _, name := range c.Names(0) {
		if strings.Contains(strings.ToLower(name), query) {
			names = append(names, name)
		}
	}
	return names
}

// Rows returns the table rows of one character.
func (c *Catalog) Rows(name string) ([]scraper.Record, error) {
	rows, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	return rows, nil
}

// ArtChoices lists the art a character can be drawn with: Ascension 0,
// Ascension 3 when the character has it, then every skin with art.
func (c *Catalog) ArtChoices(name string) ([]string, error) {
	rows, err := c.Rows(name)
	if err != nil {
		return nil, err
	}
	choices := []string{Ascension0}
	if hasAscension3(rows) {
		choices = append(choices, Ascension3)
	}
	for _, r := range rows {
		if r.SkinURL != "" {
			choices = append(choices, r.Skin)
		}
	}
	return choices, nil
}

func hasAscension3(rows []scraper.Record) bool {
	for _, r := range rows {
		if r.Ascension3 != "" {
			return true
		}
	}
	return false
}

// Selection is what the user picked for one wallpaper.
type Selection struct {
	Name          string
	Art           string // an entry of ArtChoices, "" means Ascension 0
	Background    string // hex, "" means the character's base colour
	Alignment     layout.Alignment
	RenderFaction bool
}

// Request resolves a Selection into a compositor request.
func (c *Catalog) Request(sel Selection) (wallpaper.Request, error) {
	rows, err := c.Rows(sel.Name)
	if err != nil {
		return wallpaper.Request{}, err
	}

	row := rows[0]
	var artURL string
	switch art := sel.Art; {
	case art == "" || art == Ascension0:
		artURL = row.Ascension0
	case art == Ascension3:
		for _, r := range rows {
			if r.Ascension3 != "" {
				artURL = r.Ascension3
				break
			}
		}
	default:
		for _, r := range rows {
			if strings.EqualFold(r.Skin, art) && r.SkinURL != "" {
				row = r
				artURL = r.SkinURL
				break
			}
		}
	}
	if artURL == "" {
		return wallpaper.Request{}, fmt.Errorf("%w: %s has no %q art", ErrUnknownArt, sel.Name, sel.Art)
	}

	background := sel.Background
	if background == "" {
		background = row.BaseColour
	}
	return wallpaper.Request{
		Name:             row.Name,
		ArtURL:           artURL,
		FactionLogoURL:   row.FactionLogo,
		BackgroundColour: background,
		BaseColour:       row.BaseColour,
		Alignment:        sel.Alignment,
		RenderFaction:    sel.RenderFaction,
	}, nil
}
