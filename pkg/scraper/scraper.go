// Package scraper builds the character table from the Alchemy Stars wiki.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dixieflatline76/Starpaper/pkg/colour"
	"github.com/dixieflatline76/Starpaper/pkg/fetch"
	"github.com/dixieflatline76/Starpaper/util"
	"github.com/dixieflatline76/Starpaper/util/log"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Options configures a Scraper.
type Options struct {
	BaseURL        string // resolves relative character links
	CategoryURL    string // the character category listing
	Workers        int    // characters scraped concurrently, at least 1
	PaletteQuality int
}

// Scraper walks the character category and scrapes every character page.
type Scraper struct {
	opts   Options
	getter fetch.Getter
	parser PageParser
	cache  *PageCache
}

// New creates a Scraper. A nil cache disables the listing cache.
func New(opts Options, getter fetch.Getter, parser PageParser, cache *PageCache) *Scraper {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.PaletteQuality < 1 {
		opts.PaletteQuality = colour.DefaultQuality
	}
	return &Scraper{
		opts:   opts,
		getter: getter,
		parser: parser,
		cache:  cache,
	}
}

// DiscoverCharacters fetches the category listing. When the cached listing
// has the same number of entries it is reused, otherwise the fresh one wins.
// The cache is rewritten either way.
func (s *Scraper) DiscoverCharacters(ctx context.Context) ([]CharacterLink, error) {
	body, err := s.getter.Get(ctx, s.opts.CategoryURL)
	if err != nil {
		return nil, fmt.Errorf("fetching character list: %w", err)
	}
	doc, err := parseHTML(body)
	if err != nil {
		return nil, err
	}
	links, err := ParseListing(doc, s.opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if s.cache == nil {
		return links, nil
	}

	cached, err := s.cache.Load()
	if err != nil {
		log.Printf("Ignoring page cache: %v", err)
	}
	if len(cached) > 0 && len(cached) == len(links) {
		log.Printf("Character list is up to date (%d characters)", len(cached))
		links = cached
	} else {
		log.Printf("Character list is out of date (cached %d, found %d), updating", len(cached), len(links))
	}
	if err := s.cache.Save(links); err != nil {
		return nil, err
	}
	return links, nil
}

// ScrapeCharacter reads one character. It returns an error wrapping
// ErrNotPlayable when the page does not describe a playable character.
func (s *Scraper) ScrapeCharacter(ctx context.Context, link CharacterLink) (Character, error) {
	info, err := s.page(ctx, link.URL)
	if err != nil {
		return Character{}, err
	}
	page, err := s.parser.ParseInfo(info)
	if err != nil {
		return Character{}, err
	}

	gallery := info
	if galleryURL := s.parser.GalleryURL(link.URL); galleryURL != "" {
		gallery, err = s.page(ctx, galleryURL)
		var status *fetch.StatusError
		if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return Character{}, notPlayable("no gallery page")
		}
		if err != nil {
			return Character{}, err
		}
	}
	if err := s.parser.ParseGallery(&page, gallery); err != nil {
		return Character{}, err
	}

	// Ascension 3 art is the more colourful one when the character has it
	art := page.Ascension3
	if art == "" {
		art = page.Ascension0
	}
	data, err := s.getter.Get(ctx, art)
	if err != nil {
		return Character{}, fmt.Errorf("fetching art: %w", err)
	}
	base, err := colour.DominantFromBytes(data, s.opts.PaletteQuality)
	if err != nil {
		return Character{}, fmt.Errorf("base colour: %w", err)
	}

	return Character{Name: link.Name, CharacterPage: page, BaseColour: base}, nil
}

// Run scrapes every listed character and returns the flattened table in
// listing order. Non-playable pages are skipped; any other failure aborts.
func (s *Scraper) Run(ctx context.Context) ([]Record, error) {
	links, err := s.DiscoverCharacters(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*Character, len(links))
	progress := util.NewProgress(len(links))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, link := range links {
		g.Go(func() error {
			c, err := s.ScrapeCharacter(gctx, link)
			if errors.Is(err, ErrNotPlayable) {
				n := progress.Skip()
				log.Printf("[%d/%d] Skipping %s: %v", n, progress.Total(), link.Name, err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("scraping %s: %w", link.Name, err)
			}
			results[i] = &c
			log.Debugf("[%d/%d] Scraped %s", progress.Done(), progress.Total(), link.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chars := make([]Character, 0, len(results))
	for _, c := range results {
		if c != nil {
			chars = append(chars, *c)
		}
	}
	log.Printf("Scraped %d characters, %s", len(chars), progress)
	return Unpivot(chars), nil
}

func (s *Scraper) page(ctx context.Context, url string) (*html.Node, error) {
	body, err := s.getter.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return parseHTML(body)
}
