package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/pkg/scraper"
	"github.com/dixieflatline76/Starpaper/util/log"
	"github.com/spf13/pflag"
)

func runScrape(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("scrape", pflag.ContinueOnError)
	flags.SetOutput(out)
	dataFile := flags.StringP("out", "o", cfg.DataFile, "character table to write")
	cacheFile := flags.String("cache", cfg.CacheFile, "character list cache")
	parserName := flags.String("parser", cfg.Scraper.Parser, fmt.Sprintf("page layout strategy %v", scraper.ParserNames()))
	workers := flags.IntP("workers", "w", cfg.Scraper.Workers, "characters scraped at once")
	interval := flags.Duration("interval", cfg.Scraper.RequestInterval, "minimum time between requests")
	if err := flags.Parse(args); err != nil {
		return err
	}

	parser, err := scraper.ParserByName(*parserName)
	if err != nil {
		return err
	}

	cfg.Scraper.RequestInterval = *interval
	opts := scraperOptions(cfg)
	opts.Workers = *workers

	var cache *scraper.PageCache
	if *cacheFile != "" {
		cache = scraper.NewPageCache(*cacheFile)
	}

	log.Printf("Scraping %s with the %s parser", opts.CategoryURL, parser.Name())
	s := scraper.New(opts, newGetter(cfg), parser, cache)
	records, err := s.Run(ctx)
	if err != nil {
		return err
	}

	if err := scraper.SaveCSV(*dataFile, records); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(records), *dataFile)
	return nil
}
