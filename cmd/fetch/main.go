// Command fetch retrieves one page through the caching tracker, prints
// its body and then the access count for the URL.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/oggyb/pagetracker/internal/config"
	"github.com/oggyb/pagetracker/internal/fetch"
	"github.com/oggyb/pagetracker/internal/storage"
	"github.com/oggyb/pagetracker/internal/tracker"
	"github.com/urfave/cli/v3"
)

const defaultURL = "http://slowwly.robertomurray.co.uk"

func main() {
	// Defaults come from env/.env; flags override them.
	cfg := config.New()

	cmd := &cli.Command{
		Name:      "fetch",
		Usage:     "fetch a page through the cache and print its access count",
		UsageText: "fetch [options] [url]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "page to fetch (a positional argument wins)",
				Value: defaultURL,
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "how long the body stays cached",
				Value: cfg.Cache.TTL,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout for the fetch",
				Value: cfg.Fetch.Timeout,
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis address",
				Value:   cfg.Redis.Addr,
				Sources: cli.EnvVars("REDIS_ADDR"),
			},
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "use an in-process store instead of Redis",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not print the page body",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			url := cmd.String("url")
			if cmd.Args().Present() {
				url = cmd.Args().First()
			}

			cfg.Redis.Addr = cmd.String("redis-addr")
			if cmd.Bool("memory") {
				cfg.Cache.Driver = config.CacheDriverMemory
			}

			return run(ctx, cfg, url, cmd.Duration("ttl"), cmd.Duration("timeout"), cmd.Bool("quiet"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("[Fetch] %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, url string, ttl, timeout time.Duration, quiet bool) error {
	store, err := storage.OpenCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	fetcher := fetch.NewHTTPFetcher(timeout, cfg.Fetch.UserAgent)
	pageTracker := tracker.New(store, fetcher, tracker.WithTTL(ttl))

	body, fetchErr := pageTracker.Fetch(ctx, url)
	if fetchErr == nil && !quiet {
		fmt.Println(body)
	}

	// Report the count even when the fetch failed: the attempt was counted.
	count, err := pageTracker.AccessCount(ctx, url)
	if err != nil {
		return err
	}
	fmt.Printf("Access count for %s: %d\n", url, count)

	return fetchErr
}
