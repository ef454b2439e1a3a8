package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/navbug/storefront-core/internal/app/catalog/domain"
	"github.com/navbug/storefront-core/internal/config"
	"github.com/navbug/storefront-core/internal/pkg/numfmt"
	"github.com/navbug/storefront-core/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to YAML config (optional)")
		token      = flag.String("token", os.Getenv("STOREFRONT_TOKEN"), "bearer token for authenticated endpoints")
		category   = flag.String("category", "", "category filter (empty = all)")
		search     = flag.String("search", "", "search keyword")
		sortKey    = flag.String("sort", string(domain.SortFeatured), "sort key")
		pages      = flag.Int("pages", 1, "number of pages to fetch")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	opts, err := services.NewServiceOptions(cfg, *token)
	if err != nil {
		return err
	}
	defer opts.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctl := opts.CatalogController
	if err := ctl.SetSortKey(ctx, domain.SortKey(*sortKey)); err != nil {
		return err
	}
	if *category != "" {
		if err := ctl.SetCategory(ctx, domain.Category(*category)); err != nil {
			return err
		}
	}
	if *search != "" {
		if err := ctl.SetSearchKeyword(ctx, *search); err != nil {
			return err
		}
	}

	for page := 1; page < *pages; page++ {
		if !ctl.Snapshot().HasMore {
			break
		}
		if err := ctl.LoadNextPage(ctx); err != nil {
			return err
		}
	}

	snap := ctl.Snapshot()
	if len(snap.Products) == 0 {
		fmt.Println("no products matched")
		return nil
	}

	for _, p := range snap.Products {
		stock := "in stock"
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Printf("%-28s ₹%-12s %.1f★  %s\n",
			p.Title,
			numfmt.GroupDigitsFloat(p.Price),
			p.AverageRating(),
			stock)
	}
	if snap.HasMore {
		fmt.Printf("(%d shown, more available)\n", len(snap.Products))
	}
	return nil
}
