package main

import (
	"context"
	"flag"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"shopping-cart/internal/config"
	"shopping-cart/internal/expiry"
	"shopping-cart/internal/importer"
	cartsvc "shopping-cart/internal/service/cart"
	"shopping-cart/internal/shell"
)

func main() {
	var preload string
	flag.StringVar(&preload, "preload", "", "Path to a CSV file (id,name,price,quantity) added to the cart on start")
	flag.Parse()

	logger := log.New(os.Stdout, "[shell] ", log.LstdFlags|log.LUTC)
	config.LoadDotEnv(logger, ".env.local")
	cfg := config.FromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shoppingCart := cartsvc.New()
	if preload != "" {
		count, err := preloadCart(ctx, shoppingCart, preload)
		if err != nil {
			logger.Fatalf("preload %s: %v", preload, err)
		}
		logger.Printf("preloaded %d products from %s", count, preload)
	}

	scheduler := expiry.New(shoppingCart, cfg.ExpiryTick, logger)
	sh := shell.New(shoppingCart, os.Stdin, os.Stdout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return sh.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("shell: %v", err)
	}
}

func preloadCart(ctx context.Context, cart importer.ProductWriter, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return importer.NewCSVImporter(f, cart).Run(ctx)
}
