package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"shopping-cart/internal/config"
	"shopping-cart/internal/expiry"
	"shopping-cart/internal/httpserver"
	cartsvc "shopping-cart/internal/service/cart"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	config.LoadDotEnv(logger, ".env.local")
	cfg := config.FromEnv()

	shoppingCart := cartsvc.New(cartsvc.WithLogger(logger))
	scheduler := expiry.New(shoppingCart, cfg.ExpiryTick, logger)
	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Cart:        shoppingCart,
		CORSOrigins: cfg.CORSOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
	logger.Printf("server stopped")
}
