package main

import (
	"context"
	"log"

	"shopfront/internal/core/cache"
	"shopfront/internal/core/config"
	"shopfront/internal/core/logger"
	"shopfront/internal/core/server"
	carthandler "shopfront/internal/features/cart/handler"
	cartstore "shopfront/internal/features/cart/store"
	catalogadapters "shopfront/internal/features/catalog/adapters"
	cataloghandler "shopfront/internal/features/catalog/handler"
	catalogloader "shopfront/internal/features/catalog/loader"
	"shopfront/internal/features/catalog/ports"
	catalogstore "shopfront/internal/features/catalog/store"
	checkouthandler "shopfront/internal/features/checkout/handler"
	checkoutservice "shopfront/internal/features/checkout/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Product source, optionally wrapped with the redis payload cache.
	var source ports.ProductSource = catalogadapters.NewHTTPProductSource(
		cfg.Catalog.ProductsURL,
		cfg.Catalog.FetchTimeout(),
	)
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to create redis cache", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		source = catalogadapters.NewCachedProductSource(source, redisCache, cfg.Cache.TTL())
	}

	// Stores and the load coordinator.
	catalog := catalogstore.New()
	cart := cartstore.New()

	loader := catalogloader.New(catalog, source)
	defer loader.Stop()
	loader.Load(context.Background())

	// Consumer layer.
	catalogHdl := cataloghandler.NewCatalogHandler(catalog, loader)
	cartHdl := carthandler.NewCartHandler(cart)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutservice.NewCheckoutService(cart))

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.GetProducts)
	srv.App.Get("/products/categories", catalogHdl.GetCategories)
	srv.App.Put("/catalog/search", catalogHdl.SetSearch)
	srv.App.Put("/catalog/category", catalogHdl.SetCategory)
	srv.App.Put("/catalog/sort", catalogHdl.SetSort)
	srv.App.Post("/catalog/reload", catalogHdl.Reload)

	srv.App.Get("/cart", cartHdl.GetCart)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Put("/cart/items/:id", cartHdl.SetQuantity)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)
	srv.App.Delete("/cart", cartHdl.ClearCart)

	srv.App.Post("/checkout", checkoutHdl.PlaceOrder)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
