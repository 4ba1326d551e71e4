package main

import (
	"context"
	"database/sql"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/wichananm65/style-shop-backend/internal/cart"
	"github.com/wichananm65/style-shop-backend/internal/config"
	"github.com/wichananm65/style-shop-backend/internal/favorite"
	"github.com/wichananm65/style-shop-backend/internal/filter"
	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/recommended"
	"github.com/wichananm65/style-shop-backend/internal/search"
	"github.com/wichananm65/style-shop-backend/internal/session"
	"github.com/wichananm65/style-shop-backend/internal/storefront"
	"github.com/wichananm65/style-shop-backend/internal/style"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := cfg.NewLogger()

	app := fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	app.Use(recover.New())
	setupCORS(app)
	app.Use(session.New())
	app.Use(requestLogger(log))

	// catalog: Postgres when configured, otherwise the seed collection in memory
	var productRepo product.Repository
	facets := product.SeedFacets()
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		pg := product.NewPostgresRepository(db)
		if err := pg.EnsureSchema(product.SeedProducts()); err != nil {
			log.Error("ensure product schema", "err", err)
			os.Exit(1)
		}
		productRepo = pg
		facets = product.Facets{}
		log.Info("catalog backed by postgres")
	} else {
		productRepo = product.NewInMemoryRepository(product.SeedProducts())
		log.Info("catalog backed by seed data")
	}
	productService, err := product.NewService(productRepo, facets)
	if err != nil {
		log.Error("load catalog", "err", err)
		os.Exit(1)
	}

	// recent searches: Redis when configured, otherwise process memory
	var recent search.RecentStore = search.NewMemoryRecentStore(cfg.RecentSearchLimit)
	if cfg.RedisURL != "" {
		rdb := mustOpenRedis(cfg.RedisURL)
		defer rdb.Close()
		recent = search.NewRedisRecentStore(rdb, cfg.RecentSearchLimit)
		log.Info("recent searches backed by redis")
	}

	cartService := cart.NewService(cart.NewInMemoryRepository(), productService)
	favoriteService := favorite.NewService(favorite.NewInMemoryRepository(), productService)
	searchService := search.NewService(productService, recent, cfg.Delays.Search, log)
	recommendedService := recommended.NewService(newRand(), cfg.Delays.Recommendation)
	styleService := style.NewService(productService, newRand(), cfg.Delays)
	storefrontService := storefront.NewService(productService, searchService, recommendedService, cartService, log)

	storefront.NewHandler(storefrontService).RegisterPublicRoutes(app)
	filter.NewHandler(productService).RegisterPublicRoutes(app)
	search.NewHandler(searchService, log).RegisterPublicRoutes(app)

	// register recommended before product routes to avoid route param collision
	recommended.NewHandler(recommendedService, cartService, log).RegisterPublicRoutes(app)
	style.NewHandler(styleService, log).RegisterPublicRoutes(app)
	productHandler := product.NewHandler(productService, log)
	productHandler.RegisterPublicRoutes(app)

	cart.NewHandler(cartService).RegisterPublicRoutes(app)
	favorite.NewHandler(favoriteService).RegisterPublicRoutes(app)

	if cfg.AllowReset {
		productHandler.RegisterAdminRoutes(app)
		log.Warn("catalog write endpoints enabled")
	}

	go func() {
		log.Info("storefront listening", "addr", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("storefront stopped")
}

// newRand returns an independently seeded source. Each service locks its own.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:  "Origin, Content-Type, Accept, " + session.Header,
		ExposeHeaders: session.Header,
	}))
}

func mustOpenDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func mustOpenRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		panic(err)
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err)
	}
	return rdb
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			"method", c.Method(),
			"url", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"session", session.FromCtx(c),
			"duration", time.Since(start),
		)
		return err
	}
}
