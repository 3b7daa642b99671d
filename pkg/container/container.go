package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	infraCache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/cache"
	pkgdb "bookstore-catalog/pkg/database"

	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"

	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
)

// Container chứa TẤT CẢ dependencies của API, wire một lần lúc startup
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config    *config.Config
	DB        *database.PostgresDB
	Cache     cache.Cache
	TxManager pkgdb.TxManager

	// ========================================
	// REPOSITORIES
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler

	redis *infraCache.RedisCache
}

// NewContainer khởi tạo infrastructure rồi wire repository → service → handler.
// Redis là optional: disabled hoặc không connect được thì fallback về Noop cache.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	log.Info().Msg("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Info().Msg("✅ Database ready")

	// ========================================
	// STEP 2: CACHE (non-critical)
	// ========================================
	c.Cache = cache.Noop{}
	if cfg.Cache.Enabled {
		log.Info().Msg("🔴 Connecting to Redis...")

		rc := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical), caching disabled")
			_ = rc.Close()
		} else {
			c.redis = rc
			c.Cache = rc
		}
	}

	// ========================================
	// STEP 3: DOMAIN
	// ========================================
	c.TxManager = pkgdb.NewTxManager(db.Pool)
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	ttl := c.Config.Cache.TTL

	c.AuthorRepo = authorRepo.NewCachedRepository(authorRepo.NewPostgresRepository(c.DB.Pool), c.Cache, ttl)
	c.BookRepo = bookRepo.NewCachedRepository(bookRepo.NewPostgresRepository(c.DB.Pool), c.Cache, ttl)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.TxManager)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo, c.TxManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// Health ping database và cache
func (c *Container) Health(ctx context.Context) map[string]string {
	status := map[string]string{"database": "up", "cache": "disabled"}

	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = "down"
	}
	if c.redis != nil {
		status["cache"] = "up"
		if err := c.redis.Ping(ctx); err != nil {
			status["cache"] = "down"
		}
	}
	return status
}

// Cleanup đóng các connection. Gọi nhiều lần vẫn an toàn.
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		}
		c.redis = nil
	}

	log.Info().Msg("✅ Container cleanup completed")
}
