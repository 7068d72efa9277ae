package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"midnight-library/internal/config"
	infraCache "midnight-library/internal/infrastructure/cache"
	"midnight-library/internal/infrastructure/database"
	"midnight-library/pkg/cache"

	"midnight-library/internal/domains/author"
	authorHandler "midnight-library/internal/domains/author/handler"
	authorRepo "midnight-library/internal/domains/author/repository"
	authorService "midnight-library/internal/domains/author/service"

	"midnight-library/internal/domains/book"
	bookHandler "midnight-library/internal/domains/book/handler"
	bookRepo "midnight-library/internal/domains/book/repository"
	bookService "midnight-library/internal/domains/book/service"

	"midnight-library/internal/domains/user"
	userHandler "midnight-library/internal/domains/user/handler"
	userRepo "midnight-library/internal/domains/user/repository"
	userService "midnight-library/internal/domains/user/service"
)

// Container is the root of the dependency graph. Every component is a
// singleton wired once at startup; handlers, services and repositories are
// stateless.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

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
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// Redis is a soft dependency; a miss on every lookup still works.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// The book service resolves author references through the author
	// repository; this is the only cross-domain dependency.
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases the infrastructure resources; called during graceful
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
}
