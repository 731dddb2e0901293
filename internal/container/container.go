package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/internal/application"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/cache"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/search"
	coverstore "github.com/oksasatya/go-blog-api/internal/infrastructure/storage"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// Container holds every constructed component. main fills in the infra
// clients it managed to open, then calls Wire. Optional clients stay nil.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger

	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	GCS       *storage.Client
	ES        *elasticsearch.Client
	RabbitPub *helpers.RabbitPublisher

	JWT   *helpers.JWTManager
	Users repo.UserRepository
	Posts repo.PostRepository

	AuthService *application.AuthService
	PostService *application.PostService
}

func New(cfg *config.Config, logger *logrus.Logger) *Container {
	return &Container{Cfg: cfg, Logger: logger}
}

// UsePostgres backs the repositories with the given pool.
func (c *Container) UsePostgres(pool *pgxpool.Pool) {
	c.PGPool = pool
	c.Users = pginfra.NewUserRepository(pool)
	c.Posts = pginfra.NewPostRepository(pool)
}

// UseMemory backs the repositories with an in-process store.
func (c *Container) UseMemory(s *memory.Store) {
	c.Users = s.Users()
	c.Posts = s.Posts()
}

// Wire builds the token codec and services. Repositories must be set.
func (c *Container) Wire() {
	c.JWT = helpers.NewJWTManager(c.Cfg.JWTSecret, helpers.DefaultTokenTTL)

	var principals application.PrincipalCache
	if c.Redis != nil {
		principals = cache.NewPrincipalCache(c.Redis, c.Cfg.PrincipalCacheTTL)
	}
	c.AuthService = application.NewAuthService(c.Users, c.JWT, principals, c.Logger)

	var index application.PostIndex
	if c.ES != nil {
		index = search.NewPostIndex(c.ES, c.Cfg.ESPostsIndex)
	}
	var covers application.CoverStorage
	if c.GCS != nil && c.Cfg.GCSBucket != "" {
		covers = coverstore.NewGCSCoverStorage(c.GCS, c.Cfg.GCSBucket)
	}
	var events application.EventPublisher
	if c.RabbitPub != nil {
		events = c.RabbitPub
	}
	c.PostService = application.NewPostService(c.Posts, index, covers, events, c.Logger)
}

// Close releases every open client.
func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
