// Package router assembles the gin engine: middleware, catalog pages,
// health checks, metrics and API docs.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/docs"
	"github.com/snnyvrz/bookshelf/internal/flash"
	"github.com/snnyvrz/bookshelf/internal/handler"
	"github.com/snnyvrz/bookshelf/internal/metrics"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Deps struct {
	Books   repository.BookRepository
	Genres  repository.GenreRepository
	Authors repository.AuthorRepository
	DB      handler.Pinger

	Log     *zap.Logger
	Metrics *metrics.Metrics
	// Limiter throttles POST routes; nil disables it.
	Limiter *rate.Limiter

	Secret    []byte
	StartTime time.Time
	Version   string
}

func New(d Deps) *gin.Engine {
	validation.Setup()

	e := gin.New()
	_ = e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		middleware.SecurityHeaders(),
		d.Metrics.Middleware(),
	)

	handler.NewHealthHandler(d.DB, d.StartTime, d.Version, d.Log).RegisterRoutes(e)
	e.GET("/metrics", d.Metrics.Handler())

	docs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pages := e.Group("", flash.Middleware(d.Secret))
	{
		handler.NewCatalogHandler(d.Books, d.Genres, d.Authors, d.Log).RegisterRoutes(pages)
		handler.NewBookHandler(d.Books, d.Metrics, d.Log).RegisterRoutes(pages, middleware.RateLimit(d.Limiter))
	}

	e.NoRoute(handler.NotFound)

	return e
}
