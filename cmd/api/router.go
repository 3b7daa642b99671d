package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authorHandler "bookstore-catalog/internal/domains/author/handler"
	bookHandler "bookstore-catalog/internal/domains/book/handler"
	"bookstore-catalog/internal/metrics"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	metrics.Register()

	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		metrics.Middleware(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c.AuthorHandler)
		setupBookRoutes(v1, c.BookHandler)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, h *authorHandler.AuthorHandler) {
	authors := v1.Group("/authors")
	{
		authors.GET("", h.List)
		authors.GET("/full", h.ListWithBooks)
		authors.POST("", h.Create)
		authors.GET("/:id", h.GetByID)
		authors.GET("/:id/full", h.GetByIDWithBooks)
		authors.PUT("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, h *bookHandler.Handler) {
	books := v1.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/full", h.ListBooksWithAuthor)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBook)
		books.GET("/:id/full", h.GetBookWithAuthor)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Health(ctx.Request.Context())
		if status["database"] != "up" {
			response.Error(ctx, http.StatusServiceUnavailable, "Service unavailable", status)
			return
		}
		response.Success(ctx, http.StatusOK, "OK", gin.H{
			"status":  status,
			"version": c.Config.App.Version,
		})
	}
}
