package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"midnight-library/internal/shared/middleware"
	"midnight-library/pkg/container"
)

func init() {
	// Request bodies are statically typed per endpoint; unknown fields are a
	// decode error, not silently dropped.
	gin.EnableJsonDecoderDisallowUnknownFields()
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.RateLimit(c.Config.RateRPS, c.Config.RateMax),
	)

	router.GET("/health_check", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)
	setupUserRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/authors", c.AuthorHandler.Index)
	router.GET("/authors/:id", c.AuthorHandler.Show)
	router.POST("/authors/create", c.AuthorHandler.Create)
	router.POST("/authors/delete", c.AuthorHandler.Delete)
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/books", c.BookHandler.Index)
	router.GET("/books/:id", c.BookHandler.Show)
	router.POST("/books/create", c.BookHandler.Create)
	router.POST("/books/delete", c.BookHandler.Delete)
}

func setupUserRoutes(router *gin.Engine, c *container.Container) {
	router.POST("/users/create", c.UserHandler.Create)
}
