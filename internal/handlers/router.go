package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the routes and the cross-origin policy. Every response,
// including errors, carries the CORS headers; OPTIONS preflights short-
// circuit in the middleware with a 204.
func NewRouter(allowedOrigin string, orderHandler *OrderHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}
	if allowedOrigin == "" || allowedOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{allowedOrigin}
	}
	router.Use(cors.New(corsCfg))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	router.GET("/", orderHandler.OrderPage)
	router.GET("/healthz", orderHandler.Healthz)
	router.POST("/api/orders", orderHandler.SubmitOrder)
	// The CORS middleware only answers preflights that carry a cross-origin
	// Origin header; this route keeps OPTIONS at 204 for everything else.
	router.OPTIONS("/api/orders", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router
}
