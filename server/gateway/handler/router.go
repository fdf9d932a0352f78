package handlers

import (
	"net/http"

	"mydarts/server/gateway/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter registers the public API. Bearer auth is enforced only when
// jwtSecret is set.
func NewRouter(h *GameHandler, jwtSecret, allowOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Cors(allowOrigin))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secured := api.Group("")
	if jwtSecret != "" {
		secured.Use(middleware.AuthMiddleware(jwtSecret))
	}
	{
		games := secured.Group("/games")
		games.POST("", h.HandleCreateGame)
		games.GET("", h.HandleListGames)
		games.GET("/:id", h.HandleGetGame)
		games.POST("/:id/throw", h.HandleSubmitThrow)
		games.GET("/:id/statistics", h.HandleGetStatistics)

		secured.GET("/users/:id/stats", h.HandleGetUserStats)
	}
	return r
}
