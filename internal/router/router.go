package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/HenTyna/foot-auto-poll-bot/internal/core"
	"github.com/HenTyna/foot-auto-poll-bot/internal/session"
)

// NewRouter exposes read-only session views over HTTP. All mutation goes
// through the chat transport; this surface exists for dashboards and
// debugging.
func NewRouter(reader core.OrderReader) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessions": reader.Sessions()})
	})

	r.GET("/sessions/:id/summary", func(c *gin.Context) {
		summary, err := reader.OrderSummary(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	})

	r.GET("/sessions/:id/combined", func(c *gin.Context) {
		view, err := reader.CombinedView(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": view})
	})

	return r
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
