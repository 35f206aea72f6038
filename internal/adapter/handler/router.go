package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rcastano/creator-store/internal/platform/logger"
)

// SessionCookie carries the anonymous session id that scopes a cart.
const SessionCookie = "store_session"

const sessionContextKey = "session_id"

// NewRouter wires the storefront routes with session, CORS and request
// logging middleware.
func NewRouter(h *HTTPHandler, log *logger.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), corsMiddleware(corsOrigins), sessionMiddleware())

	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/videos", h.ListVideos)
		api.GET("/plans", h.ListPlans)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PUT("/cart/items/:id", h.UpdateCartItem)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		api.POST("/checkout", h.Checkout)
		api.POST("/membership/join", h.JoinMembership)
		api.POST("/newsletter", h.SubscribeNewsletter)
	}

	return r
}

// sessionMiddleware assigns an anonymous session id on first contact.
// Session state lives only in memory; the cookie is just the key.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		// credentialed wildcard is rejected by gin-contrib/cors;
		// reflect the caller's origin instead
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
