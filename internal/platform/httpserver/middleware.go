package httpserver

import (
	"log/slog"
	"strings"
	"time"

	"assetverse/contexts/asset-management/asset-service/application/guard"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	callerEmailKey = "caller_email"
	hrContextKey   = "hr_context"
)

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"event", "http_request",
			"module", moduleName,
			"layer", "platform",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			logger.Error("http request failed", attrs...)
			return
		}
		logger.Info("http request", attrs...)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || containsWildcard(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// requireAuth resolves the bearer credential into the caller email.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			writeDomainError(c, domainerrors.ErrUnauthorized)
			return
		}
		email, err := s.assets.Handler.Authenticate(c.Request.Context(), token)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.Set(callerEmailKey, email)
		c.Next()
	}
}

// requireHR must run after requireAuth.
func (s *Server) requireHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		hr, err := s.assets.Handler.AuthorizeHR(c.Request.Context(), c.GetString(callerEmailKey))
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.Set(hrContextKey, hr)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func callerEmail(c *gin.Context) string {
	return c.GetString(callerEmailKey)
}

func hrContext(c *gin.Context) guard.HRContext {
	value, _ := c.Get(hrContextKey)
	hr, _ := value.(guard.HRContext)
	return hr
}
