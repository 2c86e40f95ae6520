package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ksolovey/notes-api/internal/metrics"
	"github.com/ksolovey/notes-api/internal/model"
	"github.com/ksolovey/notes-api/internal/service/token"
)

const identityKey = "identity"

// authGate extracts the bearer token, verifies it and attaches the resolved
// identity to the request context. Verification failures short-circuit with
// 401; handlers behind the gate never re-verify.
func (s *Server) authGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c.Request)
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: "Access denied. No token provided."})
			return
		}

		identity, err := s.tokens.Verify(raw)
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: authFailureMessage(err)})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", token.ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", token.ErrMissingToken
	}

	return parts[1], nil
}

func authFailureMessage(err error) string {
	if errors.Is(err, token.ErrExpired) {
		return "Token has expired."
	}
	return "Invalid token."
}

func identityFromContext(c *gin.Context) model.Identity {
	identity, _ := c.MustGet(identityKey).(model.Identity)
	return identity
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ResponseTimeHistogram.Observe(time.Since(start).Seconds())
	}
}
