package user

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	// ContextUserID is the gin context key carrying the authenticated user id.
	ContextUserID = "userID"
)

// AuthMiddleware verifies the bearer token and stores the caller's user id in
// the gin context. Downstream handlers trust this id unchecked.
func AuthMiddleware(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if payload.Scope != security.TokenScopeAccess {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, payload.UserID)
		c.Next()
	}
}

// ContextGetUserID returns the authenticated user id set by AuthMiddleware.
func ContextGetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
