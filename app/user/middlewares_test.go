package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propleague/ante/internal/security"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, security.Maker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	maker, err := security.NewPasetoMaker(strings.Repeat("k", 32))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(maker), func(c *gin.Context) {
		id, ok := ContextGetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return r, maker
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		r, maker := newAuthTestRouter(t)

		token, _, err := maker.CreateToken(uuid.New(), time.Minute, 1, security.TokenScopeAccess)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthorizationHeaderKey, AuthorizationTypeBearer+" "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthorizationHeaderKey, "Basic abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		r, maker := newAuthTestRouter(t)

		token, _, err := maker.CreateToken(uuid.New(), -time.Minute, 1, security.TokenScopeAccess)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthorizationHeaderKey, AuthorizationTypeBearer+" "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongScope", func(t *testing.T) {
		r, maker := newAuthTestRouter(t)

		token, _, err := maker.CreateToken(uuid.New(), time.Minute, 1, security.TokenScopeRefresh)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(AuthorizationHeaderKey, AuthorizationTypeBearer+" "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
