package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/DexterPressley/calzone/internal/pkg/token"
)

func TestRefreshRelaySetsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService("test-secret", 0)

	r := gin.New()
	r.GET("/probe", Auth(tokens), RefreshRelay(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	signed, err := tokens.Issue(5, "Alice", "Smith")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	refreshed := w.Header().Get(RefreshHeader)
	require.NotEmpty(t, refreshed)

	claims, err := tokens.Claims(refreshed)
	require.NoError(t, err)
	require.Equal(t, int64(5), claims.UserID)
}

func TestRefreshRelayWithoutTokenIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService("test-secret", 0)

	r := gin.New()
	r.GET("/probe", RefreshRelay(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get(RefreshHeader))
}
