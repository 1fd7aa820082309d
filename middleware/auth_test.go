package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notedeck/notes-api/security"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/protected", NewAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.MustGet("userEmail")})
	})

	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestAuthMissingToken(t *testing.T) {
	viper.Set("jwt.secret", "middleware-test-secret")
	r := newAuthTestRouter()

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is missing")
}

func TestAuthBearerPrefixOptional(t *testing.T) {
	viper.Set("jwt.secret", "middleware-test-secret")
	r := newAuthTestRouter()

	token, err := security.IssueToken("a@b.com")
	require.NoError(t, err)

	// With the prefix
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")

	// And raw
	w = get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestAuthInvalidToken(t *testing.T) {
	viper.Set("jwt.secret", "middleware-test-secret")
	r := newAuthTestRouter()

	w := get(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthExpiredToken(t *testing.T) {
	viper.Set("jwt.secret", "middleware-test-secret")
	r := newAuthTestRouter()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@b.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	signed, err := tok.SignedString([]byte("middleware-test-secret"))
	require.NoError(t, err)

	// Expired reads differently than invalid on the wire
	w := get(r, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}
