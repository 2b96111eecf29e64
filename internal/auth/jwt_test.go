package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret")

	token, err := m.GenerateToken(7, "admin")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_wrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret").GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = NewTokenManager("other").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_expired(t *testing.T) {
	m := NewTokenManager("secret")
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := m.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = NewTokenManager("secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_noSecret(t *testing.T) {
	_, err := NewTokenManager("").GenerateToken(1, "admin")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewTokenManager("secret")

	router := gin.New()
	router.GET("/me", m.Middleware(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		username, ok := GetUsername(c)
		if !ok || username != "casey" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "username": username})
	})

	token, err := m.GenerateToken(3, "casey")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"id":3,"username":"casey"}`, w.Body.String())
			}
		})
	}
}
