package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(tokens *service.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenManager("test-secret", time.Hour)
	expired := service.NewTokenManager("test-secret", -time.Minute)

	valid, err := tokens.Issue("user-a", "a@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	expiredToken, err := expired.Issue("user-a", "a@example.com")
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	r := newAuthRouter(tokens)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status = %d; want %d (body %s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareSetsUserID(t *testing.T) {
	tokens := service.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue("user-42", "u@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	r := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"user_id":"user-42"}` {
		t.Fatalf("body = %s", got)
	}
}
