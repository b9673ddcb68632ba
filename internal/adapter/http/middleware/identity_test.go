package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, subject, role string, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	claims := identityClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func identityRouter() (*gin.Engine, *entities.Identity) {
	seen := &entities.Identity{}
	r := gin.New()
	r.GET("/probe", RequireIdentity(testSecret), func(c *gin.Context) {
		id, _ := CallerIdentity(c)
		*seen = id
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		r, _ := identityRouter()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		r, _ := identityRouter()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r, _ := identityRouter()
		token := signToken(t, "user-1", "sales", jwt.SigningMethodHS256, []byte("other-secret"))
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r, _ := identityRouter()
		claims := identityClaims{
			Role: "sales",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		r, _ := identityRouter()
		token := signToken(t, "", "admin", jwt.SigningMethodHS256, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid sales token", func(t *testing.T) {
		r, seen := identityRouter()
		token := signToken(t, "user-1", "sales", jwt.SigningMethodHS256, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if seen.UserID != "user-1" || seen.Role != entities.RoleSales {
			t.Fatalf("unexpected identity: %+v", seen)
		}
	})

	t.Run("admin role propagates", func(t *testing.T) {
		r, seen := identityRouter()
		token := signToken(t, "admin-1", "admin", jwt.SigningMethodHS256, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if !seen.IsAdmin() {
			t.Fatalf("expected admin identity, got %+v", seen)
		}
	})

	t.Run("unknown role treated as sales", func(t *testing.T) {
		r, seen := identityRouter()
		token := signToken(t, "user-9", "superuser", jwt.SigningMethodHS256, testSecret)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if seen.Role != entities.RoleSales {
			t.Fatalf("expected sales role, got %+v", seen)
		}
	})
}
