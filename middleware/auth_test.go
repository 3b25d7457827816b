package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
}

func authTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	router := authTestRouter()

	t.Run("Missing header is rejected", func(t *testing.T) {
		w := doRequest(t, router, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("Malformed header is rejected", func(t *testing.T) {
		w := doRequest(t, router, "Basic abc123")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("Valid access token passes", func(t *testing.T) {
		token, err := services.GenerateToken("user-42")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		w := doRequest(t, router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); !strings.Contains(body, "user-42") {
			t.Errorf("Body %q does not carry the user id", body)
		}
	})

	t.Run("Refresh token is rejected on protected routes", func(t *testing.T) {
		token, err := services.GenerateRefreshToken("user-42")
		if err != nil {
			t.Fatalf("GenerateRefreshToken() error = %v", err)
		}

		w := doRequest(t, router, "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "user-42",
			"type":    "access",
			"iss":     tokenIssuer,
			"iat":     time.Now().Add(-2 * time.Hour).Unix(),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := doRequest(t, router, "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("Foreign issuer is rejected", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "user-42",
			"type":    "access",
			"iss":     "someone-else",
			"iat":     time.Now().Unix(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := doRequest(t, router, "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		w := doRequest(t, router, "Bearer not.a.token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", w.Code)
		}
	})
}
