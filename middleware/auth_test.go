package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"school-cms/pkg/logger"
	"school-cms/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

func invokeJWT(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := JWTMiddleware(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return c, rec, reached
}

func TestJWTMiddleware_ValidTokenPassesClaimsThrough(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(42, "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	c, rec, reached := invokeJWT(t, "Bearer "+token)
	if !reached {
		t.Fatalf("handler not reached: %d %s", rec.Code, rec.Body.String())
	}
	if got, ok := c.Get("user_id").(int64); !ok || got != 42 {
		t.Errorf("user_id = %v, want 42", c.Get("user_id"))
	}
	if got, ok := c.Get("username").(string); !ok || got != "admin" {
		t.Errorf("username = %v, want admin", c.Get("username"))
	}
	if got := logger.GetUserID(c.Request().Context()); got != 42 {
		t.Errorf("request context user id = %d, want 42", got)
	}
}

func TestJWTMiddleware_MissingHeaderRejected(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	_, rec, reached := invokeJWT(t, "")
	if reached {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddleware_MalformedTokenRejected(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	for _, header := range []string{
		"Bearer not-a-jwt",
		"Bearer a.b",
		"Basic dXNlcjpwYXNz",
	} {
		_, rec, reached := invokeJWT(t, header)
		if reached {
			t.Errorf("handler reached with header %q", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status for %q = %d, want 401", header, rec.Code)
		}
	}
}

func TestJWTMiddleware_WrongSecretRejected(t *testing.T) {
	viper.Set("JWT_SECRET", "signing-secret")
	token, err := utils.GenerateJWT(1, "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	viper.Set("JWT_SECRET", "verification-secret")
	_, rec, reached := invokeJWT(t, "Bearer "+token)
	if reached {
		t.Fatal("handler reached with token signed under a different secret")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
