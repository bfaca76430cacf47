package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-cms/config"
	"school-cms/pkg/testsupport"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_ReturnsToken(t *testing.T) {
	testsupport.NewTestDB(t)
	viper.Set("JWT_SECRET", "test-secret")

	if err := EnsureAdminUser("admin", "letmein"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	c, rec := newContext(t, http.MethodPost, "/auth/login", `{"username":"admin","password":"letmein"}`)
	if err := LoginHandler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token in login response")
	}
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	testsupport.NewTestDB(t)
	viper.Set("JWT_SECRET", "test-secret")

	if err := EnsureAdminUser("admin", "letmein"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	bodies := []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"letmein"}`,
	}
	responses := make([]string, 0, len(bodies))
	for _, body := range bodies {
		c, rec := newContext(t, http.MethodPost, "/auth/login", body)
		if err := LoginHandler(c); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status for %s = %d, want 401", body, rec.Code)
		}
		responses = append(responses, rec.Body.String())
	}

	// Identical bodies keep usernames unprobeable
	if responses[0] != responses[1] {
		t.Errorf("wrong-password and unknown-user responses differ:\n%s\n%s", responses[0], responses[1])
	}
}

func TestLogin_MissingFieldsRejected(t *testing.T) {
	testsupport.NewTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/auth/login", `{"username":"admin"}`)
	if err := LoginHandler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEnsureAdminUser_Idempotent(t *testing.T) {
	db := testsupport.NewTestDB(t)

	if err := EnsureAdminUser("admin", "letmein"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	var hashBefore string
	if err := db.Get(&hashBefore, "SELECT password FROM users WHERE username = 'admin'"); err != nil {
		t.Fatalf("fetch hash: %v", err)
	}

	// Second call must neither duplicate nor reset the account
	if err := EnsureAdminUser("admin", "different"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	var n int
	if err := config.DB.Get(&n, "SELECT COUNT(*) FROM users WHERE username = 'admin'"); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Errorf("admin rows = %d, want 1", n)
	}

	var hashAfter string
	if err := db.Get(&hashAfter, "SELECT password FROM users WHERE username = 'admin'"); err != nil {
		t.Fatalf("fetch hash: %v", err)
	}
	if hashAfter != hashBefore {
		t.Error("second EnsureAdminUser overwrote the existing password")
	}
}
