package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestMiddleware_StashesRequestScopedValues(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	var seenLog Logger
	handler := RequestLoggerMiddleware(Get())(func(c echo.Context) error {
		seenID = GetRequestID(c.Request().Context())
		seenLog = FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}

	if seenID == "" {
		t.Error("no request id in the request context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("response header id %q does not match context id %q", got, seenID)
	}
	if seenLog == nil || seenLog == Get() {
		t.Error("handler did not receive the request-scoped logger")
	}
}

func TestRequestMiddleware_HonorsInboundRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLoggerMiddleware(Get())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}

	if got := GetRequestID(c.Request().Context()); got != "caller-supplied-id" {
		t.Errorf("request id = %q, want caller-supplied-id", got)
	}
}

func TestFromContext_FallsBackToGlobalLogger(t *testing.T) {
	if got := FromContext(context.Background()); got != Get() {
		t.Error("bare context should yield the global logger")
	}
	if GetRequestID(context.Background()) != "" {
		t.Error("bare context should carry no request id")
	}
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := WithUserIDContext(context.Background(), 7)
	if got := GetUserID(ctx); got != 7 {
		t.Errorf("user id = %d, want 7", got)
	}
	if got := GetUserID(context.Background()); got != 0 {
		t.Errorf("bare context user id = %d, want 0", got)
	}
}
