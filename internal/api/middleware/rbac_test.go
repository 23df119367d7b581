package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
)

func runRBAC(t *testing.T, role any, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/mocks/generateData", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	next := func(c echo.Context) error { return nil }
	return RBAC(allowed...)(next)(c)
}

func TestRBAC_AllowedRole(t *testing.T) {
	if err := runRBAC(t, "admin", "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	err := runRBAC(t, "user", "admin")

	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected dictionary error, got %v", err)
	}
	if appErr.Code != domain.CodeForbidden {
		t.Fatalf("expected FORBIDDEN, got %s", appErr.Code)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	err := runRBAC(t, nil, "admin")
	if err == nil {
		t.Fatal("request without role must be rejected")
	}
}

func TestRBAC_NonStringRole(t *testing.T) {
	err := runRBAC(t, 42, "admin")
	if err == nil {
		t.Fatal("request with a non-string role must be rejected")
	}
}
