package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plantops/identity-service/internal/core/domain"
)

func TestHTTPErrorHandler_DomainTaxonomy(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrDuplicateUsername, http.StatusConflict, "username already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrInvalidRole, http.StatusUnprocessableEntity, "role not in the allowed set"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many failed login attempts"},
	}

	handler := NewHTTPErrorHandler(zerolog.New(io.Discard))
	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp["error"] != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp["error"])
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := fmt.Errorf("find user: %w", domain.ErrUserNotFound)
	NewHTTPErrorHandler(zerolog.New(io.Discard))(wrapped, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped ErrUserNotFound, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.New(io.Discard))(echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.New(io.Discard))(errors.New("connection reset by peer"), c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The storage-level cause must never leak to the client.
	if resp["error"] != "service unavailable" {
		t.Fatalf("unexpected message: %q", resp["error"])
	}
}
