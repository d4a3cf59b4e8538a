package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.Account, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Account, error)
	accountFn  func(ctx context.Context, id string) (*domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Account(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.Account, error) {
			if name != "Alice" || email != "a@x.io" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.Account{ID: "64b7f0c2a1b2c3d4e5f60718", Name: name, Email: email, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/user/register", `{"name":"Alice","email":"a@x.io","password":"pw1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["message"] != "Signup successful." || resp["userId"] != "64b7f0c2a1b2c3d4e5f60718" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.Account, error) {
			return nil, domain.ErrAccountExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/v1/user/register", `{"name":"Alice","email":"a@x.io","password":"pw1"}`)
	if err := handler.Register(c); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.Account, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, _ := jsonRequest(e, http.MethodPost, "/api/v1/user/register", `{"email":"a@x.io"}`)
	err := handler.Register(c)
	if code := httpCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := jsonRequest(e, http.MethodPost, "/api/v1/user/register", `{"name":`)
	if code := httpCode(t, handler.Register(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
			if email != "a@x.io" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Account{ID: "acc-1", Name: "Alice", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/user/login", `{"email":"a@x.io","password":"pw1"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["token"] != "token123" || resp["id"] != "acc-1" || resp["email"] != "a@x.io" || resp["name"] != "Alice" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrAccountNotFound} {
		t.Run(want.Error(), func(t *testing.T) {
			e := newTestEcho()
			handler := NewAuthHandler(&stubAuthService{
				loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
					return "", nil, want
				},
			})

			c, rec := jsonRequest(e, http.MethodPost, "/api/v1/user/login", `{"email":"a@x.io","password":"nope"}`)
			if err := handler.Login(c); !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("no token may be written on failure")
			}
		})
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := jsonRequest(e, http.MethodPost, "/api/v1/user/login", `not json`)
	if code := httpCode(t, handler.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/user/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.HasPrefix(cookie, "token=;") || !strings.Contains(cookie, "Max-Age=0") {
		t.Fatalf("expected token cookie to be cleared, got %q", cookie)
	}
	if resp := decode(t, rec); resp["message"] != "Logged out successfully" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		accountFn: func(ctx context.Context, id string) (*domain.Account, error) {
			if id != "acc-1" {
				return nil, domain.ErrAccountNotFound
			}
			return &domain.Account{ID: id, Name: "Alice", Email: "a@x.io", PasswordHash: "$2a$10$hash"}, nil
		},
	})

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/user/me", "")
	if err := handler.Me(c, domain.Identity{AccountID: "acc-1", Email: "a@x.io"}); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	user, ok := decode(t, rec)["user"].(map[string]any)
	if !ok || user["email"] != "a@x.io" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if _, leaked := user["password"]; leaked || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}

	c, _ = jsonRequest(e, http.MethodGet, "/api/v1/user/me", "")
	if err := handler.Me(c, domain.Identity{AccountID: "deleted"}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
