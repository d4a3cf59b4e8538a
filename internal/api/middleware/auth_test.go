package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/infrastructure/security"
)

var alice = domain.Identity{AccountID: "64b7f0c2a1b2c3d4e5f60718", Name: "Alice", Email: "a@x.io"}

func newTestGuard(t *testing.T) (*Guard, *security.JWTCodec) {
	t.Helper()
	codec, err := security.NewJWTCodec("secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return NewGuard(codec), codec
}

// serve runs a protected handler for a request carrying the given
// Authorization header and renders any error through Echo's default handler.
func serve(t *testing.T, g *Guard, header string, h IdentityHandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := g.Protect(h)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotRun(t *testing.T) IdentityHandlerFunc {
	return func(echo.Context, domain.Identity) error {
		t.Fatalf("protected handler must not run")
		return nil
	}
}

func TestGuard_FreshTokenAccepted(t *testing.T) {
	g, codec := newTestGuard(t)
	token, err := codec.Sign(alice, time.Now().Add(10*24*time.Hour))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	called := false
	rec := serve(t, g, "Bearer "+token, func(c echo.Context, id domain.Identity) error {
		called = true
		if id.Email != "a@x.io" || id.AccountID != alice.AccountID {
			t.Fatalf("unexpected identity %+v", id)
		}
		stored, ok := IdentityFrom(c)
		if !ok || stored != id {
			t.Fatalf("identity not stored on context")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_GarbageTokenRejected(t *testing.T) {
	g, _ := newTestGuard(t)

	rec := serve(t, g, "Bearer garbage", mustNotRun(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, msgInvalidToken) {
		t.Fatalf("expected generic invalid token message, got %s", body)
	}
}

func TestGuard_ExpiredTokenRejected(t *testing.T) {
	g, codec := newTestGuard(t)
	issued := time.Now().Add(-11 * 24 * time.Hour)
	token, err := codec.Sign(alice, issued.Add(10*24*time.Hour))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec := serve(t, g, "Bearer "+token, mustNotRun(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, msgInvalidToken) {
		t.Fatalf("expiry must not be distinguishable from forgery, got %s", body)
	}
}

func TestGuard_MalformedHeader(t *testing.T) {
	g, _ := newTestGuard(t)

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer   ", "abc"} {
		t.Run(header, func(t *testing.T) {
			rec := serve(t, g, header, mustNotRun(t))
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if body := rec.Body.String(); !strings.Contains(body, msgMissingHeader) {
				t.Fatalf("unexpected body %s", body)
			}
		})
	}
}

func TestGuard_SchemeIsCaseInsensitive(t *testing.T) {
	g, codec := newTestGuard(t)
	token, _ := codec.Sign(alice, time.Now().Add(time.Hour))

	rec := serve(t, g, "bearer "+token, func(c echo.Context, _ domain.Identity) error {
		return c.NoContent(http.StatusNoContent)
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestGuard_Verify(t *testing.T) {
	g, codec := newTestGuard(t)
	token, _ := codec.Sign(alice, time.Now().Add(time.Hour))

	id, err := g.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != alice {
		t.Fatalf("got %+v, want %+v", id, alice)
	}

	if _, err := g.Verify("Basic dXNlcjpwYXNz"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := g.Verify("Bearer " + token + "x"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGuard_OtherSecretRejected(t *testing.T) {
	g, _ := newTestGuard(t)
	other, _ := security.NewJWTCodec("other-secret")
	token, _ := other.Sign(alice, time.Now().Add(time.Hour))

	rec := serve(t, g, "Bearer "+token, mustNotRun(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
