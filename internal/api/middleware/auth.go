package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/api/metrics"
	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

const (
	msgMissingHeader = "missing or malformed authorization header"
	msgInvalidToken  = "invalid or expired token"

	identityKey = "identity"
)

// IdentityHandlerFunc is a handler that runs only with a verified identity.
type IdentityHandlerFunc func(c echo.Context, id domain.Identity) error

// Guard admits requests carrying a valid bearer token.
type Guard struct {
	codec ports.TokenCodec
}

func NewGuard(codec ports.TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Verify extracts the bearer token from an Authorization header value and
// decodes it. All failures wrap domain.ErrUnauthenticated.
func (g *Guard) Verify(header string) (domain.Identity, error) {
	token, ok := bearerToken(header)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, msgMissingHeader)
	}
	return g.codec.Verify(token)
}

// Protect mounts h behind the guard. Rejected requests get a 401 with one
// of two fixed messages; the reason a token failed is never exposed.
func (g *Guard) Protect(h IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, msgMissingHeader)
		}

		id, err := g.codec.Verify(token)
		if err != nil {
			metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken).SetInternal(err)
		}

		c.Set(identityKey, id)
		return h(c, id)
	}
}

// IdentityFrom returns the identity stored by Protect, for request logging.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
