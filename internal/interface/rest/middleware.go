package rest

import (
	"net/http"
	"strings"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/infrastructure/oauth"
	"uavops-service/internal/usecase"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Authenticator resolves the acting principal for each request: the bearer
// token is verified against the identity provider, then the profile (and so
// the role) is loaded, provisioning it on first sight.
type Authenticator struct {
	verifier oauth.IdentityVerifier
	users    *usecase.UserService
	logger   logger.Logger
}

// NewAuthenticator creates a new authentication middleware
func NewAuthenticator(verifier oauth.IdentityVerifier, users *usecase.UserService, logger logger.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// Middleware returns the echo middleware enforcing authentication.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Status:  "error",
					Code:    "unauthorized",
					Message: "missing bearer token",
				})
			}

			identity, err := a.verifier.Verify(c.Request().Context(), token)
			if err != nil {
				a.logger.Warn("Token verification failed", "error", err)
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Status:  "error",
					Code:    "unauthorized",
					Message: "invalid token",
				})
			}

			user, err := a.users.Authenticate(c.Request().Context(), identity.Subject, identity.Email)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(actorContextKey, entity.Actor{
				ID:    user.ID,
				Email: user.Email,
				Role:  user.Role,
			})
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func actorFrom(c echo.Context) entity.Actor {
	actor, _ := c.Get(actorContextKey).(entity.Actor)
	return actor
}

// Instrument records request durations for the metrics endpoint.
func Instrument(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.RequestDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				m.ErrorsCount.WithLabelValues(c.Path()).Inc()
			}
			return err
		}
	}
}
