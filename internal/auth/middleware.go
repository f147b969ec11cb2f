package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/student-registry/internal/domain"
	"github.com/spec-kit/student-registry/internal/repository"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

const userKey = "auth_user"

// AuthMiddleware validates bearer tokens and resolves the authenticated user.
// Every failure path yields the same generic 401 with a WWW-Authenticate
// challenge; the underlying reason is only logged.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return m.reject(c, "missing bearer token", nil)
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		return m.reject(c, "token rejected", err)
	}

	user, err := m.users.GetByUsername(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Issued tokens are not revoked on user deletion; access dies
			// here because the subject no longer resolves.
			return m.reject(c, "token subject not found", nil)
		}
		return apperrors.MapError(err)
	}

	c.Locals(userKey, user)
	return c.Next()
}

func (m *AuthMiddleware) reject(c *fiber.Ctx, reason string, err error) error {
	m.logger.Debug("request unauthenticated",
		zap.String("path", c.Path()),
		zap.String("reason", reason),
		zap.Error(err),
	)
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return apperrors.NewUnauthorized("invalid token or credentials")
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// UserFromContext retrieves the authenticated user set by Handle.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(userKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
