package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/auth"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
)

type AuthMiddleware struct {
	tokens   *auth.TokenManager
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Authenticate verifies the bearer token and stores uid and role on the
// request context. WebSocket handshakes can't set headers from the
// browser, so a token query parameter is accepted as a fallback.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := ""

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
			}
			tokenString = parts[1]
		} else {
			tokenString = c.QueryParam("token")
		}

		if tokenString == "" {
			return response.Error(c, errors.Unauthorized("Authorization required", nil))
		}

		claims, err := m.tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		// Suspension takes effect immediately, not at token expiry.
		user, err := m.userRepo.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Error(c, errors.Unauthorized("User no longer exists", err))
		}
		if user.AccountStatus != entity.AccountStatusActive {
			return response.Error(c, errors.Forbidden("Account is "+user.AccountStatus, nil))
		}

		c.Set("uid", claims.UserID)
		c.Set("role", user.Role)

		return next(c)
	}
}
