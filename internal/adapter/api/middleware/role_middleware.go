package middleware

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/domain/entity"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
)

type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

func (m *RoleMiddleware) require(next echo.HandlerFunc, roles ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("role").(string)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		for _, allowed := range roles {
			if role == allowed {
				return next(c)
			}
		}

		return response.Error(c, errors.Forbidden("Insufficient privileges", nil))
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, entity.RoleAdmin)
}

func (m *RoleMiddleware) ClientOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, entity.RoleClient, entity.RoleAdmin)
}

func (m *RoleMiddleware) FreelancerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, entity.RoleFreelancer, entity.RoleAdmin)
}
