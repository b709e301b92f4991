package repository

import (
	"context"
	"time"

	"skillswap/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role, status string, limit, offset int) ([]*entity.User, int64, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CountSignupsSince(ctx context.Context, since time.Time) (int64, error)
}
