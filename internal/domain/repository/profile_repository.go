package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

type ClientProfileRepository interface {
	Create(ctx context.Context, profile *entity.ClientProfile) error
	GetByUserID(ctx context.Context, userID string) (*entity.ClientProfile, error)
	Update(ctx context.Context, profile *entity.ClientProfile) error
}

type FreelancerProfileRepository interface {
	Create(ctx context.Context, profile *entity.FreelancerProfile) error
	GetByUserID(ctx context.Context, userID string) (*entity.FreelancerProfile, error)
	Update(ctx context.Context, profile *entity.FreelancerProfile) error
	Search(ctx context.Context, skill, availability string, limit, offset int) ([]*entity.FreelancerProfile, int64, error)
}
