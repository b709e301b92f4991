package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByContractAndReviewer(ctx context.Context, contractID, reviewerID string) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	ListByTargetID(ctx context.Context, targetID string, limit, offset int) ([]*entity.Review, int64, error)
}
