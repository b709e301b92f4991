package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

type BidRepository interface {
	Create(ctx context.Context, bid *entity.Bid) error
	GetByID(ctx context.Context, id string) (*entity.Bid, error)
	Update(ctx context.Context, bid *entity.Bid) error
	ListByProjectID(ctx context.Context, projectID string) ([]*entity.Bid, error)
	ListByFreelancerID(ctx context.Context, freelancerID, status string, limit, offset int) ([]*entity.Bid, int64, error)
	GetPendingByProjectAndFreelancer(ctx context.Context, projectID, freelancerID string) (*entity.Bid, error)
	Count(ctx context.Context) (int64, error)
}
