package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	GetByProjectID(ctx context.Context, projectID string) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	ListByFreelancerID(ctx context.Context, freelancerID, status string, limit, offset int) ([]*entity.Contract, int64, error)
	ListByClientID(ctx context.Context, clientID, status string, limit, offset int) ([]*entity.Contract, int64, error)
	SumCompletedAmounts(ctx context.Context) (float64, error)
}
