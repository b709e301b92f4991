package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

// AcceptBidResult carries the documents mutated by the accept-bid transaction.
type AcceptBidResult struct {
	Project     *entity.Project
	AcceptedBid *entity.Bid
	RejectedIDs []string
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error)
	Search(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error)
	ListByClientID(ctx context.Context, clientID, status string, limit, offset int) ([]*entity.Project, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)

	// AcceptBid performs the open -> in_progress transition atomically:
	// the bid is accepted, every sibling bid is rejected and the project
	// is assigned, all in a single document-store transaction.
	AcceptBid(ctx context.Context, projectID, bidID string) (*AcceptBidResult, error)
}
