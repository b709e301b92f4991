package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreBidRepository struct {
	client *firestore.Client
}

func NewFirestoreBidRepository(client *firestore.Client) repository.BidRepository {
	return &firestoreBidRepository{
		client: client,
	}
}

func (r *firestoreBidRepository) Create(ctx context.Context, bid *entity.Bid) error {
	_, err := r.client.Collection("bids").Doc(bid.ID).Set(ctx, bid)
	return err
}

func (r *firestoreBidRepository) GetByID(ctx context.Context, id string) (*entity.Bid, error) {
	doc, err := r.client.Collection("bids").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var bid entity.Bid
	if err := doc.DataTo(&bid); err != nil {
		return nil, err
	}

	return &bid, nil
}

func (r *firestoreBidRepository) Update(ctx context.Context, bid *entity.Bid) error {
	bid.UpdatedAt = time.Now()
	_, err := r.client.Collection("bids").Doc(bid.ID).Set(ctx, bid)
	return err
}

func (r *firestoreBidRepository) ListByProjectID(ctx context.Context, projectID string) ([]*entity.Bid, error) {
	iter := r.client.Collection("bids").Where("projectId", "==", projectID).Documents(ctx)

	var bids []*entity.Bid
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var bid entity.Bid
		if err := doc.DataTo(&bid); err != nil {
			return nil, err
		}
		bids = append(bids, &bid)
	}

	return bids, nil
}

func (r *firestoreBidRepository) ListByFreelancerID(ctx context.Context, freelancerID, status string, limit, offset int) ([]*entity.Bid, int64, error) {
	query := r.client.Collection("bids").Where("freelancerId", "==", freelancerID)
	if status != "" {
		query = query.Where("status", "==", status)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var bids []*entity.Bid

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var bid entity.Bid
		if err := doc.DataTo(&bid); err != nil {
			return nil, 0, err
		}
		bids = append(bids, &bid)
	}

	return bids, total, nil
}

func (r *firestoreBidRepository) GetPendingByProjectAndFreelancer(ctx context.Context, projectID, freelancerID string) (*entity.Bid, error) {
	iter := r.client.Collection("bids").
		Where("projectId", "==", projectID).
		Where("freelancerId", "==", freelancerID).
		Where("status", "==", entity.BidStatusPending).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var bid entity.Bid
	if err := doc.DataTo(&bid); err != nil {
		return nil, err
	}

	return &bid, nil
}

func (r *firestoreBidRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("bids").Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
