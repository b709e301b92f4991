package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	return err
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *firestoreReviewRepository) GetByContractAndReviewer(ctx context.Context, contractID, reviewerID string) (*entity.Review, error) {
	iter := r.client.Collection("reviews").
		Where("contractId", "==", contractID).
		Where("reviewerId", "==", reviewerID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	review.UpdatedAt = time.Now()
	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	return err
}

func (r *firestoreReviewRepository) ListByTargetID(ctx context.Context, targetID string, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection("reviews").
		Where("targetId", "==", targetID).
		Where("status", "==", "active")

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
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}
