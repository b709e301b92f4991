package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreClientProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreClientProfileRepository(client *firestore.Client) repository.ClientProfileRepository {
	return &firestoreClientProfileRepository{
		client: client,
	}
}

func (r *firestoreClientProfileRepository) Create(ctx context.Context, profile *entity.ClientProfile) error {
	_, err := r.client.Collection("clients").Doc(profile.ID).Set(ctx, profile)
	return err
}

func (r *firestoreClientProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.ClientProfile, error) {
	iter := r.client.Collection("clients").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var profile entity.ClientProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *firestoreClientProfileRepository) Update(ctx context.Context, profile *entity.ClientProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.client.Collection("clients").Doc(profile.ID).Set(ctx, profile)
	return err
}

type firestoreFreelancerProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreFreelancerProfileRepository(client *firestore.Client) repository.FreelancerProfileRepository {
	return &firestoreFreelancerProfileRepository{
		client: client,
	}
}

func (r *firestoreFreelancerProfileRepository) Create(ctx context.Context, profile *entity.FreelancerProfile) error {
	_, err := r.client.Collection("freelancers").Doc(profile.ID).Set(ctx, profile)
	return err
}

func (r *firestoreFreelancerProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.FreelancerProfile, error) {
	iter := r.client.Collection("freelancers").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var profile entity.FreelancerProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *firestoreFreelancerProfileRepository) Update(ctx context.Context, profile *entity.FreelancerProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.client.Collection("freelancers").Doc(profile.ID).Set(ctx, profile)
	return err
}

func (r *firestoreFreelancerProfileRepository) Search(ctx context.Context, skill, availability string, limit, offset int) ([]*entity.FreelancerProfile, int64, error) {
	query := r.client.Collection("freelancers").Query
	if skill != "" {
		query = query.Where("skills", "array-contains", skill)
	}
	if availability != "" {
		query = query.Where("availability", "==", availability)
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
	var profiles []*entity.FreelancerProfile

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var profile entity.FreelancerProfile
		if err := doc.DataTo(&profile); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, &profile)
	}

	return profiles, total, nil
}
