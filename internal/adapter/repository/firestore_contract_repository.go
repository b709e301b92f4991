package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreContractRepository struct {
	client *firestore.Client
}

func NewFirestoreContractRepository(client *firestore.Client) repository.ContractRepository {
	return &firestoreContractRepository{
		client: client,
	}
}

func (r *firestoreContractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	_, err := r.client.Collection("contracts").Doc(contract.ID).Set(ctx, contract)
	return err
}

func (r *firestoreContractRepository) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	doc, err := r.client.Collection("contracts").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var contract entity.Contract
	if err := doc.DataTo(&contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *firestoreContractRepository) GetByProjectID(ctx context.Context, projectID string) (*entity.Contract, error) {
	iter := r.client.Collection("contracts").Where("projectId", "==", projectID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var contract entity.Contract
	if err := doc.DataTo(&contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *firestoreContractRepository) Update(ctx context.Context, contract *entity.Contract) error {
	_, err := r.client.Collection("contracts").Doc(contract.ID).Set(ctx, contract)
	return err
}

func (r *firestoreContractRepository) listBy(ctx context.Context, field, value, status string, limit, offset int) ([]*entity.Contract, int64, error) {
	query := r.client.Collection("contracts").Where(field, "==", value)
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
	var contracts []*entity.Contract

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var contract entity.Contract
		if err := doc.DataTo(&contract); err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, &contract)
	}

	return contracts, total, nil
}

func (r *firestoreContractRepository) ListByFreelancerID(ctx context.Context, freelancerID, status string, limit, offset int) ([]*entity.Contract, int64, error) {
	return r.listBy(ctx, "freelancerId", freelancerID, status, limit, offset)
}

func (r *firestoreContractRepository) ListByClientID(ctx context.Context, clientID, status string, limit, offset int) ([]*entity.Contract, int64, error) {
	return r.listBy(ctx, "clientId", clientID, status, limit, offset)
}

func (r *firestoreContractRepository) SumCompletedAmounts(ctx context.Context) (float64, error) {
	docs, err := r.client.Collection("contracts").
		Where("status", "==", "completed").
		Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}

	var total float64
	for _, doc := range docs {
		var contract entity.Contract
		if err := doc.DataTo(&contract); err != nil {
			return 0, err
		}
		total += contract.Amount
	}

	return total, nil
}
