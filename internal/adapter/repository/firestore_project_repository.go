package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
)

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	return err
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection("projects").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now()
	_, err := r.client.Collection("projects").Doc(project.ID).Set(ctx, project)
	return err
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("projects").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreProjectRepository) buildQuery(filter map[string]interface{}) firestore.Query {
	query := r.client.Collection("projects").Query

	if v, ok := filter["status"].(string); ok && v != "" {
		query = query.Where("status", "==", v)
	}
	if v, ok := filter["category"].(string); ok && v != "" {
		query = query.Where("category", "==", v)
	}
	if v, ok := filter["skill"].(string); ok && v != "" {
		query = query.Where("skills", "array-contains", v)
	}
	if v, ok := filter["min_budget"].(float64); ok && v > 0 {
		query = query.Where("budgetMax", ">=", v)
	}
	if v, ok := filter["max_budget"].(float64); ok && v > 0 {
		query = query.Where("budgetMin", "<=", v)
	}

	return query
}

func (r *firestoreProjectRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	query := r.buildQuery(filter)

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
	var projects []*entity.Project

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, 0, err
		}
		projects = append(projects, &project)
	}

	return projects, total, nil
}

func (r *firestoreProjectRepository) Search(ctx context.Context, queryStr string, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	// Firestore has no full-text search; filter server-side then match
	// title/description in memory, same approach the product search takes.
	docs, err := r.buildQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}

	lowered := strings.ToLower(queryStr)
	var matched []*entity.Project
	for _, doc := range docs {
		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, 0, err
		}
		if strings.Contains(strings.ToLower(project.Title), lowered) ||
			strings.Contains(strings.ToLower(project.Description), lowered) {
			matched = append(matched, &project)
		}
	}

	total := int64(len(matched))

	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *firestoreProjectRepository) ListByClientID(ctx context.Context, clientID, status string, limit, offset int) ([]*entity.Project, int64, error) {
	query := r.client.Collection("projects").Where("clientId", "==", clientID)
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
	var projects []*entity.Project

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, 0, err
		}
		projects = append(projects, &project)
	}

	return projects, total, nil
}

func (r *firestoreProjectRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := r.client.Collection("projects").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (r *firestoreProjectRepository) AcceptBid(ctx context.Context, projectID, bidID string) (*repository.AcceptBidResult, error) {
	result := &repository.AcceptBidResult{}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		projectRef := r.client.Collection("projects").Doc(projectID)
		projectDoc, err := tx.Get(projectRef)
		if err != nil {
			return err
		}

		var project entity.Project
		if err := projectDoc.DataTo(&project); err != nil {
			return err
		}

		// Status re-check happens inside the transaction so that two
		// concurrent accepts cannot both pass the handler-level check.
		if project.Status != entity.ProjectStatusOpen {
			return errors.BadRequest("Project is not open for bid acceptance", nil)
		}

		bidRef := r.client.Collection("bids").Doc(bidID)
		bidDoc, err := tx.Get(bidRef)
		if err != nil {
			return err
		}

		var bid entity.Bid
		if err := bidDoc.DataTo(&bid); err != nil {
			return err
		}

		if bid.ProjectID != projectID {
			return errors.BadRequest("Bid does not belong to this project", nil)
		}
		if bid.Status != entity.BidStatusPending {
			return errors.BadRequest("Bid is not pending", nil)
		}

		siblingDocs, err := tx.Documents(
			r.client.Collection("bids").Where("projectId", "==", projectID),
		).GetAll()
		if err != nil {
			return err
		}

		now := time.Now()

		bid.Status = entity.BidStatusAccepted
		bid.AcceptedAt = &now
		bid.UpdatedAt = now
		if err := tx.Set(bidRef, &bid); err != nil {
			return err
		}

		result.RejectedIDs = nil
		for _, doc := range siblingDocs {
			var sibling entity.Bid
			if err := doc.DataTo(&sibling); err != nil {
				return err
			}
			if sibling.ID == bidID || sibling.Status != entity.BidStatusPending {
				continue
			}

			sibling.Status = entity.BidStatusRejected
			sibling.UpdatedAt = now
			if err := tx.Set(doc.Ref, &sibling); err != nil {
				return err
			}
			result.RejectedIDs = append(result.RejectedIDs, sibling.ID)
		}

		project.Status = entity.ProjectStatusInProgress
		project.AssignedFreelancerID = bid.FreelancerID
		project.AssignedAt = &now
		project.UpdatedAt = now
		if err := tx.Set(projectRef, &project); err != nil {
			return err
		}

		result.Project = &project
		result.AcceptedBid = &bid
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
