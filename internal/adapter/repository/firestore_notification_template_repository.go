package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreNotificationTemplateRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationTemplateRepository(client *firestore.Client) repository.NotificationTemplateRepository {
	return &firestoreNotificationTemplateRepository{
		client: client,
	}
}

func (r *firestoreNotificationTemplateRepository) Create(ctx context.Context, template *entity.NotificationTemplate) error {
	_, err := r.client.Collection("notification_templates").Doc(template.ID).Set(ctx, template)
	return err
}

func (r *firestoreNotificationTemplateRepository) GetByID(ctx context.Context, id string) (*entity.NotificationTemplate, error) {
	doc, err := r.client.Collection("notification_templates").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var template entity.NotificationTemplate
	if err := doc.DataTo(&template); err != nil {
		return nil, err
	}

	return &template, nil
}

func (r *firestoreNotificationTemplateRepository) GetByName(ctx context.Context, name string) (*entity.NotificationTemplate, error) {
	iter := r.client.Collection("notification_templates").Where("name", "==", name).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var template entity.NotificationTemplate
	if err := doc.DataTo(&template); err != nil {
		return nil, err
	}

	return &template, nil
}

func (r *firestoreNotificationTemplateRepository) Update(ctx context.Context, template *entity.NotificationTemplate) error {
	template.UpdatedAt = time.Now()
	_, err := r.client.Collection("notification_templates").Doc(template.ID).Set(ctx, template)
	return err
}

func (r *firestoreNotificationTemplateRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notification_templates").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreNotificationTemplateRepository) List(ctx context.Context, limit, offset int) ([]*entity.NotificationTemplate, int64, error) {
	query := r.client.Collection("notification_templates").Query

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
	var templates []*entity.NotificationTemplate

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var template entity.NotificationTemplate
		if err := doc.DataTo(&template); err != nil {
			return nil, 0, err
		}
		templates = append(templates, &template)
	}

	return templates, total, nil
}
