package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

type firestoreScheduledNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreScheduledNotificationRepository(client *firestore.Client) repository.ScheduledNotificationRepository {
	return &firestoreScheduledNotificationRepository{
		client: client,
	}
}

func (r *firestoreScheduledNotificationRepository) Create(ctx context.Context, scheduled *entity.ScheduledNotification) error {
	_, err := r.client.Collection("scheduled_notifications").Doc(scheduled.ID).Set(ctx, scheduled)
	return err
}

func (r *firestoreScheduledNotificationRepository) GetByID(ctx context.Context, id string) (*entity.ScheduledNotification, error) {
	doc, err := r.client.Collection("scheduled_notifications").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var scheduled entity.ScheduledNotification
	if err := doc.DataTo(&scheduled); err != nil {
		return nil, err
	}

	return &scheduled, nil
}

func (r *firestoreScheduledNotificationRepository) Update(ctx context.Context, scheduled *entity.ScheduledNotification) error {
	scheduled.UpdatedAt = time.Now()
	_, err := r.client.Collection("scheduled_notifications").Doc(scheduled.ID).Set(ctx, scheduled)
	return err
}

func (r *firestoreScheduledNotificationRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.ScheduledNotification, int64, error) {
	query := r.client.Collection("scheduled_notifications").Query
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
	var items []*entity.ScheduledNotification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var scheduled entity.ScheduledNotification
		if err := doc.DataTo(&scheduled); err != nil {
			return nil, 0, err
		}
		items = append(items, &scheduled)
	}

	return items, total, nil
}

func (r *firestoreScheduledNotificationRepository) ListArmable(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	var armable []*entity.ScheduledNotification

	for _, status := range []string{entity.ScheduleStatusScheduled, entity.ScheduleStatusActive} {
		iter := r.client.Collection("scheduled_notifications").
			Where("status", "==", status).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, err
			}

			var scheduled entity.ScheduledNotification
			if err := doc.DataTo(&scheduled); err != nil {
				return nil, err
			}
			armable = append(armable, &scheduled)
		}
	}

	return armable, nil
}
