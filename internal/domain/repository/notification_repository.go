package repository

import (
	"context"

	"skillswap/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUserID(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}

type NotificationTemplateRepository interface {
	Create(ctx context.Context, template *entity.NotificationTemplate) error
	GetByID(ctx context.Context, id string) (*entity.NotificationTemplate, error)
	GetByName(ctx context.Context, name string) (*entity.NotificationTemplate, error)
	Update(ctx context.Context, template *entity.NotificationTemplate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.NotificationTemplate, int64, error)
}

type ScheduledNotificationRepository interface {
	Create(ctx context.Context, scheduled *entity.ScheduledNotification) error
	GetByID(ctx context.Context, id string) (*entity.ScheduledNotification, error)
	Update(ctx context.Context, scheduled *entity.ScheduledNotification) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.ScheduledNotification, int64, error)
	// ListArmable returns schedules that should be re-armed on boot:
	// one-shots still in the future plus every active recurring schedule.
	ListArmable(ctx context.Context) ([]*entity.ScheduledNotification, error)
}
