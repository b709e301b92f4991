package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	"skillswap/internal/infrastructure/websocket"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	templateRepo     repository.NotificationTemplateRepository
	userRepo         repository.UserRepository
	emailSender      service.EmailSender
	smsSender        service.SMSSender
	wsManager        *websocket.Manager
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	templateRepo repository.NotificationTemplateRepository,
	userRepo repository.UserRepository,
	emailSender service.EmailSender,
	smsSender service.SMSSender,
	wsManager *websocket.Manager,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		templateRepo:     templateRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		smsSender:        smsSender,
		wsManager:        wsManager,
	}
}

type NotifyInput struct {
	UserID  string
	Type    string
	Title   string
	Body    string
	RefType string
	RefID   string
}

// Notify creates the in-app record and fans out to the channels the user
// has enabled. The caller treats failures here as non-fatal: a committed
// state transition is never rolled back because its notification failed.
func (uc *NotificationUseCase) Notify(ctx context.Context, input NotifyInput) (*entity.Notification, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Body:      input.Body,
		RefType:   input.RefType,
		RefID:     input.RefID,
		Channels:  []string{"in_app"},
		CreatedAt: time.Now(),
	}

	if user.Preferences.EmailEnabled && user.Email != "" {
		notification.Channels = append(notification.Channels, "email")
	}
	if user.Preferences.SMSEnabled && user.Phone != "" {
		notification.Channels = append(notification.Channels, "sms")
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if user.Preferences.EmailEnabled && user.Email != "" {
		if err := uc.emailSender.SendEmail(ctx, user.Email, input.Title, input.Body); err != nil {
			logger.Warn("Failed to send notification email to %s: %v", user.Email, err)
		}
	}
	if user.Preferences.SMSEnabled && user.Phone != "" {
		if err := uc.smsSender.SendSMS(ctx, user.Phone, input.Title+": "+input.Body); err != nil {
			logger.Warn("Failed to send notification SMS to %s: %v", user.Phone, err)
		}
	}

	uc.wsManager.PushToUser(input.UserID, websocket.EventNotification, notification)

	return notification, nil
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entity.Notification, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.notificationRepo.ListByUserID(ctx, userID, unreadOnly, pagination.PageSize, pagination.Offset)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return errors.NotFound("Notification", err)
	}

	if notification.UserID != userID {
		return errors.Forbidden("You don't have permission to update this notification", nil)
	}

	return uc.notificationRepo.MarkRead(ctx, notificationID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return errors.NotFound("Notification", err)
	}

	if notification.UserID != userID {
		return errors.Forbidden("You don't have permission to delete this notification", nil)
	}

	return uc.notificationRepo.Delete(ctx, notificationID)
}

type TemplateInput struct {
	Name     string
	Subject  string
	Body     string
	Channels []string
	Active   bool
}

func (uc *NotificationUseCase) CreateTemplate(ctx context.Context, input TemplateInput) (*entity.NotificationTemplate, error) {
	existing, err := uc.templateRepo.GetByName(ctx, input.Name)
	if err == nil && existing != nil {
		return nil, errors.Conflict("A template with that name already exists")
	}

	now := time.Now()
	template := &entity.NotificationTemplate{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Subject:   input.Subject,
		Body:      input.Body,
		Channels:  input.Channels,
		Active:    input.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (uc *NotificationUseCase) UpdateTemplate(ctx context.Context, id string, input TemplateInput) (*entity.NotificationTemplate, error) {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Template", err)
	}

	template.Name = input.Name
	template.Subject = input.Subject
	template.Body = input.Body
	template.Channels = input.Channels
	template.Active = input.Active

	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (uc *NotificationUseCase) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := uc.templateRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Template", err)
	}
	return uc.templateRepo.Delete(ctx, id)
}

func (uc *NotificationUseCase) ListTemplates(ctx context.Context, page, limit int) ([]*entity.NotificationTemplate, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.templateRepo.List(ctx, pagination.PageSize, pagination.Offset)
}

// RenderTemplate substitutes {{key}} placeholders in the template subject
// and body.
func RenderTemplate(template *entity.NotificationTemplate, params map[string]string) (subject, body string) {
	pairs := make([]string, 0, len(params)*2)
	for key, value := range params {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	replacer := strings.NewReplacer(pairs...)
	return replacer.Replace(template.Subject), replacer.Replace(template.Body)
}
