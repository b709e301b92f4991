package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/scheduler"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

// SchedulerUseCase manages scheduled notification batches: admin-created
// one-shot or recurring sends of a template to a role audience or an
// explicit user list.
type SchedulerUseCase struct {
	scheduledRepo  repository.ScheduledNotificationRepository
	templateRepo   repository.NotificationTemplateRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
	scheduler      *scheduler.Scheduler
}

func NewSchedulerUseCase(
	scheduledRepo repository.ScheduledNotificationRepository,
	templateRepo repository.NotificationTemplateRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
) *SchedulerUseCase {
	uc := &SchedulerUseCase{
		scheduledRepo:  scheduledRepo,
		templateRepo:   templateRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
	}
	uc.scheduler = scheduler.New(uc.ExecuteSchedule)
	return uc
}

func (uc *SchedulerUseCase) Start() {
	uc.scheduler.Start()
}

func (uc *SchedulerUseCase) Stop() {
	uc.scheduler.Stop()
}

type ScheduleNotificationInput struct {
	TemplateID   string
	AudienceRole string
	UserIDs      []string
	Params       map[string]string
	Kind         string // once, recurring
	RunAt        *time.Time
	CronExpr     string
}

func (uc *SchedulerUseCase) CreateSchedule(ctx context.Context, adminID string, input ScheduleNotificationInput) (*entity.ScheduledNotification, error) {
	template, err := uc.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, errors.NotFound("Notification template", err)
	}
	if !template.Active {
		return nil, errors.BadRequest("Template is inactive", nil)
	}

	if input.AudienceRole == "" && len(input.UserIDs) == 0 {
		return nil, errors.BadRequest("An audience role or explicit user ids are required", nil)
	}
	if input.AudienceRole != "" && input.AudienceRole != entity.RoleClient && input.AudienceRole != entity.RoleFreelancer {
		return nil, errors.BadRequest("Audience role must be client or freelancer", nil)
	}

	now := time.Now()
	scheduled := &entity.ScheduledNotification{
		ID:           uuid.New().String(),
		TemplateID:   input.TemplateID,
		AudienceRole: input.AudienceRole,
		UserIDs:      input.UserIDs,
		Params:       input.Params,
		CreatedBy:    adminID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch input.Kind {
	case entity.ScheduleOnce:
		if input.RunAt == nil {
			return nil, errors.BadRequest("One-shot schedules need a run time", nil)
		}
		if !input.RunAt.After(now) {
			return nil, errors.BadRequest("Scheduled time is in the past", nil)
		}
		scheduled.Schedule = entity.Schedule{Kind: entity.ScheduleOnce, RunAt: input.RunAt}
		scheduled.Status = entity.ScheduleStatusScheduled
	case entity.ScheduleRecurring:
		if input.CronExpr == "" {
			return nil, errors.BadRequest("Recurring schedules need a cron expression", nil)
		}
		if err := scheduler.ValidateCron(input.CronExpr); err != nil {
			return nil, err
		}
		scheduled.Schedule = entity.Schedule{Kind: entity.ScheduleRecurring, CronExpr: input.CronExpr}
		scheduled.Status = entity.ScheduleStatusActive
	default:
		return nil, errors.BadRequest("Schedule kind must be once or recurring", nil)
	}

	// Persist before arming: a near-immediate one-shot must find its
	// document when the timer fires.
	if err := uc.scheduledRepo.Create(ctx, scheduled); err != nil {
		return nil, err
	}

	var armErr error
	switch input.Kind {
	case entity.ScheduleOnce:
		armErr = uc.scheduler.ArmOnce(scheduled.ID, *input.RunAt)
	case entity.ScheduleRecurring:
		armErr = uc.scheduler.ArmRecurring(scheduled.ID, input.CronExpr)
	}
	if armErr != nil {
		scheduled.Status = entity.ScheduleStatusFailed
		scheduled.UpdatedAt = time.Now()
		if err := uc.scheduledRepo.Update(ctx, scheduled); err != nil {
			logger.Warn("Failed to mark unarmed schedule %s as failed: %v", scheduled.ID, err)
		}
		return nil, armErr
	}

	return scheduled, nil
}

func (uc *SchedulerUseCase) ListSchedules(ctx context.Context, status string, page, limit int) ([]*entity.ScheduledNotification, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.scheduledRepo.List(ctx, status, pagination.PageSize, pagination.Offset)
}

func (uc *SchedulerUseCase) GetSchedule(ctx context.Context, id string) (*entity.ScheduledNotification, error) {
	scheduled, err := uc.scheduledRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Scheduled notification", err)
	}
	return scheduled, nil
}

func (uc *SchedulerUseCase) CancelSchedule(ctx context.Context, id string) (*entity.ScheduledNotification, error) {
	scheduled, err := uc.scheduledRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Scheduled notification", err)
	}

	if scheduled.Status != entity.ScheduleStatusScheduled && scheduled.Status != entity.ScheduleStatusActive {
		return nil, errors.BadRequest("Schedule is not cancellable in its current state", nil)
	}

	uc.scheduler.Disarm(id)

	scheduled.Status = entity.ScheduleStatusCancelled
	scheduled.UpdatedAt = time.Now()
	if err := uc.scheduledRepo.Update(ctx, scheduled); err != nil {
		return nil, err
	}

	return scheduled, nil
}

// ExecuteSchedule runs one batch. It is the scheduler's RunFunc and is
// invoked from timer and cron goroutines.
func (uc *SchedulerUseCase) ExecuteSchedule(scheduleID string) {
	ctx := context.Background()

	scheduled, err := uc.scheduledRepo.GetByID(ctx, scheduleID)
	if err != nil {
		logger.Error("Scheduled notification %s vanished before execution: %v", scheduleID, err)
		return
	}

	switch scheduled.Status {
	case entity.ScheduleStatusScheduled, entity.ScheduleStatusActive:
	default:
		logger.Warn("Skipping schedule %s in state %s", scheduleID, scheduled.Status)
		return
	}

	result := entity.ScheduleResult{RanAt: time.Now()}

	template, err := uc.templateRepo.GetByID(ctx, scheduled.TemplateID)
	if err != nil {
		result.Error = "template not found"
		uc.finishRun(ctx, scheduled, result, true)
		return
	}

	subject, body := RenderTemplate(template, scheduled.Params)

	userIDs := scheduled.UserIDs
	if scheduled.AudienceRole != "" {
		users, err := uc.userRepo.ListByRole(ctx, scheduled.AudienceRole)
		if err != nil {
			result.Error = "audience lookup failed: " + err.Error()
			uc.finishRun(ctx, scheduled, result, true)
			return
		}
		userIDs = userIDs[:0:0]
		for _, u := range users {
			if u.AccountStatus == entity.AccountStatusActive {
				userIDs = append(userIDs, u.ID)
			}
		}
	}

	for _, userID := range userIDs {
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  userID,
			Type:    "scheduled",
			Title:   subject,
			Body:    body,
			RefType: "schedule",
			RefID:   scheduled.ID,
		}); err != nil {
			logger.Warn("Scheduled send to %s failed: %v", userID, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	uc.finishRun(ctx, scheduled, result, false)
}

func (uc *SchedulerUseCase) finishRun(ctx context.Context, scheduled *entity.ScheduledNotification, result entity.ScheduleResult, failed bool) {
	scheduled.LastResult = &result
	scheduled.UpdatedAt = time.Now()

	// Recurring schedules stay active between runs; one-shots are done.
	if scheduled.Schedule.Kind == entity.ScheduleOnce {
		if failed {
			scheduled.Status = entity.ScheduleStatusFailed
		} else {
			scheduled.Status = entity.ScheduleStatusCompleted
		}
	} else if failed {
		logger.Error("Recurring schedule %s run failed: %s", scheduled.ID, result.Error)
	}

	if err := uc.scheduledRepo.Update(ctx, scheduled); err != nil {
		logger.Error("Failed to record run result for schedule %s: %v", scheduled.ID, err)
	}
}

// Reconcile re-arms armable schedules after a restart. One-shots whose
// time passed while the process was down are marked failed rather than
// fired late.
func (uc *SchedulerUseCase) Reconcile(ctx context.Context) error {
	armable, err := uc.scheduledRepo.ListArmable(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, scheduled := range armable {
		switch scheduled.Schedule.Kind {
		case entity.ScheduleOnce:
			if scheduled.Schedule.RunAt == nil || !scheduled.Schedule.RunAt.After(now) {
				scheduled.Status = entity.ScheduleStatusFailed
				scheduled.LastResult = &entity.ScheduleResult{RanAt: now, Error: "missed while offline"}
				scheduled.UpdatedAt = now
				if err := uc.scheduledRepo.Update(ctx, scheduled); err != nil {
					logger.Warn("Failed to mark missed schedule %s: %v", scheduled.ID, err)
				}
				continue
			}
			if err := uc.scheduler.ArmOnce(scheduled.ID, *scheduled.Schedule.RunAt); err != nil {
				logger.Warn("Failed to re-arm one-shot schedule %s: %v", scheduled.ID, err)
			}
		case entity.ScheduleRecurring:
			if err := uc.scheduler.ArmRecurring(scheduled.ID, scheduled.Schedule.CronExpr); err != nil {
				logger.Warn("Failed to re-arm recurring schedule %s: %v", scheduled.ID, err)
			}
		}
	}

	logger.Info("Scheduler reconcile complete: %d schedule(s) considered", len(armable))
	return nil
}
