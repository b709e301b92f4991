package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/domain/entity"
)

type memScheduledRepo struct {
	schedules map[string]*entity.ScheduledNotification
}

func newMemScheduledRepo() *memScheduledRepo {
	return &memScheduledRepo{schedules: make(map[string]*entity.ScheduledNotification)}
}

func (r *memScheduledRepo) Create(_ context.Context, scheduled *entity.ScheduledNotification) error {
	r.schedules[scheduled.ID] = scheduled
	return nil
}

func (r *memScheduledRepo) GetByID(_ context.Context, id string) (*entity.ScheduledNotification, error) {
	scheduled, ok := r.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %s not found", id)
	}
	return scheduled, nil
}

func (r *memScheduledRepo) Update(_ context.Context, scheduled *entity.ScheduledNotification) error {
	r.schedules[scheduled.ID] = scheduled
	return nil
}

func (r *memScheduledRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.ScheduledNotification, int64, error) {
	var out []*entity.ScheduledNotification
	for _, scheduled := range r.schedules {
		if status != "" && scheduled.Status != status {
			continue
		}
		out = append(out, scheduled)
	}
	return out, int64(len(out)), nil
}

func (r *memScheduledRepo) ListArmable(_ context.Context) ([]*entity.ScheduledNotification, error) {
	var out []*entity.ScheduledNotification
	for _, scheduled := range r.schedules {
		switch scheduled.Status {
		case entity.ScheduleStatusScheduled, entity.ScheduleStatusActive:
			out = append(out, scheduled)
		}
	}
	return out, nil
}

func newSchedulerEnv(t *testing.T) (*testEnv, *memScheduledRepo, *SchedulerUseCase, string) {
	t.Helper()
	env := newTestEnv()
	scheduledRepo := newMemScheduledRepo()
	templates := newMemTemplateRepo()

	template := &entity.NotificationTemplate{
		ID:      "tpl-1",
		Name:    "weekly-digest",
		Subject: "Hello {{username}}",
		Body:    "Your weekly digest is ready.",
		Active:  true,
	}
	require.NoError(t, templates.Create(context.Background(), template))

	uc := NewSchedulerUseCase(scheduledRepo, templates, env.users, env.notificationUC)
	t.Cleanup(uc.Stop)
	return env, scheduledRepo, uc, template.ID
}

func TestCreateSchedulePastRunAtNotPersisted(t *testing.T) {
	_, scheduledRepo, uc, templateID := newSchedulerEnv(t)
	past := time.Now().Add(-time.Minute)

	_, err := uc.CreateSchedule(context.Background(), "admin1", ScheduleNotificationInput{
		TemplateID: templateID,
		UserIDs:    []string{"free1"},
		Kind:       entity.ScheduleOnce,
		RunAt:      &past,
	})
	assert.Error(t, err)
	assert.Empty(t, scheduledRepo.schedules)
}

func TestCreateScheduleInvalidCronNotPersisted(t *testing.T) {
	_, scheduledRepo, uc, templateID := newSchedulerEnv(t)

	_, err := uc.CreateSchedule(context.Background(), "admin1", ScheduleNotificationInput{
		TemplateID: templateID,
		UserIDs:    []string{"free1"},
		Kind:       entity.ScheduleRecurring,
		CronExpr:   "not a cron expression",
	})
	assert.Error(t, err)
	assert.Empty(t, scheduledRepo.schedules)
}

func TestCreateSchedulePersistsBeforeRun(t *testing.T) {
	env, scheduledRepo, uc, templateID := newSchedulerEnv(t)
	ctx := context.Background()
	env.seedFreelancer("free1")
	env.seedFreelancer("free2")
	runAt := time.Now().Add(time.Hour)

	scheduled, err := uc.CreateSchedule(ctx, "admin1", ScheduleNotificationInput{
		TemplateID: templateID,
		UserIDs:    []string{"free1", "free2"},
		Params:     map[string]string{"username": "all"},
		Kind:       entity.ScheduleOnce,
		RunAt:      &runAt,
	})
	require.NoError(t, err)

	// The document is in the store before the timer can possibly fire.
	stored, err := scheduledRepo.GetByID(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusScheduled, stored.Status)

	// Running the batch finds its document and settles the result.
	uc.ExecuteSchedule(scheduled.ID)

	stored, err = scheduledRepo.GetByID(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusCompleted, stored.Status)
	require.NotNil(t, stored.LastResult)
	assert.Equal(t, 2, stored.LastResult.Sent)
	assert.Equal(t, 0, stored.LastResult.Failed)

	assert.NotEmpty(t, env.notifications.forUser("free1"))
	assert.NotEmpty(t, env.notifications.forUser("free2"))
}

func TestCancelSchedule(t *testing.T) {
	env, _, uc, templateID := newSchedulerEnv(t)
	ctx := context.Background()
	env.seedFreelancer("free1")
	runAt := time.Now().Add(time.Hour)

	scheduled, err := uc.CreateSchedule(ctx, "admin1", ScheduleNotificationInput{
		TemplateID: templateID,
		UserIDs:    []string{"free1"},
		Kind:       entity.ScheduleOnce,
		RunAt:      &runAt,
	})
	require.NoError(t, err)

	cancelled, err := uc.CancelSchedule(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScheduleStatusCancelled, cancelled.Status)

	// A cancelled schedule cannot be cancelled again.
	_, err = uc.CancelSchedule(ctx, scheduled.ID)
	assert.Error(t, err)
}
