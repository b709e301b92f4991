package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/domain/entity"
)

func TestNotifyChannelsFollowPreferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedFreelancer("free1")

	// In-app only by default.
	notification, err := env.notificationUC.Notify(ctx, NotifyInput{
		UserID: "free1",
		Type:   "test",
		Title:  "Hello",
		Body:   "First",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"in_app"}, notification.Channels)

	user := env.users.users["free1"]
	user.Preferences.EmailEnabled = true
	user.Preferences.SMSEnabled = true
	user.Phone = "+6281234567890"

	notification, err = env.notificationUC.Notify(ctx, NotifyInput{
		UserID: "free1",
		Type:   "test",
		Title:  "Hello",
		Body:   "Second",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"in_app", "email", "sms"}, notification.Channels)
}

func TestNotifySMSSkippedWithoutPhone(t *testing.T) {
	env := newTestEnv()
	env.seedClient("client1")
	user := env.users.users["client1"]
	user.Preferences.SMSEnabled = true
	user.Phone = ""

	notification, err := env.notificationUC.Notify(context.Background(), NotifyInput{
		UserID: "client1",
		Type:   "test",
		Title:  "Hello",
		Body:   "Body",
	})
	require.NoError(t, err)
	assert.NotContains(t, notification.Channels, "sms")
}

func TestMarkReadOwnerOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedClient("client1")
	env.seedClient("client2")

	notification, err := env.notificationUC.Notify(ctx, NotifyInput{
		UserID: "client1",
		Type:   "test",
		Title:  "Hello",
		Body:   "Body",
	})
	require.NoError(t, err)

	assert.Error(t, env.notificationUC.MarkRead(ctx, "client2", notification.ID))
	require.NoError(t, env.notificationUC.MarkRead(ctx, "client1", notification.ID))

	count, err := env.notificationUC.UnreadCount(ctx, "client1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRenderTemplate(t *testing.T) {
	template := &entity.NotificationTemplate{
		Subject: "Welcome, {{username}}!",
		Body:    "Hi {{username}}, your {{role}} account is ready.",
	}

	subject, body := RenderTemplate(template, map[string]string{
		"username": "dina",
		"role":     "freelancer",
	})
	assert.Equal(t, "Welcome, dina!", subject)
	assert.Equal(t, "Hi dina, your freelancer account is ready.", body)

	// Unknown placeholders are left as-is.
	subject, _ = RenderTemplate(template, map[string]string{"role": "client"})
	assert.Equal(t, "Welcome, {{username}}!", subject)
}
