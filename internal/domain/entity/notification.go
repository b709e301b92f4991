package entity

import "time"

const (
	ScheduleOnce      = "once"
	ScheduleRecurring = "recurring"
)

const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusActive    = "active"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusFailed    = "failed"
)

type Notification struct {
	ID      string `json:"id" firestore:"id"`
	UserID  string `json:"user_id" firestore:"userId"`
	Type    string `json:"type" firestore:"type"` // bid_placed, bid_accepted, message, system, ...
	Title   string `json:"title" firestore:"title"`
	Body    string `json:"body" firestore:"body"`
	RefType string `json:"ref_type,omitempty" firestore:"refType,omitempty"` // project, bid, conversation, ...
	RefID   string `json:"ref_id,omitempty" firestore:"refId,omitempty"`

	Read   bool       `json:"read" firestore:"read"`
	ReadAt *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`

	Channels []string `json:"channels,omitempty" firestore:"channels,omitempty"` // in_app, email, sms

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type NotificationTemplate struct {
	ID       string   `json:"id" firestore:"id"`
	Name     string   `json:"name" firestore:"name"`
	Subject  string   `json:"subject" firestore:"subject"`
	Body     string   `json:"body" firestore:"body"` // {{placeholder}} slots
	Channels []string `json:"channels" firestore:"channels"`
	Active   bool     `json:"active" firestore:"active"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Schedule struct {
	Kind     string     `json:"kind" firestore:"kind"` // once, recurring
	RunAt    *time.Time `json:"run_at,omitempty" firestore:"runAt,omitempty"`
	CronExpr string     `json:"cron_expr,omitempty" firestore:"cronExpr,omitempty"`
}

type ScheduleResult struct {
	RanAt  time.Time `json:"ran_at" firestore:"ranAt"`
	Sent   int       `json:"sent" firestore:"sent"`
	Failed int       `json:"failed" firestore:"failed"`
	Error  string    `json:"error,omitempty" firestore:"error,omitempty"`
}

type ScheduledNotification struct {
	ID         string   `json:"id" firestore:"id"`
	TemplateID string   `json:"template_id" firestore:"templateId"`
	// Audience is either a role ("client", "freelancer") or empty when
	// explicit user ids are given.
	AudienceRole string   `json:"audience_role,omitempty" firestore:"audienceRole,omitempty"`
	UserIDs      []string `json:"user_ids,omitempty" firestore:"userIds,omitempty"`
	Params       map[string]string `json:"params,omitempty" firestore:"params,omitempty"`

	Schedule   Schedule        `json:"schedule" firestore:"schedule"`
	Status     string          `json:"status" firestore:"status"`
	LastResult *ScheduleResult `json:"last_result,omitempty" firestore:"lastResult,omitempty"`

	CreatedBy string    `json:"created_by" firestore:"createdBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
