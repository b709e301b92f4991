package entity

import (
	"time"
)

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

const (
	AccountStatusActive      = "active"
	AccountStatusSuspended   = "suspended"
	AccountStatusDeactivated = "deactivated"
)

type NotificationPreferences struct {
	EmailEnabled bool `json:"email_enabled" firestore:"emailEnabled"`
	SMSEnabled   bool `json:"sms_enabled" firestore:"smsEnabled"`
	InAppEnabled bool `json:"in_app_enabled" firestore:"inAppEnabled"`
}

type User struct {
	ID            string `json:"id" firestore:"id"`
	Email         string `json:"email" firestore:"email"`
	PasswordHash  string `json:"-" firestore:"passwordHash"`
	Username      string `json:"username" firestore:"username"`
	Phone         string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Bio           string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role          string `json:"role" firestore:"role"`                   // client, freelancer, admin
	AccountStatus string `json:"account_status" firestore:"accountStatus"` // active, suspended, deactivated
	AvatarURL     string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	Preferences NotificationPreferences `json:"preferences" firestore:"preferences"`

	Rating      float64 `json:"rating,omitempty" firestore:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty" firestore:"reviewCount,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
