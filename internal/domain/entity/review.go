package entity

import (
	"time"
)

type Review struct {
	ID         string `json:"id" firestore:"id"`
	ProjectID  string `json:"project_id" firestore:"projectId"`
	ContractID string `json:"contract_id" firestore:"contractId"`
	ReviewerID string `json:"reviewer_id" firestore:"reviewerId"`
	TargetID   string `json:"target_id" firestore:"targetId"`
	Direction  string `json:"direction" firestore:"direction"` // "client_review" or "freelancer_review"
	Rating     int    `json:"rating" firestore:"rating"`       // 1-5
	Comment    string `json:"comment,omitempty" firestore:"comment,omitempty"`
	Status     string `json:"status" firestore:"status"` // "active", "hidden"

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
