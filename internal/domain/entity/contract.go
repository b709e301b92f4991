package entity

import "time"

type Contract struct {
	ID           string  `json:"id" firestore:"id"`
	ProjectID    string  `json:"project_id" firestore:"projectId"`
	ClientID     string  `json:"client_id" firestore:"clientId"`
	FreelancerID string  `json:"freelancer_id" firestore:"freelancerId"`
	BidID        string  `json:"bid_id" firestore:"bidId"`
	Amount       float64 `json:"amount" firestore:"amount"`
	DeliveryTime int     `json:"delivery_time" firestore:"deliveryTime"`
	Status       string  `json:"status" firestore:"status"` // active, completed, cancelled

	StartedAt   time.Time  `json:"started_at" firestore:"startedAt"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
}
