package entity

import (
	"time"
)

const (
	BidStatusPending   = "pending"
	BidStatusAccepted  = "accepted"
	BidStatusRejected  = "rejected"
	BidStatusWithdrawn = "withdrawn"
)

const (
	CounterOfferNone     = "none"
	CounterOfferPending  = "pending"
	CounterOfferAccepted = "accepted"
	CounterOfferRejected = "rejected"
)

type CounterOffer struct {
	Amount       float64   `json:"amount" firestore:"amount"`
	DeliveryTime int       `json:"delivery_time" firestore:"deliveryTime"`
	Message      string    `json:"message,omitempty" firestore:"message,omitempty"`
	Status       string    `json:"status" firestore:"status"`
	ProposedAt   time.Time `json:"proposed_at" firestore:"proposedAt"`
}

type Bid struct {
	ID           string  `json:"id" firestore:"id"`
	ProjectID    string  `json:"project_id" firestore:"projectId"`
	FreelancerID string  `json:"freelancer_id" firestore:"freelancerId"`
	Amount       float64 `json:"amount" firestore:"amount"`
	DeliveryTime int     `json:"delivery_time" firestore:"deliveryTime"` // days
	Proposal     string  `json:"proposal" firestore:"proposal"`
	Status       string  `json:"status" firestore:"status"`

	CounterOffer *CounterOffer `json:"counter_offer,omitempty" firestore:"counterOffer,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty" firestore:"acceptedAt,omitempty"`
	WithdrawnAt *time.Time `json:"withdrawn_at,omitempty" firestore:"withdrawnAt,omitempty"`
}

// CounterOfferStatus reports the counter-offer sub-state,
// CounterOfferNone when no counter has ever been proposed.
func (b *Bid) CounterOfferStatus() string {
	if b.CounterOffer == nil {
		return CounterOfferNone
	}
	return b.CounterOffer.Status
}
