package entity

import (
	"time"
)

const (
	ProjectStatusOpen       = "open"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

const (
	MilestoneStatusPending   = "pending"
	MilestoneStatusSubmitted = "submitted"
	MilestoneStatusApproved  = "approved"
)

type Milestone struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Amount      float64    `json:"amount" firestore:"amount"`
	DueDate     *time.Time `json:"due_date,omitempty" firestore:"dueDate,omitempty"`
	Status      string     `json:"status" firestore:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty" firestore:"submittedAt,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
}

type Submission struct {
	ID           string    `json:"id" firestore:"id"`
	FreelancerID string    `json:"freelancer_id" firestore:"freelancerId"`
	Message      string    `json:"message,omitempty" firestore:"message,omitempty"`
	Attachments  []string  `json:"attachments,omitempty" firestore:"attachments,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at" firestore:"submittedAt"`
}

type Project struct {
	ID          string   `json:"id" firestore:"id"`
	ClientID    string   `json:"client_id" firestore:"clientId"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	Skills      []string `json:"skills" firestore:"skills"`

	BudgetMin float64    `json:"budget_min" firestore:"budgetMin"`
	BudgetMax float64    `json:"budget_max" firestore:"budgetMax"`
	Deadline  *time.Time `json:"deadline,omitempty" firestore:"deadline,omitempty"`

	Status               string   `json:"status" firestore:"status"`
	BidIDs               []string `json:"bid_ids,omitempty" firestore:"bidIds,omitempty"`
	BidCount             int      `json:"bid_count" firestore:"bidCount"`
	AssignedFreelancerID string   `json:"assigned_freelancer_id,omitempty" firestore:"assignedFreelancerId,omitempty"`

	Milestones  []Milestone  `json:"milestones,omitempty" firestore:"milestones,omitempty"`
	Submissions []Submission `json:"submissions,omitempty" firestore:"submissions,omitempty"`
	Attachments []string     `json:"attachments,omitempty" firestore:"attachments,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty" firestore:"assignedAt,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
}

// MilestonesApproved reports whether every milestone has been approved.
// A project without milestones counts as approved.
func (p *Project) MilestonesApproved() bool {
	for _, m := range p.Milestones {
		if m.Status != MilestoneStatusApproved {
			return false
		}
	}
	return true
}
