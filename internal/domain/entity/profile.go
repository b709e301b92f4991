package entity

import "time"

type ClientProfile struct {
	ID             string `json:"id" firestore:"id"`
	UserID         string `json:"user_id" firestore:"userId"`
	CompanyName    string `json:"company_name,omitempty" firestore:"companyName,omitempty"`
	Website        string `json:"website,omitempty" firestore:"website,omitempty"`
	BillingAddress string `json:"billing_address,omitempty" firestore:"billingAddress,omitempty"`

	ProjectsPosted int     `json:"projects_posted" firestore:"projectsPosted"`
	TotalSpent     float64 `json:"total_spent" firestore:"totalSpent"`

	VerificationStatus string `json:"verification_status" firestore:"verificationStatus"` // unverified, pending, verified

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type PortfolioItem struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	URL         string `json:"url,omitempty" firestore:"url,omitempty"`
	ImageURL    string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
}

type FreelancerProfile struct {
	ID           string          `json:"id" firestore:"id"`
	UserID       string          `json:"user_id" firestore:"userId"`
	Title        string          `json:"title,omitempty" firestore:"title,omitempty"`
	Skills       []string        `json:"skills" firestore:"skills"`
	HourlyRate   float64         `json:"hourly_rate,omitempty" firestore:"hourlyRate,omitempty"`
	Portfolio    []PortfolioItem `json:"portfolio,omitempty" firestore:"portfolio,omitempty"`
	Availability string          `json:"availability" firestore:"availability"` // available, busy, unavailable

	VerificationStatus string `json:"verification_status" firestore:"verificationStatus"`

	CompletedProjects int     `json:"completed_projects" firestore:"completedProjects"`
	TotalEarned       float64 `json:"total_earned" firestore:"totalEarned"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
