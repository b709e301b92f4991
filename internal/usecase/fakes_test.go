package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/websocket"
)

// In-memory repository fakes for usecase tests. They mirror the Firestore
// adapters' behavior closely enough to exercise the state machines.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, role, status string, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		if role != "" && user.Role != role {
			continue
		}
		if status != "" && user.AccountStatus != status {
			continue
		}
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *memUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	users, err := r.ListByRole(context.Background(), role)
	return int64(len(users)), err
}

func (r *memUserRepo) CountSignupsSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, user := range r.users {
		if !user.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type memBidRepo struct {
	bids map[string]*entity.Bid
}

func newMemBidRepo() *memBidRepo {
	return &memBidRepo{bids: make(map[string]*entity.Bid)}
}

func (r *memBidRepo) Create(_ context.Context, bid *entity.Bid) error {
	copied := *bid
	r.bids[bid.ID] = &copied
	return nil
}

func (r *memBidRepo) GetByID(_ context.Context, id string) (*entity.Bid, error) {
	bid, ok := r.bids[id]
	if !ok {
		return nil, fmt.Errorf("bid %s not found", id)
	}
	copied := *bid
	return &copied, nil
}

func (r *memBidRepo) Update(_ context.Context, bid *entity.Bid) error {
	if _, ok := r.bids[bid.ID]; !ok {
		return fmt.Errorf("bid %s not found", bid.ID)
	}
	copied := *bid
	r.bids[bid.ID] = &copied
	return nil
}

func (r *memBidRepo) ListByProjectID(_ context.Context, projectID string) ([]*entity.Bid, error) {
	var out []*entity.Bid
	for _, bid := range r.bids {
		if bid.ProjectID == projectID {
			copied := *bid
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memBidRepo) ListByFreelancerID(_ context.Context, freelancerID, status string, limit, offset int) ([]*entity.Bid, int64, error) {
	var out []*entity.Bid
	for _, bid := range r.bids {
		if bid.FreelancerID != freelancerID {
			continue
		}
		if status != "" && bid.Status != status {
			continue
		}
		copied := *bid
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memBidRepo) GetPendingByProjectAndFreelancer(_ context.Context, projectID, freelancerID string) (*entity.Bid, error) {
	for _, bid := range r.bids {
		if bid.ProjectID == projectID && bid.FreelancerID == freelancerID && bid.Status == entity.BidStatusPending {
			copied := *bid
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("no pending bid")
}

func (r *memBidRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bids)), nil
}

type memProjectRepo struct {
	projects map[string]*entity.Project
	bids     *memBidRepo
}

func newMemProjectRepo(bids *memBidRepo) *memProjectRepo {
	return &memProjectRepo{projects: make(map[string]*entity.Project), bids: bids}
}

func (r *memProjectRepo) Create(_ context.Context, project *entity.Project) error {
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s not found", id)
	}
	copied := *project
	return &copied, nil
}

func (r *memProjectRepo) Update(_ context.Context, project *entity.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return fmt.Errorf("project %s not found", project.ID)
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

func (r *memProjectRepo) List(_ context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	var out []*entity.Project
	for _, project := range r.projects {
		if status, ok := filter["status"].(string); ok && project.Status != status {
			continue
		}
		if category, ok := filter["category"].(string); ok && project.Category != category {
			continue
		}
		copied := *project
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memProjectRepo) Search(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	all, _, err := r.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	var out []*entity.Project
	for _, project := range all {
		if query == "" || strings.Contains(strings.ToLower(project.Title), strings.ToLower(query)) {
			out = append(out, project)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memProjectRepo) ListByClientID(_ context.Context, clientID, status string, limit, offset int) ([]*entity.Project, int64, error) {
	var out []*entity.Project
	for _, project := range r.projects {
		if project.ClientID != clientID {
			continue
		}
		if status != "" && project.Status != status {
			continue
		}
		copied := *project
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memProjectRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, project := range r.projects {
		if project.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memProjectRepo) AcceptBid(_ context.Context, projectID, bidID string) (*repository.AcceptBidResult, error) {
	project, ok := r.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s not found", projectID)
	}
	if project.Status != entity.ProjectStatusOpen {
		return nil, fmt.Errorf("project is not open")
	}

	accepted, ok := r.bids.bids[bidID]
	if !ok || accepted.ProjectID != projectID {
		return nil, fmt.Errorf("bid %s not found", bidID)
	}
	if accepted.Status != entity.BidStatusPending {
		return nil, fmt.Errorf("bid is not pending")
	}

	now := time.Now()
	var rejectedIDs []string
	for _, sibling := range r.bids.bids {
		if sibling.ProjectID != projectID || sibling.ID == bidID {
			continue
		}
		if sibling.Status == entity.BidStatusPending {
			sibling.Status = entity.BidStatusRejected
			sibling.UpdatedAt = now
			rejectedIDs = append(rejectedIDs, sibling.ID)
		}
	}

	accepted.Status = entity.BidStatusAccepted
	accepted.AcceptedAt = &now
	accepted.UpdatedAt = now

	project.Status = entity.ProjectStatusInProgress
	project.AssignedFreelancerID = accepted.FreelancerID
	project.AssignedAt = &now
	project.UpdatedAt = now

	projectCopy := *project
	bidCopy := *accepted
	return &repository.AcceptBidResult{
		Project:     &projectCopy,
		AcceptedBid: &bidCopy,
		RejectedIDs: rejectedIDs,
	}, nil
}

type memContractRepo struct {
	contracts map[string]*entity.Contract
}

func newMemContractRepo() *memContractRepo {
	return &memContractRepo{contracts: make(map[string]*entity.Contract)}
}

func (r *memContractRepo) Create(_ context.Context, contract *entity.Contract) error {
	copied := *contract
	r.contracts[contract.ID] = &copied
	return nil
}

func (r *memContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	contract, ok := r.contracts[id]
	if !ok {
		return nil, fmt.Errorf("contract %s not found", id)
	}
	copied := *contract
	return &copied, nil
}

func (r *memContractRepo) GetByProjectID(_ context.Context, projectID string) (*entity.Contract, error) {
	for _, contract := range r.contracts {
		if contract.ProjectID == projectID {
			copied := *contract
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("contract for project %s not found", projectID)
}

func (r *memContractRepo) Update(_ context.Context, contract *entity.Contract) error {
	if _, ok := r.contracts[contract.ID]; !ok {
		return fmt.Errorf("contract %s not found", contract.ID)
	}
	copied := *contract
	r.contracts[contract.ID] = &copied
	return nil
}

func (r *memContractRepo) ListByFreelancerID(_ context.Context, freelancerID, status string, limit, offset int) ([]*entity.Contract, int64, error) {
	var out []*entity.Contract
	for _, contract := range r.contracts {
		if contract.FreelancerID != freelancerID {
			continue
		}
		if status != "" && contract.Status != status {
			continue
		}
		copied := *contract
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memContractRepo) ListByClientID(_ context.Context, clientID, status string, limit, offset int) ([]*entity.Contract, int64, error) {
	var out []*entity.Contract
	for _, contract := range r.contracts {
		if contract.ClientID != clientID {
			continue
		}
		if status != "" && contract.Status != status {
			continue
		}
		copied := *contract
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *memContractRepo) SumCompletedAmounts(_ context.Context) (float64, error) {
	var total float64
	for _, contract := range r.contracts {
		if contract.Status == "completed" {
			total += contract.Amount
		}
	}
	return total, nil
}

type memClientProfileRepo struct {
	profiles map[string]*entity.ClientProfile // keyed by user id
}

func newMemClientProfileRepo() *memClientProfileRepo {
	return &memClientProfileRepo{profiles: make(map[string]*entity.ClientProfile)}
}

func (r *memClientProfileRepo) Create(_ context.Context, profile *entity.ClientProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *memClientProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.ClientProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("client profile for %s not found", userID)
	}
	return profile, nil
}

func (r *memClientProfileRepo) Update(_ context.Context, profile *entity.ClientProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

type memFreelancerProfileRepo struct {
	profiles map[string]*entity.FreelancerProfile
}

func newMemFreelancerProfileRepo() *memFreelancerProfileRepo {
	return &memFreelancerProfileRepo{profiles: make(map[string]*entity.FreelancerProfile)}
}

func (r *memFreelancerProfileRepo) Create(_ context.Context, profile *entity.FreelancerProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *memFreelancerProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.FreelancerProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("freelancer profile for %s not found", userID)
	}
	return profile, nil
}

func (r *memFreelancerProfileRepo) Update(_ context.Context, profile *entity.FreelancerProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *memFreelancerProfileRepo) Search(_ context.Context, skill, availability string, limit, offset int) ([]*entity.FreelancerProfile, int64, error) {
	var out []*entity.FreelancerProfile
	for _, profile := range r.profiles {
		if availability != "" && profile.Availability != availability {
			continue
		}
		if skill != "" {
			found := false
			for _, s := range profile.Skills {
				if strings.EqualFold(s, skill) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, profile)
	}
	return out, int64(len(out)), nil
}

type memNotificationRepo struct {
	notifications map[string]*entity.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{notifications: make(map[string]*entity.Notification)}
}

func (r *memNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	copied := *notification
	r.notifications[notification.ID] = &copied
	return nil
}

func (r *memNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification %s not found", id)
	}
	return notification, nil
}

func (r *memNotificationRepo) ListByUserID(_ context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *memNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id string) error {
	if n, ok := r.notifications[id]; ok {
		now := time.Now()
		n.Read = true
		n.ReadAt = &now
	}
	return nil
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *memNotificationRepo) Delete(_ context.Context, id string) error {
	delete(r.notifications, id)
	return nil
}

func (r *memNotificationRepo) forUser(userID string) []*entity.Notification {
	out, _, _ := r.ListByUserID(context.Background(), userID, false, 100, 0)
	return out
}

type memTemplateRepo struct {
	templates map[string]*entity.NotificationTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[string]*entity.NotificationTemplate)}
}

func (r *memTemplateRepo) Create(_ context.Context, template *entity.NotificationTemplate) error {
	r.templates[template.ID] = template
	return nil
}

func (r *memTemplateRepo) GetByID(_ context.Context, id string) (*entity.NotificationTemplate, error) {
	template, ok := r.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %s not found", id)
	}
	return template, nil
}

func (r *memTemplateRepo) GetByName(_ context.Context, name string) (*entity.NotificationTemplate, error) {
	for _, template := range r.templates {
		if template.Name == name {
			return template, nil
		}
	}
	return nil, fmt.Errorf("template %s not found", name)
}

func (r *memTemplateRepo) Update(_ context.Context, template *entity.NotificationTemplate) error {
	r.templates[template.ID] = template
	return nil
}

func (r *memTemplateRepo) Delete(_ context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

func (r *memTemplateRepo) List(_ context.Context, limit, offset int) ([]*entity.NotificationTemplate, int64, error) {
	var out []*entity.NotificationTemplate
	for _, template := range r.templates {
		out = append(out, template)
	}
	return out, int64(len(out)), nil
}

type noopSender struct{}

func (noopSender) SendEmail(_ context.Context, _, _, _ string) error { return nil }
func (noopSender) SendSMS(_ context.Context, _, _ string) error      { return nil }

// testEnv wires the usecases over the in-memory fakes.
type testEnv struct {
	users         *memUserRepo
	clients       *memClientProfileRepo
	freelancers   *memFreelancerProfileRepo
	projects      *memProjectRepo
	bids          *memBidRepo
	contracts     *memContractRepo
	notifications *memNotificationRepo

	notificationUC *NotificationUseCase
	projectUC      *ProjectUseCase
	bidUC          *BidUseCase
	reviewUC       *ReviewUseCase
	adminUC        *AdminUseCase
}

func newTestEnv() *testEnv {
	users := newMemUserRepo()
	clients := newMemClientProfileRepo()
	freelancers := newMemFreelancerProfileRepo()
	bids := newMemBidRepo()
	projects := newMemProjectRepo(bids)
	contracts := newMemContractRepo()
	notifications := newMemNotificationRepo()
	templates := newMemTemplateRepo()

	wsManager := websocket.NewManager()

	notificationUC := NewNotificationUseCase(notifications, templates, users, noopSender{}, noopSender{}, wsManager)
	projectUC := NewProjectUseCase(projects, bids, contracts, clients, freelancers, notificationUC, wsManager)
	bidUC := NewBidUseCase(bids, projects, contracts, clients, freelancers, notificationUC, wsManager)

	reviews := newMemReviewRepo()
	reviewUC := NewReviewUseCase(reviews, contracts, projects, users, notificationUC)
	adminUC := NewAdminUseCase(users, projects, bids, contracts, notificationUC)

	return &testEnv{
		users:          users,
		clients:        clients,
		freelancers:    freelancers,
		projects:       projects,
		bids:           bids,
		contracts:      contracts,
		notifications:  notifications,
		notificationUC: notificationUC,
		projectUC:      projectUC,
		bidUC:          bidUC,
		reviewUC:       reviewUC,
		adminUC:        adminUC,
	}
}

type memReviewRepo struct {
	reviews map[string]*entity.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s not found", id)
	}
	return review, nil
}

func (r *memReviewRepo) GetByContractAndReviewer(_ context.Context, contractID, reviewerID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ContractID == contractID && review.ReviewerID == reviewerID {
			return review, nil
		}
	}
	return nil, fmt.Errorf("review not found")
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) ListByTargetID(_ context.Context, targetID string, limit, offset int) ([]*entity.Review, int64, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.TargetID == targetID {
			out = append(out, review)
		}
	}
	return out, int64(len(out)), nil
}

// seedClient registers an active client user with a profile. Seeding an
// existing user is a no-op so repeated setup helpers don't reset state.
func (env *testEnv) seedClient(id string) {
	if _, ok := env.users.users[id]; ok {
		return
	}
	now := time.Now()
	env.users.users[id] = &entity.User{
		ID:            id,
		Email:         id + "@example.com",
		Username:      id,
		Role:          entity.RoleClient,
		AccountStatus: entity.AccountStatusActive,
		Preferences:   entity.NotificationPreferences{InAppEnabled: true},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	env.clients.profiles[id] = &entity.ClientProfile{
		ID:        "cp-" + id,
		UserID:    id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// seedFreelancer registers an active freelancer user with a profile.
func (env *testEnv) seedFreelancer(id string) {
	if _, ok := env.users.users[id]; ok {
		return
	}
	now := time.Now()
	env.users.users[id] = &entity.User{
		ID:            id,
		Email:         id + "@example.com",
		Username:      id,
		Role:          entity.RoleFreelancer,
		AccountStatus: entity.AccountStatusActive,
		Preferences:   entity.NotificationPreferences{InAppEnabled: true},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	env.freelancers.profiles[id] = &entity.FreelancerProfile{
		ID:           "fp-" + id,
		UserID:       id,
		Skills:       []string{"go"},
		Availability: "available",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
