package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/websocket"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type ProjectUseCase struct {
	projectRepo    repository.ProjectRepository
	bidRepo        repository.BidRepository
	contractRepo   repository.ContractRepository
	clientRepo     repository.ClientProfileRepository
	freelancerRepo repository.FreelancerProfileRepository
	notificationUC *NotificationUseCase
	wsManager      *websocket.Manager
}

func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	bidRepo repository.BidRepository,
	contractRepo repository.ContractRepository,
	clientRepo repository.ClientProfileRepository,
	freelancerRepo repository.FreelancerProfileRepository,
	notificationUC *NotificationUseCase,
	wsManager *websocket.Manager,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo:    projectRepo,
		bidRepo:        bidRepo,
		contractRepo:   contractRepo,
		clientRepo:     clientRepo,
		freelancerRepo: freelancerRepo,
		notificationUC: notificationUC,
		wsManager:      wsManager,
	}
}

type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
	Skills      []string
	BudgetMin   float64
	BudgetMax   float64
	Deadline    *time.Time
	Attachments []string
}

type MilestoneInput struct {
	Title   string
	Amount  float64
	DueDate *time.Time
}

// requireClientOwner re-derives the acting user's client profile and
// checks project ownership. Every client-side transition goes through it.
func (uc *ProjectUseCase) requireClientOwner(ctx context.Context, userID string, project *entity.Project) error {
	if _, err := uc.clientRepo.GetByUserID(ctx, userID); err != nil {
		return errors.Forbidden("Client profile required", err)
	}
	if project.ClientID != userID {
		return errors.Forbidden("You don't have permission to manage this project", nil)
	}
	return nil
}

// requireAssignedFreelancer re-derives the freelancer profile and checks
// project assignment.
func (uc *ProjectUseCase) requireAssignedFreelancer(ctx context.Context, userID string, project *entity.Project) error {
	if _, err := uc.freelancerRepo.GetByUserID(ctx, userID); err != nil {
		return errors.Forbidden("Freelancer profile required", err)
	}
	if project.AssignedFreelancerID != userID {
		return errors.Forbidden("Only the assigned freelancer may do this", nil)
	}
	return nil
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, clientUserID string, input CreateProjectInput) (*entity.Project, error) {
	clientProfile, err := uc.clientRepo.GetByUserID(ctx, clientUserID)
	if err != nil {
		return nil, errors.Forbidden("Client profile required", err)
	}

	if input.BudgetMax > 0 && input.BudgetMin > input.BudgetMax {
		return nil, errors.BadRequest("Minimum budget exceeds maximum budget", nil)
	}

	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		ClientID:    clientUserID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Skills:      input.Skills,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Deadline:    input.Deadline,
		Status:      entity.ProjectStatusOpen,
		Attachments: input.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	clientProfile.ProjectsPosted++
	if err := uc.clientRepo.Update(ctx, clientProfile); err != nil {
		logger.Warn("Failed to bump projectsPosted for client %s: %v", clientUserID, err)
	}

	return project, nil
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, projectID, clientUserID string, input CreateProjectInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireClientOwner(ctx, clientUserID, project); err != nil {
		return nil, err
	}

	if project.Status != entity.ProjectStatusOpen {
		return nil, errors.BadRequest("Only open projects can be edited", nil)
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Category = input.Category
	project.Skills = input.Skills
	project.BudgetMin = input.BudgetMin
	project.BudgetMax = input.BudgetMax
	project.Deadline = input.Deadline
	if len(input.Attachments) > 0 {
		project.Attachments = input.Attachments
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}
	return project, nil
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context, category, skill, status string, minBudget, maxBudget float64, page, limit int) ([]*entity.Project, int64, error) {
	filter := make(map[string]interface{})

	if category != "" {
		filter["category"] = category
	}
	if skill != "" {
		filter["skill"] = skill
	}
	if status != "" {
		filter["status"] = status
	} else {
		// Public browsing defaults to open postings
		filter["status"] = entity.ProjectStatusOpen
	}
	if minBudget > 0 {
		filter["min_budget"] = minBudget
	}
	if maxBudget > 0 {
		filter["max_budget"] = maxBudget
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.projectRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ProjectUseCase) SearchProjects(ctx context.Context, query, category, skill string, page, limit int) ([]*entity.Project, int64, error) {
	filter := map[string]interface{}{
		"status": entity.ProjectStatusOpen,
	}
	if category != "" {
		filter["category"] = category
	}
	if skill != "" {
		filter["skill"] = skill
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.projectRepo.Search(ctx, query, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ProjectUseCase) ListMyProjects(ctx context.Context, clientUserID, status string, page, limit int) ([]*entity.Project, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.projectRepo.ListByClientID(ctx, clientUserID, status, pagination.PageSize, pagination.Offset)
}

func (uc *ProjectUseCase) CancelProject(ctx context.Context, projectID, clientUserID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireClientOwner(ctx, clientUserID, project); err != nil {
		return nil, err
	}

	if project.Status != entity.ProjectStatusOpen {
		return nil, errors.BadRequest("Only open projects can be cancelled", nil)
	}

	now := time.Now()
	project.Status = entity.ProjectStatusCancelled
	project.CancelledAt = &now

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	// Pending bidders find out their bid went nowhere.
	bids, err := uc.bidRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		logger.Warn("Failed to list bids for cancelled project %s: %v", projectID, err)
	} else {
		for _, bid := range bids {
			if bid.Status != entity.BidStatusPending {
				continue
			}
			if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
				UserID:  bid.FreelancerID,
				Type:    "project_cancelled",
				Title:   "Project cancelled",
				Body:    "The project \"" + project.Title + "\" was cancelled by the client.",
				RefType: "project",
				RefID:   project.ID,
			}); err != nil {
				logger.Warn("Failed to notify bidder %s about cancellation: %v", bid.FreelancerID, err)
			}
		}
	}

	uc.wsManager.PushEvent("project:"+project.ID, websocket.EventProjectUpdate, project, clientUserID)

	return project, nil
}

func (uc *ProjectUseCase) AddMilestone(ctx context.Context, projectID, clientUserID string, input MilestoneInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireClientOwner(ctx, clientUserID, project); err != nil {
		return nil, err
	}

	if project.Status != entity.ProjectStatusOpen && project.Status != entity.ProjectStatusInProgress {
		return nil, errors.BadRequest("Milestones can only be added to open or in-progress projects", nil)
	}

	project.Milestones = append(project.Milestones, entity.Milestone{
		ID:      uuid.New().String(),
		Title:   input.Title,
		Amount:  input.Amount,
		DueDate: input.DueDate,
		Status:  entity.MilestoneStatusPending,
	})

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) SubmitMilestone(ctx context.Context, projectID, milestoneID, freelancerUserID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireAssignedFreelancer(ctx, freelancerUserID, project); err != nil {
		return nil, err
	}

	if project.Status != entity.ProjectStatusInProgress {
		return nil, errors.BadRequest("Project is not in progress", nil)
	}

	now := time.Now()
	found := false
	for i := range project.Milestones {
		if project.Milestones[i].ID != milestoneID {
			continue
		}
		if project.Milestones[i].Status != entity.MilestoneStatusPending {
			return nil, errors.BadRequest("Milestone has already been submitted", nil)
		}
		project.Milestones[i].Status = entity.MilestoneStatusSubmitted
		project.Milestones[i].SubmittedAt = &now
		found = true
		break
	}
	if !found {
		return nil, errors.NotFound("Milestone", nil)
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  project.ClientID,
		Type:    "milestone_submitted",
		Title:   "Milestone submitted",
		Body:    "A milestone on \"" + project.Title + "\" is ready for review.",
		RefType: "project",
		RefID:   project.ID,
	}); err != nil {
		logger.Warn("Failed to notify client about milestone submission: %v", err)
	}

	return project, nil
}

func (uc *ProjectUseCase) ApproveMilestone(ctx context.Context, projectID, milestoneID, clientUserID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireClientOwner(ctx, clientUserID, project); err != nil {
		return nil, err
	}

	now := time.Now()
	found := false
	for i := range project.Milestones {
		if project.Milestones[i].ID != milestoneID {
			continue
		}
		if project.Milestones[i].Status != entity.MilestoneStatusSubmitted {
			return nil, errors.BadRequest("Milestone is not awaiting approval", nil)
		}
		project.Milestones[i].Status = entity.MilestoneStatusApproved
		project.Milestones[i].ApprovedAt = &now
		found = true
		break
	}
	if !found {
		return nil, errors.NotFound("Milestone", nil)
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  project.AssignedFreelancerID,
		Type:    "milestone_approved",
		Title:   "Milestone approved",
		Body:    "A milestone on \"" + project.Title + "\" was approved.",
		RefType: "project",
		RefID:   project.ID,
	}); err != nil {
		logger.Warn("Failed to notify freelancer about milestone approval: %v", err)
	}

	return project, nil
}

type SubmitWorkInput struct {
	Message     string
	Attachments []string
}

// SubmitWork is the assigned freelancer's in_progress -> completed
// transition.
func (uc *ProjectUseCase) SubmitWork(ctx context.Context, projectID, freelancerUserID string, input SubmitWorkInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if err := uc.requireAssignedFreelancer(ctx, freelancerUserID, project); err != nil {
		return nil, err
	}

	if project.Status != entity.ProjectStatusInProgress {
		return nil, errors.BadRequest("Project is not in progress", nil)
	}

	project.Submissions = append(project.Submissions, entity.Submission{
		ID:           uuid.New().String(),
		FreelancerID: freelancerUserID,
		Message:      input.Message,
		Attachments:  input.Attachments,
		SubmittedAt:  time.Now(),
	})

	return uc.completeProject(ctx, project, freelancerUserID)
}

// MarkComplete lets either party close out an in-progress project once
// every milestone has been approved.
func (uc *ProjectUseCase) MarkComplete(ctx context.Context, projectID, userID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if project.ClientID != userID && project.AssignedFreelancerID != userID {
		return nil, errors.Forbidden("Only the client or the assigned freelancer can complete this project", nil)
	}

	if project.Status != entity.ProjectStatusInProgress {
		return nil, errors.BadRequest("Project is not in progress", nil)
	}

	if len(project.Milestones) > 0 && !project.MilestonesApproved() {
		return nil, errors.BadRequest("All milestones must be approved before completion", nil)
	}

	return uc.completeProject(ctx, project, userID)
}

func (uc *ProjectUseCase) completeProject(ctx context.Context, project *entity.Project, byUserID string) (*entity.Project, error) {
	now := time.Now()
	project.Status = entity.ProjectStatusCompleted
	project.CompletedAt = &now

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	contract, err := uc.contractRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		logger.Warn("No contract found for completed project %s: %v", project.ID, err)
	} else if contract.Status == "active" {
		contract.Status = "completed"
		contract.CompletedAt = &now
		if err := uc.contractRepo.Update(ctx, contract); err != nil {
			logger.Warn("Failed to complete contract %s: %v", contract.ID, err)
		} else {
			uc.settleAggregates(ctx, project, contract)
		}
	}

	counterpart := project.ClientID
	if byUserID == project.ClientID {
		counterpart = project.AssignedFreelancerID
	}
	if counterpart != "" {
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  counterpart,
			Type:    "project_completed",
			Title:   "Project completed",
			Body:    "The project \"" + project.Title + "\" has been completed.",
			RefType: "project",
			RefID:   project.ID,
		}); err != nil {
			logger.Warn("Failed to notify about project completion: %v", err)
		}
	}

	uc.wsManager.PushEvent("project:"+project.ID, websocket.EventProjectUpdate, project, byUserID)
	uc.wsManager.PushEvent("dashboard", websocket.EventDashboardRefresh, map[string]string{"project_id": project.ID}, "")

	return project, nil
}

// ClientDashboard aggregates a client's side of the marketplace for the
// dashboard view.
type ClientDashboard struct {
	Profile         *entity.ClientProfile `json:"profile"`
	OpenProjects    []*entity.Project     `json:"open_projects"`
	ActiveProjects  []*entity.Project     `json:"active_projects"`
	ActiveContracts []*entity.Contract    `json:"active_contracts"`
	TotalSpent      float64               `json:"total_spent"`
}

func (uc *ProjectUseCase) ClientDashboard(ctx context.Context, clientUserID string) (*ClientDashboard, error) {
	profile, err := uc.clientRepo.GetByUserID(ctx, clientUserID)
	if err != nil {
		return nil, errors.Forbidden("Client profile required", err)
	}

	open, _, err := uc.projectRepo.ListByClientID(ctx, clientUserID, entity.ProjectStatusOpen, 50, 0)
	if err != nil {
		return nil, err
	}
	active, _, err := uc.projectRepo.ListByClientID(ctx, clientUserID, entity.ProjectStatusInProgress, 50, 0)
	if err != nil {
		return nil, err
	}
	contracts, _, err := uc.contractRepo.ListByClientID(ctx, clientUserID, "active", 50, 0)
	if err != nil {
		return nil, err
	}

	return &ClientDashboard{
		Profile:         profile,
		OpenProjects:    open,
		ActiveProjects:  active,
		ActiveContracts: contracts,
		TotalSpent:      profile.TotalSpent,
	}, nil
}

func (uc *ProjectUseCase) settleAggregates(ctx context.Context, project *entity.Project, contract *entity.Contract) {
	if freelancerProfile, err := uc.freelancerRepo.GetByUserID(ctx, contract.FreelancerID); err == nil {
		freelancerProfile.CompletedProjects++
		freelancerProfile.TotalEarned += contract.Amount
		if err := uc.freelancerRepo.Update(ctx, freelancerProfile); err != nil {
			logger.Warn("Failed to update freelancer aggregates for %s: %v", contract.FreelancerID, err)
		}
	}

	if clientProfile, err := uc.clientRepo.GetByUserID(ctx, project.ClientID); err == nil {
		clientProfile.TotalSpent += contract.Amount
		if err := uc.clientRepo.Update(ctx, clientProfile); err != nil {
			logger.Warn("Failed to update client aggregates for %s: %v", project.ClientID, err)
		}
	}
}
