package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
	"skillswap/pkg/utils"
)

type FreelancerUseCase struct {
	freelancerRepo repository.FreelancerProfileRepository
	bidRepo        repository.BidRepository
	contractRepo   repository.ContractRepository
	projectRepo    repository.ProjectRepository
}

func NewFreelancerUseCase(
	freelancerRepo repository.FreelancerProfileRepository,
	bidRepo repository.BidRepository,
	contractRepo repository.ContractRepository,
	projectRepo repository.ProjectRepository,
) *FreelancerUseCase {
	return &FreelancerUseCase{
		freelancerRepo: freelancerRepo,
		bidRepo:        bidRepo,
		contractRepo:   contractRepo,
		projectRepo:    projectRepo,
	}
}

type UpdateFreelancerProfileInput struct {
	Title        string
	Skills       []string
	HourlyRate   float64
	Availability string
}

type PortfolioItemInput struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
}

// FreelancerDashboard aggregates a freelancer's working state in one
// payload for the dashboard view.
type FreelancerDashboard struct {
	Profile         *entity.FreelancerProfile `json:"profile"`
	PendingBids     []*entity.Bid             `json:"pending_bids"`
	ActiveContracts []*entity.Contract        `json:"active_contracts"`
	ActiveProjects  []*entity.Project         `json:"active_projects"`
	TotalEarned     float64                   `json:"total_earned"`
}

func (uc *FreelancerUseCase) GetProfile(ctx context.Context, userID string) (*entity.FreelancerProfile, error) {
	profile, err := uc.freelancerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Freelancer profile", err)
	}
	return profile, nil
}

func (uc *FreelancerUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateFreelancerProfileInput) (*entity.FreelancerProfile, error) {
	profile, err := uc.freelancerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Freelancer profile required", err)
	}

	if input.Title != "" {
		profile.Title = input.Title
	}
	if input.Skills != nil {
		profile.Skills = input.Skills
	}
	if input.HourlyRate > 0 {
		profile.HourlyRate = input.HourlyRate
	}
	if input.Availability != "" {
		switch input.Availability {
		case "available", "busy", "unavailable":
			profile.Availability = input.Availability
		default:
			return nil, errors.BadRequest("Availability must be available, busy or unavailable", nil)
		}
	}
	profile.UpdatedAt = time.Now()

	if err := uc.freelancerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *FreelancerUseCase) AddPortfolioItem(ctx context.Context, userID string, input PortfolioItemInput) (*entity.FreelancerProfile, error) {
	profile, err := uc.freelancerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Freelancer profile required", err)
	}

	if input.Title == "" {
		return nil, errors.BadRequest("Portfolio item title is required", nil)
	}

	profile.Portfolio = append(profile.Portfolio, entity.PortfolioItem{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		URL:         input.URL,
		ImageURL:    input.ImageURL,
	})
	profile.UpdatedAt = time.Now()

	if err := uc.freelancerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *FreelancerUseCase) RemovePortfolioItem(ctx context.Context, userID, itemID string) (*entity.FreelancerProfile, error) {
	profile, err := uc.freelancerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Freelancer profile required", err)
	}

	found := false
	kept := profile.Portfolio[:0]
	for _, item := range profile.Portfolio {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, errors.NotFound("Portfolio item", nil)
	}

	profile.Portfolio = kept
	profile.UpdatedAt = time.Now()

	if err := uc.freelancerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (uc *FreelancerUseCase) Search(ctx context.Context, skill, availability string, page, limit int) ([]*entity.FreelancerProfile, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.freelancerRepo.Search(ctx, skill, availability, pagination.PageSize, pagination.Offset)
}

func (uc *FreelancerUseCase) Dashboard(ctx context.Context, userID string) (*FreelancerDashboard, error) {
	profile, err := uc.freelancerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Freelancer profile required", err)
	}

	pendingBids, _, err := uc.bidRepo.ListByFreelancerID(ctx, userID, entity.BidStatusPending, 50, 0)
	if err != nil {
		return nil, err
	}

	activeContracts, _, err := uc.contractRepo.ListByFreelancerID(ctx, userID, "active", 50, 0)
	if err != nil {
		return nil, err
	}

	activeProjects := make([]*entity.Project, 0, len(activeContracts))
	for _, contract := range activeContracts {
		if project, err := uc.projectRepo.GetByID(ctx, contract.ProjectID); err == nil {
			activeProjects = append(activeProjects, project)
		}
	}

	return &FreelancerDashboard{
		Profile:         profile,
		PendingBids:     pendingBids,
		ActiveContracts: activeContracts,
		ActiveProjects:  activeProjects,
		TotalEarned:     profile.TotalEarned,
	}, nil
}
