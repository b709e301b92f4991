package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type AdminUseCase struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	bidRepo        repository.BidRepository
	contractRepo   repository.ContractRepository
	notificationUC *NotificationUseCase
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	bidRepo repository.BidRepository,
	contractRepo repository.ContractRepository,
	notificationUC *NotificationUseCase,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		bidRepo:        bidRepo,
		contractRepo:   contractRepo,
		notificationUC: notificationUC,
	}
}

// PlatformStats is the admin dashboard headline block.
type PlatformStats struct {
	TotalClients       int64   `json:"total_clients"`
	TotalFreelancers   int64   `json:"total_freelancers"`
	OpenProjects       int64   `json:"open_projects"`
	InProgressProjects int64   `json:"in_progress_projects"`
	CompletedProjects  int64   `json:"completed_projects"`
	CancelledProjects  int64   `json:"cancelled_projects"`
	TotalBids          int64   `json:"total_bids"`
	CompletedVolume    float64 `json:"completed_volume"`
	SignupsLast30Days  int64   `json:"signups_last_30_days"`
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, role, status string, page, limit int) ([]*entity.User, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.userRepo.List(ctx, role, status, pagination.PageSize, pagination.Offset)
}

func (uc *AdminUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *AdminUseCase) SuspendUser(ctx context.Context, userID, reason string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.Role == entity.RoleAdmin {
		return nil, errors.BadRequest("Admin accounts cannot be suspended", nil)
	}
	if user.AccountStatus == entity.AccountStatusSuspended {
		return user, nil
	}

	user.AccountStatus = entity.AccountStatusSuspended
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	body := "Your account has been suspended."
	if reason != "" {
		body = "Your account has been suspended: " + reason
	}
	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID: user.ID,
		Type:   "account_suspended",
		Title:  "Account suspended",
		Body:   body,
	}); err != nil {
		logger.Warn("Failed to notify suspended user %s: %v", user.ID, err)
	}

	return user, nil
}

func (uc *AdminUseCase) ReactivateUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.AccountStatus == entity.AccountStatusActive {
		return user, nil
	}

	user.AccountStatus = entity.AccountStatusActive
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID: user.ID,
		Type:   "account_reactivated",
		Title:  "Account reactivated",
		Body:   "Your account is active again.",
	}); err != nil {
		logger.Warn("Failed to notify reactivated user %s: %v", user.ID, err)
	}

	return user, nil
}

// RemoveProject takes a posting down entirely (moderation). The client
// and every pending bidder are notified before the document goes away.
func (uc *AdminUseCase) RemoveProject(ctx context.Context, projectID, reason string) error {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return errors.NotFound("Project", err)
	}

	bids, err := uc.bidRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		logger.Warn("Failed to list bids for removed project %s: %v", projectID, err)
		bids = nil
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	body := "The project \"" + project.Title + "\" has been removed by a moderator."
	if reason != "" {
		body += " Reason: " + reason
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  project.ClientID,
		Type:    "project_removed",
		Title:   "Project removed",
		Body:    body,
		RefType: "project",
		RefID:   project.ID,
	}); err != nil {
		logger.Warn("Failed to notify client %s about removed project: %v", project.ClientID, err)
	}

	for _, bid := range bids {
		if bid.Status != entity.BidStatusPending {
			continue
		}
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  bid.FreelancerID,
			Type:    "project_removed",
			Title:   "Project removed",
			Body:    body,
			RefType: "project",
			RefID:   project.ID,
		}); err != nil {
			logger.Warn("Failed to notify bidder %s about removed project: %v", bid.FreelancerID, err)
		}
	}

	return nil
}

func (uc *AdminUseCase) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error

	if stats.TotalClients, err = uc.userRepo.CountByRole(ctx, entity.RoleClient); err != nil {
		return nil, err
	}
	if stats.TotalFreelancers, err = uc.userRepo.CountByRole(ctx, entity.RoleFreelancer); err != nil {
		return nil, err
	}
	if stats.OpenProjects, err = uc.projectRepo.CountByStatus(ctx, entity.ProjectStatusOpen); err != nil {
		return nil, err
	}
	if stats.InProgressProjects, err = uc.projectRepo.CountByStatus(ctx, entity.ProjectStatusInProgress); err != nil {
		return nil, err
	}
	if stats.CompletedProjects, err = uc.projectRepo.CountByStatus(ctx, entity.ProjectStatusCompleted); err != nil {
		return nil, err
	}
	if stats.CancelledProjects, err = uc.projectRepo.CountByStatus(ctx, entity.ProjectStatusCancelled); err != nil {
		return nil, err
	}
	if stats.TotalBids, err = uc.bidRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.CompletedVolume, err = uc.contractRepo.SumCompletedAmounts(ctx); err != nil {
		return nil, err
	}
	if stats.SignupsLast30Days, err = uc.userRepo.CountSignupsSince(ctx, time.Now().AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	return stats, nil
}

// AnalyticsPoint is one bucket of a signup time series.
type AnalyticsPoint struct {
	Date    string `json:"date"`
	Signups int64  `json:"signups"`
}

// SignupSeries returns daily signup counts for the trailing window.
func (uc *AdminUseCase) SignupSeries(ctx context.Context, days int) ([]AnalyticsPoint, error) {
	if days <= 0 || days > 90 {
		days = 30
	}

	points := make([]AnalyticsPoint, 0, days)
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		dayStart := now.AddDate(0, 0, -i).Truncate(24 * time.Hour)
		sinceDay, err := uc.userRepo.CountSignupsSince(ctx, dayStart)
		if err != nil {
			return nil, err
		}
		sinceNext, err := uc.userRepo.CountSignupsSince(ctx, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		points = append(points, AnalyticsPoint{
			Date:    dayStart.Format("2006-01-02"),
			Signups: sinceDay - sinceNext,
		})
	}

	return points, nil
}

// BidAverages is the bidding-volume analytics block.
type BidAverages struct {
	TotalProjects     int64   `json:"total_projects"`
	TotalBids         int64   `json:"total_bids"`
	AvgBidsPerProject float64 `json:"avg_bids_per_project"`
}

func (uc *AdminUseCase) GetBidAverages(ctx context.Context) (*BidAverages, error) {
	averages := &BidAverages{}

	for _, status := range []string{
		entity.ProjectStatusOpen,
		entity.ProjectStatusInProgress,
		entity.ProjectStatusCompleted,
		entity.ProjectStatusCancelled,
	} {
		count, err := uc.projectRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		averages.TotalProjects += count
	}

	var err error
	if averages.TotalBids, err = uc.bidRepo.Count(ctx); err != nil {
		return nil, err
	}

	if averages.TotalProjects > 0 {
		averages.AvgBidsPerProject = float64(averages.TotalBids) / float64(averages.TotalProjects)
	}

	return averages, nil
}

// SkillCount is one entry of the top-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills ranks the skills requested across all postings, most
// demanded first. Ties break alphabetically so the ranking is stable.
func (uc *AdminUseCase) TopSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	projects, _, err := uc.projectRepo.List(ctx, map[string]interface{}{}, 1000, 0)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int)
	for _, project := range projects {
		for _, skill := range project.Skills {
			normalized := strings.ToLower(strings.TrimSpace(skill))
			if normalized != "" {
				tally[normalized]++
			}
		}
	}

	ranking := make([]SkillCount, 0, len(tally))
	for skill, count := range tally {
		ranking = append(ranking, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Skill < ranking[j].Skill
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}
