package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo     repository.ReviewRepository
	contractRepo   repository.ContractRepository
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	contractRepo repository.ContractRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:     reviewRepo,
		contractRepo:   contractRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
	}
}

type CreateReviewInput struct {
	ProjectID string
	Rating    int
	Comment   string
}

// CreateReview records one party's review of the other after a project
// completes. Each party reviews once per contract.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}
	if project.Status != entity.ProjectStatusCompleted {
		return nil, errors.BadRequest("Reviews are only allowed on completed projects", nil)
	}

	contract, err := uc.contractRepo.GetByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, errors.NotFound("Contract", err)
	}

	var targetID, direction string
	switch reviewerID {
	case contract.ClientID:
		targetID = contract.FreelancerID
		direction = "client_review"
	case contract.FreelancerID:
		targetID = contract.ClientID
		direction = "freelancer_review"
	default:
		return nil, errors.Forbidden("Only the contract parties may leave a review", nil)
	}

	if existing, err := uc.reviewRepo.GetByContractAndReviewer(ctx, contract.ID, reviewerID); err == nil && existing != nil {
		return nil, errors.Conflict("You already reviewed this contract")
	}

	now := time.Now()
	review := &entity.Review{
		ID:         uuid.New().String(),
		ProjectID:  input.ProjectID,
		ContractID: contract.ID,
		ReviewerID: reviewerID,
		TargetID:   targetID,
		Direction:  direction,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.applyRating(ctx, targetID, input.Rating)

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  targetID,
		Type:    "new_review",
		Title:   "New review",
		Body:    "You received a new review on \"" + project.Title + "\".",
		RefType: "review",
		RefID:   review.ID,
	}); err != nil {
		logger.Warn("Failed to notify user about new review: %v", err)
	}

	return review, nil
}

// applyRating folds a new rating into the target's running average.
func (uc *ReviewUseCase) applyRating(ctx context.Context, targetID string, rating int) {
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		logger.Warn("Failed to load user %s for rating update: %v", targetID, err)
		return
	}

	total := user.Rating*float64(user.ReviewCount) + float64(rating)
	user.ReviewCount++
	user.Rating = total / float64(user.ReviewCount)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to update rating for user %s: %v", targetID, err)
	}
}

func (uc *ReviewUseCase) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Review", err)
	}
	return review, nil
}

func (uc *ReviewUseCase) ListUserReviews(ctx context.Context, targetID string, page, limit int) ([]*entity.Review, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.reviewRepo.ListByTargetID(ctx, targetID, pagination.PageSize, pagination.Offset)
}

// HideReview takes a review out of public listings. Admin moderation
// only; the rating aggregate is recomputed without it.
func (uc *ReviewUseCase) HideReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, errors.NotFound("Review", err)
	}
	if review.Status == "hidden" {
		return review, nil
	}

	review.Status = "hidden"
	review.UpdatedAt = time.Now()
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if user, err := uc.userRepo.GetByID(ctx, review.TargetID); err == nil && user.ReviewCount > 0 {
		total := user.Rating*float64(user.ReviewCount) - float64(review.Rating)
		user.ReviewCount--
		if user.ReviewCount > 0 {
			user.Rating = total / float64(user.ReviewCount)
		} else {
			user.Rating = 0
		}
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Warn("Failed to recompute rating for user %s: %v", review.TargetID, err)
		}
	}

	return review, nil
}
