package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/websocket"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type BidUseCase struct {
	bidRepo        repository.BidRepository
	projectRepo    repository.ProjectRepository
	contractRepo   repository.ContractRepository
	clientRepo     repository.ClientProfileRepository
	freelancerRepo repository.FreelancerProfileRepository
	notificationUC *NotificationUseCase
	wsManager      *websocket.Manager
}

func NewBidUseCase(
	bidRepo repository.BidRepository,
	projectRepo repository.ProjectRepository,
	contractRepo repository.ContractRepository,
	clientRepo repository.ClientProfileRepository,
	freelancerRepo repository.FreelancerProfileRepository,
	notificationUC *NotificationUseCase,
	wsManager *websocket.Manager,
) *BidUseCase {
	return &BidUseCase{
		bidRepo:        bidRepo,
		projectRepo:    projectRepo,
		contractRepo:   contractRepo,
		clientRepo:     clientRepo,
		freelancerRepo: freelancerRepo,
		notificationUC: notificationUC,
		wsManager:      wsManager,
	}
}

type PlaceBidInput struct {
	ProjectID    string
	Amount       float64
	DeliveryTime int
	Proposal     string
}

type CounterOfferInput struct {
	Amount       float64
	DeliveryTime int
	Message      string
}

func (uc *BidUseCase) PlaceBid(ctx context.Context, freelancerUserID string, input PlaceBidInput) (*entity.Bid, error) {
	if _, err := uc.freelancerRepo.GetByUserID(ctx, freelancerUserID); err != nil {
		return nil, errors.Forbidden("Freelancer profile required", err)
	}

	project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if project.Status != entity.ProjectStatusOpen {
		return nil, errors.BadRequest("Project is not open for bidding", nil)
	}
	if project.ClientID == freelancerUserID {
		return nil, errors.BadRequest("You cannot bid on your own project", nil)
	}
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Bid amount must be positive", nil)
	}
	if input.DeliveryTime <= 0 {
		return nil, errors.BadRequest("Delivery time must be positive", nil)
	}

	if existing, err := uc.bidRepo.GetPendingByProjectAndFreelancer(ctx, input.ProjectID, freelancerUserID); err == nil && existing != nil {
		return nil, errors.Conflict("You already have a pending bid on this project")
	}

	now := time.Now()
	bid := &entity.Bid{
		ID:           uuid.New().String(),
		ProjectID:    input.ProjectID,
		FreelancerID: freelancerUserID,
		Amount:       input.Amount,
		DeliveryTime: input.DeliveryTime,
		Proposal:     input.Proposal,
		Status:       entity.BidStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.bidRepo.Create(ctx, bid); err != nil {
		return nil, err
	}

	project.BidIDs = append(project.BidIDs, bid.ID)
	project.BidCount = len(project.BidIDs)
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		logger.Warn("Failed to update bid count on project %s: %v", project.ID, err)
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  project.ClientID,
		Type:    "new_bid",
		Title:   "New bid received",
		Body:    fmt.Sprintf("A freelancer bid %.2f on \"%s\".", bid.Amount, project.Title),
		RefType: "bid",
		RefID:   bid.ID,
	}); err != nil {
		logger.Warn("Failed to notify client about new bid: %v", err)
	}

	uc.wsManager.PushEvent("project:"+project.ID, websocket.EventBidUpdate, bid, freelancerUserID)

	return bid, nil
}

func (uc *BidUseCase) WithdrawBid(ctx context.Context, bidID, freelancerUserID string) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}

	if bid.FreelancerID != freelancerUserID {
		return nil, errors.Forbidden("You don't have permission to withdraw this bid", nil)
	}
	if bid.Status != entity.BidStatusPending {
		return nil, errors.BadRequest("Only pending bids can be withdrawn", nil)
	}

	now := time.Now()
	bid.Status = entity.BidStatusWithdrawn
	bid.WithdrawnAt = &now
	bid.UpdatedAt = now

	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, err
	}

	if project, err := uc.projectRepo.GetByID(ctx, bid.ProjectID); err == nil {
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  project.ClientID,
			Type:    "bid_withdrawn",
			Title:   "Bid withdrawn",
			Body:    "A bid on \"" + project.Title + "\" was withdrawn.",
			RefType: "bid",
			RefID:   bid.ID,
		}); err != nil {
			logger.Warn("Failed to notify client about withdrawn bid: %v", err)
		}
		uc.wsManager.PushEvent("project:"+project.ID, websocket.EventBidUpdate, bid, freelancerUserID)
	}

	return bid, nil
}

// AcceptBid runs the single-winner transition. The repository performs
// the project/bid/sibling writes in one transaction; the contract and
// all notifications follow after commit.
func (uc *BidUseCase) AcceptBid(ctx context.Context, projectID, bidID, clientUserID string) (*entity.Bid, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}
	if project.ClientID != clientUserID {
		return nil, errors.Forbidden("You don't have permission to manage this project", nil)
	}
	if project.Status != entity.ProjectStatusOpen {
		return nil, errors.BadRequest("Project is not open", nil)
	}

	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}
	if bid.ProjectID != projectID {
		return nil, errors.BadRequest("Bid does not belong to this project", nil)
	}
	if bid.Status != entity.BidStatusPending {
		return nil, errors.BadRequest("Only pending bids can be accepted", nil)
	}

	result, err := uc.projectRepo.AcceptBid(ctx, projectID, bidID)
	if err != nil {
		return nil, err
	}

	contract := &entity.Contract{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		ClientID:     clientUserID,
		FreelancerID: result.AcceptedBid.FreelancerID,
		BidID:        result.AcceptedBid.ID,
		Amount:       result.AcceptedBid.Amount,
		DeliveryTime: result.AcceptedBid.DeliveryTime,
		Status:       "active",
		StartedAt:    time.Now(),
	}
	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		// The accept already committed; a missing contract is recoverable,
		// a rolled-back accept is not.
		logger.Error("Failed to create contract for project %s: %v", projectID, err)
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  result.AcceptedBid.FreelancerID,
		Type:    "bid_accepted",
		Title:   "Your bid was accepted",
		Body:    "Your bid on \"" + result.Project.Title + "\" was accepted.",
		RefType: "project",
		RefID:   projectID,
	}); err != nil {
		logger.Warn("Failed to notify accepted freelancer: %v", err)
	}

	rejected, err := uc.bidRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		logger.Warn("Failed to list bids for rejection notices on project %s: %v", projectID, err)
	} else {
		rejectedSet := make(map[string]bool, len(result.RejectedIDs))
		for _, id := range result.RejectedIDs {
			rejectedSet[id] = true
		}
		for _, b := range rejected {
			if !rejectedSet[b.ID] {
				continue
			}
			if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
				UserID:  b.FreelancerID,
				Type:    "bid_rejected",
				Title:   "Bid not selected",
				Body:    "Your bid on \"" + result.Project.Title + "\" was not selected.",
				RefType: "bid",
				RefID:   b.ID,
			}); err != nil {
				logger.Warn("Failed to notify rejected freelancer %s: %v", b.FreelancerID, err)
			}
		}
	}

	uc.wsManager.PushEvent("project:"+projectID, websocket.EventBidUpdate, result.AcceptedBid, clientUserID)
	uc.wsManager.PushEvent("project:"+projectID, websocket.EventProjectUpdate, result.Project, clientUserID)
	uc.wsManager.PushEvent("dashboard", websocket.EventDashboardRefresh, map[string]string{"project_id": projectID}, "")

	return result.AcceptedBid, nil
}

func (uc *BidUseCase) RejectBid(ctx context.Context, bidID, clientUserID string) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}

	project, err := uc.projectRepo.GetByID(ctx, bid.ProjectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}
	if project.ClientID != clientUserID {
		return nil, errors.Forbidden("You don't have permission to manage this project", nil)
	}
	if bid.Status != entity.BidStatusPending {
		return nil, errors.BadRequest("Only pending bids can be rejected", nil)
	}

	bid.Status = entity.BidStatusRejected
	bid.UpdatedAt = time.Now()

	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, err
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  bid.FreelancerID,
		Type:    "bid_rejected",
		Title:   "Bid rejected",
		Body:    "Your bid on \"" + project.Title + "\" was rejected.",
		RefType: "bid",
		RefID:   bid.ID,
	}); err != nil {
		logger.Warn("Failed to notify freelancer about rejected bid: %v", err)
	}

	uc.wsManager.PushEvent("project:"+project.ID, websocket.EventBidUpdate, bid, clientUserID)

	return bid, nil
}

func (uc *BidUseCase) ProposeCounterOffer(ctx context.Context, bidID, clientUserID string, input CounterOfferInput) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}

	project, err := uc.projectRepo.GetByID(ctx, bid.ProjectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}
	if project.ClientID != clientUserID {
		return nil, errors.Forbidden("You don't have permission to manage this project", nil)
	}
	if bid.Status != entity.BidStatusPending {
		return nil, errors.BadRequest("Counter offers can only target pending bids", nil)
	}
	if bid.CounterOfferStatus() == entity.CounterOfferPending {
		return nil, errors.Conflict("A counter offer is already pending on this bid")
	}
	if input.Amount <= 0 || input.DeliveryTime <= 0 {
		return nil, errors.BadRequest("Counter offer amount and delivery time must be positive", nil)
	}

	bid.CounterOffer = &entity.CounterOffer{
		Amount:       input.Amount,
		DeliveryTime: input.DeliveryTime,
		Message:      input.Message,
		Status:       entity.CounterOfferPending,
		ProposedAt:   time.Now(),
	}
	bid.UpdatedAt = time.Now()

	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, err
	}

	if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
		UserID:  bid.FreelancerID,
		Type:    "counter_offer",
		Title:   "Counter offer received",
		Body:    fmt.Sprintf("The client countered your bid on \"%s\" with %.2f.", project.Title, input.Amount),
		RefType: "bid",
		RefID:   bid.ID,
	}); err != nil {
		logger.Warn("Failed to notify freelancer about counter offer: %v", err)
	}

	uc.wsManager.PushEvent("project:"+project.ID, websocket.EventBidUpdate, bid, clientUserID)

	return bid, nil
}

// RespondCounterOffer resolves a pending counter offer. Accepting
// overwrites the bid's amount and delivery time; the bid itself stays
// pending until the client accepts it.
func (uc *BidUseCase) RespondCounterOffer(ctx context.Context, bidID, freelancerUserID string, accept bool) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}

	if bid.FreelancerID != freelancerUserID {
		return nil, errors.Forbidden("You don't have permission to respond to this counter offer", nil)
	}
	if bid.Status != entity.BidStatusPending {
		return nil, errors.BadRequest("Bid is no longer pending", nil)
	}
	if bid.CounterOfferStatus() != entity.CounterOfferPending {
		return nil, errors.BadRequest("No pending counter offer on this bid", nil)
	}

	if accept {
		bid.CounterOffer.Status = entity.CounterOfferAccepted
		bid.Amount = bid.CounterOffer.Amount
		bid.DeliveryTime = bid.CounterOffer.DeliveryTime
	} else {
		bid.CounterOffer.Status = entity.CounterOfferRejected
	}
	bid.UpdatedAt = time.Now()

	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		return nil, err
	}

	project, err := uc.projectRepo.GetByID(ctx, bid.ProjectID)
	if err == nil {
		verb := "accepted"
		if !accept {
			verb = "declined"
		}
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  project.ClientID,
			Type:    "counter_offer_response",
			Title:   "Counter offer " + verb,
			Body:    "The freelancer " + verb + " your counter offer on \"" + project.Title + "\".",
			RefType: "bid",
			RefID:   bid.ID,
		}); err != nil {
			logger.Warn("Failed to notify client about counter offer response: %v", err)
		}
		uc.wsManager.PushEvent("project:"+project.ID, websocket.EventBidUpdate, bid, freelancerUserID)
	}

	return bid, nil
}

// ListProjectBids returns every bid on a project. Only the project
// owner sees the full list.
func (uc *BidUseCase) ListProjectBids(ctx context.Context, projectID, userID, userRole string) ([]*entity.Bid, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("Project", err)
	}

	if project.ClientID != userID && userRole != entity.RoleAdmin {
		return nil, errors.Forbidden("Only the project owner may list bids", nil)
	}

	return uc.bidRepo.ListByProjectID(ctx, projectID)
}

func (uc *BidUseCase) GetBidByID(ctx context.Context, bidID, userID, userRole string) (*entity.Bid, error) {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, errors.NotFound("Bid", err)
	}

	if bid.FreelancerID == userID || userRole == entity.RoleAdmin {
		return bid, nil
	}

	project, err := uc.projectRepo.GetByID(ctx, bid.ProjectID)
	if err != nil || project.ClientID != userID {
		return nil, errors.Forbidden("You don't have permission to view this bid", nil)
	}

	return bid, nil
}

func (uc *BidUseCase) ListMyBids(ctx context.Context, freelancerUserID, status string, page, limit int) ([]*entity.Bid, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.bidRepo.ListByFreelancerID(ctx, freelancerUserID, status, pagination.PageSize, pagination.Offset)
}
