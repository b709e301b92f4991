package handler

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
	"skillswap/pkg/utils"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

func (h *BidHandler) PlaceBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Amount       float64 `json:"amount" validate:"required,gt=0"`
		DeliveryTime int     `json:"delivery_time" validate:"required,gt=0"`
		Proposal     string  `json:"proposal" validate:"required,min=10,max=5000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	bid, err := h.bidUseCase.PlaceBid(c.Request().Context(), uid, usecase.PlaceBidInput{
		ProjectID:    c.Param("id"),
		Amount:       req.Amount,
		DeliveryTime: req.DeliveryTime,
		Proposal:     req.Proposal,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, bid)
}

func (h *BidHandler) ListProjectBids(c echo.Context) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	bids, err := h.bidUseCase.ListProjectBids(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bids)
}

func (h *BidHandler) GetBid(c echo.Context) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	bid, err := h.bidUseCase.GetBidByID(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) ListMyBids(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	bids, total, err := h.bidUseCase.ListMyBids(
		c.Request().Context(),
		uid,
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, bids, total, pagination.Page, pagination.PageSize)
}

func (h *BidHandler) WithdrawBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	bid, err := h.bidUseCase.WithdrawBid(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) AcceptBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	bid, err := h.bidUseCase.AcceptBid(c.Request().Context(), c.Param("id"), c.Param("bidId"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) RejectBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	bid, err := h.bidUseCase.RejectBid(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) ProposeCounterOffer(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Amount       float64 `json:"amount" validate:"required,gt=0"`
		DeliveryTime int     `json:"delivery_time" validate:"required,gt=0"`
		Message      string  `json:"message" validate:"omitempty,max=2000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	bid, err := h.bidUseCase.ProposeCounterOffer(c.Request().Context(), c.Param("id"), uid, usecase.CounterOfferInput{
		Amount:       req.Amount,
		DeliveryTime: req.DeliveryTime,
		Message:      req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) RespondCounterOffer(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	bid, err := h.bidUseCase.RespondCounterOffer(c.Request().Context(), c.Param("id"), uid, req.Accept)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}
