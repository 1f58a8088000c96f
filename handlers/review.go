package handlers

import (
	"net/http"

	"localpro/services/review"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

type reviewBody struct {
	ProviderID string `json:"providerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (b reviewBody) input() review.ReviewInput {
	return review.ReviewInput{ProviderID: b.ProviderID, Rating: b.Rating, Comment: b.Comment}
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, logger, bindError(err))
		return
	}
	created, err := h.Service.Create(c.Request.Context(), identity(c), body.input())
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("providerId", body.ProviderID)), err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReviewHandler handles PUT /api/reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, logger, bindError(err))
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), identity(c), id, body.input())
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("reviewId", id)), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), identity(c), id); err != nil {
		utils.RespondError(c, logger.With(zap.String("reviewId", id)), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveReviewHandler handles PATCH /api/admin/reviews/:id/approve.
func (h *ReviewHandler) ApproveReviewHandler(c *gin.Context) {
	h.moderate(c, true)
}

// RejectReviewHandler handles PATCH /api/admin/reviews/:id/reject.
func (h *ReviewHandler) RejectReviewHandler(c *gin.Context) {
	h.moderate(c, false)
}

func (h *ReviewHandler) moderate(c *gin.Context, approve bool) {
	logger := getLogger(c)
	id := c.Param("id")
	moderated, err := h.Service.Moderate(c.Request.Context(), identity(c), id, approve)
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("reviewId", id), zap.Bool("approve", approve)), err)
		return
	}
	c.JSON(http.StatusOK, moderated)
}

// ListProviderReviewsHandler handles GET /api/providers/:id/reviews.
func (h *ReviewHandler) ListProviderReviewsHandler(c *gin.Context) {
	logger := getLogger(c)
	page, limit, err := pageParams(c)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	result, err := h.Service.ListForProvider(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
