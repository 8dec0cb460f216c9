package inquiry

import (
	"errors"
	"net/http"

	"gymhabit/internal/api"
	"gymhabit/internal/catalog"
	"gymhabit/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Submit a subscription inquiry
// @Description  Public inquiry form; the referenced gym must exist
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request body inquiry.SubmitRequest true "Inquiry payload"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      429 {object} api.ErrorResponse
// @Router       /api/subscription/request [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	stored, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if ve, ok := validation.AsErrors(err); ok {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:   "validation failed",
				Details: ve.Messages(),
			})
			return
		}
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Thank you! Our wellness team will contact you within 24 hours to help you start your fitness journey.",
		"request_id": stored.RequestID,
	})
}

// @Summary      List subscription inquiries
// @Description  Admin: every stored inquiry, insertion order
// @Tags         admin,subscriptions
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/admin/subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	requests, err := h.service.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}
