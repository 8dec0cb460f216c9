package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"gymhabit/internal/api"
	"gymhabit/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List partners
// @Description  Distinct gym partners with per-partner location counts
// @Tags         gyms
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/partners [get]
func (h *Handler) Partners(c *gin.Context) {
	partners, err := h.service.Partners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch partners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partners": partners,
		"total":    len(partners),
	})
}

// @Summary      List gyms
// @Description  All gyms, optionally filtered by partner (exact match)
// @Tags         gyms
// @Produce      json
// @Param        partner query string false "Partner name"
// @Success      200 {object} map[string]interface{}
// @Router       /api/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	partner := c.Query("partner")

	gyms, err := h.service.Gyms(c.Request.Context(), partner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	resp := gin.H{
		"gyms":  gyms,
		"total": len(gyms),
	}
	if partner != "" {
		resp["partner"] = partner
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Find nearby gyms
// @Description  Gyms ranked by great-circle distance from the query point
// @Tags         gyms
// @Produce      json
// @Param        lat     query number true  "User latitude"
// @Param        lon     query number true  "User longitude"
// @Param        partner query string false "Partner name"
// @Param        limit   query int    false "Max results (1-50, default 10)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/gyms/nearby [get]
func (h *Handler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or missing lat"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or missing lon"})
		return
	}

	limit := DefaultNearbyLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid limit"})
			return
		}
	}

	gyms, err := h.service.Nearby(c.Request.Context(), NearbyQuery{
		Latitude:  lat,
		Longitude: lon,
		Partner:   c.Query("partner"),
		Limit:     limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gyms":  gyms,
		"total": len(gyms),
		"user_location": gin.H{
			"latitude":  lat,
			"longitude": lon,
		},
	})
}

// @Summary      Gym details
// @Description  One gym with derived subscription plans and amenities list
// @Tags         gyms
// @Produce      json
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} catalog.GymDetail
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/gyms/{gymID} [get]
func (h *Handler) GymDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	detail, err := h.service.GymDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary      Add a gym
// @Description  Admin: validate and append one gym record
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Param        request body catalog.AddGymRequest true "Gym payload"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/admin/gyms/add [post]
func (h *Handler) AddGym(c *gin.Context) {
	var req AddGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	gym, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"gym_id":  gym.ID,
		"message": "Gym added successfully",
	})
}

// @Summary      Delete a gym
// @Tags         admin,gyms
// @Produce      json
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/admin/gyms/{gymID} [delete]
func (h *Handler) DeleteGym(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: "Gym deleted successfully",
	})
}

// @Summary      Replace the catalog from a CSV upload
// @Description  Admin: all-or-nothing bulk replace; the previous file is kept as a timestamped backup
// @Tags         admin,gyms
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/admin/gyms/upload-csv [post]
func (h *Handler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "CSV file required"})
		return
	}
	if !hasCSVSuffix(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File must be CSV"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer file.Close()

	gyms, err := ParseCSV(file)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.service.ReplaceAll(c.Request.Context(), gyms)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"gyms_loaded": count,
		"message":     strconv.Itoa(count) + " gyms loaded",
	})
}

func hasCSVSuffix(name string) bool {
	return len(name) > 4 && name[len(name)-4:] == ".csv"
}

func respondError(c *gin.Context, err error) {
	if ve, ok := validation.AsErrors(err); ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "validation failed",
			Details: ve.Messages(),
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
	case errors.Is(err, ErrDataFormat):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
	}
}
