package server

import (
	"net/http"

	"gymhabit/internal/api"
	"gymhabit/internal/auth"
	"gymhabit/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(catalogService catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		partners, _ := catalogService.Partners(ctx)

		c.JSON(http.StatusOK, api.HealthResponse{
			Status:     "healthy",
			GymsLoaded: catalogService.Count(ctx),
			Partners:   len(partners),
		})
	}
}

// @Summary      Admin login
// @Description  Verifies the admin password; no token or session is issued
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        password formData string true "Admin password"
// @Success      200 {object} api.MessageResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/admin/login [post]
func AdminLogin(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.PostForm("password")
		if password == "" {
			password = c.Query("password")
		}
		if password == "" {
			password = c.GetHeader("X-Admin-Password")
		}

		if !v.Verify(password) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid admin password"})
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{
			Success: true,
			Message: "Login successful",
		})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
