package api

type ErrorResponse struct {
	Error   string   `json:"error" example:"something went wrong"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	GymsLoaded int    `json:"gyms_loaded"`
	Partners   int    `json:"partners"`
}
