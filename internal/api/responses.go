package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// CooldownErrorResponse is returned with 429 while the post-workout cooldown
// window is still open.
type CooldownErrorResponse struct {
	Error          string  `json:"error" example:"cooldown active"`
	HoursRemaining float64 `json:"hours_remaining" example:"12.5"`
	UnlocksAt      string  `json:"unlocks_at" example:"2024-01-02T04:00:00Z"`
}
