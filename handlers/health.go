package handlers

import (
	"net/http"
	"time"

	"github.com/aditya9960/poc-voting-system/middleware"
	"github.com/aditya9960/poc-voting-system/models"
)

// Health handles GET /api/health
// Liveness only; no dependency checks.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
