package router

import (
	"database/sql"
	"net/http"

	"github.com/aditya9960/poc-voting-system/cliparse"
	"github.com/aditya9960/poc-voting-system/handlers"
	"github.com/aditya9960/poc-voting-system/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	featureHandler := handlers.NewFeatureHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", middleware.WithLogging(handlers.Health))

	// Users
	mux.HandleFunc("POST /api/users", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /api/users/{id}/votes", middleware.WithLogging(userHandler.ListVotes))

	// Feature requests
	mux.HandleFunc("GET /api/features", middleware.WithLogging(featureHandler.List))
	mux.HandleFunc("POST /api/features", middleware.WithLogging(featureHandler.Create))
	mux.HandleFunc("GET /api/features/{id}", middleware.WithLogging(featureHandler.Get))

	// Votes
	mux.HandleFunc("POST /api/features/{id}/vote", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("DELETE /api/features/{id}/vote", middleware.WithLogging(voteHandler.Retract))

	// Root endpoint
	mux.HandleFunc("GET /api", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Feature Voting System API!"))
	})

	// Fallback for unmatched routes
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Resource not found")
	})

	return middleware.WithRecovery(middleware.CORS(mux))
}
