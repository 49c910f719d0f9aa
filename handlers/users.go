package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aditya9960/poc-voting-system/auth"
	"github.com/aditya9960/poc-voting-system/cliparse"
	"github.com/aditya9960/poc-voting-system/middleware"
	"github.com/aditya9960/poc-voting-system/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	createdAt := time.Now().UTC()

	var userID int64
	err = h.db.QueryRow(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Username, req.Email, passwordHash, createdAt).Scan(&userID)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Username or email already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user registered", "user_id", userID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		ID:        userID,
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: createdAt,
	})
}

// ListVotes handles GET /api/users/{id}/votes
// Returns the feature ids the user currently has active votes for.
// An unknown user id yields an empty list, not an error.
func (h *UserHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Resource not found")
		return
	}

	rows, err := h.db.Query(`
		SELECT feature_request_id FROM votes
		WHERE user_id = $1
		ORDER BY feature_request_id
	`, userID)
	if err != nil {
		slog.Error("failed to query votes", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	votedFeatures := []int64{}
	for rows.Next() {
		var featureID int64
		if err := rows.Scan(&featureID); err != nil {
			slog.Error("failed to scan vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		votedFeatures = append(votedFeatures, featureID)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserVotesResponse{
		UserID:        userID,
		VotedFeatures: votedFeatures,
	})
}
