package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aditya9960/poc-voting-system/cliparse"
	"github.com/aditya9960/poc-voting-system/middleware"
	"github.com/aditya9960/poc-voting-system/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Cast handles POST /api/features/{id}/vote
// The existence checks, vote insert, and counter increment all run in
// one transaction. The UNIQUE (user_id, feature_request_id) constraint
// backstops the lookup-before-insert against concurrent duplicates.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	featureID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Resource not found")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Verify feature exists
	var voteCount int
	err = tx.QueryRow(`SELECT vote_count FROM feature_requests WHERE id = $1`, featureID).Scan(&voteCount)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature request not found")
		return
	}
	if err != nil {
		slog.Error("failed to query feature request", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Verify user exists
	var userExists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, req.UserID).Scan(&userExists)
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !userExists {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	// Check if user already voted
	var alreadyVoted bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE user_id = $1 AND feature_request_id = $2
		)
	`, req.UserID, featureID).Scan(&alreadyVoted)
	if err != nil {
		slog.Error("failed to query existing vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if alreadyVoted {
		middleware.ErrorResponse(w, http.StatusConflict, "User already voted for this feature")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO votes (user_id, feature_request_id, created_at)
		VALUES ($1, $2, $3)
	`, req.UserID, featureID, time.Now().UTC())
	if err != nil {
		// A concurrent request won the race between our existence check
		// and this insert; the UNIQUE constraint catches it.
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "User already voted for this feature")
			return
		}
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	var newVoteCount int
	err = tx.QueryRow(`
		UPDATE feature_requests
		SET vote_count = vote_count + 1, updated_at = $1
		WHERE id = $2
		RETURNING vote_count
	`, time.Now().UTC(), featureID).Scan(&newVoteCount)
	if err != nil {
		slog.Error("failed to increment vote count", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "feature_id", featureID, "user_id", req.UserID, "vote_count", newVoteCount)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Message:      "Vote added successfully",
		FeatureID:    featureID,
		NewVoteCount: newVoteCount,
	})
}

// Retract handles DELETE /api/features/{id}/vote
// Deletes the vote and decrements the counter in one transaction.
// No floor is enforced on vote_count.
func (h *VoteHandler) Retract(w http.ResponseWriter, r *http.Request) {
	featureID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Resource not found")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Locate the vote for this (user, feature) pair
	var voteID int64
	err = tx.QueryRow(`
		SELECT id FROM votes
		WHERE user_id = $1 AND feature_request_id = $2
	`, req.UserID, featureID).Scan(&voteID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
		return
	}
	if err != nil {
		slog.Error("failed to query vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, err := tx.Exec(`DELETE FROM votes WHERE id = $1`, voteID); err != nil {
		slog.Error("failed to delete vote", "error", err, "vote_id", voteID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove vote")
		return
	}

	var newVoteCount int
	err = tx.QueryRow(`
		UPDATE feature_requests
		SET vote_count = vote_count - 1, updated_at = $1
		WHERE id = $2
		RETURNING vote_count
	`, time.Now().UTC(), featureID).Scan(&newVoteCount)
	if err != nil {
		slog.Error("failed to decrement vote count", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove vote")
		return
	}

	slog.Info("vote removed", "feature_id", featureID, "user_id", req.UserID, "vote_count", newVoteCount)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message:      "Vote removed successfully",
		FeatureID:    featureID,
		NewVoteCount: newVoteCount,
	})
}
