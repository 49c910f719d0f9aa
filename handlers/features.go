package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aditya9960/poc-voting-system/cliparse"
	"github.com/aditya9960/poc-voting-system/middleware"
	"github.com/aditya9960/poc-voting-system/models"
)

type FeatureHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFeatureHandler(db *sql.DB, cfg cliparse.Config) *FeatureHandler {
	return &FeatureHandler{db: db, cfg: cfg}
}

// List handles GET /api/features?page&per_page&sort_by
func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(query.Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	// Whitelisted sort keys; anything else falls back to creation time
	orderBy := "f.created_at DESC"
	if query.Get("sort_by") == "vote_count" {
		orderBy = "f.vote_count DESC"
	}

	var total int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM feature_requests`).Scan(&total); err != nil {
		slog.Error("failed to count feature requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(fmt.Sprintf(`
		SELECT f.id, f.title, f.description, u.username, f.status, f.vote_count,
		       f.created_at, f.updated_at
		FROM feature_requests f
		JOIN users u ON u.id = f.user_id
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderBy), perPage, (page-1)*perPage)
	if err != nil {
		slog.Error("failed to query feature requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	features := []models.Feature{}
	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Author, &f.Status,
			&f.VoteCount, &f.CreatedAt, &f.UpdatedAt); err != nil {
			slog.Error("failed to scan feature request", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate feature requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	middleware.JSONResponse(w, http.StatusOK, models.FeatureListResponse{
		Features: features,
		Pagination: models.Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	})
}

// Create handles POST /api/features
func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.UserID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Verify user exists and resolve the author username for the response
	var authorUsername string
	err := h.db.QueryRow(`SELECT username FROM users WHERE id = $1`, req.UserID).Scan(&authorUsername)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now().UTC()

	var featureID int64
	err = h.db.QueryRow(`
		INSERT INTO feature_requests (title, description, status, vote_count, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $5, $6)
		RETURNING id
	`, req.Title, req.Description, models.StatusOpen, req.UserID, now, now).Scan(&featureID)

	if err != nil {
		slog.Error("failed to insert feature request", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create feature request")
		return
	}

	slog.Info("feature request created", "feature_id", featureID, "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateFeatureResponse{
		ID:          featureID,
		Title:       req.Title,
		Description: req.Description,
		Author:      authorUsername,
		Status:      models.StatusOpen,
		VoteCount:   0,
		CreatedAt:   now,
	})
}

// Get handles GET /api/features/{id}
func (h *FeatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	featureID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Resource not found")
		return
	}

	var f models.Feature
	err = h.db.QueryRow(`
		SELECT f.id, f.title, f.description, u.username, f.status, f.vote_count,
		       f.created_at, f.updated_at
		FROM feature_requests f
		JOIN users u ON u.id = f.user_id
		WHERE f.id = $1
	`, featureID).Scan(&f.ID, &f.Title, &f.Description, &f.Author, &f.Status,
		&f.VoteCount, &f.CreatedAt, &f.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature request not found")
		return
	}
	if err != nil {
		slog.Error("failed to query feature request", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, f)
}
