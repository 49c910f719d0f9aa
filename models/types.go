package models

import "time"

// Default status for new feature requests. Status is free-form text;
// nothing validates it against an enum.
const StatusOpen = "open"

// Request types

type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}

type VoteRequest struct {
	UserID int64 `json:"user_id"`
}

// Response types

type RegisterUserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateFeatureResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	VoteCount   int       `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeatureListResponse struct {
	Features   []Feature  `json:"features"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type VoteResponse struct {
	Message      string `json:"message"`
	FeatureID    int64  `json:"feature_id"`
	NewVoteCount int    `json:"new_vote_count"`
}

type UserVotesResponse struct {
	UserID        int64   `json:"user_id"`
	VotedFeatures []int64 `json:"voted_features"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Domain types

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Feature struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Status      string    `json:"status"`
	VoteCount   int       `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Vote struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	FeatureRequestID int64     `json:"feature_request_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
