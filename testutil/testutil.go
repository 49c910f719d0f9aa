package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/aditya9960/poc-voting-system/auth"
	"github.com/aditya9960/poc-voting-system/cliparse"
	"github.com/aditya9960/poc-voting-system/db"
	"github.com/aditya9960/poc-voting-system/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The pool is pinned to one connection so the in-memory database survives
// for the lifetime of the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	dbConn.SetMaxOpenConns(1)
	dbConn.SetMaxIdleConns(1)

	if _, err := dbConn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(dbConn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return dbConn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SecretKey:    "test-secret-key",
		BcryptCost:   bcrypt.MinCost,
	}
}

// CreateTestUser inserts a user and returns it with its assigned id.
// The password is always "password".
func CreateTestUser(t *testing.T, dbConn *sql.DB, username, email string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = dbConn.QueryRow(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Username, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestFeature inserts a feature request and returns its id.
// The createdAt timestamp is explicit so tests can control sort order.
func CreateTestFeature(t *testing.T, dbConn *sql.DB, userID int64, title string, voteCount int, createdAt time.Time) int64 {
	t.Helper()

	var featureID int64
	err := dbConn.QueryRow(`
		INSERT INTO feature_requests (title, description, status, vote_count, user_id, created_at, updated_at)
		VALUES ($1, $2, 'open', $3, $4, $5, $6)
		RETURNING id
	`, title, "Description of "+title, voteCount, userID, createdAt, createdAt).Scan(&featureID)
	if err != nil {
		t.Fatalf("Failed to create test feature: %v", err)
	}

	return featureID
}

// CreateTestVote inserts a vote row and increments the feature's counter,
// mirroring what the cast handler does.
func CreateTestVote(t *testing.T, dbConn *sql.DB, userID, featureID int64) {
	t.Helper()

	_, err := dbConn.Exec(`
		INSERT INTO votes (user_id, feature_request_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, featureID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	_, err = dbConn.Exec(`
		UPDATE feature_requests SET vote_count = vote_count + 1 WHERE id = $1
	`, featureID)
	if err != nil {
		t.Fatalf("Failed to increment test vote count: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
