/*
Package handlers contains HTTP request handlers for the feature voting API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: registration and per-user vote listing
  - FeatureHandler: feature request listing, creation, retrieval
  - VoteHandler: vote casting and retraction

Handlers are created via constructor functions that accept *sql.DB and Config:

	userHandler := handlers.NewUserHandler(db, cfg)

# Status Code Mapping

  - Missing or malformed input -> 400 before any storage access
  - Referenced id absent -> 404
  - Duplicate username/email or duplicate vote -> 409
  - Unexpected storage failure -> 500 (transaction rolled back)

# Transactions

Multi-step writes (vote cast and retract) open one transaction up front
and run every statement through it, committing once at the end. The
deferred Rollback is a no-op after a successful commit and otherwise
undoes the partial write. Vote uniqueness is double-enforced: the
handler checks for an existing vote before inserting, and the votes
table's UNIQUE (user_id, feature_request_id) constraint converts lost
races into a 409 instead of a duplicate row.
*/
package handlers
