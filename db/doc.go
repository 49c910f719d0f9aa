/*
Package db handles database connections and schema creation.

# Schema

Three tables connected by foreign keys:

  - users: unique username and email, bcrypt password hash
  - feature_requests: proposals with a denormalized vote_count counter
  - votes: one row per (user, feature) pair, enforced by a UNIQUE constraint

The vote_count column on feature_requests is maintained by the vote
handlers, which increment and decrement it in the same transaction as
the vote row insert or delete.

# Drivers

Both Postgres (lib/pq) and SQLite (modernc.org/sqlite) are supported.
Queries elsewhere in the codebase use $1-style placeholders, which both
drivers accept, so only the DDL differs per driver.
*/
package db
