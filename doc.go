/*
Package main provides the entry point for the feature voting API server.

Users register, submit feature requests, and cast one vote per user per
feature. The API is plain HTTP/JSON over a relational schema.

# Starting the Server

The server runs with zero configuration against a local dev database:

	go run main.go

Or with explicit settings:

	go run main.go -p 5000 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

  - PORT (-p): server port (default: 5000)
  - DATABASE_URL (-d): Postgres DSN or SQLite file path
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - SECRET_KEY (-secret): application secret

Each setting has a hardcoded development default; see package cliparse.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, features, votes, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, recovery, CORS, JSON helpers
  - models: Request/response types
  - auth: Password hashing
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
