/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: per-request structured logging with a request UUID
  - WithRecovery: panic -> 500 {"error": "Internal server error"}
  - CORS: permissive cross-origin headers and preflight handling

# Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handler bodies
focused on domain logic. ErrorResponse produces the single-field error
shape every failure path in the API uses.
*/
package middleware
