/*
Package router defines the HTTP routes for the feature voting API.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	GET    /api/health
	POST   /api/users
	GET    /api/users/{id}/votes
	GET    /api/features
	POST   /api/features
	GET    /api/features/{id}
	POST   /api/features/{id}/vote
	DELETE /api/features/{id}/vote

Unmatched routes fall through to a JSON 404. The returned handler wraps
the mux with CORS and panic recovery.
*/
package router
