package handlers

import "strings"

// isUniqueViolation reports whether err is a uniqueness-constraint error
// from either supported driver. lib/pq and modernc.org/sqlite expose no
// shared error type, so this matches on the driver message text, the
// same way each driver's own users detect it.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
