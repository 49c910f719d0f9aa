/*
Package models defines the request, response, and domain types for the
feature voting API.

Request types mirror the JSON bodies clients send; response types mirror
exactly what the API returns, so handlers never serialize ad-hoc maps.
Domain types (User, Feature, Vote) correspond to their database rows.

Error bodies always take the single-field shape:

	{"error": "Resource not found"}
*/
package models
