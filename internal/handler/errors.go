package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details. Handlers
// and tests reference these constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingUserID         = "user_id is required"
	ErrMsgMissingZoneID         = "zone_id is required"
)
