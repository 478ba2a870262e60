package database

import "time"

// Connection pool tuning
const (
	// DefaultMinConnections keeps a few warm connections so the first
	// requests after an idle stretch do not pay dial cost.
	DefaultMinConnections = 2

	// pingTimeout bounds the startup ping so a dead database fails
	// fast instead of hanging boot.
	pingTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgDatabasePoolReady = "Database connection pool ready"
)
