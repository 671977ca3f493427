package constants

import "time"

// Server defaults
const (
	ServerHost = "0.0.0.0"
	ServerPort = 7070
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes and lifetimes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"

	TokenAccessTTL  = 15 * time.Minute
	TokenRefreshTTL = 7 * 24 * time.Hour
)

// Roles stored on the users row
const (
	RoleUser   = "user"
	RoleArtist = "artist"
	RoleClub   = "club"
	RoleAdmin  = "admin"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
)

// Asynq task types
const (
	TaskNotificationDeliver = "notification:deliver"
)

// List limits per endpoint
const (
	DefaultEventLimit    = 20
	DefaultTrendingLimit = 10
	DefaultPopularLimit  = 3
	DefaultFeedbackLimit = 20
	MaxListLimit         = 100
)

// Ticket codes are short nanoids printed into QR payloads
const TicketCodeLength = 7

// StatsTrailingMonths is the window for admin monthly aggregates
const StatsTrailingMonths = 6
