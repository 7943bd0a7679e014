// Package store provides SQLite persistence for tweetscore accounts,
// sessions, analysis records, and usage events.
package store

import "time"

// User is an account row. Plan is one of "free", "pack", or "unlimited";
// Credits only matters for pack accounts.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Plan         string    `json:"plan"`
	Credits      int       `json:"credits"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a login session. The token is an opaque string handed to the
// client (here, written to a file under the config dir).
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AnalysisRecord is one persisted analysis. Suggestions and Factors are
// stored as JSON columns; the scalar result fields are stored flat so the
// history view never needs to re-run the engine.
type AnalysisRecord struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Body            string    `json:"body"`
	OverallScore    int       `json:"overall_score"`
	EngagementLevel string    `json:"engagement_level"`
	ReachLevel      string    `json:"reach_level"`
	Narrative       string    `json:"narrative"`
	SuggestionsJSON string    `json:"suggestions_json"`
	OptimalTime     string    `json:"optimal_time"`
	FactorsJSON     string    `json:"factors_json"`
	CreatedAt       time.Time `json:"created_at"`
}

// UsageEvent is a coarse account activity record (signup, signin, signout,
// analysis).
type UsageEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Event     string    `json:"event"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
