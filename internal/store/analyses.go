package store

import (
	"database/sql"
	"time"
)

// InsertAnalysis appends an analysis record and returns its ID.
func (db *DB) InsertAnalysis(a *AnalysisRecord) (int64, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	result, err := db.conn.Exec(
		`INSERT INTO analyses
		(user_id, body, overall_score, engagement_level, reach_level,
		 narrative, suggestions, optimal_time, factors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Body, a.OverallScore, a.EngagementLevel, a.ReachLevel,
		a.Narrative, a.SuggestionsJSON, a.OptimalTime, a.FactorsJSON,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListAnalyses returns a user's analysis records newest-first, paginated
// by limit and offset.
func (db *DB) ListAnalyses(userID int64, limit, offset int) ([]AnalysisRecord, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, body, overall_score, engagement_level, reach_level,
		 narrative, suggestions, optimal_time, factors, created_at
		 FROM analyses WHERE user_id = ?
		 ORDER BY id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []AnalysisRecord
	for rows.Next() {
		var a AnalysisRecord
		var createdAt string
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Body, &a.OverallScore, &a.EngagementLevel,
			&a.ReachLevel, &a.Narrative, &a.SuggestionsJSON, &a.OptimalTime,
			&a.FactorsJSON, &createdAt,
		); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, a)
	}
	return records, rows.Err()
}

// CountAnalyses returns the total number of analyses for a user.
func (db *DB) CountAnalyses(userID int64) (int, error) {
	row := db.conn.QueryRow("SELECT COUNT(*) FROM analyses WHERE user_id = ?", userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountAnalysesSince returns the number of analyses a user has run at or
// after the given instant. Quota accounting for the free plan reads this.
func (db *DB) CountAnalysesSince(userID int64, since time.Time) (int, error) {
	row := db.conn.QueryRow(
		"SELECT COUNT(*) FROM analyses WHERE user_id = ? AND created_at >= ?",
		userID, since.UTC().Format(time.RFC3339),
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertUsageEvent records a coarse account activity event.
func (db *DB) InsertUsageEvent(userID int64, event, detail string) error {
	_, err := db.conn.Exec(
		"INSERT INTO usage_events (user_id, event, detail, created_at) VALUES (?, ?, ?, ?)",
		userID, event, detail, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListUsageEvents returns a user's most recent usage events, newest-first.
func (db *DB) ListUsageEvents(userID int64, limit int) ([]UsageEvent, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, event, detail, created_at
		 FROM usage_events WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []UsageEvent
	for rows.Next() {
		var e UsageEvent
		var detail sql.NullString
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Event, &detail, &createdAt); err != nil {
			return nil, err
		}
		e.Detail = detail.String
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}
