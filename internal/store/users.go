package store

import (
	"database/sql"
	"time"
)

// CreateUser inserts a new account and returns it with the assigned ID.
func (db *DB) CreateUser(email, passwordHash, plan string, credits int) (*User, error) {
	now := time.Now().UTC()
	result, err := db.conn.Exec(
		"INSERT INTO users (email, password_hash, plan, credits, created_at) VALUES (?, ?, ?, ?, ?)",
		email, passwordHash, plan, credits, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Plan:         plan,
		Credits:      credits,
		CreatedAt:    now,
	}, nil
}

// GetUserByEmail returns the account for an email, or nil if none exists.
func (db *DB) GetUserByEmail(email string) (*User, error) {
	row := db.conn.QueryRow(
		"SELECT id, email, password_hash, plan, credits, created_at FROM users WHERE email = ?",
		email,
	)
	return scanUser(row)
}

// GetUser returns the account with the given ID, or nil if none exists.
func (db *DB) GetUser(id int64) (*User, error) {
	row := db.conn.QueryRow(
		"SELECT id, email, password_hash, plan, credits, created_at FROM users WHERE id = ?",
		id,
	)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Plan, &u.Credits, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// SetPlan updates an account's plan and credit balance together. Moving to
// the pack plan sets the opening balance; other plans zero it.
func (db *DB) SetPlan(userID int64, plan string, credits int) error {
	_, err := db.conn.Exec("UPDATE users SET plan = ?, credits = ? WHERE id = ?", plan, credits, userID)
	return err
}

// SpendCredit decrements a pack account's balance by one. It reports
// whether a credit was actually available to spend.
func (db *DB) SpendCredit(userID int64) (bool, error) {
	result, err := db.conn.Exec(
		"UPDATE users SET credits = credits - 1 WHERE id = ? AND credits > 0",
		userID,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateSession inserts a login session.
func (db *DB) CreateSession(token string, userID int64, expiresAt time.Time) error {
	_, err := db.conn.Exec(
		"INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		token, userID,
		time.Now().UTC().Format(time.RFC3339),
		expiresAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetSession returns the session for a token, or nil if none exists.
func (db *DB) GetSession(token string) (*Session, error) {
	row := db.conn.QueryRow(
		"SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?",
		token,
	)
	var s Session
	var createdAt, expiresAt string
	err := row.Scan(&s.Token, &s.UserID, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
	return &s, nil
}

// DeleteSession removes a session by token. Deleting a missing token is
// not an error.
func (db *DB) DeleteSession(token string) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}
