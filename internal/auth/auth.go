// Package auth implements email+password accounts and file-backed CLI
// sessions on top of the store.
package auth

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/feedforge/tweetscore/internal/store"
)

// minPasswordLength is the shortest password SignUp accepts.
const minPasswordLength = 8

// Service manages accounts and the current CLI session. The active
// session token lives in a file under the config directory so separate
// command invocations share a login.
type Service struct {
	db          *store.DB
	sessionPath string
	sessionTTL  time.Duration
}

// New creates an auth service. sessionPath is the file the current
// session token is written to; ttl bounds how long a login stays valid.
func New(db *store.DB, sessionPath string, ttl time.Duration) *Service {
	return &Service{db: db, sessionPath: sessionPath, sessionTTL: ttl}
}

// SignUp creates a new account on the given plan. It does not sign the
// user in; callers follow up with SignIn.
func (s *Service) SignUp(email, password, plan string, credits int) (*store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.db.CreateUser(email, string(hash), plan, credits)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := s.db.InsertUsageEvent(user.ID, "signup", "plan="+plan); err != nil {
		log.Debug().Err(err).Msg("recording signup event")
	}
	log.Debug().Str("email", email).Str("plan", plan).Msg("account created")
	return user, nil
}

// SignIn verifies credentials, opens a session, and writes its token to
// the session file. A wrong email and a wrong password are
// indistinguishable to the caller.
func (s *Service) SignIn(email, password string) (*store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.db.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	expires := time.Now().Add(s.sessionTTL)
	if err := s.db.CreateSession(token, user.ID, expires); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	if err := s.writeToken(token); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	if err := s.db.InsertUsageEvent(user.ID, "signin", ""); err != nil {
		log.Debug().Err(err).Msg("recording signin event")
	}
	log.Debug().Str("email", email).Time("expires", expires).Msg("signed in")
	return user, nil
}

// SignOut closes the current session, if any. It is a no-op when no
// session file exists.
func (s *Service) SignOut() error {
	token, err := s.readToken()
	if err != nil {
		return nil
	}

	if sess, err := s.db.GetSession(token); err == nil && sess != nil {
		if err := s.db.InsertUsageEvent(sess.UserID, "signout", ""); err != nil {
			log.Debug().Err(err).Msg("recording signout event")
		}
	}
	if err := s.db.DeleteSession(token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return os.Remove(s.sessionPath)
}

// Current resolves the session file to a signed-in user. Expired sessions
// are deleted as a side effect so the next call fails fast.
func (s *Service) Current() (*store.User, error) {
	token, err := s.readToken()
	if err != nil {
		return nil, ErrNotSignedIn
	}

	sess, err := s.db.GetSession(token)
	if err != nil {
		return nil, fmt.Errorf("looking up session: %w", err)
	}
	if sess == nil {
		return nil, ErrNotSignedIn
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.db.DeleteSession(token)
		_ = os.Remove(s.sessionPath)
		return nil, ErrSessionExpired
	}

	user, err := s.db.GetUser(sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return user, nil
}

func (s *Service) writeToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.sessionPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.sessionPath, []byte(token), 0o600)
}

func (s *Service) readToken() (string, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotSignedIn
	}
	return token, nil
}
