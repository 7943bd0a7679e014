// Package quota enforces per-plan analysis allowances.
package quota

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/feedforge/tweetscore/internal/store"
)

// Plan tiers.
const (
	PlanFree      = "free"
	PlanPack      = "pack"
	PlanUnlimited = "unlimited"
)

// Unlimited is the Remaining value reported for accounts with no cap.
const Unlimited = -1

// freeWindow is the rolling period the free plan's allowance is measured
// over.
const freeWindow = 24 * time.Hour

// Decision is the answer to "can this account run one more analysis now".
type Decision struct {
	Allowed   bool   `json:"allowed"`
	Remaining int    `json:"remaining"` // Unlimited (-1) when uncapped
	Reason    string `json:"reason,omitempty"`
}

// Service answers quota questions against the store. Free usage is derived
// from the analyses table itself, so a retried pipeline never
// double-charges: only a persisted record counts.
type Service struct {
	db             *store.DB
	freeDailyLimit int
}

// New creates a quota service with the given free-plan daily limit.
func New(db *store.DB, freeDailyLimit int) *Service {
	return &Service{db: db, freeDailyLimit: freeDailyLimit}
}

// Check reports whether the user may run one more analysis, and how many
// more remain after this one.
func (s *Service) Check(user *store.User) (Decision, error) {
	switch user.Plan {
	case PlanUnlimited:
		return Decision{Allowed: true, Remaining: Unlimited}, nil

	case PlanPack:
		if user.Credits <= 0 {
			return Decision{
				Remaining: 0,
				Reason:    "no credits remaining; top up your pack to keep analyzing",
			}, nil
		}
		return Decision{Allowed: true, Remaining: user.Credits}, nil

	case PlanFree:
		used, err := s.db.CountAnalysesSince(user.ID, time.Now().Add(-freeWindow))
		if err != nil {
			return Decision{}, fmt.Errorf("counting recent analyses: %w", err)
		}
		remaining := s.freeDailyLimit - used
		log.Debug().Int("used", used).Int("limit", s.freeDailyLimit).Msg("free quota check")
		if remaining <= 0 {
			return Decision{
				Remaining: 0,
				Reason: fmt.Sprintf("free plan allows %d analyses per day; try again later or upgrade",
					s.freeDailyLimit),
			}, nil
		}
		return Decision{Allowed: true, Remaining: remaining}, nil

	default:
		return Decision{}, fmt.Errorf("unknown plan %q", user.Plan)
	}
}

// Consume charges one analysis to the account and records a usage event.
// For the free plan the charge is implicit in the persisted analysis
// record; only pack accounts carry a balance to decrement.
func (s *Service) Consume(user *store.User, detail string) error {
	if user.Plan == PlanPack {
		ok, err := s.db.SpendCredit(user.ID)
		if err != nil {
			return fmt.Errorf("spending credit: %w", err)
		}
		if !ok {
			return fmt.Errorf("no credits remaining")
		}
	}
	if err := s.db.InsertUsageEvent(user.ID, "analysis", detail); err != nil {
		return fmt.Errorf("recording usage: %w", err)
	}
	return nil
}
