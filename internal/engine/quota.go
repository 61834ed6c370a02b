package engine

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
)

// Denial reasons reported by QuotaGuard.Check. Callers report the reason
// but do not branch on it.
const (
	ReasonUserLimit   = "user_limit"
	ReasonGlobalLimit = "global_limit"
)

// QuotaGuard gates AI generation behind per-user and global daily caps,
// keyed by UTC calendar day. Check and Increment are two separate phases:
// Increment runs only after a successful generation call, so failed calls
// are never charged. The split means two concurrent executions for the
// same user can both pass Check before either increments; the store-level
// atomic add bounds the overshoot but no lock eliminates it.
//
// The guard fails closed: a counter read error is treated as a denial.
// Cost safety outranks availability here, the inverse of IdempotencyGuard.
type QuotaGuard struct {
	usage     UsageStore
	clock     clockwork.Clock
	userCap   int
	globalCap int
	log       *logger.Logger
}

func NewQuotaGuard(usage UsageStore, clock clockwork.Clock, userCap, globalCap int, log *logger.Logger) *QuotaGuard {
	return &QuotaGuard{
		usage:     usage,
		clock:     clock,
		userCap:   userCap,
		globalCap: globalCap,
		log:       log,
	}
}

// Check reports whether userID may make an AI call today. The user cap is
// consulted first: it is the tighter limit, and a user-level denial skips
// the global read entirely.
func (g *QuotaGuard) Check(ctx context.Context, userID int64) (allowed bool, reason string) {
	day := g.day()

	userCount, err := g.usage.UserCount(ctx, userID, day)
	if err != nil {
		g.log.Warn("user quota read failed, denying", "user_id", userID, "day", day, "error", err)
		return false, ReasonGlobalLimit
	}
	if userCount >= g.userCap {
		return false, ReasonUserLimit
	}

	globalCount, err := g.usage.GlobalCount(ctx, day)
	if err != nil {
		g.log.Warn("global quota read failed, denying", "day", day, "error", err)
		return false, ReasonGlobalLimit
	}
	if globalCount >= g.globalCap {
		return false, ReasonGlobalLimit
	}

	return true, ""
}

// Increment charges one AI call to userID and to the global counter.
// Called only after the generation call succeeded. Failures are logged
// and swallowed; an uncharged call is accepted over blocking delivery.
func (g *QuotaGuard) Increment(ctx context.Context, userID int64) {
	day := g.day()
	if err := g.usage.IncrementUser(ctx, userID, day); err != nil {
		g.log.Error("failed to increment user quota", "user_id", userID, "day", day, "error", err)
	}
	if err := g.usage.IncrementGlobal(ctx, day); err != nil {
		g.log.Error("failed to increment global quota", "day", day, "error", err)
	}
}

func (g *QuotaGuard) day() string {
	return g.clock.Now().UTC().Format("2006-01-02")
}
