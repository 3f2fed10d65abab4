package cart

import "time"

// DefaultNoticeTTL is how long a stock warning stays visible before it
// clears on its own.
const DefaultNoticeTTL = 2500 * time.Millisecond

// Board holds at most one transient notice at a time. Posting replaces any
// notice already showing; reading past the deadline clears it.
type Board struct {
	ttl       time.Duration
	now       func() time.Time
	message   string
	expiresAt time.Time
}

func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Board{ttl: ttl, now: time.Now}
}

// Notify implements Notifier.
func (b *Board) Notify(message string) {
	b.message = message
	b.expiresAt = b.now().Add(b.ttl)
}

// Active returns the current notice, or "" once it has expired.
func (b *Board) Active() string {
	if b.message == "" {
		return ""
	}
	if !b.now().Before(b.expiresAt) {
		b.message = ""
		return ""
	}
	return b.message
}
