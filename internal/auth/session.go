package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/healthfuture/internal/models"
)

// SessionStatus says what was found under SessionKey.
type SessionStatus string

const (
	SessionValid   SessionStatus = "valid"
	SessionAbsent  SessionStatus = "absent"
	SessionCorrupt SessionStatus = "corrupt"
)

// SessionResult is the decoded session record. State is the zero
// (logged-out) value unless Status is SessionValid.
type SessionResult struct {
	Status SessionStatus    `json:"status"`
	State  models.AuthState `json:"state"`
	Reason string           `json:"reason,omitempty"`
}

// Authenticated reports whether the result is a valid, logged-in session.
func (r SessionResult) Authenticated() bool {
	return r.Status == SessionValid && r.State.IsAuthenticated
}

// Session loads the session record. A record that does not decode, or that
// claims authentication without a user, is SessionCorrupt rather than an
// error; only storage failures are returned as errors.
func (a *Authenticator) Session(ctx context.Context) (SessionResult, error) {
	data, ok, err := a.store.Get(ctx, SessionKey)
	if err != nil {
		return SessionResult{}, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return SessionResult{Status: SessionAbsent}, nil
	}

	res := ParseSession(data)
	if res.Status == SessionCorrupt {
		a.log.Warn("corrupt session record", "reason", res.Reason)
	}
	return res, nil
}

// ParseSession decodes a stored session record.
func ParseSession(data []byte) SessionResult {
	var st models.AuthState
	if err := json.Unmarshal(data, &st); err != nil {
		return SessionResult{Status: SessionCorrupt, Reason: err.Error()}
	}
	if st.IsAuthenticated && st.User == nil {
		return SessionResult{Status: SessionCorrupt, Reason: "authenticated without user"}
	}
	return SessionResult{Status: SessionValid, State: st}
}
