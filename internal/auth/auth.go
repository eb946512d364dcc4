// Package auth is a mock login against a fixed credential table. It is not
// a security boundary: the session record is a plain JSON value in the
// local store and anyone who can write it is logged in.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/healthfuture/internal/models"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
)

// SessionKey is the storage key holding the serialized AuthState.
const SessionKey = "health-future-auth"

// DefaultLoginDelay is the simulated network latency of a login.
const DefaultLoginDelay = 800 * time.Millisecond

// ErrInvalidCredentials is returned for any unknown email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Store is the subset of storage.Store the authenticator needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type credential struct {
	user models.User
	hash []byte
}

// demoUsers is the mock credential table.
var demoUsers = []struct {
	id, email, password, name string
}{
	{"1", "demo@example.com", "password123", "Demo User"},
	{"2", "admin@example.com", "admin123", "Admin User"},
}

// Authenticator checks credentials and keeps the session record.
type Authenticator struct {
	store Store
	delay time.Duration
	users []credential
	log   *slog.Logger
}

// New builds an authenticator over store. Every Login waits delay before answering.
func New(store Store, delay time.Duration, log *slog.Logger) (*Authenticator, error) {
	a := &Authenticator{store: store, delay: delay, log: log}
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", u.email, err)
		}
		a.users = append(a.users, credential{
			user: models.User{ID: u.id, Email: u.email, Name: u.name},
			hash: hash,
		})
	}
	return a, nil
}

// Login waits the configured delay, then checks email (case-insensitive)
// and password. On success the session record is written and the user is
// returned. Concurrent logins are not serialised; the last one to finish
// owns the record.
func (a *Authenticator) Login(ctx context.Context, email, password string) (models.User, error) {
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	case <-timer.C:
	}

	u, ok := a.match(email, password)
	if !ok {
		a.log.Info("login rejected", "email", email)
		return models.User{}, ErrInvalidCredentials
	}

	data, err := json.Marshal(models.AuthState{User: &u, IsAuthenticated: true})
	if err != nil {
		return models.User{}, fmt.Errorf("encoding session: %w", err)
	}
	if err := a.store.Put(ctx, SessionKey, data); err != nil {
		return models.User{}, fmt.Errorf("saving session: %w", err)
	}
	a.log.Info("login", "user_id", u.ID)
	return u, nil
}

// Logout removes the session record.
func (a *Authenticator) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (a *Authenticator) match(email, password string) (models.User, bool) {
	folded := cases.Fold().String(email)
	for _, c := range a.users {
		if cases.Fold().String(c.user.Email) != folded {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil {
			return c.user, true
		}
	}
	return models.User{}, false
}
