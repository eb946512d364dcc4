package auth

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/claude/healthfuture/internal/storage"
)

// memStore is an in-memory Store.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newTestAuth(t *testing.T, store Store, delay time.Duration) *Authenticator {
	t.Helper()
	a, err := New(store, delay, slog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// TestLoginDemoUser verifies the demo credentials resolve to "Demo User"
// and write an authenticated session record.
func TestLoginDemoUser(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := newTestAuth(t, store, 0)

	u, err := a.Login(ctx, "demo@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Name != "Demo User" {
		t.Errorf("name = %q, want Demo User", u.Name)
	}

	res, err := a.Session(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Authenticated() || res.State.User.Email != "demo@example.com" {
		t.Errorf("session = %+v", res)
	}
}

// TestLoginConcurrentSQLite verifies overlapping logins and session reads
// against the SQLite store all succeed and the last login to finish owns
// the record.
func TestLoginConcurrentSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hf.db")
	if err := storage.RunMigrations(storage.DriverSQLite, path); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	store, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	a := newTestAuth(t, store, 0)

	creds := [][2]string{
		{"demo@example.com", "password123"},
		{"admin@example.com", "admin123"},
	}
	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(c [2]string) {
			defer wg.Done()
			_, err := a.Login(ctx, c[0], c[1])
			errs <- err
		}(creds[i%len(creds)])
		go func() {
			defer wg.Done()
			res, err := a.Session(ctx)
			if err == nil && res.Status == SessionCorrupt {
				err = errors.New("corrupt session read during login")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent login: %v", err)
		}
	}

	res, err := a.Session(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Authenticated() {
		t.Fatalf("session = %+v, want authenticated", res)
	}
	if email := res.State.User.Email; email != creds[0][0] && email != creds[1][0] {
		t.Errorf("session email = %q, want one of the logged-in users", email)
	}
}

// TestLoginEmailCaseInsensitive verifies email matching ignores case while
// the password does not.
func TestLoginEmailCaseInsensitive(t *testing.T) {
	a := newTestAuth(t, newMemStore(), 0)
	if _, err := a.Login(context.Background(), "Demo@Example.COM", "password123"); err != nil {
		t.Errorf("mixed-case email rejected: %v", err)
	}
	if _, err := a.Login(context.Background(), "demo@example.com", "PASSWORD123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong-case password err = %v, want ErrInvalidCredentials", err)
	}
}

// TestLoginRejected verifies every non-matching pair fails the same way and
// leaves no session behind.
func TestLoginRejected(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := newTestAuth(t, store, 0)

	pairs := [][2]string{
		{"demo@example.com", "wrong"},
		{"nobody@example.com", "password123"},
		{"admin@example.com", "password123"},
		{"", ""},
	}
	for _, p := range pairs {
		if _, err := a.Login(ctx, p[0], p[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrInvalidCredentials", p[0], p[1], err)
		}
	}
	if res, _ := a.Session(ctx); res.Status != SessionAbsent {
		t.Errorf("status = %q, want absent", res.Status)
	}
}

// TestLoginAdmin verifies the second mock user.
func TestLoginAdmin(t *testing.T) {
	a := newTestAuth(t, newMemStore(), 0)
	u, err := a.Login(context.Background(), "admin@example.com", "admin123")
	if err != nil || u.Name != "Admin User" {
		t.Errorf("Login(admin) = %+v, %v", u, err)
	}
}

// TestLoginCancelled verifies a cancelled context ends the simulated delay.
func TestLoginCancelled(t *testing.T) {
	a := newTestAuth(t, newMemStore(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Login(ctx, "demo@example.com", "password123"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// TestLoginDelay verifies the login waits at least the configured delay.
func TestLoginDelay(t *testing.T) {
	a := newTestAuth(t, newMemStore(), 30*time.Millisecond)
	start := time.Now()
	if _, err := a.Login(context.Background(), "demo@example.com", "password123"); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("login returned after %v, want >= 30ms", elapsed)
	}
}

// TestLogout verifies the session record is removed.
func TestLogout(t *testing.T) {
	ctx := context.Background()
	a := newTestAuth(t, newMemStore(), 0)
	if _, err := a.Login(ctx, "demo@example.com", "password123"); err != nil {
		t.Fatal(err)
	}
	if err := a.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if res, _ := a.Session(ctx); res.Status != SessionAbsent || res.Authenticated() {
		t.Errorf("session after logout = %+v", res)
	}
}

// TestSessionCorrupt verifies a malformed record is reported as corrupt and
// not authenticated, distinct from an absent one.
func TestSessionCorrupt(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	a := newTestAuth(t, store, 0)

	store.Put(ctx, SessionKey, []byte("{not json"))
	res, err := a.Session(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != SessionCorrupt {
		t.Errorf("status = %q, want corrupt", res.Status)
	}
	if res.Authenticated() {
		t.Error("corrupt session reported as authenticated")
	}
}

// TestParseSession verifies which stored records count as valid and authenticated.
func TestParseSession(t *testing.T) {
	cases := []struct {
		input string
		want  SessionStatus
		authd bool
	}{
		{`{"user":{"id":"1","email":"demo@example.com","name":"Demo User"},"isAuthenticated":true}`, SessionValid, true},
		{`{"user":null,"isAuthenticated":false}`, SessionValid, false},
		{`{"user":null,"isAuthenticated":true}`, SessionCorrupt, false},
		{`[]`, SessionCorrupt, false},
		{``, SessionCorrupt, false},
	}
	for _, tc := range cases {
		res := ParseSession([]byte(tc.input))
		if res.Status != tc.want {
			t.Errorf("ParseSession(%q).Status = %q, want %q", tc.input, res.Status, tc.want)
		}
		if res.Authenticated() != tc.authd {
			t.Errorf("ParseSession(%q).Authenticated() = %v, want %v", tc.input, res.Authenticated(), tc.authd)
		}
	}
}
