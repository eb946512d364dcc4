package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "healthfuture.db")
	if err := RunMigrations(DriverSQLite, path); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestSQLiteGetMissing verifies a missing key reports not found without error.
func TestSQLiteGetMissing(t *testing.T) {
	s := openTestStore(t)
	v, ok, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if ok || v != nil {
		t.Errorf("Get(nope) = %q, %v; want nil, false", v, ok)
	}
}

// TestSQLitePutOverwrite verifies the last write for a key wins.
func TestSQLitePutOverwrite(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Put(ctx, "k", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "k", []byte("second")); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(v) != "second" {
		t.Errorf("value = %q, want second", v)
	}
}

// TestSQLiteDelete verifies deletion and that deleting a missing key is fine.
func TestSQLiteDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("key still present after Delete")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete = %v", err)
	}
}

// TestSQLiteConcurrentPutGet verifies overlapping writes and reads of one
// key all succeed and the store ends holding one of the written values.
func TestSQLiteConcurrentPutGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			errs <- s.Put(ctx, "session", []byte(fmt.Sprintf("v%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_, _, err := s.Get(ctx, "session")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent access: %v", err)
		}
	}

	v, ok, err := s.Get(ctx, "session")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(v) < 2 || v[0] != 'v' {
		t.Errorf("value = %q, want one of the written values", v)
	}
}

// TestSQLiteDSN verifies the busy timeout and WAL pragmas are appended to
// plain paths and to paths that already carry a query.
func TestSQLiteDSN(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"data/hf.db", "data/hf.db?" + sqlitePragmas},
		{"file:hf.db?cache=shared", "file:hf.db?cache=shared&" + sqlitePragmas},
	}
	for _, tc := range cases {
		if got := sqliteDSN(tc.path); got != tc.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// TestRunMigrationsIdempotent verifies re-running migrations is a no-op.
func TestRunMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hf.db")
	for i := 0; i < 2; i++ {
		if err := RunMigrations(DriverSQLite, path); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}

// TestMigrateURL verifies driver DSNs map onto golang-migrate database URLs.
func TestMigrateURL(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hf.db")
	cases := []struct {
		driver, dsn, want string
	}{
		{DriverSQLite, dbPath, "sqlite://" + dbPath},
		{DriverPostgres, "postgres://u:p@db:5432/hf?sslmode=disable", "pgx5://u:p@db:5432/hf?sslmode=disable"},
	}
	for _, tc := range cases {
		got, err := migrateURL(tc.driver, tc.dsn)
		if err != nil {
			t.Fatalf("migrateURL(%s, %s): %v", tc.driver, tc.dsn, err)
		}
		if got != tc.want {
			t.Errorf("migrateURL(%s, %s) = %q, want %q", tc.driver, tc.dsn, got, tc.want)
		}
	}
	if _, err := migrateURL(DriverPostgres, "mysql://x"); err == nil {
		t.Error("expected error for non-postgres dsn")
	}
}

// TestOpenUnknownDriver verifies Open rejects unsupported drivers.
func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mongo", "x"); err == nil {
		t.Error("expected error for unknown driver")
	}
}
