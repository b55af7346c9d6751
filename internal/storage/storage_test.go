package storage

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyLastCheckin)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected absent key before first Set")
	}

	if err := s.Set(ctx, KeyLastCheckin, "2024-01-02"); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get(ctx, KeyLastCheckin)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "2024-01-02" {
		t.Errorf("get = (%q, %v), want (\"2024-01-02\", true)", v, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyDarkMode, "false"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, KeyDarkMode, "true"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, _, err := s.Get(ctx, KeyDarkMode)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "true" {
		t.Errorf("value = %q, want \"true\"", v)
	}
}

func TestDeleteAbsentKeyIsNoError(t *testing.T) {
	s := openTestStore(t)
	if err := s.Delete(context.Background(), "nope"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	keys := []string{KeyUser, KeyAccessToken, KeyRefreshToken, KeyParentDetails}
	for _, k := range keys {
		if err := s.Set(ctx, k, "x"); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	for _, k := range keys {
		_, ok, err := s.Get(ctx, k)
		if err != nil {
			t.Fatalf("get %s: %v", k, err)
		}
		if ok {
			t.Errorf("key %s survived Clear", k)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, KeyUser, `{"name":"Ada"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, _ := m.Get(ctx, KeyUser)
	if !ok || v != `{"name":"Ada"}` {
		t.Errorf("get = (%q, %v)", v, ok)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", m.Len())
	}
}
