package store

import (
	"path/filepath"
	"testing"
)

// createTestSQLite opens a temporary sqlite-backed store.
func createTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// backends runs a subtest against both Store implementations.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, createTestSQLite(t))
	})
}

func TestSetGet(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		if err := s.Set("job_posts", `[{"id":1}]`); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, ok, err := s.Get("job_posts")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !ok {
			t.Fatal("key should exist")
		}
		if got != `[{"id":1}]` {
			t.Errorf("got %q", got)
		}

		// Overwrite is whole-value
		if err := s.Set("job_posts", `[]`); err != nil {
			t.Fatalf("overwrite failed: %v", err)
		}
		got, _, _ = s.Get("job_posts")
		if got != `[]` {
			t.Errorf("expected overwrite, got %q", got)
		}
	})
}

func TestGetMissing(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		_, ok, err := s.Get("never_written")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("missing key reported as present")
		}
	})
}

func TestDelete(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		s.Set("jobseeker_loggedIn", `{"email":"a@b.c"}`)
		if err := s.Delete("jobseeker_loggedIn"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, ok, _ := s.Get("jobseeker_loggedIn"); ok {
			t.Error("key should be gone after delete")
		}

		// Deleting a missing key is fine
		if err := s.Delete("jobseeker_loggedIn"); err != nil {
			t.Errorf("delete of missing key errored: %v", err)
		}
	})
}

func TestKeys(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		s.Set("a", "1")
		s.Set("b", "2")
		keys, err := s.Keys()
		if err != nil {
			t.Fatalf("keys failed: %v", err)
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %d: %v", len(keys), keys)
		}
	})
}

func TestReadFallback(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string // empty means don't write
	}{
		{name: "missing key", key: "job_posts"},
		{name: "corrupted value", key: "job_posts", value: "{not json"},
		{name: "wrong shape", key: "job_posts", value: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemory()
			if tt.value != "" {
				s.Set(tt.key, tt.value)
			}

			got := Read(s, tt.key, []int{})
			if got == nil || len(got) != 0 {
				t.Errorf("Read did not fall back to default: %v", got)
			}
		})
	}
}

func TestReadObjectFallback(t *testing.T) {
	s := NewMemory()
	s.Set("jobseeker_notification_settings", "][")

	type settings struct {
		JobAlerts bool `json:"jobAlerts"`
	}
	got := Read(s, "jobseeker_notification_settings", settings{JobAlerts: true})
	if !got.JobAlerts {
		t.Error("corrupted settings should yield the caller default")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		type job struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		}
		in := []job{{ID: 1700000000000, Title: "Backend Engineer"}}

		if err := Write(s, "job_posts", in); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		out := Read(s, "job_posts", []job{})
		if len(out) != 1 || out[0] != in[0] {
			t.Errorf("round trip mismatch: %v", out)
		}
	})
}
