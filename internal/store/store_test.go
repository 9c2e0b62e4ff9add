package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
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

func kvImplementations(t *testing.T) map[string]KV {
	return map[string]KV{
		"sqlite": openTestStore(t).KV(),
		"memory": NewMemory().KV(),
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, kv := range kvImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := kv.Get(ctx, KeyScore)
			if err != nil {
				t.Fatalf("get missing: %v", err)
			}
			if ok {
				t.Fatal("expected missing key")
			}

			if err := kv.Set(ctx, KeyScore, "10"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := kv.Set(ctx, KeyScore, "25"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			v, ok, err := kv.Get(ctx, KeyScore)
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if v != "25" {
				t.Errorf("value = %q, want %q", v, "25")
			}

			if err := kv.Delete(ctx, KeyScore); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := kv.Delete(ctx, KeyScore); err != nil {
				t.Fatalf("delete missing: %v", err)
			}
			if _, ok, _ := kv.Get(ctx, KeyScore); ok {
				t.Error("expected key removed")
			}
		})
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(ctx, KeyPlayerName, "Ada"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.KV().Get(ctx, KeyPlayerName)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "Ada" {
		t.Errorf("name = %q, want %q", v, "Ada")
	}
}

func awardImplementations(t *testing.T) map[string]AwardRepo {
	return map[string]AwardRepo{
		"sqlite": openTestStore(t).AwardRepo(),
		"memory": NewMemory().AwardRepo(),
	}
}

func TestAwardAppendAndQuery(t *testing.T) {
	for name, repo := range awardImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			awards := []AwardEventData{
				{SessionID: "s1", Game: "math", Points: 5, Total: 5},
				{SessionID: "s1", Game: "spelling", Points: 10, Total: 15},
				{SessionID: "s1", Game: "math", Points: 5, Total: 20},
			}
			for _, a := range awards {
				if err := repo.AppendAward(ctx, a); err != nil {
					t.Fatalf("append: %v", err)
				}
			}

			recent, err := repo.RecentAwards(ctx, 2)
			if err != nil {
				t.Fatalf("recent: %v", err)
			}
			if len(recent) != 2 {
				t.Fatalf("got %d records, want 2", len(recent))
			}
			if recent[0].Total != 20 || recent[1].Total != 15 {
				t.Errorf("unexpected order: %+v", recent)
			}
			if recent[0].Sequence <= recent[1].Sequence {
				t.Errorf("sequence not descending: %d, %d", recent[0].Sequence, recent[1].Sequence)
			}
			if recent[0].Timestamp.IsZero() {
				t.Error("expected timestamp")
			}

			all, err := repo.RecentAwards(ctx, 0)
			if err != nil {
				t.Fatalf("all: %v", err)
			}
			if len(all) != 3 {
				t.Errorf("got %d records, want 3", len(all))
			}

			totals, err := repo.TotalsByGame(ctx)
			if err != nil {
				t.Fatalf("totals: %v", err)
			}
			if totals["math"] != 10 || totals["spelling"] != 10 {
				t.Errorf("totals = %v", totals)
			}

			if err := repo.ClearAwards(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			all, _ = repo.RecentAwards(ctx, 0)
			if len(all) != 0 {
				t.Errorf("expected no records after clear, got %d", len(all))
			}
		})
	}
}

func TestSequenceSurvivesClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.AwardRepo()
	ctx := context.Background()

	if err := repo.AppendAward(ctx, AwardEventData{Game: "math", Points: 5, Total: 5}); err != nil {
		t.Fatal(err)
	}
	if err := repo.ClearAwards(ctx); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAward(ctx, AwardEventData{Game: "math", Points: 5, Total: 5}); err != nil {
		t.Fatal(err)
	}

	recent, err := repo.RecentAwards(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Sequence != 2 {
		t.Errorf("expected sequence 2 after clear, got %+v", recent)
	}
}
