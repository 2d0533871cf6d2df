package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Ivannivi/E1324/internal/blacklist"
	"github.com/Ivannivi/E1324/internal/e621"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx := context.Background()
	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}

	s := New(repo)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return s
}

func testPost(id int64) e621.Post {
	return e621.Post{ID: id, Rating: "s", File: e621.File{URL: fmt.Sprintf("https://img/%d.png", id), Ext: "png"}}
}

func TestToggleBookmark_AddThenRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ToggleBookmark(ctx, testPost(1)); err != nil {
		t.Fatalf("ToggleBookmark returned error: %v", err)
	}
	if err := s.ToggleBookmark(ctx, testPost(2)); err != nil {
		t.Fatalf("ToggleBookmark returned error: %v", err)
	}

	books := s.Bookmarks()
	if len(books) != 2 || books[0].ID != 2 {
		t.Fatalf("expected newest bookmark first, got %+v", books)
	}
	if !s.IsBookmarked(1) {
		t.Fatal("post 1 should be bookmarked")
	}

	if err := s.ToggleBookmark(ctx, testPost(1)); err != nil {
		t.Fatalf("ToggleBookmark returned error: %v", err)
	}
	if s.IsBookmarked(1) {
		t.Fatal("toggling again should remove the bookmark")
	}
	if got := len(s.Bookmarks()); got != 1 {
		t.Fatalf("expected 1 bookmark, got %d", got)
	}
}

func TestRecordHistory_CapAndRecency(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 101; i++ {
		if err := s.RecordHistory(ctx, testPost(i)); err != nil {
			t.Fatalf("RecordHistory returned error: %v", err)
		}
	}

	hist := s.History()
	if len(hist) != 100 {
		t.Fatalf("expected history capped at 100, got %d", len(hist))
	}
	if hist[0].ID != 101 {
		t.Fatalf("expected most recent first, got id %d", hist[0].ID)
	}
	for _, p := range hist {
		if p.ID == 1 {
			t.Fatal("oldest entry must be evicted past the cap")
		}
	}
}

func TestRecordHistory_RevisitMovesToFront(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		_ = s.RecordHistory(ctx, testPost(i))
	}
	if err := s.RecordHistory(ctx, testPost(3)); err != nil {
		t.Fatalf("RecordHistory returned error: %v", err)
	}

	hist := s.History()
	if len(hist) != 5 {
		t.Fatalf("revisit must not grow the list, got %d entries", len(hist))
	}
	if hist[0].ID != 3 {
		t.Fatalf("revisited post should move to the front, got id %d", hist[0].ID)
	}
	seen := make(map[int64]bool)
	for _, p := range hist {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d in history", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestRecordHistory_DisabledIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpdateSettings(ctx, func(st *Settings) { st.EnableHistory = false }); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	if err := s.RecordHistory(ctx, testPost(1)); err != nil {
		t.Fatalf("RecordHistory returned error: %v", err)
	}
	if got := len(s.History()); got != 0 {
		t.Fatalf("expected empty history, got %d entries", got)
	}
}

func TestToggleSubscription_NoDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.ToggleSubscription(ctx, "fox")
	_ = s.ToggleSubscription(ctx, "wolf")

	subs := s.Subscriptions()
	if len(subs) != 2 || subs[0] != "fox" || subs[1] != "wolf" {
		t.Fatalf("unexpected subscriptions: %+v", subs)
	}

	_ = s.ToggleSubscription(ctx, "fox")
	subs = s.Subscriptions()
	if len(subs) != 1 || subs[0] != "wolf" {
		t.Fatalf("toggle should remove an existing subscription: %+v", subs)
	}
}

func TestSession_PersistsAcrossLoad(t *testing.T) {
	repo, err := NewRepository(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	s := New(repo)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := s.SetSession(ctx, e621.Credentials{Username: "fox", APIKey: "k"}); err != nil {
		t.Fatalf("SetSession returned error: %v", err)
	}
	_ = s.ToggleBookmark(ctx, testPost(7))

	reloaded := New(repo)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if got := reloaded.Session(); got.Username != "fox" || got.APIKey != "k" {
		t.Fatalf("unexpected session after reload: %+v", got)
	}
	if !reloaded.IsBookmarked(7) {
		t.Fatal("bookmarks should survive reload")
	}

	if err := reloaded.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession returned error: %v", err)
	}
	if !reloaded.Session().Empty() {
		t.Fatal("expected empty session after logout")
	}
	if !reloaded.IsBookmarked(7) {
		t.Fatal("logout must not clear bookmarks")
	}
}

func TestSettings_MergeOverDefaults(t *testing.T) {
	repo, err := NewRepository(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	// A slot written by an older version that predates the proxy fields.
	if err := repo.SaveSlot(ctx, "settings", map[string]any{"autoplay": false}); err != nil {
		t.Fatalf("SaveSlot returned error: %v", err)
	}

	s := New(repo)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	settings := s.Settings()
	if settings.Autoplay {
		t.Fatal("saved autoplay=false should win over the default")
	}
	if !settings.EnableHistory {
		t.Fatal("missing fields should keep their defaults")
	}
	if settings.Proxy.Type != "http" {
		t.Fatalf("missing nested config should keep defaults, got %+v", settings.Proxy)
	}
}

func TestBlacklistSlot_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rules := []blacklist.Rule{{Tag: "gore", Enabled: true}, {Tag: "vore", Enabled: false}}
	if err := s.SaveBlacklist(ctx, rules); err != nil {
		t.Fatalf("SaveBlacklist returned error: %v", err)
	}

	loaded, err := s.LoadBlacklist(ctx)
	if err != nil {
		t.Fatalf("LoadBlacklist returned error: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Tag != "gore" || loaded[1].Enabled {
		t.Fatalf("unexpected rules after round trip: %+v", loaded)
	}
}
