// Package store owns the locally persisted application state: bookmarks,
// history, subscriptions, session, settings and the blacklist slot. Every
// mutation persists its slot synchronously and in full.
package store

import (
	"context"
	"fmt"

	"github.com/Ivannivi/E1324/internal/blacklist"
	"github.com/Ivannivi/E1324/internal/e621"
)

const (
	slotBookmarks     = "bookmarks"
	slotHistory       = "history"
	slotSubscriptions = "subscriptions"
	slotSession       = "session"
	slotSettings      = "settings"
	slotBlacklist     = "blacklist"
)

// maxHistory caps the history collection; the oldest entry is evicted past it.
const maxHistory = 100

type ProxyConfig struct {
	Type string `json:"type"` // http or socks
	Host string `json:"host"`
	Port string `json:"port"`
}

type Settings struct {
	Autoplay      bool        `json:"autoplay"`
	EnableHistory bool        `json:"enable_history"`
	GeminiAPIKey  string      `json:"gemini_api_key"`
	Proxy         ProxyConfig `json:"proxy"`
}

func DefaultSettings() Settings {
	return Settings{
		Autoplay:      true,
		EnableHistory: true,
		Proxy:         ProxyConfig{Type: "http"},
	}
}

// Store is the single writer of persisted state. Reads return copies;
// mutations write back the whole collection snapshot.
type Store struct {
	repo *Repository

	bookmarks     []e621.Post
	history       []e621.Post
	subscriptions []string
	session       e621.Credentials
	settings      Settings
}

func New(repo *Repository) *Store {
	return &Store{repo: repo, settings: DefaultSettings()}
}

// Load reads every slot. Saved settings are merged over defaults rather than
// replacing them, so slots written by older versions stay loadable.
func (s *Store) Load(ctx context.Context) error {
	if _, err := s.repo.LoadSlot(ctx, slotBookmarks, &s.bookmarks); err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	if _, err := s.repo.LoadSlot(ctx, slotHistory, &s.history); err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if _, err := s.repo.LoadSlot(ctx, slotSubscriptions, &s.subscriptions); err != nil {
		return fmt.Errorf("load subscriptions: %w", err)
	}
	if _, err := s.repo.LoadSlot(ctx, slotSession, &s.session); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	settings := DefaultSettings()
	if _, err := s.repo.LoadSlot(ctx, slotSettings, &settings); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s.settings = settings
	return nil
}

// LoadBlacklist reads the persisted blacklist rules.
func (s *Store) LoadBlacklist(ctx context.Context) ([]blacklist.Rule, error) {
	var rules []blacklist.Rule
	if _, err := s.repo.LoadSlot(ctx, slotBlacklist, &rules); err != nil {
		return nil, fmt.Errorf("load blacklist: %w", err)
	}
	return rules, nil
}

// SaveBlacklist overwrites the blacklist slot. Handed to the blacklist
// engine as its persist func.
func (s *Store) SaveBlacklist(ctx context.Context, rules []blacklist.Rule) error {
	return s.repo.SaveSlot(ctx, slotBlacklist, rules)
}

func (s *Store) Bookmarks() []e621.Post {
	return append([]e621.Post(nil), s.bookmarks...)
}

func (s *Store) History() []e621.Post {
	return append([]e621.Post(nil), s.history...)
}

func (s *Store) Subscriptions() []string {
	return append([]string(nil), s.subscriptions...)
}

func (s *Store) Session() e621.Credentials {
	return s.session
}

func (s *Store) Settings() Settings {
	return s.settings
}

func (s *Store) IsBookmarked(postID int64) bool {
	for _, p := range s.bookmarks {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func (s *Store) IsSubscribed(tag string) bool {
	for _, t := range s.subscriptions {
		if t == tag {
			return true
		}
	}
	return false
}

// ToggleBookmark adds a post snapshot to the front of the bookmark list, or
// removes the existing entry with the same id.
func (s *Store) ToggleBookmark(ctx context.Context, post e621.Post) error {
	if s.IsBookmarked(post.ID) {
		kept := s.bookmarks[:0:0]
		for _, p := range s.bookmarks {
			if p.ID != post.ID {
				kept = append(kept, p)
			}
		}
		s.bookmarks = kept
	} else {
		s.bookmarks = append([]e621.Post{post}, s.bookmarks...)
	}
	return s.repo.SaveSlot(ctx, slotBookmarks, s.bookmarks)
}

// RecordHistory prepends a post snapshot, deduplicating by id and truncating
// to the cap. No-op while history is disabled in settings.
func (s *Store) RecordHistory(ctx context.Context, post e621.Post) error {
	if !s.settings.EnableHistory {
		return nil
	}
	next := make([]e621.Post, 0, len(s.history)+1)
	next = append(next, post)
	for _, p := range s.history {
		if p.ID != post.ID {
			next = append(next, p)
		}
	}
	if len(next) > maxHistory {
		next = next[:maxHistory]
	}
	s.history = next
	return s.repo.SaveSlot(ctx, slotHistory, s.history)
}

// ToggleSubscription appends a search tag, or removes it when already present.
func (s *Store) ToggleSubscription(ctx context.Context, tag string) error {
	if s.IsSubscribed(tag) {
		kept := s.subscriptions[:0:0]
		for _, t := range s.subscriptions {
			if t != tag {
				kept = append(kept, t)
			}
		}
		s.subscriptions = kept
	} else {
		s.subscriptions = append(s.subscriptions, tag)
	}
	return s.repo.SaveSlot(ctx, slotSubscriptions, s.subscriptions)
}

func (s *Store) SetSession(ctx context.Context, creds e621.Credentials) error {
	s.session = creds
	return s.repo.SaveSlot(ctx, slotSession, s.session)
}

func (s *Store) ClearSession(ctx context.Context) error {
	s.session = e621.Credentials{}
	return s.repo.SaveSlot(ctx, slotSession, s.session)
}

// UpdateSettings applies fn to a copy of the current settings and persists
// the result.
func (s *Store) UpdateSettings(ctx context.Context, fn func(*Settings)) error {
	next := s.settings
	fn(&next)
	s.settings = next
	return s.repo.SaveSlot(ctx, slotSettings, s.settings)
}
