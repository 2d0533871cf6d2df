// Package session holds the authenticated identity and runs the
// blacklist merge that follows a successful login.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ivannivi/E1324/internal/blacklist"
	"github.com/Ivannivi/E1324/internal/e621"
)

type ProfileFetcher interface {
	FetchUser(ctx context.Context, username string, creds e621.Credentials) (*e621.UserProfile, error)
}

type SessionStore interface {
	Session() e621.Credentials
	SetSession(ctx context.Context, creds e621.Credentials) error
	ClearSession(ctx context.Context) error
}

var ErrInvalidCredentials = errors.New("invalid username or API key")

type Holder struct {
	client  ProfileFetcher
	store   SessionStore
	engine  *blacklist.Engine
	profile *e621.UserProfile
}

func NewHolder(client ProfileFetcher, store SessionStore, engine *blacklist.Engine) *Holder {
	return &Holder{client: client, store: store, engine: engine}
}

func (h *Holder) Credentials() e621.Credentials {
	return h.store.Session()
}

// Profile returns the cached profile of the logged-in user, if any.
func (h *Holder) Profile() *e621.UserProfile {
	return h.profile
}

// Login verifies the credentials against the user's own profile before
// anything is persisted. On success the session is stored and the profile's
// server-side blacklist is merge-imported.
func (h *Holder) Login(ctx context.Context, username, apiKey string) (*e621.UserProfile, error) {
	creds := e621.Credentials{Username: username, APIKey: apiKey}
	profile, err := h.client.FetchUser(ctx, username, creds)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if err := h.store.SetSession(ctx, creds); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	h.profile = profile

	if profile.BlacklistedTags != "" {
		if err := h.engine.MergeImport(profile.BlacklistedTags); err != nil {
			return profile, fmt.Errorf("merge server blacklist: %w", err)
		}
	}
	return profile, nil
}

// Resume re-fetches the profile for a persisted session and re-runs the
// blacklist merge. A missing session is not an error.
func (h *Holder) Resume(ctx context.Context) error {
	creds := h.store.Session()
	if creds.Empty() {
		return nil
	}

	profile, err := h.client.FetchUser(ctx, creds.Username, creds)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	if profile == nil {
		return nil
	}
	h.profile = profile

	if profile.BlacklistedTags != "" {
		if err := h.engine.MergeImport(profile.BlacklistedTags); err != nil {
			return fmt.Errorf("merge server blacklist: %w", err)
		}
	}
	return nil
}

// Logout clears the session and the cached profile. Local collections and
// the blacklist are untouched.
func (h *Holder) Logout(ctx context.Context) error {
	h.profile = nil
	if err := h.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
