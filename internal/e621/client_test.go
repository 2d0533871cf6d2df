package e621

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchPosts_SendsQueryAndAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("tags"); got != "dragon female" {
			t.Fatalf("unexpected tags query: %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("unexpected page query: %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Fatalf("unexpected limit query: %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "E1324/") {
			t.Fatalf("unexpected user agent: %q", got)
		}
		expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("fox:key123"))
		if got := r.Header.Get("Authorization"); got != expectedAuth {
			t.Fatalf("unexpected auth header: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[{"id":42,"file":{"url":"https://img/42.png","ext":"png","width":800,"height":600},"rating":"s","tags":{"general":["dragon"],"artist":["someone"]}}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	posts, err := c.FetchPosts(context.Background(), "dragon female", 2, Credentials{Username: "fox", APIKey: "key123"})
	if err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].ID != 42 || posts[0].Rating != "s" {
		t.Fatalf("unexpected post: %+v", posts[0])
	}
	if posts[0].File.Ext != "png" || posts[0].File.Width != 800 {
		t.Fatalf("unexpected file descriptor: %+v", posts[0].File)
	}
}

func TestFetchPosts_OmitsAuthWhenAnonymous(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		_, _ = w.Write([]byte(`{"posts":[]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	posts, err := c.FetchPosts(context.Background(), "", 1, Credentials{})
	if err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestFetchPosts_ClampsPageBelowOne(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Fatalf("unexpected page query: %q", got)
		}
		_, _ = w.Write([]byte(`{"posts":[]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.FetchPosts(context.Background(), "", 0, Credentials{}); err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
}

func TestFetchPosts_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.FetchPosts(context.Background(), "", 1, Credentials{}); err == nil {
		t.Fatal("expected error for non-success status")
	}
}

func TestFetchPosts_MalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.FetchPosts(context.Background(), "", 1, Credentials{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchComments_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search[post_id]"); got != "42" {
			t.Fatalf("unexpected post_id query: %q", got)
		}
		_, _ = w.Write([]byte(`{"comments":[{"id":1,"post_id":42,"body":"nice","creator_name":"fox"}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	comments, err := c.FetchComments(context.Background(), 42, Credentials{})
	if err != nil {
		t.Fatalf("FetchComments returned error: %v", err)
	}
	if len(comments) != 1 || comments[0].CreatorName != "fox" {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}

func TestFetchWiki_ReturnsFirstMatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search[title]"); got != "dragon" {
			t.Fatalf("unexpected title query: %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":7,"title":"dragon","body":"A large reptile."}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	page, err := c.FetchWiki(context.Background(), "dragon")
	if err != nil {
		t.Fatalf("FetchWiki returned error: %v", err)
	}
	if page == nil || page.Title != "dragon" {
		t.Fatalf("unexpected wiki page: %+v", page)
	}
}

func TestFetchWiki_NoMatchIsNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	page, err := c.FetchWiki(context.Background(), "nosuchtag")
	if err != nil {
		t.Fatalf("FetchWiki returned error: %v", err)
	}
	if page != nil {
		t.Fatalf("expected nil page, got %+v", page)
	}
}

func TestFetchUser_CarriesBlacklist(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search[name_matches]"); got != "fox" {
			t.Fatalf("unexpected name query: %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":9,"name":"fox","blacklisted_tags":"gore\nrating:e","favorite_count":12}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	profile, err := c.FetchUser(context.Background(), "fox", Credentials{Username: "fox", APIKey: "k"})
	if err != nil {
		t.Fatalf("FetchUser returned error: %v", err)
	}
	if profile == nil || profile.BlacklistedTags != "gore\nrating:e" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestFetchTagSuggestions_ShortTermSkipsRequest(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	suggestions, err := c.FetchTagSuggestions(context.Background(), "dr")
	if err != nil {
		t.Fatalf("FetchTagSuggestions returned error: %v", err)
	}
	if suggestions != nil {
		t.Fatalf("expected nil suggestions, got %+v", suggestions)
	}
	if called {
		t.Fatal("expected no request for a short term")
	}
}

func TestFetchTagSuggestions_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search[name_matches]"); got != "dra" {
			t.Fatalf("unexpected term query: %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"dragon","post_count":1000}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	suggestions, err := c.FetchTagSuggestions(context.Background(), "dra")
	if err != nil {
		t.Fatalf("FetchTagSuggestions returned error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Name != "dragon" {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}
}
