// Package feed drives the paged result pipeline: fetch tokens, page
// accumulation and stale-response discard.
package feed

import (
	"strings"

	"github.com/Ivannivi/E1324/internal/e621"
)

type Tab int

const (
	TabHot Tab = iota
	TabSearch
	TabTimeline
	TabFavorites
	TabBookmarks
	TabHistory
)

func (t Tab) String() string {
	switch t {
	case TabHot:
		return "hot"
	case TabSearch:
		return "search"
	case TabTimeline:
		return "timeline"
	case TabFavorites:
		return "favorites"
	case TabBookmarks:
		return "bookmarks"
	case TabHistory:
		return "history"
	}
	return "unknown"
}

// Static reports whether the tab is served from a local collection with no
// network fetch.
func (t Tab) Static() bool {
	return t == TabBookmarks || t == TabHistory
}

// BuildQuery resolves the effective tag query for a tab. ok=false means the
// tab short-circuits to an empty result with no fetch (empty timeline,
// unauthenticated favorites).
func BuildQuery(tab Tab, search string, subscriptions []string, username string) (query string, ok bool) {
	switch tab {
	case TabHot:
		// Fixed override regardless of the entered search text.
		return "order:rank", true
	case TabTimeline:
		if len(subscriptions) == 0 {
			return "", false
		}
		parts := make([]string, len(subscriptions))
		for i, s := range subscriptions {
			parts[i] = "~" + s
		}
		return strings.Join(parts, " "), true
	case TabFavorites:
		if username == "" {
			return "", false
		}
		return "fav:" + username, true
	case TabSearch:
		return search, true
	}
	return "", false
}

// WantsGlossary reports whether a page-1 fetch for this query should also
// look up the matching wiki entry: a single-term query on the search tab.
func WantsGlossary(tab Tab, query string) bool {
	return tab == TabSearch && query != "" && !strings.Contains(query, " ")
}

// Token identifies one issued fetch. Results are applied only while the
// pipeline generation still matches, so a reset always wins over a fetch
// that was in flight when it happened.
type Token struct {
	Gen   int
	Page  int
	Query string
}

// Pipeline accumulates visible posts page by page for the current query.
type Pipeline struct {
	tab       Tab
	query     string
	page      int
	gen       int
	fetching  bool
	active    bool
	exhausted bool
	posts     []e621.Post
}

func NewPipeline() *Pipeline {
	return &Pipeline{tab: TabHot, page: 1}
}

func (p *Pipeline) Tab() Tab            { return p.tab }
func (p *Pipeline) Query() string       { return p.query }
func (p *Pipeline) Page() int           { return p.page }
func (p *Pipeline) Fetching() bool      { return p.fetching }
func (p *Pipeline) Posts() []e621.Post  { return p.posts }
func (p *Pipeline) Len() int            { return len(p.posts) }

// Reset starts a new query session at page 1. Any fetch still in flight is
// invalidated by the generation bump.
func (p *Pipeline) Reset(tab Tab, query string) Token {
	p.tab = tab
	p.query = query
	p.page = 1
	p.gen++
	p.posts = nil
	p.fetching = true
	p.active = true
	p.exhausted = false
	return p.token(1)
}

// ResetEmpty enters a short-circuited state: empty list, no fetch.
func (p *Pipeline) ResetEmpty(tab Tab) {
	p.tab = tab
	p.query = ""
	p.page = 1
	p.gen++
	p.posts = nil
	p.fetching = false
	p.active = false
	p.exhausted = false
}

// SetStatic serves a static tab straight from a local collection.
func (p *Pipeline) SetStatic(tab Tab, posts []e621.Post) {
	p.tab = tab
	p.query = ""
	p.page = 1
	p.gen++
	p.posts = append([]e621.Post(nil), posts...)
	p.fetching = false
	p.active = false
	p.exhausted = false
}

// Advance issues the next page for the current query. Returns ok=false when
// a fetch is already in flight, the tab is static or short-circuited, or the
// server has run out of pages.
func (p *Pipeline) Advance() (Token, bool) {
	if !p.active || p.fetching || p.exhausted || p.tab.Static() {
		return Token{}, false
	}
	p.fetching = true
	return p.token(p.page + 1), true
}

// Apply merges one fetched page of raw posts. Page 1 replaces the list,
// later pages append. The pipeline accumulates unfiltered posts so that
// blacklist changes re-evaluate against them without refetching; callers
// derive the visible list through the blacklist engine. A short page marks
// the query exhausted. Stale tokens are discarded and leave all state
// untouched.
func (p *Pipeline) Apply(t Token, page []e621.Post) bool {
	if t.Gen != p.gen {
		return false
	}
	p.fetching = false
	p.page = t.Page
	if len(page) < e621.PageSize {
		p.exhausted = true
	}
	if t.Page == 1 {
		p.posts = append([]e621.Post(nil), page...)
	} else {
		p.posts = append(p.posts, page...)
	}
	return true
}

// Fail clears the in-flight flag for a failed fetch so it can be retried.
// The accumulated list is kept as-is. Stale failures are ignored.
func (p *Pipeline) Fail(t Token) bool {
	if t.Gen != p.gen {
		return false
	}
	p.fetching = false
	return true
}

func (p *Pipeline) token(page int) Token {
	return Token{Gen: p.gen, Page: page, Query: p.query}
}
