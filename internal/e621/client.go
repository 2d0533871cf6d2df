package e621

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// PageSize is the fixed posts-per-page the API is asked for.
	PageSize = 20

	// userAgent identifies this client to the API on every request.
	userAgent = "E1324/1.0 (terminal client)"

	// minSuggestionTerm is the shortest term worth an autocomplete round trip.
	minSuggestionTerm = 3
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchPosts returns one page of posts matching the tag query. The page is
// 1-based; pages below 1 are clamped. Credentials are attached as basic auth
// when present and omitted otherwise.
func (c *Client) FetchPosts(ctx context.Context, tags string, page int, creds Credentials) ([]Post, error) {
	if page < 1 {
		page = 1
	}

	q := make(url.Values)
	q.Set("tags", tags)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(PageSize))

	req, err := c.newRequest(ctx, "/posts.json?"+q.Encode(), creds)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Posts []Post `json:"posts"`
	}
	if err := c.do(req, "fetch posts", &payload); err != nil {
		return nil, err
	}
	return payload.Posts, nil
}

// FetchComments returns the comments on a post, oldest first as the API
// delivers them.
func (c *Client) FetchComments(ctx context.Context, postID int64, creds Credentials) ([]Comment, error) {
	q := make(url.Values)
	q.Set("search[post_id]", strconv.FormatInt(postID, 10))

	req, err := c.newRequest(ctx, "/comments.json?"+q.Encode(), creds)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Comments []Comment `json:"comments"`
	}
	if err := c.do(req, "fetch comments", &payload); err != nil {
		return nil, err
	}
	return payload.Comments, nil
}

// FetchWiki returns the wiki page whose title matches the tag, or nil when
// there is none.
func (c *Client) FetchWiki(ctx context.Context, tag string) (*WikiPage, error) {
	q := make(url.Values)
	q.Set("search[title]", tag)

	req, err := c.newRequest(ctx, "/wiki_pages.json?"+q.Encode(), Credentials{})
	if err != nil {
		return nil, err
	}

	var pages []WikiPage
	if err := c.do(req, "fetch wiki page", &pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return &pages[0], nil
}

// FetchUser returns the profile exactly matching username, or nil when there
// is no match. Used both for login verification and blacklist sync.
func (c *Client) FetchUser(ctx context.Context, username string, creds Credentials) (*UserProfile, error) {
	q := make(url.Values)
	q.Set("search[name_matches]", username)

	req, err := c.newRequest(ctx, "/users.json?"+q.Encode(), creds)
	if err != nil {
		return nil, err
	}

	var users []UserProfile
	if err := c.do(req, "fetch user", &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// FetchTagSuggestions returns autocomplete candidates for a partial term.
// Terms shorter than three runes return nil without a request.
func (c *Client) FetchTagSuggestions(ctx context.Context, term string) ([]TagSuggestion, error) {
	if utf8.RuneCountInString(term) < minSuggestionTerm {
		return nil, nil
	}

	q := make(url.Values)
	q.Set("search[name_matches]", term)

	req, err := c.newRequest(ctx, "/tags/autocomplete.json?"+q.Encode(), Credentials{})
	if err != nil {
		return nil, err
	}

	var suggestions []TagSuggestion
	if err := c.do(req, "fetch tag suggestions", &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *Client) newRequest(ctx context.Context, path string, creds Credentials) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if !creds.Empty() {
		req.SetBasicAuth(creds.Username, creds.APIKey)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, action string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s failed with status %d: %s", action, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}
