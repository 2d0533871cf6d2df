package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivannivi/E1324/internal/blacklist"
	"github.com/Ivannivi/E1324/internal/e621"
	"github.com/Ivannivi/E1324/internal/feed"
	"github.com/Ivannivi/E1324/internal/session"
	"github.com/Ivannivi/E1324/internal/store"
	"github.com/Ivannivi/E1324/internal/tui/state"
	"github.com/Ivannivi/E1324/internal/tui/theme"
)

// API is the slice of the e621 client the model drives.
type API interface {
	FetchPosts(ctx context.Context, tags string, page int, creds e621.Credentials) ([]e621.Post, error)
	FetchComments(ctx context.Context, postID int64, creds e621.Credentials) ([]e621.Comment, error)
	FetchWiki(ctx context.Context, tag string) (*e621.WikiPage, error)
	FetchTagSuggestions(ctx context.Context, term string) ([]e621.TagSuggestion, error)
}

// Translator converts a natural-language description into a tag query.
type Translator interface {
	Translate(ctx context.Context, query string) string
}

type viewMode int

const (
	viewList viewMode = iota
	viewDetail
	viewBlacklist
	viewSubscriptions
	viewLogin
	viewSettings
)

// advanceMargin is how close to the end of the visible list the cursor may
// get before the next page is requested.
const advanceMargin = 5

type postsSuccessMsg struct {
	token feed.Token
	posts []e621.Post
}

type postsErrorMsg struct {
	token feed.Token
	err   error
}

// wikiMsg carries the glossary lookup result; failures collapse to a nil
// page since the lookup is decorative.
type wikiMsg struct {
	gen  int
	page *e621.WikiPage
}

type commentsSuccessMsg struct {
	postID   int64
	comments []e621.Comment
}

type commentsErrorMsg struct {
	postID int64
	err    error
}

type suggestionsMsg struct {
	term        string
	suggestions []e621.TagSuggestion
}

type translateDoneMsg struct {
	tags string
}

type loginSuccessMsg struct {
	profile *e621.UserProfile
}

type loginErrorMsg struct {
	err error
}

type resumeDoneMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}

type Model struct {
	api        API
	translator Translator
	store      *store.Store
	engine     *blacklist.Engine
	holder     *session.Holder
	pipeline   *feed.Pipeline
	theme      theme.Theme

	visible []e621.Post
	cursor  int
	width   int
	height  int

	view     viewMode
	showHelp bool

	searching   bool
	searchInput string
	searchQuery string
	smartSearch bool
	thinking    bool
	suggestions []e621.TagSuggestion

	wiki    *e621.WikiPage
	wikiGen int

	detail          *e621.Post
	detailTop       int
	comments        map[int64][]e621.Comment
	commentsLoading map[int64]bool
	commentsErr     map[int64]string

	blCursor int
	blAdding bool
	blInput  string

	subCursor int

	loginUser     string
	loginKey      string
	loginFocusKey bool
	loggingIn     bool
	loginErr      string

	editingKey bool
	keyInput   string

	loading  bool
	fetchErr error
	status   string
	statusID int

	initCmd tea.Cmd
}

func NewModel(api API, translator Translator, st *store.Store, engine *blacklist.Engine, holder *session.Holder) Model {
	m := Model{
		api:             api,
		translator:      translator,
		store:           st,
		engine:          engine,
		holder:          holder,
		pipeline:        feed.NewPipeline(),
		theme:           theme.Default(),
		comments:        make(map[int64][]e621.Comment),
		commentsLoading: make(map[int64]bool),
		commentsErr:     make(map[int64]string),
	}
	m, cmd := m.enterTab(feed.TabHot)
	m.initCmd = cmd
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(resumeCmd(m.holder), m.initCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case postsSuccessMsg:
		if !m.pipeline.Apply(msg.token, msg.posts) {
			return m, nil
		}
		m.loading = false
		m.fetchErr = nil
		m.refreshVisible()
		return m, nil

	case postsErrorMsg:
		if !m.pipeline.Fail(msg.token) {
			return m, nil
		}
		m.loading = false
		m.fetchErr = msg.err
		return m, nil

	case wikiMsg:
		if msg.gen != m.wikiGen {
			return m, nil
		}
		m.wiki = msg.page
		return m, nil

	case commentsSuccessMsg:
		delete(m.commentsLoading, msg.postID)
		delete(m.commentsErr, msg.postID)
		m.comments[msg.postID] = msg.comments
		return m, nil

	case commentsErrorMsg:
		delete(m.commentsLoading, msg.postID)
		m.commentsErr[msg.postID] = msg.err.Error()
		return m, nil

	case suggestionsMsg:
		if !m.searching || msg.term != lastTerm(m.searchInput) {
			return m, nil
		}
		m.suggestions = msg.suggestions
		return m, nil

	case translateDoneMsg:
		m.thinking = false
		return m.applySearch(msg.tags)

	case loginSuccessMsg:
		m.loggingIn = false
		m.loginErr = ""
		m.view = viewList
		m.setStatus(fmt.Sprintf("Logged in as %s", msg.profile.Name))
		// The merge may have grown the blacklist; re-filter what is on screen.
		m.refreshVisible()
		next, cmd := m.enterTab(m.pipeline.Tab())
		return next, tea.Batch(cmd, clearStatusCmd(next.statusID, 3*time.Second))

	case loginErrorMsg:
		m.loggingIn = false
		m.loginErr = msg.err.Error()
		return m, nil

	case resumeDoneMsg:
		if msg.err != nil {
			m.setStatus("Session resume failed: " + msg.err.Error())
			return m, clearStatusCmd(m.statusID, 4*time.Second)
		}
		m.refreshVisible()
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch m.view {
	case viewDetail:
		return m.handleDetailKey(msg)
	case viewBlacklist:
		return m.handleBlacklistKey(msg)
	case viewSubscriptions:
		return m.handleSubscriptionsKey(msg)
	case viewLogin:
		return m.handleLoginKey(msg)
	case viewSettings:
		return m.handleSettingsKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		m.searching = true
		m.suggestions = nil
		return m, nil
	case "1":
		return m.enterTab(feed.TabHot)
	case "2":
		return m.enterTab(feed.TabSearch)
	case "3":
		return m.enterTab(feed.TabTimeline)
	case "4":
		return m.enterTab(feed.TabFavorites)
	case "5":
		return m.enterTab(feed.TabBookmarks)
	case "6":
		return m.enterTab(feed.TabHistory)
	case "r":
		return m.enterTab(m.pipeline.Tab())
	case "B":
		m.view = viewBlacklist
		m.blCursor = 0
		return m, nil
	case "S":
		m.view = viewSubscriptions
		m.subCursor = 0
		return m, nil
	case ",":
		m.view = viewSettings
		return m, nil
	case "L":
		if m.store.Session().Empty() {
			m.view = viewLogin
			m.loginErr = ""
			return m, nil
		}
		return m.logout()
	case "up", "k":
		return m.moveCursor(-1)
	case "down", "j":
		return m.moveCursor(1)
	case "pgup", "ctrl+b":
		return m.moveCursor(-state.PageStep(m.height))
	case "pgdown", "ctrl+f":
		return m.moveCursor(state.PageStep(m.height))
	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		m.cursor = state.ClampCursor(len(m.visible)-1, len(m.visible))
		return m, nil
	case "m":
		return m.toggleBookmarkAt(m.cursor)
	case "s":
		return m.toggleCurrentSubscription()
	case "enter":
		return m.openDetail()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.suggestions = nil
		m.thinking = false
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.searchInput)
		if input == "" {
			return m, nil
		}
		m.searching = false
		m.suggestions = nil
		if m.smartSearch {
			m.thinking = true
			return m, translateCmd(m.translator, input)
		}
		return m.applySearch(input)
	case "ctrl+g":
		m.smartSearch = !m.smartSearch
		m.suggestions = nil
		return m, nil
	case "ctrl+u":
		m.searchInput = ""
		m.suggestions = nil
		return m, nil
	case "tab":
		if len(m.suggestions) > 0 {
			m.searchInput = replaceLastTerm(m.searchInput, m.suggestions[0].Name)
			m.suggestions = nil
		}
		return m, nil
	case "backspace":
		if m.searchInput != "" {
			runes := []rune(m.searchInput)
			m.searchInput = string(runes[:len(runes)-1])
		}
		return m, m.suggestCmdForInput()
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.searchInput += string(msg.Runes)
		return m, m.suggestCmdForInput()
	case tea.KeySpace:
		m.searchInput += " "
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.view = viewList
		m.detail = nil
		m.detailTop = 0
		return m, nil
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.detailTop > 0 {
			m.detailTop--
		}
		return m, nil
	case "down", "j":
		m.detailTop++
		return m, nil
	case "m":
		if m.detail == nil {
			return m, nil
		}
		return m.toggleBookmarkPost(*m.detail)
	case "[":
		return m.detailStep(-1)
	case "]":
		return m.detailStep(1)
	}
	return m, nil
}

func (m Model) handleBlacklistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.blAdding {
		switch msg.String() {
		case "esc":
			m.blAdding = false
			m.blInput = ""
			return m, nil
		case "enter":
			tag := m.blInput
			m.blAdding = false
			m.blInput = ""
			if err := m.engine.Add(tag); err != nil {
				return m.persistWarn(err)
			}
			m.refreshVisible()
			return m, nil
		case "backspace":
			if m.blInput != "" {
				runes := []rune(m.blInput)
				m.blInput = string(runes[:len(runes)-1])
			}
			return m, nil
		}
		if msg.Type == tea.KeyRunes {
			m.blInput += string(msg.Runes)
		}
		return m, nil
	}

	rules := m.engine.Rules()
	switch msg.String() {
	case "esc", "q":
		m.view = viewList
		return m, nil
	case "a":
		m.blAdding = true
		return m, nil
	case "up", "k":
		m.blCursor = state.ClampCursor(m.blCursor-1, len(rules))
		return m, nil
	case "down", "j":
		m.blCursor = state.ClampCursor(m.blCursor+1, len(rules))
		return m, nil
	case " ":
		if m.blCursor < len(rules) {
			if err := m.engine.Toggle(rules[m.blCursor].Tag); err != nil {
				return m.persistWarn(err)
			}
			m.refreshVisible()
		}
		return m, nil
	case "d", "x":
		if m.blCursor < len(rules) {
			if err := m.engine.Remove(rules[m.blCursor].Tag); err != nil {
				return m.persistWarn(err)
			}
			m.blCursor = state.ClampCursor(m.blCursor, len(rules)-1)
			m.refreshVisible()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSubscriptionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	subs := m.store.Subscriptions()
	switch msg.String() {
	case "esc", "q":
		m.view = viewList
		return m, nil
	case "up", "k":
		m.subCursor = state.ClampCursor(m.subCursor-1, len(subs))
		return m, nil
	case "down", "j":
		m.subCursor = state.ClampCursor(m.subCursor+1, len(subs))
		return m, nil
	case "enter":
		if m.subCursor < len(subs) {
			m.searchInput = subs[m.subCursor]
			return m.applySearch(subs[m.subCursor])
		}
		return m, nil
	case "d", "x":
		if m.subCursor < len(subs) {
			if err := m.store.ToggleSubscription(context.Background(), subs[m.subCursor]); err != nil {
				return m.persistWarn(err)
			}
			m.subCursor = state.ClampCursor(m.subCursor, len(subs)-1)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewList
		return m, nil
	case "tab":
		m.loginFocusKey = !m.loginFocusKey
		return m, nil
	case "enter":
		if m.loggingIn || m.loginUser == "" || m.loginKey == "" {
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, loginCmd(m.holder, m.loginUser, m.loginKey)
	case "backspace":
		if m.loginFocusKey {
			m.loginKey = trimLastRune(m.loginKey)
		} else {
			m.loginUser = trimLastRune(m.loginUser)
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		if m.loginFocusKey {
			m.loginKey += string(msg.Runes)
		} else {
			m.loginUser += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingKey {
		switch msg.String() {
		case "esc":
			m.editingKey = false
			m.keyInput = ""
			return m, nil
		case "enter":
			key := strings.TrimSpace(m.keyInput)
			m.editingKey = false
			m.keyInput = ""
			if err := m.store.UpdateSettings(context.Background(), func(s *store.Settings) {
				s.GeminiAPIKey = key
			}); err != nil {
				return m.persistWarn(err)
			}
			return m, nil
		case "backspace":
			m.keyInput = trimLastRune(m.keyInput)
			return m, nil
		}
		if msg.Type == tea.KeyRunes {
			m.keyInput += string(msg.Runes)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.view = viewList
		return m, nil
	case "a":
		if err := m.store.UpdateSettings(context.Background(), func(s *store.Settings) {
			s.Autoplay = !s.Autoplay
		}); err != nil {
			return m.persistWarn(err)
		}
		return m, nil
	case "h":
		if err := m.store.UpdateSettings(context.Background(), func(s *store.Settings) {
			s.EnableHistory = !s.EnableHistory
		}); err != nil {
			return m.persistWarn(err)
		}
		return m, nil
	case "g":
		m.editingKey = true
		m.keyInput = m.store.Settings().GeminiAPIKey
		return m, nil
	}
	return m, nil
}

// enterTab resets the pipeline for a tab and issues whatever fetches it
// needs. Static tabs load straight from the local collections.
func (m Model) enterTab(tab feed.Tab) (Model, tea.Cmd) {
	m.view = viewList
	m.cursor = 0
	m.fetchErr = nil
	// Any glossary lookup still in flight belongs to the previous query;
	// pipeline generations start at 1, so -1 can never match one.
	m.wiki = nil
	m.wikiGen = -1

	switch tab {
	case feed.TabBookmarks:
		m.pipeline.SetStatic(tab, m.store.Bookmarks())
		m.loading = false
		m.refreshVisible()
		return m, nil
	case feed.TabHistory:
		m.pipeline.SetStatic(tab, m.store.History())
		m.loading = false
		m.refreshVisible()
		return m, nil
	}

	query, ok := feed.BuildQuery(tab, m.searchQuery, m.store.Subscriptions(), m.store.Session().Username)
	if !ok {
		m.pipeline.ResetEmpty(tab)
		m.loading = false
		m.refreshVisible()
		return m, nil
	}

	token := m.pipeline.Reset(tab, query)
	m.loading = true
	m.refreshVisible()

	if feed.WantsGlossary(tab, query) {
		m.wikiGen = token.Gen
		return m, tea.Batch(m.fetchPostsCmd(token), m.fetchWikiCmd(token.Gen, query))
	}
	return m, m.fetchPostsCmd(token)
}

func (m Model) applySearch(query string) (Model, tea.Cmd) {
	m.searchQuery = query
	return m.enterTab(feed.TabSearch)
}

func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	m.cursor = state.ClampCursor(m.cursor+delta, len(m.visible))
	if !state.NearEnd(m.cursor, len(m.visible), advanceMargin) {
		return m, nil
	}
	token, ok := m.pipeline.Advance()
	if !ok {
		return m, nil
	}
	return m, m.fetchPostsCmd(token)
}

func (m Model) openDetail() (Model, tea.Cmd) {
	if m.cursor >= len(m.visible) {
		return m, nil
	}
	post := m.visible[m.cursor]
	m.detail = &post
	m.detailTop = 0
	m.view = viewDetail

	if err := m.store.RecordHistory(context.Background(), post); err != nil {
		return m.persistWarn(err)
	}
	return m, m.ensureCommentsCmd(post.ID)
}

func (m Model) detailStep(delta int) (Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	next := state.ClampCursor(m.cursor+delta, len(m.visible))
	if next == m.cursor {
		return m, nil
	}
	m.cursor = next
	post := m.visible[m.cursor]
	m.detail = &post
	m.detailTop = 0
	if err := m.store.RecordHistory(context.Background(), post); err != nil {
		return m.persistWarn(err)
	}
	return m, m.ensureCommentsCmd(post.ID)
}

func (m Model) toggleBookmarkAt(i int) (Model, tea.Cmd) {
	if i >= len(m.visible) {
		return m, nil
	}
	return m.toggleBookmarkPost(m.visible[i])
}

func (m Model) toggleBookmarkPost(post e621.Post) (Model, tea.Cmd) {
	if err := m.store.ToggleBookmark(context.Background(), post); err != nil {
		return m.persistWarn(err)
	}
	if m.store.IsBookmarked(post.ID) {
		m.setStatus(fmt.Sprintf("Bookmarked #%d", post.ID))
	} else {
		m.setStatus(fmt.Sprintf("Removed bookmark #%d", post.ID))
	}
	if m.pipeline.Tab() == feed.TabBookmarks {
		m.pipeline.SetStatic(feed.TabBookmarks, m.store.Bookmarks())
		m.refreshVisible()
	}
	return m, clearStatusCmd(m.statusID, 3*time.Second)
}

func (m Model) toggleCurrentSubscription() (Model, tea.Cmd) {
	if m.pipeline.Tab() != feed.TabSearch || m.searchQuery == "" {
		return m, nil
	}
	if err := m.store.ToggleSubscription(context.Background(), m.searchQuery); err != nil {
		return m.persistWarn(err)
	}
	if m.store.IsSubscribed(m.searchQuery) {
		m.setStatus("Subscribed to " + m.searchQuery)
	} else {
		m.setStatus("Unsubscribed from " + m.searchQuery)
	}
	return m, clearStatusCmd(m.statusID, 3*time.Second)
}

func (m Model) logout() (Model, tea.Cmd) {
	if err := m.holder.Logout(context.Background()); err != nil {
		return m.persistWarn(err)
	}
	m.setStatus("Logged out")
	next, cmd := m.enterTab(m.pipeline.Tab())
	return next, tea.Batch(cmd, clearStatusCmd(next.statusID, 3*time.Second))
}

func (m *Model) refreshVisible() {
	m.visible = m.engine.Filter(m.pipeline.Posts())
	m.cursor = state.ClampCursor(m.cursor, len(m.visible))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusID++
}

func (m Model) persistWarn(err error) (Model, tea.Cmd) {
	m.setStatus("Could not persist local state: " + err.Error())
	return m, clearStatusCmd(m.statusID, 4*time.Second)
}

func (m Model) suggestCmdForInput() tea.Cmd {
	if m.smartSearch {
		return nil
	}
	term := lastTerm(m.searchInput)
	if len([]rune(term)) < 3 {
		return nil
	}
	return suggestCmd(m.api, term)
}

func (m Model) ensureCommentsCmd(postID int64) tea.Cmd {
	if _, ok := m.comments[postID]; ok {
		return nil
	}
	if m.commentsLoading[postID] {
		return nil
	}
	m.commentsLoading[postID] = true
	return fetchCommentsCmd(m.api, postID, m.store.Session())
}

func lastTerm(input string) string {
	terms := strings.Fields(input)
	if len(terms) == 0 || strings.HasSuffix(input, " ") {
		return ""
	}
	return terms[len(terms)-1]
}

func replaceLastTerm(input, replacement string) string {
	terms := strings.Fields(input)
	if len(terms) == 0 {
		return replacement + " "
	}
	terms[len(terms)-1] = replacement
	return strings.Join(terms, " ") + " "
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func (m Model) fetchPostsCmd(token feed.Token) tea.Cmd {
	api := m.api
	creds := m.store.Session()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()

		posts, err := api.FetchPosts(ctx, token.Query, token.Page, creds)
		if err != nil {
			return postsErrorMsg{token: token, err: err}
		}
		return postsSuccessMsg{token: token, posts: posts}
	}
}

func (m Model) fetchWikiCmd(gen int, tag string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		page, err := api.FetchWiki(ctx, tag)
		if err != nil {
			return wikiMsg{gen: gen, page: nil}
		}
		return wikiMsg{gen: gen, page: page}
	}
}

func fetchCommentsCmd(api API, postID int64, creds e621.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		comments, err := api.FetchComments(ctx, postID, creds)
		if err != nil {
			return commentsErrorMsg{postID: postID, err: err}
		}
		return commentsSuccessMsg{postID: postID, comments: comments}
	}
}

func suggestCmd(api API, term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		suggestions, err := api.FetchTagSuggestions(ctx, term)
		if err != nil {
			return suggestionsMsg{term: term, suggestions: nil}
		}
		if len(suggestions) > 5 {
			suggestions = suggestions[:5]
		}
		return suggestionsMsg{term: term, suggestions: suggestions}
	}
}

func translateCmd(translator Translator, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		return translateDoneMsg{tags: translator.Translate(ctx, query)}
	}
}

func loginCmd(holder *session.Holder, username, apiKey string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		profile, err := holder.Login(ctx, username, apiKey)
		if err != nil {
			return loginErrorMsg{err: err}
		}
		return loginSuccessMsg{profile: profile}
	}
}

func resumeCmd(holder *session.Holder) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return resumeDoneMsg{err: holder.Resume(ctx)}
	}
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
