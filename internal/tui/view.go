package tui

import (
	"fmt"
	"strings"

	"github.com/Ivannivi/E1324/internal/feed"
	"github.com/Ivannivi/E1324/internal/render"
	"github.com/Ivannivi/E1324/internal/store"
	"github.com/Ivannivi/E1324/internal/tui/state"
)

var tabOrder = []feed.Tab{
	feed.TabHot,
	feed.TabSearch,
	feed.TabTimeline,
	feed.TabFavorites,
	feed.TabBookmarks,
	feed.TabHistory,
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.view {
	case viewDetail:
		return m.renderDetail()
	case viewBlacklist:
		return m.renderBlacklist()
	case viewSubscriptions:
		return m.renderSubscriptions()
	case viewLogin:
		return m.renderLogin()
	case viewSettings:
		return m.renderSettings()
	}
	return m.renderList()
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.renderSearchBar())
	} else if m.thinking {
		b.WriteString(m.theme.StateLoad.Render("Translating query...") + "\n")
	} else if m.pipeline.Tab() == feed.TabSearch && m.searchQuery != "" {
		b.WriteString(m.theme.MetaLabel.Render("query ") + m.theme.MetaValue.Render(m.searchQuery))
		if m.store.IsSubscribed(m.searchQuery) {
			b.WriteString(m.theme.StateIdle.Render("  [subscribed]"))
		}
		b.WriteString("\n")
	}

	if m.wiki != nil {
		b.WriteString(m.theme.Section.Render(render.TitleFromTag(m.wiki.Title)) + "\n")
		b.WriteString(m.theme.MetaValue.Render(render.WikiSnippet(m.wiki.Body)) + "\n")
	}

	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("E1324"))
	b.WriteString("  ")
	for i, tab := range tabOrder {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == m.pipeline.Tab() {
			b.WriteString(m.theme.Section.Render("[" + label + "]"))
		} else {
			b.WriteString(m.theme.TabPill.Render(label))
		}
		b.WriteString(" ")
	}
	if !m.store.Session().Empty() {
		b.WriteString("  " + m.theme.StateIdle.Render("@"+m.store.Session().Username))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSearchBar() string {
	var b strings.Builder
	mode := "tags"
	if m.smartSearch {
		mode = "smart"
	}
	b.WriteString(m.theme.Section.Render("/ ") + m.searchInput + "█")
	b.WriteString(m.theme.MetaLabel.Render("  (" + mode + ", ctrl+g switches)"))
	b.WriteString("\n")
	if len(m.suggestions) > 0 {
		names := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			names[i] = fmt.Sprintf("%s (%d)", s.Name, s.PostCount)
		}
		b.WriteString(m.theme.MetaLabel.Render("tab: ") + m.theme.MetaValue.Render(strings.Join(names, "  ")) + "\n")
	}
	return b.String()
}

func (m Model) renderRows() string {
	if len(m.visible) == 0 {
		return m.renderEmptyState()
	}

	height := state.PageStep(m.height)
	start, end := state.CenteredWindow(len(m.visible), m.cursor, height)

	var b strings.Builder
	for i := start; i < end; i++ {
		line := m.renderRow(i)
		b.WriteString(m.theme.RenderActiveLine(i == m.cursor, line))
		b.WriteString("\n")
	}
	if m.pipeline.Fetching() {
		b.WriteString(m.theme.StateLoad.Render("Loading more...") + "\n")
	}
	return b.String()
}

func (m Model) renderRow(i int) string {
	post := m.visible[i]
	prefix := "  "
	if i == m.cursor {
		prefix = "> "
	}
	mark := " "
	if m.store.IsBookmarked(post.ID) {
		mark = "*"
	}
	artist := "unknown"
	if len(post.Tags.Artist) > 0 {
		artist = post.Tags.Artist[0]
	}
	return fmt.Sprintf("%s%s #%-8d %s %5d  %dx%d %-4s %-20s %s",
		prefix, mark, post.ID,
		m.theme.StyleRating(post.Rating),
		post.Score.Total,
		post.File.Width, post.File.Height, post.File.Ext,
		clipString(artist, 20),
		clipString(strings.Join(firstN(post.Tags.General, 4), " "), 48),
	)
}

func (m Model) renderEmptyState() string {
	if m.loading {
		return m.theme.StateLoad.Render("Loading...") + "\n"
	}
	if m.fetchErr != nil {
		return m.theme.StateWarn.Render("Fetch failed: "+m.fetchErr.Error()) +
			m.theme.MetaLabel.Render("  (r to retry)") + "\n"
	}

	hint := ""
	switch m.pipeline.Tab() {
	case feed.TabTimeline:
		if len(m.store.Subscriptions()) == 0 {
			hint = "Subscribe to a tag with s on the search tab."
		}
	case feed.TabFavorites:
		if m.store.Session().Empty() {
			hint = "Log in with L to see favorites."
		}
	case feed.TabBookmarks:
		hint = "Bookmark a post with m."
	case feed.TabSearch:
		if m.searchQuery == "" {
			hint = "Press / to search."
		}
	}
	s := m.theme.MetaValue.Render("No posts found.")
	if hint != "" {
		s += "  " + m.theme.MetaLabel.Render(hint)
	}
	return s + "\n"
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return m.theme.StateIdle.Render(m.status)
	}
	return m.theme.MetaLabel.Render("j/k move  enter open  / search  m bookmark  s subscribe  B blacklist  S subs  L login  , settings  ? help  q quit")
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	post := *m.detail

	lines := []string{
		m.theme.Title.Render(fmt.Sprintf("Post #%d", post.ID)) + "  " + m.theme.StyleRating(post.Rating),
		"",
		m.theme.MetaLabel.Render("score    ") + m.theme.MetaValue.Render(fmt.Sprintf("%d (+%d / -%d)", post.Score.Total, post.Score.Up, post.Score.Down)),
		m.theme.MetaLabel.Render("faves    ") + m.theme.MetaValue.Render(fmt.Sprintf("%d", post.FavCount)),
		m.theme.MetaLabel.Render("file     ") + m.theme.MetaValue.Render(fmt.Sprintf("%dx%d %s, %s", post.File.Width, post.File.Height, post.File.Ext, humanSize(post.File.Size))),
		m.theme.MetaLabel.Render("url      ") + m.theme.MetaValue.Render(post.File.URL),
	}
	if m.store.IsBookmarked(post.ID) {
		lines = append(lines, m.theme.StateIdle.Render("bookmarked"))
	}
	lines = append(lines, "")

	for _, group := range post.Tags.Groups() {
		if len(group.Tags) == 0 {
			continue
		}
		styled := make([]string, len(group.Tags))
		for i, tag := range group.Tags {
			styled[i] = m.theme.StyleTag(group.Name, tag)
		}
		lines = append(lines, m.theme.MetaLabel.Render(fmt.Sprintf("%-9s", group.Name))+strings.Join(styled, " "))
	}

	if post.Description != "" {
		lines = append(lines, "", m.theme.Section.Render("Description"))
		for _, l := range strings.Split(render.FlattenHTML(post.Description), "\n") {
			lines = append(lines, m.theme.MetaValue.Render(l))
		}
	}

	lines = append(lines, "", m.theme.Section.Render("Comments"))
	switch {
	case m.commentsLoading[post.ID]:
		lines = append(lines, m.theme.StateLoad.Render("Loading comments..."))
	case m.commentsErr[post.ID] != "":
		lines = append(lines, m.theme.StateWarn.Render("Comments unavailable: "+m.commentsErr[post.ID]))
	case len(m.comments[post.ID]) == 0:
		lines = append(lines, m.theme.MetaLabel.Render("No comments."))
	default:
		for _, c := range m.comments[post.ID] {
			lines = append(lines, m.theme.MetaValue.Render(c.CreatorName)+m.theme.MetaLabel.Render("  "+c.CreatedAt))
			for _, l := range strings.Split(render.FlattenHTML(c.Body), "\n") {
				lines = append(lines, "  "+l)
			}
		}
	}

	body := state.PageStep(m.height) + 4
	top := m.detailTop
	if top > len(lines)-body {
		top = len(lines) - body
	}
	if top < 0 {
		top = 0
	}
	end := top + body
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[top:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.MetaLabel.Render("j/k scroll  [/] prev/next  m bookmark  esc back"))
	return b.String()
}

func (m Model) renderBlacklist() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Blacklist") + "\n\n")

	rules := m.engine.Rules()
	if len(rules) == 0 {
		b.WriteString(m.theme.MetaValue.Render("No rules.") + "\n")
	}
	for i, rule := range rules {
		prefix := "  "
		if i == m.blCursor {
			prefix = "> "
		}
		box := "[x]"
		if !rule.Enabled {
			box = "[ ]"
		}
		line := prefix + box + " " + m.theme.StyleRule(rule.Enabled, rule.Tag)
		b.WriteString(m.theme.RenderActiveLine(i == m.blCursor, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.blAdding {
		b.WriteString(m.theme.Section.Render("add: ") + m.blInput + "█\n")
	} else {
		b.WriteString(m.theme.MetaLabel.Render("a add  space toggle  d remove  esc back") + "\n")
	}
	return b.String()
}

func (m Model) renderSubscriptions() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Subscriptions") + "\n\n")

	subs := m.store.Subscriptions()
	if len(subs) == 0 {
		b.WriteString(m.theme.MetaValue.Render("No subscriptions.") + "  " +
			m.theme.MetaLabel.Render("Subscribe with s on the search tab.") + "\n")
	}
	for i, sub := range subs {
		prefix := "  "
		if i == m.subCursor {
			prefix = "> "
		}
		b.WriteString(m.theme.RenderActiveLine(i == m.subCursor, prefix+sub))
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.theme.MetaLabel.Render("enter search  d remove  esc back") + "\n")
	return b.String()
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Log in") + "\n\n")

	userCursor, keyCursor := "█", ""
	if m.loginFocusKey {
		userCursor, keyCursor = "", "█"
	}
	b.WriteString(m.theme.MetaLabel.Render("username ") + m.loginUser + userCursor + "\n")
	b.WriteString(m.theme.MetaLabel.Render("api key  ") + strings.Repeat("*", len(m.loginKey)) + keyCursor + "\n\n")

	if m.loggingIn {
		b.WriteString(m.theme.StateLoad.Render("Verifying...") + "\n")
	} else if m.loginErr != "" {
		b.WriteString(m.theme.StateWarn.Render(m.loginErr) + "\n")
	}
	b.WriteString("\n" + m.theme.MetaLabel.Render("tab switch field  enter submit  esc back") + "\n")
	return b.String()
}

func (m Model) renderSettings() string {
	s := m.store.Settings()
	onOff := func(v bool) string {
		if v {
			return m.theme.StateIdle.Render("on")
		}
		return m.theme.MetaLabel.Render("off")
	}
	key := "not set"
	if s.GeminiAPIKey != "" {
		key = "set (" + clipString(s.GeminiAPIKey, 4) + "...)"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Settings") + "\n\n")
	b.WriteString(m.theme.MetaLabel.Render("a  autoplay        ") + onOff(s.Autoplay) + "\n")
	b.WriteString(m.theme.MetaLabel.Render("h  record history  ") + onOff(s.EnableHistory) + "\n")
	b.WriteString(m.theme.MetaLabel.Render("g  gemini api key  ") + m.theme.MetaValue.Render(key) + "\n")
	b.WriteString(m.theme.MetaLabel.Render("   proxy           ") + m.theme.MetaValue.Render(proxyLabel(s.Proxy)) + "\n")

	if m.editingKey {
		b.WriteString("\n" + m.theme.Section.Render("gemini key: ") + m.keyInput + "█\n")
	}
	b.WriteString("\n" + m.theme.MetaLabel.Render("esc back") + "\n")
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys") + "\n\n")
	rows := [][2]string{
		{"1-6", "switch tab (hot, search, timeline, favorites, bookmarks, history)"},
		{"j/k", "move cursor"},
		{"g/G", "jump to top / bottom"},
		{"enter", "open post"},
		{"/", "search (ctrl+g toggles smart mode, tab completes)"},
		{"m", "toggle bookmark"},
		{"s", "toggle subscription for the current search"},
		{"B", "blacklist manager"},
		{"S", "subscriptions"},
		{"L", "log in / log out"},
		{"r", "refresh / retry"},
		{",", "settings"},
		{"q", "quit"},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.theme.Section.Render(fmt.Sprintf("%-6s", row[0])),
			m.theme.MetaValue.Render(row[1])))
	}
	b.WriteString("\n" + m.theme.MetaLabel.Render("esc close") + "\n")
	return b.String()
}

func proxyLabel(p store.ProxyConfig) string {
	if p.Host == "" {
		return "none"
	}
	return fmt.Sprintf("%s://%s:%s", p.Type, p.Host, p.Port)
}

func humanSize(bytes int) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/(1<<10))
	}
	return fmt.Sprintf("%d B", bytes)
}

func firstN(tags []string, n int) []string {
	if len(tags) <= n {
		return tags
	}
	return tags[:n]
}

func clipString(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
