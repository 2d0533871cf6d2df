// Package render flattens remote text fragments (wiki bodies, comment
// bodies) into plain terminal text.
package render

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

// snippetLimit caps the glossary snippet shown above search results.
const snippetLimit = 300

var blockTags = map[string]struct{}{
	"p": {}, "br": {}, "li": {}, "div": {}, "blockquote": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

// FlattenHTML strips markup and unescapes entities, keeping line breaks for
// block-level tags. Plain text passes through unchanged.
func FlattenHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return strings.TrimSpace(b.String())
		case nethtml.TextToken:
			if skipDepth == 0 {
				b.WriteString(string(z.Text()))
			}
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == nethtml.StartTagToken {
					skipDepth++
				}
				continue
			}
			if _, ok := blockTags[tag]; ok && b.Len() > 0 {
				b.WriteByte('\n')
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		}
	}
}

// WikiSnippet reduces a wiki body to its first line, capped for display
// alongside search results.
func WikiSnippet(body string) string {
	line := body
	if i := strings.IndexAny(body, "\r\n"); i >= 0 {
		line = body[:i]
	}
	line = strings.TrimSpace(FlattenHTML(line))
	runes := []rune(line)
	if len(runes) > snippetLimit {
		return string(runes[:snippetLimit]) + "..."
	}
	return line
}

// TitleFromTag turns a tag into a display title.
func TitleFromTag(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
