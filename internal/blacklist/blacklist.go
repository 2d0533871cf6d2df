// Package blacklist evaluates user-declared hide rules against posts.
package blacklist

import (
	"strings"

	"github.com/Ivannivi/E1324/internal/e621"
)

// Rule hides posts carrying its tag while enabled. A disabled rule is
// retained but has no filtering effect.
type Rule struct {
	Tag     string `json:"tag"`
	Enabled bool   `json:"enabled"`
}

// PersistFunc writes the full rule list. Invoked after every mutation that
// changed the list.
type PersistFunc func([]Rule) error

// Engine owns an ordered rule list. Order is display order; new rules are
// prepended. At most one rule exists per normalized tag.
type Engine struct {
	rules   []Rule
	persist PersistFunc
}

func NewEngine(rules []Rule, persist PersistFunc) *Engine {
	return &Engine{rules: append([]Rule(nil), rules...), persist: persist}
}

// Rules returns a copy of the rule list in display order.
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func (e *Engine) indexOf(tag string) int {
	for i, r := range e.rules {
		if r.Tag == tag {
			return i
		}
	}
	return -1
}

// Add prepends an enabled rule for tag. Empty tags and duplicates are no-ops.
func (e *Engine) Add(tag string) error {
	tag = normalize(tag)
	if tag == "" || e.indexOf(tag) >= 0 {
		return nil
	}
	e.rules = append([]Rule{{Tag: tag, Enabled: true}}, e.rules...)
	return e.save()
}

// Remove deletes the rule for tag, if any.
func (e *Engine) Remove(tag string) error {
	i := e.indexOf(normalize(tag))
	if i < 0 {
		return nil
	}
	e.rules = append(e.rules[:i], e.rules[i+1:]...)
	return e.save()
}

// Toggle flips the enabled state of the rule for tag, if any.
func (e *Engine) Toggle(tag string) error {
	i := e.indexOf(normalize(tag))
	if i < 0 {
		return nil
	}
	e.rules[i].Enabled = !e.rules[i].Enabled
	return e.save()
}

// MergeImport folds a newline-delimited server blacklist into the rule list.
// Tags not yet present are appended as enabled; existing rules keep their
// enabled state. Persists only when something was added, so repeat imports
// of the same list are no-ops.
func (e *Engine) MergeImport(serverList string) error {
	added := false
	for _, line := range strings.Split(serverList, "\n") {
		tag := normalize(strings.TrimSuffix(line, "\r"))
		if tag == "" || e.indexOf(tag) >= 0 {
			continue
		}
		e.rules = append(e.rules, Rule{Tag: tag, Enabled: true})
		added = true
	}
	if !added {
		return nil
	}
	return e.save()
}

// IsBlocked reports whether any enabled rule's tag appears in the post's
// flat tag set. The set is the lowercased union of all tag groups plus a
// synthetic rating:<code> tag. Matching is exact containment, not substring.
func (e *Engine) IsBlocked(post e621.Post) bool {
	enabled := e.enabledTags()
	if len(enabled) == 0 {
		return false
	}

	if _, ok := enabled["rating:"+strings.ToLower(post.Rating)]; ok {
		return true
	}
	for _, group := range post.Tags.Groups() {
		for _, tag := range group.Tags {
			if _, ok := enabled[strings.ToLower(tag)]; ok {
				return true
			}
		}
	}
	return false
}

// Filter returns the posts not blocked by any enabled rule.
func (e *Engine) Filter(posts []e621.Post) []e621.Post {
	visible := make([]e621.Post, 0, len(posts))
	for _, p := range posts {
		if !e.IsBlocked(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

func (e *Engine) enabledTags() map[string]struct{} {
	set := make(map[string]struct{}, len(e.rules))
	for _, r := range e.rules {
		if r.Enabled {
			set[r.Tag] = struct{}{}
		}
	}
	return set
}

func (e *Engine) save() error {
	if e.persist == nil {
		return nil
	}
	return e.persist(e.Rules())
}
