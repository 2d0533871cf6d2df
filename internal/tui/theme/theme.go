package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	TabPill    lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style

	RatingSafe         lipgloss.Style
	RatingQuestionable lipgloss.Style
	RatingExplicit     lipgloss.Style

	RuleEnabled  lipgloss.Style
	RuleDisabled lipgloss.Style

	tagGroups map[string]lipgloss.Style
	tagPlain  lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		TabPill:    lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),

		RatingSafe:         lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
		RatingQuestionable: lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
		RatingExplicit:     lipgloss.NewStyle().Bold(true).Foreground(cpRed),

		RuleEnabled:  lipgloss.NewStyle().Foreground(cpRed),
		RuleDisabled: lipgloss.NewStyle().Foreground(cpOverlay1).Strikethrough(true),

		tagGroups: map[string]lipgloss.Style{
			"artist":    lipgloss.NewStyle().Foreground(cpYellow),
			"character": lipgloss.NewStyle().Foreground(cpGreen),
			"copyright": lipgloss.NewStyle().Foreground(cpMauve),
			"species":   lipgloss.NewStyle().Foreground(cpPeach),
			"general":   lipgloss.NewStyle().Foreground(cpBlue),
			"meta":      lipgloss.NewStyle().Foreground(cpOverlay1),
			"lore":      lipgloss.NewStyle().Foreground(cpTeal),
		},
		tagPlain: lipgloss.NewStyle().Foreground(cpSubtext1),
	}
}

// StyleRating colors the single-letter rating code.
func (t Theme) StyleRating(rating string) string {
	switch rating {
	case "s":
		return t.RatingSafe.Render("S")
	case "q":
		return t.RatingQuestionable.Render("Q")
	case "e":
		return t.RatingExplicit.Render("E")
	}
	return rating
}

// StyleTag colors a tag by its group.
func (t Theme) StyleTag(group, tag string) string {
	if style, ok := t.tagGroups[group]; ok {
		return style.Render(tag)
	}
	return t.tagPlain.Render(tag)
}

// StyleRule renders a blacklist rule tag according to its enabled state.
func (t Theme) StyleRule(enabled bool, tag string) string {
	if enabled {
		return t.RuleEnabled.Render(tag)
	}
	return t.RuleDisabled.Render(tag)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
