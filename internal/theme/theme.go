package theme

import (
	"time"

	"github.com/limbo/youthlife/pkg/entity"
)

type Config struct {
	Type        entity.Theme `json:"type"`
	Emoji       string       `json:"emoji"`
	Label       string       `json:"label"`
	Color       string       `json:"color"`
	Description string       `json:"description"`
}

var configs = map[entity.Theme]Config{
	entity.ThemeExecute: {
		Type:        entity.ThemeExecute,
		Emoji:       "🔥",
		Label:       "Execute day",
		Color:       "#FF6B35",
		Description: "Set weekly goals, push the important work forward",
	},
	entity.ThemeFocus: {
		Type:        entity.ThemeFocus,
		Emoji:       "🧱",
		Label:       "Focus day",
		Color:       "#4ECDC4",
		Description: "Study and work immersion (deep work)",
	},
	entity.ThemeOrganize: {
		Type:        entity.ThemeOrganize,
		Emoji:       "💧",
		Label:       "Organize day",
		Color:       "#45B7D1",
		Description: "Routine check, money management, calm mind",
	},
	entity.ThemeExpand: {
		Type:        entity.ThemeExpand,
		Emoji:       "🌳",
		Label:       "Expand day",
		Color:       "#96CEB4",
		Description: "Networking, ideas, market research",
	},
	entity.ThemeWrap: {
		Type:        entity.ThemeWrap,
		Emoji:       "⚙",
		Label:       "Wrap day",
		Color:       "#FFEAA7",
		Description: "Weekly close, review, record keeping",
	},
	entity.ThemeRecover: {
		Type:        entity.ThemeRecover,
		Emoji:       "🪶",
		Label:       "Recover day",
		Color:       "#DFE6E9",
		Description: "Exercise, tidying, hobbies, nature",
	},
	entity.ThemeReflect: {
		Type:        entity.ThemeReflect,
		Emoji:       "🌙",
		Label:       "Reflect day",
		Color:       "#A29BFE",
		Description: "Journal, gratitude, plan the next week",
	},
}

var byWeekday = [7]entity.Theme{
	time.Sunday:    entity.ThemeReflect,
	time.Monday:    entity.ThemeExecute,
	time.Tuesday:   entity.ThemeFocus,
	time.Wednesday: entity.ThemeOrganize,
	time.Thursday:  entity.ThemeExpand,
	time.Friday:    entity.ThemeWrap,
	time.Saturday:  entity.ThemeRecover,
}

var recommendations = map[entity.Theme][]string{
	entity.ThemeExecute: {
		"Finish one revenue-loop deliverable",
		"Build a core project feature",
		"Complete an important document",
	},
	entity.ThemeFocus: {
		"Deep work 90 minutes (coding/learning)",
		"Learn a new piece of the tech stack",
		"Focused reading for 60 minutes",
	},
	entity.ThemeOrganize: {
		"Sort out this week's money",
		"Clean the backlog and re-prioritize",
		"Update the routine checklist",
	},
	entity.ThemeExpand: {
		"One networking meeting",
		"Idea brainstorming",
		"Market and competitor research",
	},
	entity.ThemeWrap: {
		"Write the weekly report",
		"Ship or release a finished project",
		"Set next week's goals",
	},
	entity.ThemeRecover: {
		"Exercise 30 minutes or more",
		"Hobby time for 60 minutes",
		"Walk outside or meditate",
	},
	entity.ThemeReflect: {
		"Write the weekly retrospective",
		"Three things you are grateful for",
		"Plan the next week",
	},
}

// Resolve maps the weekday of date to its theme configuration.
// The weekday is taken from date's own location.
func Resolve(date time.Time) Config {
	return configs[byWeekday[date.Weekday()]]
}

// Lookup returns the configuration of t, reporting false for unknown themes.
func Lookup(t entity.Theme) (Config, bool) {
	c, ok := configs[t]
	return c, ok
}

// Recommendations returns the canned task suggestions for t.
func Recommendations(t entity.Theme) []string {
	recs := recommendations[t]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// All lists the seven themes starting from Monday.
func All() []Config {
	out := make([]Config, 0, len(configs))
	for d := time.Monday; ; d = (d + 1) % 7 {
		out = append(out, configs[byWeekday[d]])
		if d == time.Sunday {
			break
		}
	}
	return out
}
