package progression

import (
	"github.com/limbo/youthlife/pkg/entity"
)

const (
	// DeepWorkMinutes is the duration at which a task counts as deep work.
	DeepWorkMinutes = 90

	deepWorkIntBonus = 5
	deepWorkGrtBonus = 3
	deepWorkExpBonus = 100
	completionGrt    = 2
	minutesPerPoint  = 10
)

var (
	strTags = tagSet("exercise", "workout", "fitness", "sleep", "health")
	intTags = tagSet("learning", "study", "coding", "development", "reading", "research")
	wisTags = tagSet("reflection", "meditation", "review", "planning", "wisdom")
	chaTags = tagSet("networking", "meeting", "presentation", "communication", "social")
)

// StatGain is a per-attribute increment produced by completing a task.
type StatGain struct {
	Str int `json:"str"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
	Grt int `json:"grt"`
}

// Add is element-wise addition.
func (g StatGain) Add(o StatGain) StatGain {
	return StatGain{
		Str: g.Str + o.Str,
		Int: g.Int + o.Int,
		Wis: g.Wis + o.Wis,
		Cha: g.Cha + o.Cha,
		Grt: g.Grt + o.Grt,
	}
}

func tagSet(tags ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

func intersects(tags []string, set map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func duration(task *entity.Task) int {
	if task.DurationMin < 0 {
		return 0
	}
	return task.DurationMin
}

// ComputeStatGain derives attribute gains from the task's tags and planned duration.
func ComputeStatGain(task *entity.Task) StatGain {
	d := duration(task)
	points := d / minutesPerPoint
	var gain StatGain
	if intersects(task.Tags, strTags) {
		gain.Str += points
	}
	if intersects(task.Tags, intTags) {
		gain.Int += points
	}
	if intersects(task.Tags, wisTags) {
		gain.Wis += points
	}
	if intersects(task.Tags, chaTags) {
		gain.Cha += points
	}
	gain.Grt += completionGrt
	if d >= DeepWorkMinutes {
		gain.Int += deepWorkIntBonus
		gain.Grt += deepWorkGrtBonus
	}
	return gain
}

// ComputeExpGain is one exp per minute scaled by priority, plus the deep work bonus.
func ComputeExpGain(task *entity.Task) int {
	d := duration(task)
	// Tenths keep the priority multipliers exact in integer arithmetic.
	exp := d * 10
	switch task.Priority {
	case 1:
		exp = exp * 15 / 10
	case 2:
		exp = exp * 12 / 10
	}
	if d >= DeepWorkMinutes {
		exp += deepWorkExpBonus * 10
	}
	return exp / 10
}

// ApplyStatGain adds gain to the attribute scores of current. Experience and level are left as is.
func ApplyStatGain(current entity.Stats, gain StatGain) entity.Stats {
	current.Str += gain.Str
	current.Int += gain.Int
	current.Wis += gain.Wis
	current.Cha += gain.Cha
	current.Grt += gain.Grt
	return current
}
