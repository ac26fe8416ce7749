package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/internal/llm"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/internal/theme"
	"github.com/limbo/youthlife/pkg/entity"
)

const (
	coachGoalsLimit      = 5
	coachTemperature     = 0.7
	morningCoachTokens   = 300
	eveningCoachTokens   = 500
	coachSystemPrompt    = `You are the AI coach of the "Youth Life" app. Be warm but honest.`
	morningCoachRequest  = "Write a 3-4 sentence motivating message on how to start today.\n- Reflect the philosophy of the theme\n- Include concrete, actionable advice\n- Keep a positive, encouraging tone"
	breakdownTemperature = 0.8
	breakdownTokens      = 1000
	breakdownRequest     = "Break this goal down into 5-7 concrete tasks.\n- Each task should take 1-3 hours\n- Each task fits one of the themes above\n- Give each task a clear priority (1 high, 3 low)\n- tags are short lowercase words joined by hyphens\n\nAnswer in JSON:\n{\"tasks\": [{\"title\": \"...\", \"description\": \"...\", \"theme\": \"FOCUS\", \"priority\": 1, \"durationMin\": 90, \"tags\": [\"...\"]}]}"
	jsonRetryRequest     = "That answer was not valid JSON. Reply again with the JSON object only."
	eveningCoachRequest  = "Looking back on today, provide:\n1. praise (1-2 sentences): what went well\n2. improvement (1-2 sentences): what can be better tomorrow\n3. tomorrowPriorities (3 items): concrete actions to focus on tomorrow\n\nAnswer in JSON:\n{\"praise\": \"...\", \"improvement\": \"...\", \"tomorrowPriorities\": [\"...\", \"...\", \"...\"]}"
)

type CoachService struct {
	provider    llm.Provider
	tasksRepo   repository.TasksRepositoryI
	statsRepo   repository.StatsRepositoryI
	goalsRepo   repository.GoalsRepositoryI
	reflections repository.ReflectionsRepositoryI
	plansRepo   repository.DayPlansRepositoryI
	clock       Clock
}

type CoachRepos struct {
	Tasks       repository.TasksRepositoryI
	Stats       repository.StatsRepositoryI
	Goals       repository.GoalsRepositoryI
	Reflections repository.ReflectionsRepositoryI
	DayPlans    repository.DayPlansRepositoryI
}

// NewCoachService accepts a nil provider: every call then fails with ErrCoachUnavailable.
func NewCoachService(provider llm.Provider, repos CoachRepos, clock Clock) *CoachService {
	if repos.Tasks == nil || repos.Stats == nil || repos.Goals == nil || repos.Reflections == nil || repos.DayPlans == nil {
		log.Fatal("on coach service provided nil repos")
	}
	return &CoachService{
		provider:    provider,
		tasksRepo:   repos.Tasks,
		statsRepo:   repos.Stats,
		goalsRepo:   repos.Goals,
		reflections: repos.Reflections,
		plansRepo:   repos.DayPlans,
		clock:       clock,
	}
}

type daySummary struct {
	completed int
	total     int
	stats     *entity.Stats
}

func (serv *CoachService) summarizeDay(ctx context.Context, uid uuid.UUID, date time.Time) (*daySummary, error) {
	from, to := serv.clock.DayRange(date)
	tasks, err := serv.tasksRepo.ListByUser(ctx, uid, repository.TaskFilter{From: &from, To: &to})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := &daySummary{total: len(tasks)}
	for _, t := range tasks {
		if t.Status == entity.TaskCompleted {
			summary.completed++
		}
	}
	stats, err := serv.statsRepo.GetByDate(ctx, uid, date)
	if err != nil && !errors.Is(err, errorvalues.ErrStatsNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary.stats = stats
	return summary, nil
}

func formatStats(s *entity.Stats) string {
	return fmt.Sprintf("STR %d INT %d WIS %d CHA %d GRT %d", s.Str, s.Int, s.Wis, s.Cha, s.Grt)
}

// MorningCoach asks the provider for the day's opening message and stores it on the day plan.
func (serv *CoachService) MorningCoach(ctx context.Context, uid uuid.UUID, date time.Time) (string, error) {
	if serv.provider == nil {
		return "", errorvalues.ErrCoachUnavailable
	}
	date = entity.CivilDate(date, time.UTC)
	cfg := theme.Resolve(date)
	goals, err := serv.goalsRepo.ListActive(ctx, uid, coachGoalsLimit)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	yesterday, err := serv.summarizeDay(ctx, uid, date.AddDate(0, 0, -1))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today is a %q day (%s).\n\n", cfg.Label, cfg.Description)
	if len(goals) > 0 {
		b.WriteString("User's goals:\n")
		for i, g := range goals {
			fmt.Fprintf(&b, "%d. %s\n", i+1, g.Title)
		}
		b.WriteString("\n")
	}
	if yesterday.total > 0 || yesterday.stats != nil {
		fmt.Fprintf(&b, "Yesterday: %d/%d tasks completed", yesterday.completed, yesterday.total)
		if yesterday.stats != nil {
			b.WriteString(", stats: " + formatStats(yesterday.stats))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(morningCoachRequest)

	resp, err := serv.provider.SendMessage(ctx, &llm.Request{
		SystemPrompt: coachSystemPrompt,
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:    morningCoachTokens,
		Temperature:  coachTemperature,
	})
	if err != nil {
		return "", errors.New("llm error: " + err.Error())
	}
	message := strings.TrimSpace(resp.Content)

	err = serv.plansRepo.SetMorningCoach(ctx, &entity.DayPlan{
		UserID:          uid,
		Date:            date,
		Theme:           cfg.Type,
		Recommendations: theme.Recommendations(cfg.Type),
		MorningCoach:    message,
	})
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	return message, nil
}

type eveningReply struct {
	Praise             string   `json:"praise"`
	Improvement        string   `json:"improvement"`
	TomorrowPriorities []string `json:"tomorrowPriorities"`
}

// EveningCoach reviews the day's tasks, stats and reflection and stores the feedback.
func (serv *CoachService) EveningCoach(ctx context.Context, uid uuid.UUID, date time.Time) (*EveningFeedback, error) {
	if serv.provider == nil {
		return nil, errorvalues.ErrCoachUnavailable
	}
	date = entity.CivilDate(date, time.UTC)
	cfg := theme.Resolve(date)
	today, err := serv.summarizeDay(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	reflection, err := serv.reflections.GetByDate(ctx, uid, date)
	if err != nil && !errors.Is(err, errorvalues.ErrReflectionNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today was a %q day.\n\nToday's results:\n- completed tasks: %d/%d\n", cfg.Label, today.completed, today.total)
	if today.stats != nil {
		fmt.Fprintf(&b, "- total exp: %d\n- stats: %s\n", today.stats.TotalExp, formatStats(today.stats))
	}
	if reflection != nil {
		a := reflection.Answers
		fmt.Fprintf(&b, "\nReflection:\n- mood: %s (energy %d/10)\n- best thing: %s\n- blocker: %s\n- improvement: %s\n- spending: %s\n- summary: %s\n",
			reflection.Mood, reflection.Energy, a.BestThing, a.Blocker, a.Improvement, a.Spending, a.Summary)
	}
	b.WriteString("\n" + eveningCoachRequest)

	var reply eveningReply
	err = serv.askJSON(ctx, &llm.Request{
		SystemPrompt: coachSystemPrompt,
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:    eveningCoachTokens,
		Temperature:  coachTemperature,
	}, &reply)
	if err != nil {
		return nil, err
	}
	if reply.TomorrowPriorities == nil {
		reply.TomorrowPriorities = []string{}
	}
	feedback := &EveningFeedback{
		Praise:             reply.Praise,
		Improvement:        reply.Improvement,
		TomorrowPriorities: reply.TomorrowPriorities,
	}
	if err = serv.saveEvening(ctx, uid, date, cfg.Type, reflection, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// saveEvening attaches feedback to the day's reflection, or to the day plan when
// nothing was reflected.
func (serv *CoachService) saveEvening(ctx context.Context, uid uuid.UUID, date time.Time, dayTheme entity.Theme, reflection *entity.Reflection, feedback *EveningFeedback) error {
	if reflection != nil {
		reflection.CoachPraise = feedback.Praise
		reflection.CoachImprovement = feedback.Improvement
		reflection.TomorrowPriorities = feedback.TomorrowPriorities
		if err := serv.reflections.SetCoachFeedback(ctx, reflection); err != nil {
			return errors.New("repository error: " + err.Error())
		}
		return nil
	}
	encoded, err := sonic.MarshalString(feedback)
	if err != nil {
		return errors.New("marshalling feedback error: " + err.Error())
	}
	err = serv.plansRepo.SetEveningCoach(ctx, &entity.DayPlan{
		UserID:          uid,
		Date:            date,
		Theme:           dayTheme,
		Recommendations: theme.Recommendations(dayTheme),
		EveningCoach:    encoded,
	})
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// askJSON sends req in JSON mode and decodes the reply into out. An undecodable
// reply is asked for once more with the broken answer kept in the conversation.
func (serv *CoachService) askJSON(ctx context.Context, req *llm.Request, out any) error {
	req.JSONMode = true
	var parseErr error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := serv.provider.SendMessage(ctx, req)
		if err != nil {
			return errors.New("llm error: " + err.Error())
		}
		if resp.StopReason == llm.StopMaxTokens {
			return llm.ErrTruncated
		}
		if parseErr = sonic.UnmarshalString(resp.Content, out); parseErr == nil {
			return nil
		}
		req.Messages = append(req.Messages,
			llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
			llm.Message{Role: llm.RoleUser, Content: jsonRetryRequest},
		)
	}
	return errors.New("parsing coach reply error: " + parseErr.Error())
}

type breakdownReply struct {
	Tasks []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Theme       string   `json:"theme"`
		Priority    int      `json:"priority"`
		DurationMin int      `json:"durationMin"`
		Tags        []string `json:"tags"`
	} `json:"tasks"`
}

// BreakdownGoal asks the provider to split a goal into tasks and stores them
// linked to the goal. Proposed tasks failing task validation are dropped.
func (serv *CoachService) BreakdownGoal(ctx context.Context, uid, goalID uuid.UUID) ([]*entity.Task, error) {
	if serv.provider == nil {
		return nil, errorvalues.ErrCoachUnavailable
	}
	goal, err := serv.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s goal: %s\n", goal.Level, goal.Title)
	if goal.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", goal.Description)
	}
	b.WriteString("\nAvailable themes:\n")
	for _, cfg := range theme.All() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", cfg.Type, cfg.Label, cfg.Description)
	}
	b.WriteString("\n" + breakdownRequest)

	var reply breakdownReply
	err = serv.askJSON(ctx, &llm.Request{
		SystemPrompt: coachSystemPrompt,
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:    breakdownTokens,
		Temperature:  breakdownTemperature,
	}, &reply)
	if err != nil {
		return nil, err
	}

	now := serv.clock.Now()
	fallback := theme.Resolve(entity.CivilDate(now, serv.clock.Loc)).Type
	reqs := make([]*CreateTaskRequest, 0, len(reply.Tasks))
	for _, proposed := range reply.Tasks {
		req := &CreateTaskRequest{
			GoalID:      &goal.ID,
			Title:       strings.TrimSpace(proposed.Title),
			Description: strings.TrimSpace(proposed.Description),
			Tags:        normalizeTags(proposed.Tags),
			Theme:       fallback,
			Priority:    proposed.Priority,
			PlannedAt:   &now,
			DurationMin: proposed.DurationMin,
		}
		if cfg, ok := theme.Lookup(entity.Theme(strings.ToUpper(strings.TrimSpace(proposed.Theme)))); ok {
			req.Theme = cfg.Type
		}
		if validateStruct(req) != nil {
			continue
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return nil, errors.New("coach proposed no valid tasks")
	}

	tasks := make([]*entity.Task, 0, len(reqs))
	for _, req := range reqs {
		task := &entity.Task{
			UserID:      uid,
			GoalID:      req.GoalID,
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			Theme:       req.Theme,
			Priority:    req.Priority,
			Status:      entity.TaskPending,
			PlannedAt:   *req.PlannedAt,
			DurationMin: req.DurationMin,
		}
		if err = serv.tasksRepo.Create(ctx, task); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// normalizeTags lowercases tags and joins words with hyphens.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.Trim(strings.Join(strings.Fields(strings.ToLower(tag)), "-"), "-")
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
