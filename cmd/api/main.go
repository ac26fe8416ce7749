package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/api"
	"github.com/limbo/youthlife/internal/llm"
	"github.com/limbo/youthlife/internal/llm/openai"
	"github.com/limbo/youthlife/internal/metrics"
	"github.com/limbo/youthlife/internal/repository"
	"github.com/limbo/youthlife/internal/scheduler"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/cleanup"
	"github.com/limbo/youthlife/pkg/config"
	jwtservice "github.com/limbo/youthlife/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	statsRepo := repository.NewStatsRepoWithConn(pool)
	streaksRepo := repository.NewStreaksRepoWithConn(pool)
	financeRepo := repository.NewFinanceRepoWithConn(pool)
	goalsRepo := repository.NewGoalsRepoWithConn(pool)
	reflectionsRepo := repository.NewReflectionsRepoWithConn(pool)
	plansRepo := repository.NewDayPlansRepoWithConn(pool)
	calendarRepo := repository.NewCalendarRepoWithConn(pool)

	clock := service.NewClock(cfg.Location())
	streaksService := service.NewStreaksService(streaksRepo)
	statsService := service.NewStatsService(statsRepo, clock)

	var provider llm.Provider
	if key := cfg.GetString("LLM_API_KEY"); key != "" {
		provider = openai.NewClient(key, cfg.GetStringOr("LLM_MODEL", "gpt-4o-mini"), logger,
			openai.WithBaseURL(cfg.GetString("LLM_BASE_URL")))
	} else {
		logger.Warn("LLM_API_KEY is not set, coach endpoints are disabled")
	}

	ownerID, err := uuid.Parse(cfg.GetString("OWNER_ID"))
	if err != nil {
		log.Fatal("parsing OWNER_ID error: " + err.Error())
	}

	dayPlanService := service.NewDayPlanService(plansRepo)
	coachService := service.NewCoachService(provider, service.CoachRepos{
		Tasks:       tasksRepo,
		Stats:       statsRepo,
		Goals:       goalsRepo,
		Reflections: reflectionsRepo,
		DayPlans:    plansRepo,
	}, clock)
	m := metrics.New()

	sched, err := scheduler.New(scheduler.Config{
		DayInitSpec:      cfg.GetStringOr("DAY_INIT_CRON", "5 0 * * *"),
		MorningCoachSpec: cfg.GetString("MORNING_COACH_CRON"),
	}, ownerID, dayPlanService, coachService, clock, m, logger)
	if err != nil {
		log.Fatal("creating scheduler error: " + err.Error())
	}
	sched.Start()

	serv := api.New(&api.ServicesList{
		AuthService:         service.NewAuthService(ownerID, cfg.GetString("OWNER_PASSWORD_HASH")),
		TasksService:        service.NewTasksService(tasksRepo, statsService, streaksService, clock, logger),
		StatsService:        statsService,
		AchievementsService: service.NewAchievementsService(tasksRepo, statsRepo, streaksRepo, financeRepo, clock, logger),
		ReflectionsService:  service.NewReflectionsService(reflectionsRepo, streaksService),
		FinanceService:      service.NewFinanceService(financeRepo),
		GoalsService:        service.NewGoalsService(goalsRepo),
		DayPlanService:      dayPlanService,
		CoachService:        coachService,
		CalendarService:     service.NewCalendarService(calendarRepo),
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
		Clock:               clock,
		Metrics:             m,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()
	cleanup.CleanUp()
}
