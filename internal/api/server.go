package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/youthlife/internal/metrics"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/cleanup"
)

const shutdownTimeout = time.Second * 10

type Server struct {
	mx                  *chi.Mux
	authService         service.AuthServiceI
	tasksService        service.TasksServiceI
	statsService        service.StatsServiceI
	achievementsService service.AchievementsServiceI
	reflectionsService  service.ReflectionsServiceI
	financeService      service.FinanceServiceI
	goalsService        service.GoalsServiceI
	dayPlanService      service.DayPlanServiceI
	coachService        service.CoachServiceI
	calendarService     service.CalendarServiceI
	jwtService          JWTServiceI
	clock               service.Clock
	metrics             *metrics.Metrics
}

type ServicesList struct {
	AuthService         service.AuthServiceI
	TasksService        service.TasksServiceI
	StatsService        service.StatsServiceI
	AchievementsService service.AchievementsServiceI
	ReflectionsService  service.ReflectionsServiceI
	FinanceService      service.FinanceServiceI
	GoalsService        service.GoalsServiceI
	DayPlanService      service.DayPlanServiceI
	CoachService        service.CoachServiceI
	CalendarService     service.CalendarServiceI
	JwtService          JWTServiceI
	// Resolves "today" for requests without an explicit date. UTC when zero
	Clock service.Clock
	// Optional. /metrics is served only when set
	Metrics *metrics.Metrics
}

func New(servicesOptions *ServicesList) *Server {
	clock := servicesOptions.Clock
	if clock.Now == nil {
		clock = service.NewClock(clock.Loc)
	}
	s := &Server{
		mx:                  chi.NewMux(),
		authService:         servicesOptions.AuthService,
		tasksService:        servicesOptions.TasksService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		reflectionsService:  servicesOptions.ReflectionsService,
		financeService:      servicesOptions.FinanceService,
		goalsService:        servicesOptions.GoalsService,
		dayPlanService:      servicesOptions.DayPlanService,
		coachService:        servicesOptions.CoachService,
		calendarService:     servicesOptions.CalendarService,
		jwtService:          servicesOptions.JwtService,
		clock:               clock,
		metrics:             servicesOptions.Metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	if s.metrics != nil {
		s.mx.Handle("/metrics", s.metrics.Handler())
	}
	s.mx.Post("/auth/login", s.Login)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/theme", s.GetTheme)
		r.Post("/day/init", s.InitDay)
		r.Post("/coach/morning", s.MorningCoach)
		r.Post("/coach/evening", s.EveningCoach)

		r.Post("/tasks", s.CreateTask)
		r.Get("/tasks", s.ListTasks)
		r.Patch("/tasks/{id}", s.UpdateTask)
		r.Delete("/tasks/{id}", s.DeleteTask)

		r.Get("/stats", s.GetStats)
		r.Get("/achievements", s.GetAchievements)

		r.Post("/reflections", s.SaveReflection)
		r.Get("/reflections/{date}", s.GetReflection)

		r.Post("/finance", s.AddFinanceEntry)
		r.Get("/finance", s.ListFinanceEntries)

		r.Post("/goals", s.CreateGoal)
		r.Get("/goals", s.ListGoals)
		r.Patch("/goals/{id}", s.UpdateGoal)
		r.Post("/goals/{id}/breakdown", s.BreakdownGoal)

		r.Post("/calendar", s.CreateMemo)
		r.Get("/calendar", s.ListMemos)
		r.Patch("/calendar/{id}", s.UpdateMemo)
		r.Delete("/calendar/{id}", s.DeleteMemo)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server is shut down through cleanup.CleanUp.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 5,
	}
	cleanup.Register(&cleanup.Job{
		Name: "http server shutdown",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("server started", slog.String("address", addr))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
