package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/youthlife/internal/achievement"
	"github.com/limbo/youthlife/pkg/httputil"
)

type GetAchievementsResponse struct {
	Unlocked     int                       `json:"unlocked"`
	Total        int                       `json:"total"`
	Achievements []achievement.Achievement `json:"achievements"`
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	snapshot, err := s.statsService.Today(ctx, uid)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, snapshot)
	logger.Info("stats provided")
}

// GetAchievements never fails: an achievement whose data is unavailable is reported locked.
func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	list := s.achievementsService.EvaluateAll(ctx, uid)
	resp := GetAchievementsResponse{
		Total:        len(list),
		Achievements: list,
	}
	for _, a := range list {
		if a.Unlocked {
			resp.Unlocked++
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("achievements provided")
}
