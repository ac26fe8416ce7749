package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/youthlife/internal/service"
	"github.com/limbo/youthlife/pkg/entity"
	"github.com/limbo/youthlife/pkg/httputil"
)

type CreateMemoRequest struct {
	Date      string  `json:"date"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Color     string  `json:"color"`
	AllDay    *bool   `json:"all_day"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type UpdateMemoRequest struct {
	Date      *string `json:"date"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Color     *string `json:"color"`
	AllDay    *bool   `json:"all_day"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type GetMemosResponse struct {
	Memos []*entity.CalendarMemo `json:"memos"`
}

func (s *Server) CreateMemo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create memo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateMemoRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create memo error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		logger.Error("create memo error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	memo, err := s.calendarService.CreateMemo(ctx, uid, &service.CreateMemoRequest{
		Date:      date,
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		AllDay:    req.AllDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeServiceError(w, logger, "memo creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, memo)
	logger.Info("memo created", slog.String("memo_id", memo.ID.String()))
}

// ListMemos filters by ?year=&month= when both are present.
func (s *Server) ListMemos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get memos error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req := service.ListMemosRequest{}
	query := r.URL.Query()
	if rawYear, rawMonth := query.Get("year"), query.Get("month"); rawYear != "" && rawMonth != "" {
		year, errYear := strconv.Atoi(rawYear)
		month, errMonth := strconv.Atoi(rawMonth)
		if errYear != nil || errMonth != nil {
			logger.Error("get memos error: invalid year or month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year or month, expected numbers", nil)
			return
		}
		req.Year, req.Month = year, month
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	memos, err := s.calendarService.ListMemos(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "memos listing", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMemosResponse{Memos: memos})
	logger.Info("memos provided")
}

func (s *Server) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("memo update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("memo update error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid memo id in path value", nil)
		return
	}
	var req UpdateMemoRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("memo update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var date *time.Time
	if req.Date != nil {
		parsed, err := entity.ParseDate(*req.Date)
		if err != nil {
			logger.Error("memo update error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		date = &parsed
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	memo, err := s.calendarService.UpdateMemo(ctx, uid, id, &service.UpdateMemoRequest{
		Date:      date,
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		AllDay:    req.AllDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeServiceError(w, logger, "memo update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, memo)
	logger.Info("memo updated", slog.String("memo_id", id.String()))
}

func (s *Server) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("memo deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("memo deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid memo id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	err = s.calendarService.DeleteMemo(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "memo deletion", err)
		return
	}
	httputil.WriteNoContent(w, http.StatusNoContent)
	logger.Info("memo deleted", slog.String("memo_id", id.String()))
}
