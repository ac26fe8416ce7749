package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"github.com/limbo/youthlife/pkg/httputil"
)

const requestIDHeader = "X-Request-ID"

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

// RequestIDMiddleware keeps a client supplied X-Request-ID and echoes it back.
func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("from", r.RemoteAddr),
		)
		if reqID, ok := r.Context().Value(requestIDKContextKey).(string); ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLogMiddleware logs status and latency once the handler returns
// and records them under the matched route pattern.
func (s *Server) AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		took := time.Since(start)
		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		s.metrics.ObserveRequest(r.Method, route, ww.Status(), took)
		GetLoggerFromCtx(r.Context()).Info("request served",
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", took),
		)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUIDFromContext(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("uid", uid.String()))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware admits only live tokens issued to the configured owner.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		claims, err := s.jwtService.ParseToken(tokenString)
		switch {
		case errors.Is(err, errorvalues.ErrInvalidToken):
			logger.Error("auth failed: token rejected")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		case err != nil:
			logger.Error("auth failed: parsing token error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			return
		}
		now := time.Now()
		if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) ||
			(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
			logger.Error("auth failed: token expired or not active yet")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		uid, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Error("auth failed: malformed uid claim")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		if !s.authService.IsOwner(uid) {
			logger.Error("auth failed: token of unknown user", slog.String("uid", uid.String()))
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "auth failed: unknown user", nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no uid in request context")
	}
	return uid, nil
}
