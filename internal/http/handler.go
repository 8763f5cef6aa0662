package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"activity-signup-service/internal/metrics"
	"activity-signup-service/internal/model"
	"activity-signup-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// ActivityService описывает контракт бизнес-слоя для HTTP-обработчиков.
type ActivityService interface {
	ListActivities(ctx context.Context) (model.ActivityList, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

type Handler struct {
	Activities  ActivityService
	Metrics     *metrics.Metrics
	CORSOrigins []string
	Log         *slog.Logger
}

func NewHandler(activities ActivityService, m *metrics.Metrics, corsOrigins []string, log *slog.Logger) *Handler {
	return &Handler{
		Activities:  activities,
		Metrics:     m,
		CORSOrigins: corsOrigins,
		Log:         log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	origins := h.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(h.Metrics.Middleware)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())

	r.Get("/activities", h.handleActivitiesList)
	r.Route("/activities/{activityName}", func(r chi.Router) {
		r.Post("/signup", h.handleSignup)
		r.Delete("/unregister", h.handleUnregister)
	})

	return r
}

// writeError отдаёт клиенту тело {"detail": "..."} — контракт исходного API.
// Структурированный код ошибки остаётся только в логах.
func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(errorResponse{Detail: appErr.Message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
