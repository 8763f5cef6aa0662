package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// activityNameParam достаёт имя активности из пути.
// chi отдаёт сегмент в исходном виде, поэтому percent-кодирование снимается здесь.
func activityNameParam(r *http.Request) string {
	name := chi.URLParam(r, "activityName")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	ctx := r.Context()
	list, err := h.Activities.ListActivities(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if err := ValidateSignupParams(activityName, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Signup(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	h.Metrics.SignupAccepted()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	activityName := activityNameParam(r)
	email := r.URL.Query().Get("email")
	if err := ValidateSignupParams(activityName, email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Unregister(ctx, activityName, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	h.Metrics.UnregisterAccepted()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
