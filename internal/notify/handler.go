package notify

import (
	"net/http"
	"strconv"

	"github.com/tobiajayi/daily-verse-api/pkg/response"
)

type Handler struct {
	repo ScheduleRepo
}

func NewHandler(repo ScheduleRepo) Handler {
	return Handler{repo: repo}
}

func (h *Handler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	list, err := h.repo.GetAll(r.Context(), limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get notifications", err.Error())
		return
	}

	if list == nil {
		list = []Notification{}
	}

	response.Success(w, list, "successfully")
}
