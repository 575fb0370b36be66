package verse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tobiajayi/daily-verse-api/internal/stage"
	"github.com/tobiajayi/daily-verse-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

func (h *Handler) GetVerseHandler(w http.ResponseWriter, r *http.Request) {
	v, st := h.service.Current()

	response.Success(w, map[string]interface{}{
		"verse": v,
		"stage": st.String(),
	}, "successfully")
}

func (h *Handler) GetStageHandler(w http.ResponseWriter, r *http.Request) {
	_, st := h.service.Current()

	response.Success(w, map[string]string{
		"stage": st.String(),
	}, "successfully")
}

func (h *Handler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, stage.ErrInvalidTransition) {
			response.Error(w, http.StatusConflict, "Refresh not available yet", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to refresh verse", err.Error())
		return
	}

	v, _ := h.service.Current()
	response.Success(w, map[string]interface{}{
		"verse": v,
		"stage": st.String(),
	}, "successfully")
}

func (h *Handler) RevealCompleteHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.FinishReveal()
	if err != nil {
		response.Error(w, http.StatusConflict, "No reveal in progress", err.Error())
		return
	}

	response.Success(w, map[string]string{
		"stage": st.String(),
	}, "successfully")
}

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := h.service.history.GetHistory(r.Context(), limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get verse history", err.Error())
		return
	}

	if entries == nil {
		entries = []HistoryEntry{}
	}

	response.Success(w, entries, "successfully")
}
