package api

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/erazemk/gildedrose/internal/store"
)

// DaysHandler handles the simulated calendar.
type DaysHandler struct {
	DB *sql.DB
}

type advanceRequest struct {
	Days int `json:"days"`
}

// Current handles GET /api/days.
func (h *DaysHandler) Current(w http.ResponseWriter, r *http.Request) {
	day, err := store.CurrentDay(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to get current day", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get current day")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"day": day})
}

// Advance handles POST /api/days/advance. An empty body advances one day.
func (h *DaysHandler) Advance(w http.ResponseWriter, r *http.Request) {
	req := advanceRequest{Days: 1}
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	report, err := store.AdvanceDays(r.Context(), h.DB, req.Days, actorID(r))
	if errors.Is(err, store.ErrInvalidDays) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to advance days", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to advance days")
		return
	}

	slog.Info("inventory aged", "user", GetClaims(r.Context()).Username,
		"from_day", report.FromDay, "to_day", report.ToDay, "items", len(report.Items))
	jsonResponse(w, http.StatusOK, report)
}
