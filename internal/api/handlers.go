package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aeronav/airac-api/internal/airac"
	"github.com/aeronav/airac-api/internal/config"
)

// maxRangeDays caps the range endpoint. A year covers a full cycle schedule;
// anything longer is better served by repeated calls.
const maxRangeDays = 366

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// CyclePayload is the JSON representation of one AIRAC cycle.
type CyclePayload struct {
	ID        string `json:"id"`
	Year      int    `json:"year"`
	Ordinal   int    `json:"ordinal"`
	Effective string `json:"effective"` // YYYY-MM-DD, 00:00:00 UTC
	Expires   string `json:"expires"`   // YYYY-MM-DD, 23:59:59 UTC
	Next      string `json:"next"`
	Previous  string `json:"previous"`
}

// newCyclePayload builds the response body for a cycle.
func newCyclePayload(c airac.Cycle) CyclePayload {
	return CyclePayload{
		ID:        c.String(),
		Year:      c.Year(),
		Ordinal:   c.Ordinal(),
		Effective: c.Effective().Format("2006-01-02"),
		Expires:   c.Next().Effective().Add(-time.Second).Format("2006-01-02"),
		Next:      c.Next().String(),
		Previous:  c.Previous().String(),
	}
}

// HealthCheck handles GET /health
//
// The service computes everything on the fly and has no dependencies to
// probe, so reaching this handler at all means healthy.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetCurrentCycle handles GET /api/v1/cycles/current
func (h *Handlers) GetCurrentCycle(w http.ResponseWriter, r *http.Request) {
	cycle := airac.FromInstant(h.now().UTC())
	WriteSuccess(w, newCyclePayload(cycle))
}

// GetCycleByID handles GET /api/v1/cycles/{id} where id is a four digit
// AIRAC identifier such as "2001".
func (h *Handlers) GetCycleByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cycle, err := airac.FromIdentifier(id)
	switch {
	case errors.Is(err, airac.ErrInvalidFormat):
		WriteBadRequest(w, fmt.Sprintf("Invalid cycle identifier: %q. Use four digits (YYOO)", id))
		return
	case errors.Is(err, airac.ErrNoSuchCycle):
		WriteNotFound(w, fmt.Sprintf("No such cycle: %q", id))
		return
	case err != nil:
		h.logger.Error("failed to resolve cycle identifier",
			slog.String("id", id),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve cycle")
		return
	}

	WriteSuccess(w, newCyclePayload(cycle))
}

// GetCycleByDate handles GET /api/v1/cycles/date/{YYYY-MM-DD}
func (h *Handlers) GetCycleByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	cycle := airac.FromInstant(date.UTC())
	WriteSuccess(w, newCyclePayload(cycle))
}

// GetCycleRange handles GET /api/v1/cycles/range?start=YYYY-MM-DD&end=YYYY-MM-DD
//
// It returns every cycle whose effective window overlaps the inclusive date
// range, i.e. from the cycle in effect on the start date through the cycle in
// effect at the end of the end date.
func (h *Handlers) GetCycleRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	startDate, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	endDate, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if startDate.After(endDate) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	daysDiff := int(endDate.Sub(startDate).Hours() / 24)
	if daysDiff > maxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays))
		return
	}

	// Last instant of the end date, so a cycle starting on the end date is
	// still included.
	endInstant := endDate.Add(24*time.Hour - time.Second)

	var cycles []CyclePayload
	last := airac.FromInstant(endInstant)
	for c := airac.FromInstant(startDate); c.Compare(last) <= 0; c = c.Next() {
		cycles = append(cycles, newCyclePayload(c))
	}

	WriteSuccess(w, map[string]interface{}{
		"start":  startStr,
		"end":    endStr,
		"cycles": cycles,
	})
}
