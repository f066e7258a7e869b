/*
handlers.go - HTTP handlers for the PTO planner

PURPOSE:
  Exposes the projection engine via REST. Handlers own the presentation
  concerns the engine refuses to know about: loading/saving the plan
  snapshot, defaulting a fresh plan, and mapping engine results to JSON.

ENDPOINTS:
  Plan:
    GET    /api/plan                    Current snapshot + validity
    PUT    /api/plan/config             Replace configuration
    PUT    /api/plan/window             Set window size (6 or 12 months)

  Selections:
    POST   /api/plan/selections         Toggle a day off
    DELETE /api/plan/selections/{date}  Remove a day off

  Projection:
    GET    /api/projection              Segments, curve, markers
    GET    /api/calendar/{year}/{month} Per-day flags for the widget
    GET    /api/holidays?year=YYYY      Catalog entries for one year

REQUEST FLOW:
  1. Load snapshot from store (or default for a fresh plan)
  2. Rebuild the engine (memoized on the snapshot - recomputation is
     deterministic, so the cache can never go stale)
  3. Compute, serialize, respond

ERROR HANDLING:
  Invalid numeric/date input never fails a request: it is coerced per the
  engine's degradation rules. The one refused input is an unsupported
  accrual cadence (400, code "unsupported_cadence"). Weekends are not
  selectable (400, code "weekend_not_selectable"); toggling a holiday is
  a no-op reported as such.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/warp/pto-planner/accrual"
	"github.com/warp/pto-planner/calendar"
	"github.com/warp/pto-planner/engine"
	"github.com/warp/pto-planner/holiday"
)

// catalogYearsBack/Forward bound the holiday span around the as-of year.
// Outside the span a date is simply not a holiday.
const (
	catalogYearsBack    = 1
	catalogYearsForward = 5
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  engine.PlanStore
	Logger zerolog.Logger

	// Engine rebuilds are memoized on the snapshot they were built from.
	mu       sync.Mutex
	cacheKey string
	cached   *engine.Engine
}

// NewHandler creates a handler backed by the given plan store.
func NewHandler(store engine.PlanStore, logger zerolog.Logger) *Handler {
	return &Handler{
		Store:  store,
		Logger: logger.With().Str("component", "api").Logger(),
	}
}

// defaultSnapshot seeds a fresh plan: empty balance anchored at today,
// biweekly cadence, 6-month window.
func defaultSnapshot(today calendar.Date) engine.Snapshot {
	return engine.Snapshot{
		AsOfDate:         today.String(),
		AccrualCadence:   string(accrual.Biweekly),
		FirstAccrualDate: today.String(),
		WindowMonths:     6,
	}
}

// loadSnapshot returns the stored plan, or the default for a fresh one.
func (h *Handler) loadSnapshot(r *http.Request) (engine.Snapshot, error) {
	snap, ok, err := h.Store.LoadPlan(r.Context())
	if err != nil {
		return engine.Snapshot{}, err
	}
	if !ok {
		return defaultSnapshot(calendar.Today()), nil
	}
	return snap, nil
}

// buildEngine rebuilds (or reuses) the engine for a snapshot.
func (h *Handler) buildEngine(snap engine.Snapshot) (*engine.Engine, error) {
	key := fmt.Sprintf("%+v", snap)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cached != nil && h.cacheKey == key {
		return h.cached, nil
	}

	cfg := snap.Config(calendar.Today())
	catalog := holiday.ForYears(
		cfg.AsOfDate.Year()-catalogYearsBack,
		cfg.AsOfDate.Year()+catalogYearsForward,
	)
	eng, err := engine.New(cfg, snap.Selections(), catalog)
	if err != nil {
		return nil, err
	}

	h.cacheKey, h.cached = key, eng
	return eng, nil
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// GetPlan returns the current plan snapshot and whether it computes.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}
	cfgErr := snap.Config(calendar.Today()).Validate()
	writeJSON(w, http.StatusOK, toPlanDTO(snap, cfgErr))
}

// UpdateConfig replaces the plan configuration. Numeric and date fields
// are coerced on read; an unknown cadence is refused outright.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}

	snap.StartingBalance = req.StartingBalance
	snap.AsOfDate = req.AsOfDate
	snap.AccrualAmount = req.AccrualAmount
	snap.AccrualCadence = req.AccrualCadence
	snap.FirstAccrualDate = req.FirstAccrualDate

	if err := snap.Config(calendar.Today()).Validate(); err != nil {
		if errors.Is(err, accrual.ErrUnsupportedCadence) {
			writeErrorCode(w, http.StatusBadRequest, "Unsupported accrual cadence", "unsupported_cadence", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return
	}

	if err := h.Store.SavePlan(r.Context(), snap); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save plan", err)
		return
	}

	h.Logger.Info().Str("as_of", snap.AsOfDate).Msg("configuration updated")
	writeJSON(w, http.StatusOK, toPlanDTO(snap, nil))
}

// UpdateWindow sets the visible window size.
func (h *Handler) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	var req UpdateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Months != 6 && req.Months != 12 {
		writeError(w, http.StatusBadRequest, "Window must be 6 or 12 months", nil)
		return
	}

	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}
	snap.WindowMonths = req.Months
	if err := h.Store.SavePlan(r.Context(), snap); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save plan", err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanDTO(snap, nil))
}

// =============================================================================
// SELECTION HANDLERS
// =============================================================================

// ToggleSelection adds or removes a day off. Weekends are rejected,
// holidays are a no-op (they cannot be toggled), and the response flags
// whether taking the day would drive the balance below zero.
func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req ToggleSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := calendar.Parse(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}
	if date.IsWeekend() {
		writeErrorCode(w, http.StatusBadRequest, "Weekends are not selectable", "weekend_not_selectable", nil)
		return
	}

	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}

	eng, err := h.buildEngine(snap)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Plan configuration is invalid", "unsupported_cadence", err)
		return
	}

	result := SelectionResultDTO{Date: date.String()}
	info := eng.DayInfo(date)

	switch {
	case info.IsHoliday:
		// Mandatory day off; toggling is a no-op.
		result.Status = "holiday"
		result.HolidayName = info.HolidayName
	case info.IsSelected:
		if err := h.Store.RemoveSelection(r.Context(), date.String()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to remove selection", err)
			return
		}
		result.Status = "removed"
	default:
		if err := h.Store.AddSelection(r.Context(), date.String()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to add selection", err)
			return
		}
		result.Status = "added"
		result.WouldExceedBalance = info.WouldExceedBalance
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteSelection removes a day off explicitly.
func (h *Handler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.Parse(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}
	if err := h.Store.RemoveSelection(r.Context(), date.String()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to remove selection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PROJECTION HANDLERS
// =============================================================================

// GetProjection computes the full renderer payload. An optional ?months=
// query overrides the stored window size for this request.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}

	months := snap.Months()
	if q := r.URL.Query().Get("months"); q != "" {
		m, err := strconv.Atoi(q)
		if err != nil || (m != 6 && m != 12) {
			writeError(w, http.StatusBadRequest, "months must be 6 or 12", err)
			return
		}
		months = m
	}

	eng, err := h.buildEngine(snap)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Plan configuration is invalid", "unsupported_cadence", err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectionDTO(eng.Project(months)))
}

// GetCalendarMonth returns the per-day flag grid for one month.
func (h *Handler) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	snap, err := h.loadSnapshot(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}
	eng, err := h.buildEngine(snap)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "Plan configuration is invalid", "unsupported_cadence", err)
		return
	}

	m := time.Month(month)
	dto := MonthDTO{Year: year, Month: month}
	for _, week := range calendar.MonthGrid(year, m) {
		row := make([]DayDTO, 0, len(week))
		for _, d := range week {
			row = append(row, toDayDTO(eng.DayInfo(d), calendar.InMonth(d, year, m)))
		}
		dto.Weeks = append(dto.Weeks, row)
	}

	writeJSON(w, http.StatusOK, dto)
}

// ListHolidays returns the catalog entries for one year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := calendar.Today().Year()
	if q := r.URL.Query().Get("year"); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = y
	}

	catalog := holiday.ForYears(year, year)
	dtos := make([]HolidayDTO, 0, catalog.Len())
	for _, d := range catalog.Dates() {
		name, _ := catalog.NameOf(d)
		dtos = append(dtos, HolidayDTO{Date: d.String(), Name: name})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
