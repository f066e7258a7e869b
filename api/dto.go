/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal model from the external contract: dates cross the
  wire as ISO strings, hour quantities as numbers, enums as strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/snapshot.go: The persisted form these mirror
*/
package api

import (
	"github.com/warp/pto-planner/engine"
)

// PlanDTO is the full plan state: the persisted snapshot plus whether the
// configuration currently computes.
type PlanDTO struct {
	Config        ConfigDTO `json:"config"`
	SelectedDates []string  `json:"selected_dates"`
	WindowMonths  int       `json:"window_months"`
	Valid         bool      `json:"valid"`
	ConfigError   string    `json:"config_error,omitempty"`
}

// ConfigDTO mirrors the configuration half of the snapshot.
type ConfigDTO struct {
	StartingBalance  float64 `json:"starting_balance"`
	AsOfDate         string  `json:"as_of_date"`
	AccrualAmount    float64 `json:"accrual_amount"`
	AccrualCadence   string  `json:"accrual_cadence"`
	FirstAccrualDate string  `json:"first_accrual_date"`
}

// UpdateConfigRequest replaces the configuration.
type UpdateConfigRequest struct {
	StartingBalance  float64 `json:"starting_balance"`
	AsOfDate         string  `json:"as_of_date"`
	AccrualAmount    float64 `json:"accrual_amount"`
	AccrualCadence   string  `json:"accrual_cadence"`
	FirstAccrualDate string  `json:"first_accrual_date"`
}

// UpdateWindowRequest sets the visible window size.
type UpdateWindowRequest struct {
	Months int `json:"months"`
}

// ToggleSelectionRequest toggles one day off.
type ToggleSelectionRequest struct {
	Date string `json:"date"`
}

// SelectionResultDTO reports what a toggle did.
type SelectionResultDTO struct {
	Date               string `json:"date"`
	Status             string `json:"status"` // "added", "removed", "holiday"
	HolidayName        string `json:"holiday_name,omitempty"`
	WouldExceedBalance bool   `json:"would_exceed_balance"`
}

// ProjectionDTO is the renderer contract (segments, curve, markers).
type ProjectionDTO struct {
	WindowStart    string            `json:"window_start"`
	WindowEnd      string            `json:"window_end"`
	Segments       []SegmentDTO      `json:"segments"`
	BalancePoints  []BalancePointDTO `json:"balance_points"`
	MaxBalance     float64           `json:"max_balance"`
	ThresholdDates []ThresholdDTO    `json:"threshold_dates"`
	MonthMarkers   []MonthMarkerDTO  `json:"month_markers"`
}

type SegmentDTO struct {
	Type        string  `json:"type"`
	HighBalance bool    `json:"high_balance"`
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
}

type BalancePointDTO struct {
	Date     string  `json:"date"`
	Balance  float64 `json:"balance"`
	Position float64 `json:"position"`
}

type ThresholdDTO struct {
	Date     string  `json:"date"`
	Position float64 `json:"position"`
}

type MonthMarkerDTO struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// MonthDTO is the calendar widget contract for one month.
type MonthDTO struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Weeks [][]DayDTO `json:"weeks"`
}

type DayDTO struct {
	Date               string `json:"date"`
	InMonth            bool   `json:"in_month"`
	IsHoliday          bool   `json:"is_holiday"`
	HolidayName        string `json:"holiday_name,omitempty"`
	IsAccrualDate      bool   `json:"is_accrual_date"`
	IsSelected         bool   `json:"is_selected"`
	WouldExceedBalance bool   `json:"would_exceed_balance"`
	IsWeekend          bool   `json:"is_weekend"`
	IsPast             bool   `json:"is_past"`
}

// HolidayDTO is one catalog entry.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPlanDTO(snap engine.Snapshot, cfgErr error) PlanDTO {
	dto := PlanDTO{
		Config: ConfigDTO{
			StartingBalance:  snap.StartingBalance,
			AsOfDate:         snap.AsOfDate,
			AccrualAmount:    snap.AccrualAmount,
			AccrualCadence:   snap.AccrualCadence,
			FirstAccrualDate: snap.FirstAccrualDate,
		},
		SelectedDates: snap.SelectedDates,
		WindowMonths:  snap.Months(),
		Valid:         cfgErr == nil,
	}
	if dto.SelectedDates == nil {
		dto.SelectedDates = []string{}
	}
	if cfgErr != nil {
		dto.ConfigError = cfgErr.Error()
	}
	return dto
}

func toProjectionDTO(p *engine.Projection) ProjectionDTO {
	dto := ProjectionDTO{
		WindowStart:    p.Window.Start.String(),
		WindowEnd:      p.Window.End.String(),
		MaxBalance:     p.MaxBalance.Float64(),
		Segments:       make([]SegmentDTO, len(p.Segments)),
		BalancePoints:  make([]BalancePointDTO, len(p.BalancePoints)),
		ThresholdDates: []ThresholdDTO{},
		MonthMarkers:   make([]MonthMarkerDTO, len(p.MonthMarkers)),
	}
	for i, s := range p.Segments {
		dto.Segments[i] = SegmentDTO{
			Type:        string(s.Type),
			HighBalance: s.HighBalance,
			Left:        s.Left,
			Width:       s.Width,
		}
	}
	for i, bp := range p.BalancePoints {
		dto.BalancePoints[i] = BalancePointDTO{
			Date:     bp.Date.String(),
			Balance:  bp.Balance.Float64(),
			Position: bp.Position,
		}
	}
	for _, t := range p.ThresholdDates {
		dto.ThresholdDates = append(dto.ThresholdDates, ThresholdDTO{
			Date:     t.Date.String(),
			Position: t.Position,
		})
	}
	for i, m := range p.MonthMarkers {
		dto.MonthMarkers[i] = MonthMarkerDTO{Position: m.Position, Label: m.Label}
	}
	return dto
}

func toDayDTO(info engine.DayInfo, inMonth bool) DayDTO {
	return DayDTO{
		Date:               info.Date.String(),
		InMonth:            inMonth,
		IsHoliday:          info.IsHoliday,
		HolidayName:        info.HolidayName,
		IsAccrualDate:      info.IsAccrualDate,
		IsSelected:         info.IsSelected,
		WouldExceedBalance: info.WouldExceedBalance,
		IsWeekend:          info.IsWeekend,
		IsPast:             info.IsPast,
	}
}
