package service

import (
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultRotaAnchor is the reference date on which teams A and B begin a
// 4-day on-block. All generated years derive from this single anchor so the
// pattern stays continuous across year boundaries.
var DefaultRotaAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// RotaService generates and serves the 4-on/4-off team rota
type RotaService struct {
	rotaRepo  repository.RotaRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
}

// NewRotaService creates a new rota service
func NewRotaService(rotaRepo repository.RotaRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, userRepo repository.UserRepositoryInterface, audit *AuditService, validator *validator.Validate) *RotaService {
	return &RotaService{rotaRepo: rotaRepo, shiftRepo: shiftRepo, userRepo: userRepo, audit: audit, validator: validator}
}

// GenerateRotaRequest represents the input for rota generation
type GenerateRotaRequest struct {
	Year   int    `json:"year" validate:"required,min=2000,max=2100"`
	Anchor string `json:"anchor,omitempty"` // YYYY-MM-DD, defaults to the standing anchor
}

// TeamShiftAssignmentResponse represents one rota day returned to the client
type TeamShiftAssignmentResponse struct {
	ID             uuid.UUID         `json:"id"`
	Year           int               `json:"year"`
	Date           string            `json:"date"`
	DayShiftTeam   *models.ShiftTeam `json:"day_shift_team"`
	NightShiftTeam *models.ShiftTeam `json:"night_shift_team"`
}

// RotaResponse represents a full generated year
type RotaResponse struct {
	Year        int                           `json:"year"`
	Days        int                           `json:"days"`
	Assignments []TeamShiftAssignmentResponse `json:"assignments"`
}

// GenerateFourOnFourOffRota produces one TeamShiftAssignment per calendar day
// of the given year. Teams follow an 8-day cycle measured from the anchor
// date: positions 0-3 put A on days and B on nights, positions 4-7 put C on
// days and D on nights. The anchor is normalized to a date so time-of-day
// never shifts the cycle, and dates before the anchor wrap correctly.
func GenerateFourOnFourOffRota(year int, anchor time.Time) []models.TeamShiftAssignment {
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	assignments := make([]models.TeamShiftAssignment, 0, 366)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		diffDays := int(d.Sub(anchor).Hours() / 24)
		cyclePos := ((diffDays % 8) + 8) % 8

		var dayTeam, nightTeam models.ShiftTeam
		if cyclePos < 4 {
			dayTeam, nightTeam = models.TeamA, models.TeamB
		} else {
			dayTeam, nightTeam = models.TeamC, models.TeamD
		}

		day, night := dayTeam, nightTeam
		assignments = append(assignments, models.TeamShiftAssignment{
			Year:           year,
			Date:           d,
			DayShiftTeam:   &day,
			NightShiftTeam: &night,
		})
	}
	return assignments
}

// Generate builds the rota for a year and replaces any previously stored
// version of that year in one transaction.
func (s *RotaService) Generate(req GenerateRotaRequest, actorID *uuid.UUID) (*RotaResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	anchor := DefaultRotaAnchor
	if req.Anchor != "" {
		parsed, err := time.Parse("2006-01-02", req.Anchor)
		if err != nil {
			return nil, apperrors.NewValidationError("anchor", "must be a date in YYYY-MM-DD format")
		}
		anchor = parsed
	}

	assignments := GenerateFourOnFourOffRota(req.Year, anchor)
	if err := s.rotaRepo.ReplaceYear(req.Year, assignments); err != nil {
		return nil, fmt.Errorf("failed to store rota for %d: %w", req.Year, err)
	}

	logrus.WithFields(logrus.Fields{
		"year": req.Year,
		"days": len(assignments),
	}).Info("team rota generated")
	s.audit.Log(actorID, "ROTA_GENERATED", fmt.Sprintf("Generated %d-day team rota for %d", len(assignments), req.Year), nil)

	stored, err := s.rotaRepo.GetByYear(req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to read back rota for %d: %w", req.Year, err)
	}
	return toRotaResponse(req.Year, stored), nil
}

// GetYear retrieves the stored rota for a year
func (s *RotaService) GetYear(year int) (*RotaResponse, error) {
	assignments, err := s.rotaRepo.GetByYear(year)
	if err != nil {
		return nil, fmt.Errorf("failed to get rota for %d: %w", year, err)
	}
	if len(assignments) == 0 {
		return nil, apperrors.ErrRotaNotFound
	}
	return toRotaResponse(year, assignments), nil
}

// AssignRotaToUsers materializes per-user shifts from the stored team rota.
// Every active user on a rotating team gets one shift per day their team
// covers; previously materialized shifts for those teams and year are
// replaced.
func (s *RotaService) AssignRotaToUsers(year int, actorID *uuid.UUID) (int, error) {
	assignments, err := s.rotaRepo.GetByYear(year)
	if err != nil {
		return 0, fmt.Errorf("failed to get rota for %d: %w", year, err)
	}
	if len(assignments) == 0 {
		return 0, apperrors.ErrRotaNotFound
	}

	members := make(map[models.ShiftTeam][]models.User)
	for _, team := range []models.ShiftTeam{models.TeamA, models.TeamB, models.TeamC, models.TeamD} {
		users, err := s.userRepo.GetByTeam(team)
		if err != nil {
			return 0, fmt.Errorf("failed to get members of team %s: %w", team, err)
		}
		for _, u := range users {
			if u.IsActive {
				members[team] = append(members[team], u)
			}
		}
	}

	rotating := []models.ShiftTeam{models.TeamA, models.TeamB, models.TeamC, models.TeamD}
	if err := s.shiftRepo.DeleteByYearAndTeams(year, rotating); err != nil {
		return 0, fmt.Errorf("failed to clear materialized shifts for %d: %w", year, err)
	}

	var shifts []models.Shift
	for _, a := range assignments {
		if a.DayShiftTeam != nil {
			for _, u := range members[*a.DayShiftTeam] {
				id := u.ID
				shifts = append(shifts, models.Shift{
					Date:        a.Date,
					UserID:      &id,
					TeamID:      *a.DayShiftTeam,
					ShiftPeriod: models.ShiftPeriodAM,
				})
			}
		}
		if a.NightShiftTeam != nil {
			for _, u := range members[*a.NightShiftTeam] {
				id := u.ID
				shifts = append(shifts, models.Shift{
					Date:        a.Date,
					UserID:      &id,
					TeamID:      *a.NightShiftTeam,
					ShiftPeriod: models.ShiftPeriodPM,
				})
			}
		}
	}

	if len(shifts) > 0 {
		if err := s.shiftRepo.CreateBatch(shifts); err != nil {
			return 0, fmt.Errorf("failed to materialize shifts for %d: %w", year, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"year":   year,
		"shifts": len(shifts),
	}).Info("rota materialized to user shifts")
	s.audit.Log(actorID, "ROTA_ASSIGNED", fmt.Sprintf("Materialized %d user shifts from the %d rota", len(shifts), year), nil)

	return len(shifts), nil
}

func toRotaResponse(year int, assignments []models.TeamShiftAssignment) *RotaResponse {
	responses := make([]TeamShiftAssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = TeamShiftAssignmentResponse{
			ID:             a.ID,
			Year:           a.Year,
			Date:           a.Date.Format("2006-01-02"),
			DayShiftTeam:   a.DayShiftTeam,
			NightShiftTeam: a.NightShiftTeam,
		}
	}
	return &RotaResponse{
		Year:        year,
		Days:        len(assignments),
		Assignments: responses,
	}
}
