package service

import (
	"fmt"
	"time"

	"workforce-portal-backend/internal/database/models"
	apperrors "workforce-portal-backend/internal/errors"
	"workforce-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService builds read-only summaries over leave and the rota
type ReportService struct {
	leaveRepo repository.LeaveRequestRepositoryInterface
	rotaRepo  repository.RotaRepositoryInterface
	userRepo  repository.UserRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(leaveRepo repository.LeaveRequestRepositoryInterface, rotaRepo repository.RotaRepositoryInterface, userRepo repository.UserRepositoryInterface) *ReportService {
	return &ReportService{leaveRepo: leaveRepo, rotaRepo: rotaRepo, userRepo: userRepo}
}

// LeaveSummaryEntry aggregates one user's approved leave days by type
type LeaveSummaryEntry struct {
	UserID    uuid.UUID                      `json:"user_id"`
	UserName  string                         `json:"user_name"`
	Team      models.ShiftTeam               `json:"team"`
	ByType    map[models.LeaveTypeID]float64 `json:"by_type"`
	TotalDays float64                        `json:"total_days"`
}

// LeaveSummaryReport aggregates approved leave for a calendar year
type LeaveSummaryReport struct {
	Year    int                 `json:"year"`
	Entries []LeaveSummaryEntry `json:"entries"`
}

// AvailabilityDay describes team cover on one day
type AvailabilityDay struct {
	Date           string            `json:"date"`
	DayShiftTeam   *models.ShiftTeam `json:"day_shift_team"`
	NightShiftTeam *models.ShiftTeam `json:"night_shift_team"`
	DayHeadcount   int               `json:"day_headcount"`
	NightHeadcount int               `json:"night_headcount"`
	OnLeave        []uuid.UUID       `json:"on_leave,omitempty"`
}

// AvailabilityReport describes cover across a date range
type AvailabilityReport struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []AvailabilityDay `json:"days"`
}

// LeaveSummary aggregates each user's approved leave days within a calendar
// year. Half-day leave counts 0.5; ranges are clamped to the year.
func (s *ReportService) LeaveSummary(year int) (*LeaveSummaryReport, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	leave, err := s.leaveRepo.GetApprovedInRange(yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	users, _, err := s.userRepo.GetAll(1000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	byID := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	totals := make(map[uuid.UUID]map[models.LeaveTypeID]float64)
	for _, l := range leave {
		start, end := l.StartDate, l.EndDate
		if start.Before(yearStart) {
			start = yearStart
		}
		if end.After(yearEnd) {
			end = yearEnd
		}

		days := float64(end.Sub(start).Hours()/24) + 1
		if l.IsHalfDay {
			days = 0.5
		}

		if totals[l.UserID] == nil {
			totals[l.UserID] = make(map[models.LeaveTypeID]float64)
		}
		totals[l.UserID][l.LeaveTypeID] += days
	}

	report := &LeaveSummaryReport{Year: year}
	for userID, byType := range totals {
		entry := LeaveSummaryEntry{
			UserID: userID,
			ByType: byType,
		}
		if u, ok := byID[userID]; ok {
			entry.UserName = u.Name
			entry.Team = u.Team
		}
		for _, d := range byType {
			entry.TotalDays += d
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// Availability reports per-day team cover over a date range: which teams are
// on, how many of their members are actually available, and who is on
// approved leave.
func (s *ReportService) Availability(fromStr, toStr string) (*AvailabilityReport, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, apperrors.NewValidationError("from", "must be a date in YYYY-MM-DD format")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, apperrors.NewValidationError("to", "must be a date in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	assignments := make(map[string]models.TeamShiftAssignment)
	for year := from.Year(); year <= to.Year(); year++ {
		yearRows, err := s.rotaRepo.GetByYear(year)
		if err != nil {
			return nil, fmt.Errorf("failed to get rota for %d: %w", year, err)
		}
		for _, a := range yearRows {
			assignments[a.Date.Format("2006-01-02")] = a
		}
	}

	leave, err := s.leaveRepo.GetApprovedInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	members := make(map[models.ShiftTeam][]models.User)
	for _, team := range []models.ShiftTeam{models.TeamA, models.TeamB, models.TeamC, models.TeamD} {
		users, err := s.userRepo.GetByTeam(team)
		if err != nil {
			return nil, fmt.Errorf("failed to get members of team %s: %w", team, err)
		}
		for _, u := range users {
			if u.IsActive {
				members[team] = append(members[team], u)
			}
		}
	}

	report := &AvailabilityReport{From: fromStr, To: toStr}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := AvailabilityDay{Date: key}

		if a, ok := assignments[key]; ok {
			day.DayShiftTeam = a.DayShiftTeam
			day.NightShiftTeam = a.NightShiftTeam
			if a.DayShiftTeam != nil {
				day.DayHeadcount, day.OnLeave = countAvailable(members[*a.DayShiftTeam], leave, d, models.ShiftPeriodAM, day.OnLeave)
			}
			if a.NightShiftTeam != nil {
				day.NightHeadcount, day.OnLeave = countAvailable(members[*a.NightShiftTeam], leave, d, models.ShiftPeriodPM, day.OnLeave)
			}
		}
		report.Days = append(report.Days, day)
	}
	return report, nil
}

func countAvailable(team []models.User, leave []models.LeaveRequest, date time.Time, period models.ShiftPeriod, onLeave []uuid.UUID) (int, []uuid.UUID) {
	available := 0
	for _, u := range team {
		if coveredByLeave(leave, u.ID, date, period) {
			onLeave = append(onLeave, u.ID)
			continue
		}
		available++
	}
	return available, onLeave
}
