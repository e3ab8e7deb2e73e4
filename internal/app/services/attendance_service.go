package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tolgaakgoz/attendly/internal/app/auth"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/app/repositories"
	"github.com/tolgaakgoz/attendly/internal/cache"
	"github.com/tolgaakgoz/attendly/internal/db"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
	"github.com/tolgaakgoz/attendly/internal/pkg/logger"
	"github.com/tolgaakgoz/attendly/internal/pkg/metrics"
)

// AttendanceService handles attendance ledger operations
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	userRepo       *repositories.UserRepository
	database       *db.PostgresDB
	summaryCache   *cache.SummaryCache
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	summaryCache *cache.SummaryCache,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		database:       database,
		summaryCache:   summaryCache,
	}
}

// MarkAttendance writes a batch of (student, date, status) entries. Every
// referenced student must exist before anything is written; the batch then
// commits or rolls back as a unit.
func (s *AttendanceService) MarkAttendance(ctx context.Context, actor *models.User, marks []dto.AttendanceMark) ([]*models.AttendanceRecord, error) {
	if err := auth.Authorize(actor, auth.CapabilityMarkAttendance); err != nil {
		return nil, err
	}

	type parsedMark struct {
		studentID int64
		date      time.Time
		status    string
	}

	parsed := make([]parsedMark, 0, len(marks))
	ids := make([]int64, 0, len(marks))
	for _, m := range marks {
		date, err := helpers.ParseDate(m.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		parsed = append(parsed, parsedMark{studentID: m.StudentID, date: date, status: m.Status})
		ids = append(ids, m.StudentID)
	}

	records := make([]*models.AttendanceRecord, 0, len(parsed))
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// the existence check shares the transaction with the writes;
		// a concurrently deleted user cannot pass it
		existing, err := s.userRepo.CountExistingStudents(ctx, tx, ids)
		if err != nil {
			return err
		}
		for _, m := range parsed {
			if !existing[m.studentID] {
				return apperrors.NewNotFoundError(apperrors.ErrStudentNotFound,
					fmt.Sprintf("student %d not found", m.studentID))
			}
		}

		for _, m := range parsed {
			record, err := s.attendanceRepo.UpsertStatus(ctx, tx, m.studentID, m.date, m.status, actor.ID)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.summaryCache.InvalidateSummary(ctx, ids...)
	metrics.CountAttendanceWrites("mark", len(records))
	logger.Info().Int64("markedBy", actor.ID).Int("records", len(records)).Msg("Attendance batch marked")

	return records, nil
}

// BulkSetDayStatus applies one status to every student for one date inside
// a single transaction and returns how many students were written.
func (s *AttendanceService) BulkSetDayStatus(ctx context.Context, actor *models.User, date time.Time, status string) (int, error) {
	if err := auth.Authorize(actor, auth.CapabilityMarkAttendance); err != nil {
		return 0, err
	}

	var studentIDs []int64
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		studentIDs, err = s.userRepo.ListIDsByRole(ctx, tx, models.RoleStudent)
		if err != nil {
			return err
		}
		if len(studentIDs) == 0 {
			return apperrors.ErrNoStudents
		}

		for _, studentID := range studentIDs {
			if _, err := s.attendanceRepo.UpsertStatus(ctx, tx, studentID, date, status, actor.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.summaryCache.InvalidateSummary(ctx, studentIDs...)
	metrics.CountAttendanceWrites("set_day_status", len(studentIDs))
	logger.Info().Time("date", date).Str("status", status).Int("students", len(studentIDs)).Msg("Day status set")

	return len(studentIDs), nil
}

// AutoMarkHolidays marks every computed holiday of the month as "Holiday"
// for every student, all in one transaction. Returns the holiday dates and
// the number of records written.
func (s *AttendanceService) AutoMarkHolidays(ctx context.Context, actor *models.User, year, month int) ([]time.Time, int, error) {
	if err := auth.Authorize(actor, auth.CapabilityMarkAttendance); err != nil {
		return nil, 0, err
	}
	if month < 1 || month > 12 {
		return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid month: %d", month))
	}

	holidays := HolidayDates(year, time.Month(month))

	var studentIDs []int64
	total := 0
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		studentIDs, err = s.userRepo.ListIDsByRole(ctx, tx, models.RoleStudent)
		if err != nil {
			return err
		}
		if len(studentIDs) == 0 {
			return apperrors.ErrNoStudents
		}

		for _, studentID := range studentIDs {
			for _, date := range holidays {
				if _, err := s.attendanceRepo.UpsertStatus(ctx, tx, studentID, date, models.AttendanceHoliday, actor.ID); err != nil {
					return err
				}
				total++
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	s.summaryCache.InvalidateSummary(ctx, studentIDs...)
	metrics.CountAttendanceWrites("auto_holidays", total)
	logger.Info().Int("year", year).Int("month", month).Int("records", total).Msg("Holidays auto-marked")

	return holidays, total, nil
}

// StudentHistory returns a student's attendance records, newest first.
// Students may read their own history; anything else needs staff access.
func (s *AttendanceService) StudentHistory(ctx context.Context, actor *models.User, studentID int64) ([]*models.AttendanceRecord, error) {
	if actor == nil || actor.ID != studentID {
		if err := auth.Authorize(actor, auth.CapabilityViewStudentData); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepo.GetUserByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found", studentID))
		}
		return nil, err
	}

	return s.attendanceRepo.ListByStudent(ctx, studentID)
}

// AllRecords returns the complete ledger for staff consumers
func (s *AttendanceService) AllRecords(ctx context.Context, actor *models.User) ([]*models.AttendanceRecord, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewStudentData); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListAll(ctx)
}

// Roster returns every student joined to their status for one date
func (s *AttendanceService) Roster(ctx context.Context, actor *models.User, date time.Time) ([]*models.RosterEntry, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewRoster); err != nil {
		return nil, err
	}
	return s.attendanceRepo.RosterForDate(ctx, date)
}

// Percentage returns the student's attendance summary, served from the
// cache when possible. Students may read their own.
func (s *AttendanceService) Percentage(ctx context.Context, actor *models.User, studentID int64) (*models.AttendanceSummary, error) {
	if actor == nil || actor.ID != studentID {
		if err := auth.Authorize(actor, auth.CapabilityViewStudentData); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepo.GetUserByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found", studentID))
		}
		return nil, err
	}

	if cached := s.summaryCache.GetSummary(ctx, studentID); cached != nil {
		return cached, nil
	}

	statuses, err := s.attendanceRepo.StatusesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(studentID, statuses)
	s.summaryCache.SetSummary(ctx, &summary)

	return &summary, nil
}

// HolidayDates computes the institutional holidays of a month: every
// Sunday plus the first and third Saturday, in calendar order.
func HolidayDates(year int, month time.Month) []time.Time {
	var dates []time.Time
	saturdays := 0

	for day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); day.Month() == month; day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Sunday:
			dates = append(dates, day)
		case time.Saturday:
			saturdays++
			if saturdays == 1 || saturdays == 3 {
				dates = append(dates, day)
			}
		}
	}

	return dates
}

// Summarize derives an attendance percentage from raw status labels.
// Holidays drop out of both sides of the ratio; "present", "on_duty" and
// "on-duty" count as present, everything else as absent. Status matching
// ignores case. An empty countable set yields the zero summary.
func Summarize(studentID int64, statuses []string) models.AttendanceSummary {
	summary := models.AttendanceSummary{StudentID: studentID}

	for _, status := range statuses {
		switch strings.ToLower(status) {
		case "holiday":
			continue
		case "present", "on_duty", "on-duty":
			summary.PresentDays++
		}
		summary.TotalDays++
	}

	if summary.TotalDays > 0 {
		ratio := float64(summary.PresentDays) * 100 / float64(summary.TotalDays)
		summary.Percentage = math.Round(ratio*100) / 100
	}

	return summary
}
