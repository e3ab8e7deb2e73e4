package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tolgaakgoz/attendly/internal/app/auth"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/app/repositories"
	"github.com/tolgaakgoz/attendly/internal/cache"
	"github.com/tolgaakgoz/attendly/internal/db"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
	"github.com/tolgaakgoz/attendly/internal/pkg/filestorage"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
	"github.com/tolgaakgoz/attendly/internal/pkg/logger"
	"github.com/tolgaakgoz/attendly/internal/pkg/metrics"
)

// LeaveService handles the leave request workflow: submission, role-scoped
// visibility and the pending -> approved|rejected transition with its
// attendance reconciliation.
type LeaveService struct {
	leaveRepo      *repositories.LeaveRequestRepository
	userRepo       *repositories.UserRepository
	attendanceRepo *repositories.AttendanceRepository
	database       *db.PostgresDB
	storage        filestorage.FileStorage
	summaryCache   *cache.SummaryCache
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(
	leaveRepo *repositories.LeaveRequestRepository,
	userRepo *repositories.UserRepository,
	attendanceRepo *repositories.AttendanceRepository,
	database *db.PostgresDB,
	storage filestorage.FileStorage,
	summaryCache *cache.SummaryCache,
) *LeaveService {
	return &LeaveService{
		leaveRepo:      leaveRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		database:       database,
		storage:        storage,
		summaryCache:   summaryCache,
	}
}

// Create submits a pending leave request for the acting student. The date
// range is validated before anything is written. When no advisors are
// named the request is assigned to every advisor.
func (s *LeaveService) Create(ctx context.Context, actor *models.User, req *dto.CreateLeaveRequest, image *multipart.FileHeader) (*models.LeaveRequest, error) {
	if err := auth.Authorize(actor, auth.CapabilitySubmitLeave); err != nil {
		return nil, err
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	advisorIDs, err := s.resolveAdvisors(ctx, req.AdvisorIDs)
	if err != nil {
		return nil, err
	}

	var imageURL *string
	if image != nil {
		url, err := s.storage.SaveFile(image, "leave_attachments")
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrStorageUnavailable, "failed to store attachment")
		}
		imageURL = &url
	}

	request := &models.LeaveRequest{
		StudentID:  actor.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     models.LeavePending,
		ImageURL:   imageURL,
		AdvisorIDs: advisorIDs,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.leaveRepo.Create(ctx, tx, request); err != nil {
			return err
		}
		return s.leaveRepo.AssignAdvisors(ctx, tx, request.ID, advisorIDs)
	})
	if err != nil {
		if imageURL != nil {
			_ = s.storage.DeleteFile(*imageURL)
		}
		return nil, err
	}

	logger.Info().Int64("requestID", request.ID).Int64("studentID", actor.ID).
		Int("advisors", len(advisorIDs)).Msg("Leave request submitted")

	return request, nil
}

// resolveAdvisors validates an explicit advisor set or expands the default
// (all advisors) when none are named.
func (s *LeaveService) resolveAdvisors(ctx context.Context, advisorIDs []int64) ([]int64, error) {
	if len(advisorIDs) == 0 {
		advisors, err := s.userRepo.GetUsersByRole(ctx, models.RoleAdvisor)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, 0, len(advisors))
		for _, advisor := range advisors {
			ids = append(ids, advisor.ID)
		}
		return ids, nil
	}

	for _, id := range advisorIDs {
		user, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return nil, apperrors.NewNotFoundError(apperrors.ErrUserNotFound,
				fmt.Sprintf("advisor %d not found", id))
		}
		if user.Role != models.RoleAdvisor {
			return nil, apperrors.NewCustomError(apperrors.ErrNotAnAdvisor,
				fmt.Sprintf("user %d is not an advisor", id))
		}
	}

	return advisorIDs, nil
}

// ListMine returns the actor's own leave requests
func (s *LeaveService) ListMine(ctx context.Context, actor *models.User) ([]*models.LeaveRequest, error) {
	if err := auth.Authorize(actor, auth.CapabilitySubmitLeave); err != nil {
		return nil, err
	}
	return s.leaveRepo.ListByStudent(ctx, actor.ID)
}

// ListPending returns pending requests scoped by role: admins see every
// pending request, advisors only those assigned to them.
func (s *LeaveService) ListPending(ctx context.Context, actor *models.User) ([]*models.LeaveRequest, error) {
	if err := auth.Authorize(actor, auth.CapabilityResolveLeave); err != nil {
		return nil, err
	}

	if actor.Role == models.RoleAdvisor {
		return s.leaveRepo.ListForAdvisor(ctx, actor.ID, models.LeavePending)
	}
	return s.leaveRepo.ListPending(ctx)
}

// ListAll returns all requests scoped by role, like ListPending but
// without the status filter.
func (s *LeaveService) ListAll(ctx context.Context, actor *models.User) ([]*models.LeaveRequest, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewStudentData); err != nil {
		return nil, err
	}

	if actor.Role == models.RoleAdvisor {
		return s.leaveRepo.ListForAdvisor(ctx, actor.ID, "")
	}
	return s.leaveRepo.ListAll(ctx)
}

// Transition moves a pending request to approved or rejected. Approval
// additionally reconciles the attendance ledger: every day of the leave
// range becomes "On-Duty" in the same transaction as the status flip, so
// a failed reconciliation leaves the request pending and the ledger
// untouched. The per-day writes are idempotent upserts, making a retry
// after failure safe.
func (s *LeaveService) Transition(ctx context.Context, actor *models.User, requestID int64, target models.LeaveStatus) (request *models.LeaveRequest, err error) {
	if err := auth.Authorize(actor, auth.CapabilityResolveLeave); err != nil {
		return nil, err
	}
	if target != models.LeaveApproved && target != models.LeaveRejected {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid target status: %s", target))
	}

	defer func() { metrics.ObserveLeaveResolution(string(target), err) }()

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		request, err = s.leaveRepo.GetByIDForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}

		if request.Status != models.LeavePending {
			return apperrors.NewCustomError(apperrors.ErrInvalidTransition,
				fmt.Sprintf("leave request %d is already %s", requestID, request.Status))
		}

		if actor.Role == models.RoleAdvisor && !containsID(request.AdvisorIDs, actor.ID) {
			return apperrors.NewForbiddenError("leave request is not assigned to you")
		}

		if err := s.leaveRepo.UpdateStatus(ctx, tx, requestID, target, actor.ID); err != nil {
			return err
		}

		if target == models.LeaveApproved {
			if err := s.reconcile(ctx, tx, actor, request); err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrReconciliationFailed, err)
			}
		}

		request.Status = target
		request.ApprovedBy = &actor.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if target == models.LeaveApproved {
		s.summaryCache.InvalidateSummary(ctx, request.StudentID)
	}
	logger.Info().Int64("requestID", requestID).Str("status", string(target)).
		Int64("resolvedBy", actor.ID).Msg("Leave request resolved")

	return request, nil
}

// reconcile upserts an "On-Duty" status for every day of the approved
// range against the open transaction.
func (s *LeaveService) reconcile(ctx context.Context, tx pgx.Tx, actor *models.User, request *models.LeaveRequest) error {
	days := ExpandDateRange(request.StartDate, request.EndDate)
	for _, day := range days {
		if _, err := s.attendanceRepo.UpsertStatus(ctx, tx, request.StudentID, day, models.AttendanceOnDuty, actor.ID); err != nil {
			return err
		}
	}
	metrics.CountAttendanceWrites("reconciliation", len(days))
	return nil
}

// ExpandDateRange lists every day from start through end inclusive. A
// zero-length range yields exactly the start day.
func ExpandDateRange(start, end time.Time) []time.Time {
	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
