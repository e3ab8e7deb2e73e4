package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/tolgaakgoz/attendly/internal/app/auth"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/app/repositories"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
	pkgauth "github.com/tolgaakgoz/attendly/internal/pkg/auth"
	"github.com/tolgaakgoz/attendly/internal/pkg/filestorage"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
	"github.com/tolgaakgoz/attendly/internal/pkg/logger"
)

// UserService handles user management operations
type UserService struct {
	userRepo *repositories.UserRepository
	storage  filestorage.FileStorage
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, storage filestorage.FileStorage) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
	}
}

// CreateUser creates a user with the given role and profile attributes
func (s *UserService) CreateUser(ctx context.Context, actor *models.User, req *dto.CreateUserRequest) (*models.User, error) {
	if err := auth.Authorize(actor, auth.CapabilityManageUsers); err != nil {
		return nil, err
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role: %s", req.Role))
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Role:     role,
		RollNo:   req.RollNo,
		Name:     req.Name,
		Semester: req.Semester,
		Year:     req.Year,
		DOB:      dob,
		Age:      req.Age,
		Gender:   req.Gender,
		CGPA:     req.CGPA,
		Course:   req.Course,
		Section:  req.Section,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User created")
	return user, nil
}

// GetProfile returns a user's own profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// GetStudent returns one student's profile for staff consumers
func (s *UserService) GetStudent(ctx context.Context, actor *models.User, studentID int64) (*models.User, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewStudentData); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}
	return user, nil
}

// ListUsers returns every user
func (s *UserService) ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewRoster); err != nil {
		return nil, err
	}
	return s.userRepo.GetAllUsers(ctx)
}

// ListStudents returns every student
func (s *UserService) ListStudents(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if err := auth.Authorize(actor, auth.CapabilityViewRoster); err != nil {
		return nil, err
	}
	return s.userRepo.GetUsersByRole(ctx, models.RoleStudent)
}

// UpdateMyProfile applies the non-nil profile fields of req to the actor's
// own record. Username, role and password are out of reach here: the first
// two stay admin-managed, the password goes through ChangePassword.
func (s *UserService) UpdateMyProfile(ctx context.Context, actorID int64, req *dto.UpdateMyProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if req.DOB != nil {
		dob, err := parseOptionalDate(req.DOB)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		user.DOB = dob
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Semester != nil {
		user.Semester = req.Semester
	}
	if req.Year != nil {
		user.Year = req.Year
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.CGPA != nil {
		user.CGPA = req.CGPA
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.Section != nil {
		user.Section = req.Section
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword replaces the actor's own password after re-verifying the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, actorID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	if err := pkgauth.CheckPassword(user.Password, req.CurrentPassword); err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "current password is incorrect")
	}

	hash, err := pkgauth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	logger.Info().Int64("userID", actorID).Msg("Password changed")
	return nil
}

// UpdateUser applies the non-nil fields of req to the stored user
func (s *UserService) UpdateUser(ctx context.Context, actor *models.User, userID int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := auth.Authorize(actor, auth.CapabilityManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.UsernameExists(ctx, *req.Username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrUsernameExists
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := pkgauth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}
	if req.Role != nil {
		role, ok := models.ParseRole(*req.Role)
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role: %s", *req.Role))
		}
		user.Role = role
	}
	if req.DOB != nil {
		dob, err := parseOptionalDate(req.DOB)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		user.DOB = dob
	}
	if req.RollNo != nil {
		user.RollNo = req.RollNo
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Semester != nil {
		user.Semester = req.Semester
	}
	if req.Year != nil {
		user.Year = req.Year
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.CGPA != nil {
		user.CGPA = req.CGPA
	}
	if req.Course != nil {
		user.Course = req.Course
	}
	if req.Section != nil {
		user.Section = req.Section
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and their stored profile picture. The store
// cascades the user's leave requests and attendance rows; records they
// marked for others survive with a cleared marker.
func (s *UserService) DeleteUser(ctx context.Context, actor *models.User, userID int64) error {
	if err := auth.Authorize(actor, auth.CapabilityManageUsers); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if user.ProfilePictureURL != nil {
		if err := s.storage.DeleteFile(*user.ProfilePictureURL); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete profile picture")
		}
	}

	logger.Info().Int64("userID", userID).Msg("User deleted")
	return nil
}

// UpdateProfilePicture stores a new profile picture for the user and
// replaces the previous one.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.SaveFile(fileHeader, "profile_pictures")
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrStorageUnavailable, "failed to store profile picture")
	}

	oldURL := user.ProfilePictureURL
	user.ProfilePictureURL = &url
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		_ = s.storage.DeleteFile(url)
		return nil, err
	}

	if oldURL != nil {
		if err := s.storage.DeleteFile(*oldURL); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete previous profile picture")
		}
	}

	return user, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
