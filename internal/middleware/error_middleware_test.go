package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"request not found", apperrors.ErrRequestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"username exists", apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid date range", apperrors.ErrInvalidDateRange, http.StatusBadRequest, dto.ErrorCodeInvalidDateRange},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict, dto.ErrorCodeInvalidTransition},
		{"not an advisor", apperrors.ErrNotAnAdvisor, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"storage unavailable", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeStorageUnavailable},
		{"reconciliation failed", apperrors.ErrReconciliationFailed, http.StatusInternalServerError, dto.ErrorCodeReconciliationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classify(tt.err)
			if status != tt.wantStatus || code != tt.wantCode {
				t.Errorf("classify(%v) = (%d, %s), want (%d, %s)",
					tt.err, status, code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestClassifyWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("approving request 5: %w", apperrors.ErrReconciliationFailed)
	status, code := classify(wrapped)
	if status != http.StatusInternalServerError || code != dto.ErrorCodeReconciliationFailed {
		t.Errorf("classify(wrapped) = (%d, %s), want (500, %s)", status, code, dto.ErrorCodeReconciliationFailed)
	}

	custom := apperrors.NewCustomError(apperrors.ErrInvalidTransition, "leave request 5 is already approved")
	status, code = classify(custom)
	if status != http.StatusConflict || code != dto.ErrorCodeInvalidTransition {
		t.Errorf("classify(custom) = (%d, %s), want (409, %s)", status, code, dto.ErrorCodeInvalidTransition)
	}
}
