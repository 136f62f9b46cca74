package leaveerrors

import (
	"fmt"
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidManagerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid manager id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrMissingDates = apperror.New(
		"MISSING_DATES",
		"start date and end date are required",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		"INVALID_RANGE",
		"end date cannot be before start date",
		http.StatusBadRequest,
	)
	ErrZeroWorkingDays = apperror.New(
		"ZERO_WORKING_DAYS",
		"selected date range contains 0 working days (weekends/holidays only), choose different dates",
		http.StatusBadRequest,
	)
	ErrMissingReason = apperror.New(
		"MISSING_REASON",
		"a reason is required",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		"ALREADY_DECIDED",
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrFeedbackRequired = apperror.New(
		"FEEDBACK_REQUIRED",
		"feedback is required when rejecting a leave request",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
)

// BalanceError carries the raw balance figures so callers can surface
// the remaining allowance, not just a message.
type BalanceError struct {
	Remaining int
	Requested int
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("you only have %d leave day(s) remaining, requested %d day(s)", e.Remaining, e.Requested)
}

// InsufficientBalance builds the submission error for a request that
// exceeds the remaining allowance.
func InsufficientBalance(remaining, requested int) *apperror.AppError {
	inner := &BalanceError{Remaining: remaining, Requested: requested}
	return apperror.Wrap(
		inner,
		"INSUFFICIENT_BALANCE",
		inner.Error(),
		http.StatusBadRequest,
	)
}
