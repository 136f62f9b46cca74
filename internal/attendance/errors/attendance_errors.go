package attendanceerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidSwipeType = apperror.New(
		"INVALID_SWIPE_TYPE",
		"swipe type must be IN or OUT",
		http.StatusBadRequest,
	)
)
