package employeeerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an account with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be EMPLOYEE or MANAGER",
		http.StatusBadRequest,
	)
	ErrManagerRequired = apperror.New(
		apperror.CodeInvalidInput,
		"an employee must be assigned to a manager",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"assigned manager does not exist or is not a manager",
		http.StatusBadRequest,
	)
)
