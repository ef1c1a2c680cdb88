package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Configuration reports invalid generation inputs or unsatisfiable parameters.
func Configuration(format string, args ...any) *AppError {
	return New(CodeConfiguration, fmt.Sprintf(format, args...), http.StatusUnprocessableEntity)
}

// Alignment reports a reference-catalog gap that breaks job-org family alignment.
func Alignment(format string, args ...any) *AppError {
	return New(CodeAlignment, fmt.Sprintf(format, args...), http.StatusUnprocessableEntity)
}

// DataIntegrity reports post-generation validation failures. The violations slice is
// attached as details; this signals a logic defect, never bad input.
func DataIntegrity(violations []string) *AppError {
	e := New(
		CodeDataIntegrity,
		fmt.Sprintf("generated dataset failed integrity validation with %d violation(s)", len(violations)),
		http.StatusInternalServerError,
	)
	return e.WithDetails(violations)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
