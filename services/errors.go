package services

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleRequired       = errors.New("role is required")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrStatusRequired     = errors.New("status is required")
	ErrUnknownReportType  = errors.New("unknown report type")
)
