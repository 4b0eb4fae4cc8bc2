package apperrors

import "errors"

var (
	ErrWebsiteNotFound      = errors.New("website not found")
	ErrWebsiteAlreadyExists = errors.New("website already exists for this user")
	ErrMonitoringDisabled   = errors.New("monitoring is disabled for this website")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrUserNotFound         = errors.New("user not found")
)
