package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrModuleNotFound      = errors.New("module not found")
	ErrContentUnavailable  = errors.New("quiz content unavailable")
	ErrSessionNotFound     = errors.New("no active quiz session for module")
	ErrAvatarNotFound      = errors.New("avatar not uploaded")
	ErrInvalidImage        = errors.New("file is not a supported image")
	ErrFileTooLarge        = errors.New("file too large")
	ErrCertificateExists   = errors.New("certificate already issued")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrNotEligible         = errors.New("not every module is completed")
	ErrUnsupportedFormat   = errors.New("unsupported image format")
)
