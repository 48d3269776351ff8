package models

import (
	"errors"
)

var (
	ErrPropertyNotFound      = errors.New("models: property not found")
	ErrImageNotFound         = errors.New("models: property image not found")
	ErrModelNotFound         = errors.New("models: property model not found")
	ErrInquiryNotFound       = errors.New("models: inquiry not found")
	ErrUserNotFound          = errors.New("models: user not found")
	ErrDuplicatePropertyName = errors.New("models: duplicate property name for user")
	ErrDuplicateEmail        = errors.New("models: duplicate email")
	ErrDuplicatePhone        = errors.New("models: duplicate phone number")
	ErrInvalidCredentials    = errors.New("models: invalid credentials")
)
