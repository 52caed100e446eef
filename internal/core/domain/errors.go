package domain

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidInput          = errors.New("invalid input")
)
