package user

import "errors"

// User domain errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrEmployeeCodeExists    = errors.New("employee code already assigned")
	ErrManagerAccessRequired = errors.New("manager access required")
)
