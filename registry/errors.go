package registry

import "errors"

var (
	ErrNotFound      = errors.New("registry: workflow not found")
	ErrAlreadyExists = errors.New("registry: workflow already registered")
	ErrEmptyName     = errors.New("registry: workflow name is empty")
)
