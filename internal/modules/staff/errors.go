package staff

import "errors"

var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrAlreadyEmployee = errors.New("person is already an employee")
)
