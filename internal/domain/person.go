package domain

import "time"

type PersonRole string

const (
	RoleGuest PersonRole = "guest"
	RoleStaff PersonRole = "staff"
)

// Person is the root identity for every booking and order relation.
// Role is an explicit attribute checked once at the authorization
// boundary, not re-derived from the employees table per handler.
type Person struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         PersonRole `json:"role"`
	IsActive     bool       `json:"is_active"`
	DateJoined   time.Time  `json:"date_joined"`

	PhoneNumbers []PhoneNumber `json:"phone_numbers,omitempty"`
}

type PhoneNumber struct {
	ID       int64  `json:"id"`
	PersonID int64  `json:"person_id"`
	Number   string `json:"number"`
}

// Employee marks a Person as hotel staff and carries payroll details.
type Employee struct {
	ID         int64     `json:"id"`
	PersonID   int64     `json:"person_id"`
	EmployeeID string    `json:"employee_id"`
	Salary     int64     `json:"salary"`
	JobTitle   string    `json:"job_title"`
	CreatedAt  time.Time `json:"created_at"`
}
