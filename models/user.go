package models

import "time"

// Roles known to the management system. Leaders are looked up through the
// same users endpoint as teachers.
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleLeader  = "LEADER"
)

// User is a staff account. Teachers and leaders double as reference entities
// for observation and duty-report records.
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	// PasswordHash is the bcrypt hash of the account password. Accounts
	// without a password cannot log in.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Reference returns the user as a reference entity.
func (u User) Reference() ReferenceEntity {
	return ReferenceEntity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// CreateUserRequest is the payload of POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// UserFilter narrows a users listing.
type UserFilter struct {
	Role     string
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the filter's page.
func (f UserFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
