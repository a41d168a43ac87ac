package domain

import (
	"context"
	"errors"
)

// Application roles. Role is part of the login credential tuple: an account
// created with RoleUser cannot log in as RoleAdmin even with the correct
// username and password.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents a registered user. Passwords are stored in plaintext and
// compared by exact match; this system has no credential security layer.
// Users are never updated or deleted after signup.
// swagger:model User
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// NewUser returns a new User with the given fields. ID is assigned by the
// service at signup.
func NewUser(name, username, password, role string) *User {
	return &User{
		Name:     name,
		Username: username,
		Password: password,
		Role:     role,
	}
}

// UserRepository defines the interface for user storage. The collection is
// read and rewritten as a whole; Append persists the full collection with
// the new user added.
type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Append(ctx context.Context, user *User) error
}

// UserService defines the business logic for signup, login, and logout.
// SignUp and Login establish a session on success.
type UserService interface {
	SignUp(ctx context.Context, name, username, password, role string) (*User, error)
	Login(ctx context.Context, username, password, role string) (*Session, error)
	Logout(ctx context.Context) error
}
