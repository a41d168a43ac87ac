package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"eventboard/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	sessions domain.SessionManager
}

// NewUserService creates a UserService over the given repository and session
// manager.
func NewUserService(userRepo domain.UserRepository, sessions domain.SessionManager) domain.UserService {
	return &userService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// SignUp registers a new user and logs them in. Username uniqueness is
// enforced only by the pre-check here; there is no storage-level constraint.
func (s *userService) SignUp(ctx context.Context, name, username, password, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	user := domain.NewUser(name, username, password, role)
	user.ID = uuid.NewString()
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The user and session writes are independent slot writes; a failure
	// here leaves the user created but not logged in.
	sess := &domain.Session{ID: user.ID, Username: user.Username, Role: user.Role}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("establish session: %w", err)
	}
	return user, nil
}

// Login matches username, password, and role exactly. A miss on any of the
// three yields ErrInvalidCredentials and leaves the current session alone.
func (s *userService) Login(ctx context.Context, username, password, role string) (*domain.Session, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if u.Username == username && u.Password == password && u.Role == role {
			sess := &domain.Session{ID: u.ID, Username: u.Username, Role: u.Role}
			if err := s.sessions.Set(ctx, sess); err != nil {
				return nil, fmt.Errorf("establish session: %w", err)
			}
			return sess, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *userService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
