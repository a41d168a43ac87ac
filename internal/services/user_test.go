package services

import (
	"context"
	"errors"
	"testing"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	users     []*domain.User
	appendErr error
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Append(ctx context.Context, user *domain.User) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.users = append(f.users, user)
	return nil
}

// fakeSessionManager implements domain.SessionManager for tests.
type fakeSessionManager struct {
	session *domain.Session
	setErr  error
}

func (f *fakeSessionManager) Get(ctx context.Context) *domain.Session { return f.session }

func (f *fakeSessionManager) Set(ctx context.Context, s *domain.Session) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.session = s
	return nil
}

func (f *fakeSessionManager) Clear(ctx context.Context) error {
	f.session = nil
	return nil
}

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("distinct usernames grow the collection by one each", func(t *testing.T) {
		repo := &fakeUserRepo{}
		sessions := &fakeSessionManager{}
		svc := NewUserService(repo, sessions)

		for i, username := range []string{"a1", "b1", "c1"} {
			user, err := svc.SignUp(ctx, "Someone", username, "p", domain.RoleUser)
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Len(t, repo.users, i+1)
		}
		seen := map[string]bool{}
		for _, u := range repo.users {
			assert.False(t, seen[u.Username], "duplicate username %q", u.Username)
			seen[u.Username] = true
		}
	})

	t.Run("taken username fails and leaves the collection unchanged", func(t *testing.T) {
		repo := &fakeUserRepo{users: []*domain.User{{ID: "u1", Username: "a1"}}}
		svc := NewUserService(repo, &fakeSessionManager{})

		_, err := svc.SignUp(ctx, "A", "a1", "p", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		assert.Len(t, repo.users, 1)
	})

	t.Run("signup establishes a session for the new user", func(t *testing.T) {
		sessions := &fakeSessionManager{}
		svc := NewUserService(&fakeUserRepo{}, sessions)

		user, err := svc.SignUp(ctx, "A", "a1", "p", domain.RoleAdmin)
		require.NoError(t, err)
		require.NotNil(t, sessions.session)
		assert.Equal(t, user.ID, sessions.session.ID)
		assert.Equal(t, domain.RoleAdmin, sessions.session.Role)
	})

	t.Run("unknown role defaults to user", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(repo, &fakeSessionManager{})

		user, err := svc.SignUp(ctx, "A", "a1", "p", "superuser")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{}, &fakeSessionManager{})

		_, err := svc.SignUp(ctx, "", "a1", "p", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.SignUp(ctx, "A", "  ", "p", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.SignUp(ctx, "A", "a1", "", domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("append failure is wrapped", func(t *testing.T) {
		repo := &fakeUserRepo{appendErr: errors.New("disk full")}
		_, err := NewUserService(repo, &fakeSessionManager{}).SignUp(ctx, "A", "a1", "p", domain.RoleUser)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	existing := []*domain.User{
		{ID: "u1", Name: "A", Username: "a1", Password: "p", Role: domain.RoleUser},
		{ID: "u2", Name: "B", Username: "b1", Password: "secret", Role: domain.RoleAdmin},
	}

	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantID   string
		wantErr  error
	}{
		{name: "exact match", username: "a1", password: "p", role: domain.RoleUser, wantID: "u1"},
		{name: "admin match", username: "b1", password: "secret", role: domain.RoleAdmin, wantID: "u2"},
		{name: "wrong password", username: "a1", password: "nope", role: domain.RoleUser, wantErr: domain.ErrInvalidCredentials},
		{name: "unknown username", username: "ghost", password: "p", role: domain.RoleUser, wantErr: domain.ErrInvalidCredentials},
		// Role is part of the credential: correct username and password with
		// the wrong role still fails.
		{name: "role mismatch", username: "a1", password: "p", role: domain.RoleAdmin, wantErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessionManager{}
			svc := NewUserService(&fakeUserRepo{users: existing}, sessions)

			sess, err := svc.Login(ctx, tt.username, tt.password, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sessions.session, "failed login must not alter the session")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, sess.ID)
			require.NotNil(t, sessions.session)
			assert.Equal(t, tt.wantID, sessions.session.ID)
		})
	}
}

func TestUserService_LoginFailureKeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	prior := &domain.Session{ID: "u1", Username: "a1", Role: domain.RoleUser}
	sessions := &fakeSessionManager{session: prior}
	svc := NewUserService(&fakeUserRepo{}, sessions)

	_, err := svc.Login(ctx, "ghost", "p", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Same(t, prior, sessions.session)
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessionManager{session: &domain.Session{ID: "u1"}}
	svc := NewUserService(&fakeUserRepo{}, sessions)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, sessions.session)
}
