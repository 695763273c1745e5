package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const strongPassword = "Abcdef123!"

type authMocks struct {
	users  *mock.MockUserRepository
	hasher *mock.MockCredentialHasher
	tokens *mock.MockTokenService
}

// newTestAuthSvc - хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, clock *fakeClock) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:  mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockCredentialHasher(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
	}

	svc := NewAuthService(m.users, m.hasher, m.tokens, testAppConfig(), clock.Now, logger.Nop())

	return svc, m
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()
	req := models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: strongPassword}

	gomock.InOrder(
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil),
		m.users.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil),
		m.hasher.EXPECT().Hash(ctx, strongPassword).Return("$2a$04$digest", nil),
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "$2a$04$digest", u.PasswordHash)
				assert.Zero(t, u.LoginAttempts)
				u.UserID = 11
				return u, nil
			},
		),
	)

	userID, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), userID)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	ctx := context.Background()
	req := models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: strongPassword}

	t.Run("username", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})

	t.Run("email", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(true, nil)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})

	t.Run("duplicate reported before weak password", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

		weak := req
		weak.Password = "short"
		_, err := svc.Register(ctx, weak)
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})

	t.Run("lost insert race", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil)
		m.hasher.EXPECT().Hash(ctx, strongPassword).Return("digest", nil)
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(ctx, "a@x.com").Return(false, nil)

		_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: "abcdefghij"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrWeakPassword)
	})

	t.Run("bad email", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t, newFakeClock())

		_, err := svc.Register(ctx, models.RegisterRequest{Email: "nope", Username: "alice", Password: strongPassword})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	})
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()

	m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, errors.New("connection reset"))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Username: "alice", Password: strongPassword})
	assert.ErrorIs(t, err, ErrStoreFailure)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	clock := newFakeClock()
	svc, m := newTestAuthSvc(t, clock)
	ctx := context.Background()

	user := models.User{UserID: 5, Username: "alice", PasswordHash: "digest", LoginAttempts: 2}
	issued := models.Token{SignedString: "signed", UserID: 5}

	gomock.InOrder(
		m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil),
		m.hasher.EXPECT().Verify(ctx, strongPassword, "digest").Return(true, nil),
		m.users.EXPECT().ResetLoginAttempts(ctx, int64(5), clock.now).Return(nil),
		m.tokens.EXPECT().Issue(ctx, int64(5)).Return(issued, nil),
	)

	token, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, "signed", token.String())
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: strongPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	clock := newFakeClock()
	svc, m := newTestAuthSvc(t, clock)
	ctx := context.Background()

	user := models.User{UserID: 5, Username: "alice", PasswordHash: "digest"}

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	m.hasher.EXPECT().Verify(ctx, "WrongPass1!", "digest").Return(false, nil)
	m.users.EXPECT().RecordFailedAttempt(ctx, int64(5), clock.now).Return(1, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "WrongPass1!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Lockout(t *testing.T) {
	ctx := context.Background()

	t.Run("attempt 10 minutes ago is locked without hash check", func(t *testing.T) {
		clock := newFakeClock()
		svc, m := newTestAuthSvc(t, clock)
		last := clock.now.Add(-10 * time.Minute)

		m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{
			UserID: 5, PasswordHash: "digest", LoginAttempts: 3, LastAttemptTime: &last,
		}, nil)
		// no Verify, no RecordFailedAttempt: gomock fails on unexpected calls

		_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: strongPassword})
		assert.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("attempt 61 minutes ago proceeds to verification", func(t *testing.T) {
		clock := newFakeClock()
		svc, m := newTestAuthSvc(t, clock)
		last := clock.now.Add(-61 * time.Minute)

		m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{
			UserID: 5, PasswordHash: "digest", LoginAttempts: 3, LastAttemptTime: &last,
		}, nil)
		m.hasher.EXPECT().Verify(ctx, strongPassword, "digest").Return(true, nil)
		m.users.EXPECT().ResetLoginAttempts(ctx, int64(5), clock.now).Return(nil)
		m.tokens.EXPECT().Issue(ctx, int64(5)).Return(models.Token{SignedString: "t"}, nil)

		_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: strongPassword})
		assert.NoError(t, err)
	})
}

func TestAuthService_Login_HashVerificationError(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{UserID: 5, PasswordHash: "broken"}, nil)
	m.hasher.EXPECT().Verify(ctx, strongPassword, "broken").Return(false, errors.New("hash verification error"))

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: strongPassword})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t, newFakeClock())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Profile & ChangePassword ─────────────────────────────────────────────────

func TestAuthService_Profile(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m.users.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{
		UserID: 5, Email: "a@x.com", Username: "alice", PasswordHash: "digest", CreatedAt: created,
	}, nil)

	profile, err := svc.Profile(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Email: "a@x.com", Username: "alice", CreatedAt: created}, profile)
}

func TestAuthService_Profile_DeletedAccount(t *testing.T) {
	svc, m := newTestAuthSvc(t, newFakeClock())
	ctx := context.Background()

	m.users.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Profile(ctx, 5)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	req := models.ChangePasswordRequest{
		CurrentPassword:  strongPassword,
		NewPassword:      "Zyxwvu987?",
		RepeatedPassword: "Zyxwvu987?",
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())

		gomock.InOrder(
			m.users.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{UserID: 5, PasswordHash: "old"}, nil),
			m.hasher.EXPECT().Verify(ctx, strongPassword, "old").Return(true, nil),
			m.hasher.EXPECT().Hash(ctx, "Zyxwvu987?").Return("new", nil),
			m.users.EXPECT().UpdatePassword(ctx, int64(5), "new").Return(nil),
		)

		assert.NoError(t, svc.ChangePassword(ctx, 5, req))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newTestAuthSvc(t, newFakeClock())

		m.users.EXPECT().FindUserByID(ctx, int64(5)).Return(models.User{UserID: 5, PasswordHash: "old"}, nil)
		m.hasher.EXPECT().Verify(ctx, strongPassword, "old").Return(false, nil)

		assert.ErrorIs(t, svc.ChangePassword(ctx, 5, req), ErrInvalidCredentials)
	})

	t.Run("mismatched repeat", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t, newFakeClock())

		bad := req
		bad.RepeatedPassword = "Zyxwvu987!"
		err := svc.ChangePassword(ctx, 5, bad)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrPasswordsMismatch)
	})

	t.Run("weak new password", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t, newFakeClock())

		weak := models.ChangePasswordRequest{CurrentPassword: strongPassword, NewPassword: "weak", RepeatedPassword: "weak"}
		assert.ErrorIs(t, svc.ChangePassword(ctx, 5, weak), validators.ErrWeakPassword)
	})
}
