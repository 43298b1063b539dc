package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-gin-stream-events/internal/model"
	repoMocks "go-gin-stream-events/internal/repository/mocks"
	"go-gin-stream-events/internal/service"
	"go-gin-stream-events/internal/session"
	sessionMocks "go-gin-stream-events/internal/session/mocks"
	"go-gin-stream-events/internal/storage"
	storageMocks "go-gin-stream-events/internal/storage/mocks"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type accountServiceMocks struct {
	accounts *repoMocks.MockAccountRepository
	events   *repoMocks.MockEventRepository
	sessions *sessionMocks.MockManager
	files    *storageMocks.MockFileStorage
}

func setupAccountService(t *testing.T) (service.AccountService, *accountServiceMocks) {
	m := &accountServiceMocks{
		accounts: repoMocks.NewMockAccountRepository(t),
		events:   repoMocks.NewMockEventRepository(t),
		sessions: sessionMocks.NewMockManager(t),
		files:    storageMocks.NewMockFileStorage(t),
	}
	svc := service.NewAccountService(m.accounts, m.events, m.sessions, m.files,
		service.WithBcryptCost(bcrypt.MinCost))
	return svc, m
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Username:        "alice42",
		Email:           "alice@example.com",
		Password:        "s3cure-pass",
		PasswordConfirm: "s3cure-pass",
		FirstName:       "Alice",
	}
}

var testToken = &session.Token{Value: "signed", SessionID: "sid", ExpiresAt: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - hashes password and issues session", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().ExistsByUsername(mock.Anything, "alice42").Return(false, nil).Once()
		m.accounts.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(false, nil).Once()
		m.accounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *model.Account) bool {
			return a.Username == "alice42" &&
				a.PasswordHash != "s3cure-pass" &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("s3cure-pass")) == nil
		})).RunAndReturn(func(ctx context.Context, a *model.Account) (*model.Account, error) {
			a.ID = 9
			return a, nil
		}).Once()
		m.sessions.EXPECT().Issue(mock.Anything, 9).Return(testToken, nil).Once()

		result, err := svc.Register(ctx, validRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, 9, result.Account.ID)
		assert.Equal(t, "signed", result.Value)
	})

	t.Run("Failed - field validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*model.RegisterRequest)
			field  string
		}{
			{"short username", func(r *model.RegisterRequest) { r.Username = "al" }, "username"},
			{"symbol in username", func(r *model.RegisterRequest) { r.Username = "alice.b" }, "username"},
			{"bad email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }, "email"},
			{"mismatch", func(r *model.RegisterRequest) { r.PasswordConfirm = "other-pass" }, "password_confirm"},
			{"short password", func(r *model.RegisterRequest) { r.Password, r.PasswordConfirm = "abc12", "abc12" }, "password"},
			{"numeric password", func(r *model.RegisterRequest) { r.Password, r.PasswordConfirm = "12345678", "12345678" }, "password"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := setupAccountService(t)
				req := validRegisterRequest()
				tt.mutate(&req)

				_, err := svc.Register(ctx, req)

				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.field, verr.Field)
			})
		}
	})

	t.Run("Failed - username taken", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().ExistsByUsername(mock.Anything, "alice42").Return(true, nil).Once()

		_, err := svc.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		m.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - email taken", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().ExistsByUsername(mock.Anything, "alice42").Return(false, nil).Once()
		m.accounts.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(true, nil).Once()

		_, err := svc.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	account := &model.Account{ID: 5, Username: "bob", Email: "Bob@Example.com", PasswordHash: hashed(t, "hunter22")}

	t.Run("Success - by username", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().FindByUsername(mock.Anything, "bob").Return(account, nil).Once()
		m.sessions.EXPECT().Issue(mock.Anything, 5).Return(testToken, nil).Once()

		result, err := svc.Login(ctx, model.LoginRequest{Identifier: "bob", Password: "hunter22"})

		require.NoError(t, err)
		assert.Equal(t, account, result.Account)
	})

	t.Run("Success - by email", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().FindByUsername(mock.Anything, "bob@example.com").Return(nil, apperrors.ErrAccountNotFound).Once()
		m.accounts.EXPECT().FindByEmail(mock.Anything, "bob@example.com").Return(account, nil).Once()
		m.sessions.EXPECT().Issue(mock.Anything, 5).Return(testToken, nil).Once()

		_, err := svc.Login(ctx, model.LoginRequest{Identifier: "bob@example.com", Password: "hunter22"})

		require.NoError(t, err)
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().FindByUsername(mock.Anything, "bob").Return(account, nil).Once()
		m.accounts.EXPECT().FindByEmail(mock.Anything, "bob").Return(nil, apperrors.ErrAccountNotFound).Once()

		_, err := svc.Login(ctx, model.LoginRequest{Identifier: "bob", Password: "wrong"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		m.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("Failed - store error", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().FindByUsername(mock.Anything, "bob").Return(nil, errors.New("db down")).Once()

		_, err := svc.Login(ctx, model.LoginRequest{Identifier: "bob", Password: "hunter22"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAccountService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupAccountService(t)
		account := &model.Account{ID: 5, Username: "bob"}

		m.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(&session.Session{ID: "sid", AccountID: 5}, nil).Once()
		m.accounts.EXPECT().FindByID(mock.Anything, 5).Return(account, nil).Once()

		got, sess, err := svc.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, account, got)
		assert.Equal(t, "sid", sess.ID)
	})

	t.Run("Failed - deleted account", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.sessions.EXPECT().Resolve(mock.Anything, "tok").Return(&session.Session{ID: "sid", AccountID: 5}, nil).Once()
		m.accounts.EXPECT().FindByID(mock.Anything, 5).Return(nil, apperrors.ErrAccountNotFound).Once()

		_, _, err := svc.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAccountService_Logout(t *testing.T) {
	svc, m := setupAccountService(t)

	m.sessions.EXPECT().Revoke(mock.Anything, "sid").Return(nil).Once()

	require.NoError(t, svc.Logout(context.Background(), "sid"))
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), apperrors.ErrUnauthorized)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	actor := &model.Account{ID: 5, Username: "bob"}

	t.Run("Success - trims fields", func(t *testing.T) {
		svc, m := setupAccountService(t)
		updated := *actor
		updated.DisplayName = "Bobby"

		m.accounts.EXPECT().UpdateProfile(mock.Anything, 5, model.UpdateAccountParams{
			DisplayName: ptr("Bobby"),
			Bio:         ptr("hi"),
		}).Return(&updated, nil).Once()

		got, err := svc.UpdateProfile(ctx, actor, model.UpdateProfileRequest{
			DisplayName: ptr("  Bobby "),
			Bio:         ptr("hi"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Bobby", got.PublicName())
	})

	t.Run("Failed - display name too long", func(t *testing.T) {
		svc, _ := setupAccountService(t)

		_, err := svc.UpdateProfile(ctx, actor, model.UpdateProfileRequest{DisplayName: ptr(strings.Repeat("x", 151))})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "display_name", verr.Field)
	})

	t.Run("Failed - nothing to update", func(t *testing.T) {
		svc, _ := setupAccountService(t)

		_, err := svc.UpdateProfile(ctx, actor, model.UpdateProfileRequest{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestAccountService_SetAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - replaces previous avatar", func(t *testing.T) {
		svc, m := setupAccountService(t)
		actor := &model.Account{ID: 5, Avatar: ptr("avatars/old.png")}
		updated := *actor
		updated.Avatar = ptr("avatars/new.png")

		m.files.EXPECT().Save(mock.Anything, storage.KindAvatar, mock.Anything).Return("avatars/new.png", nil).Once()
		m.accounts.EXPECT().UpdateProfile(mock.Anything, 5, model.UpdateAccountParams{Avatar: ptr("avatars/new.png")}).Return(&updated, nil).Once()
		m.files.EXPECT().Delete(mock.Anything, "avatars/old.png").Return(nil).Once()

		got, err := svc.SetAvatar(ctx, actor, strings.NewReader("img"))

		require.NoError(t, err)
		assert.Equal(t, "avatars/new.png", *got.Avatar)
	})

	t.Run("Failed - not an image", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.files.EXPECT().Save(mock.Anything, storage.KindAvatar, mock.Anything).Return("", apperrors.ErrUnsupportedFile).Once()

		_, err := svc.SetAvatar(ctx, &model.Account{ID: 5}, strings.NewReader("text"))

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "avatar", verr.Field)
	})
}

func TestAccountService_PublicProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := setupAccountService(t)
		joined := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		account := &model.Account{ID: 5, Username: "bob", Email: "bob@example.com", CreatedAt: joined}

		m.accounts.EXPECT().FindByUsername(mock.Anything, "bob").Return(account, nil).Once()
		m.events.EXPECT().CountByCreator(mock.Anything, 5).Return(4, nil).Once()

		profile, err := svc.PublicProfile(ctx, "bob")

		require.NoError(t, err)
		assert.Equal(t, &model.PublicProfile{
			Username:    "bob",
			DisplayName: "bob",
			JoinedAt:    joined,
			EventsCount: 4,
		}, profile)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		svc, m := setupAccountService(t)

		m.accounts.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, apperrors.ErrAccountNotFound).Once()

		_, err := svc.PublicProfile(ctx, "ghost")

		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	})
}
