package service

import (
	"context"
	"errors"
	"io"
	"net/mail"
	"strings"
	"unicode"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/observability"
	"go-gin-stream-events/internal/repository"
	"go-gin-stream-events/internal/session"
	"go-gin-stream-events/internal/storage"
	apperrors "go-gin-stream-events/pkg/app_errors"
	"go-gin-stream-events/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 150
	minPasswordLength = 8
)

type AccountService interface {
	// Register 建立帳號並直接登入
	Register(ctx context.Context, req model.RegisterRequest) (*AuthResult, error)
	// Login identifier 先比對 username，再不分大小寫比對 email
	Login(ctx context.Context, req model.LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate 由 token 取得目前登入的帳號
	Authenticate(ctx context.Context, token string) (*model.Account, *session.Session, error)
	Me(ctx context.Context, accountID int) (*model.Account, error)
	UpdateProfile(ctx context.Context, actor *model.Account, req model.UpdateProfileRequest) (*model.Account, error)
	SetAvatar(ctx context.Context, actor *model.Account, content io.Reader) (*model.Account, error)
	PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error)
}

type AuthResult struct {
	Account *model.Account `json:"account"`
	*session.Token
}

type AccountServiceImpl struct {
	accounts   repository.AccountRepository
	events     repository.EventRepository
	sessions   session.Manager
	files      storage.FileStorage
	bcryptCost int
}

type AccountServiceOption func(*AccountServiceImpl)

// WithBcryptCost 測試時降低雜湊成本
func WithBcryptCost(cost int) AccountServiceOption {
	return func(s *AccountServiceImpl) { s.bcryptCost = cost }
}

func NewAccountService(
	accounts repository.AccountRepository,
	events repository.EventRepository,
	sessions session.Manager,
	files storage.FileStorage,
	opts ...AccountServiceOption,
) AccountService {
	s := &AccountServiceImpl{
		accounts:   accounts,
		events:     events,
		sessions:   sessions,
		files:      files,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	n := len([]rune(username))
	if n < minUsernameLength || n > maxUsernameLength {
		return "", apperrors.NewValidationError("username", "Username must be between 3 and 150 characters")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", apperrors.NewValidationError("username", "Username may only contain letters and numbers")
		}
	}
	return username, nil
}

func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperrors.NewValidationError("email", "Enter a valid email address")
	}
	return email, nil
}

func validatePassword(password, confirm string) error {
	if password != confirm {
		return apperrors.NewValidationError("password_confirm", "The two password fields didn't match")
	}
	if len([]rune(password)) < minPasswordLength {
		return apperrors.NewValidationError("password", "Password must contain at least 8 characters")
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return apperrors.NewValidationError("password", "Password cannot be entirely numeric")
	}
	return nil
}

func (s *AccountServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*AuthResult, error) {
	result, err := s.register(ctx, req)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return nil, err
	}
	observability.AuthAttempts.WithLabelValues("register", "ok").Inc()
	return result, nil
}

func (s *AccountServiceImpl) register(ctx context.Context, req model.RegisterRequest) (*AuthResult, error) {
	username, err := validateUsername(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password, req.PasswordConfirm); err != nil {
		return nil, err
	}

	taken, err := s.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.WrapValidation("username", "A user with that username already exists", apperrors.ErrUsernameTaken)
	}

	taken, err = s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.WrapValidation("email", "A user with that email already exists", apperrors.ErrEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Create(ctx, &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Account: account, Token: token}, nil
}

func (s *AccountServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*AuthResult, error) {
	account, err := s.authenticateCredentials(ctx, strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("login", "rejected").Inc()
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	observability.AuthAttempts.WithLabelValues("login", "ok").Inc()
	return &AuthResult{Account: account, Token: token}, nil
}

func (s *AccountServiceImpl) authenticateCredentials(ctx context.Context, identifier, password string) (*model.Account, error) {
	if identifier == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, identifier)
	if err != nil && !errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil, err
	}
	if account != nil && passwordMatches(account, password) {
		return account, nil
	}

	account, err = s.accounts.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !passwordMatches(account, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

func passwordMatches(account *model.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

func (s *AccountServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.ErrUnauthorized
	}
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *AccountServiceImpl) Authenticate(ctx context.Context, token string) (*model.Account, *session.Session, error) {
	sess, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	account, err := s.accounts.FindByID(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, err
	}
	return account, sess, nil
}

func (s *AccountServiceImpl) Me(ctx context.Context, accountID int) (*model.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, actor *model.Account, req model.UpdateProfileRequest) (*model.Account, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}

	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}

	params := model.UpdateAccountParams{
		FirstName:   trim(req.FirstName),
		LastName:    trim(req.LastName),
		DisplayName: trim(req.DisplayName),
		Bio:         trim(req.Bio),
	}
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}
	if params.DisplayName != nil && len([]rune(*params.DisplayName)) > model.MaxDisplayNameLength {
		return nil, apperrors.NewValidationError("display_name", "Display name must be at most 150 characters")
	}

	return s.accounts.UpdateProfile(ctx, actor.ID, params)
}

func (s *AccountServiceImpl) SetAvatar(ctx context.Context, actor *model.Account, content io.Reader) (*model.Account, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}

	path, err := s.files.Save(ctx, storage.KindAvatar, content)
	if err != nil {
		return nil, uploadError("avatar", err)
	}

	updated, err := s.accounts.UpdateProfile(ctx, actor.ID, model.UpdateAccountParams{Avatar: &path})
	if err != nil {
		_ = s.files.Delete(ctx, path)
		return nil, err
	}

	if actor.Avatar != nil && *actor.Avatar != path {
		if err := s.files.Delete(ctx, *actor.Avatar); err != nil {
			logger.WithComponent("service").Warn("Failed to remove previous avatar",
				zap.Int("account_id", actor.ID), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *AccountServiceImpl) PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error) {
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	count, err := s.events.CountByCreator(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &model.PublicProfile{
		Username:    account.Username,
		DisplayName: account.PublicName(),
		Bio:         account.Bio,
		Avatar:      account.Avatar,
		JoinedAt:    account.CreatedAt,
		EventsCount: count,
	}, nil
}
