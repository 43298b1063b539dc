package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-stream-events/internal/model"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	usernameIndex = "idx_accounts_username"
	emailIndex    = "idx_accounts_email_lower"
)

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	FindByID(ctx context.Context, id int) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, params model.UpdateAccountParams) (*model.Account, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

type AccountRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &AccountRepositoryImpl{
		pool: pool,
	}
}

const accountColumns = `
	id, username, email, password_hash, first_name, last_name,
	display_name, bio, avatar, is_staff, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.DisplayName,
		&account.Bio,
		&account.Avatar,
		&account.IsStaff,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create 唯一性衝突轉成 ErrUsernameTaken / ErrEmailTaken
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	query := `
		INSERT INTO accounts (
			username, email, password_hash, first_name, last_name, display_name, bio, avatar, is_staff
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + accountColumns

	created, err := scanAccount(r.pool.QueryRow(ctx, query,
		account.Username, account.Email, account.PasswordHash, account.FirstName,
		account.LastName, account.DisplayName, account.Bio, account.Avatar, account.IsStaff,
	))
	if err != nil {
		switch {
		case uniqueViolationOn(err, usernameIndex):
			return nil, apperrors.ErrUsernameTaken
		case uniqueViolationOn(err, emailIndex):
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *AccountRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, username))
}

// FindByEmail 不分大小寫
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	return scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *AccountRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *AccountRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}

func (r *AccountRepositoryImpl) UpdateProfile(ctx context.Context, id int, params model.UpdateAccountParams) (*model.Account, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.FirstName != nil {
		sets = append(sets, fmt.Sprintf("first_name = $%d", argPos))
		args = append(args, *params.FirstName)
		argPos++
	}

	if params.LastName != nil {
		sets = append(sets, fmt.Sprintf("last_name = $%d", argPos))
		args = append(args, *params.LastName)
		argPos++
	}

	if params.DisplayName != nil {
		sets = append(sets, fmt.Sprintf("display_name = $%d", argPos))
		args = append(args, *params.DisplayName)
		argPos++
	}

	if params.Bio != nil {
		sets = append(sets, fmt.Sprintf("bio = $%d", argPos))
		args = append(args, *params.Bio)
		argPos++
	}

	if params.Avatar != nil {
		sets = append(sets, fmt.Sprintf("avatar = $%d", argPos))
		args = append(args, *params.Avatar)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, accountColumns)

	return scanAccount(r.pool.QueryRow(ctx, query, args...))
}

// Delete 會連帶刪除該帳號的活動（ON DELETE CASCADE）
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts`)
	return err
}
