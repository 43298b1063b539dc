package model

import "time"

const MaxDisplayNameLength = 150

// Account 使用者帳號
type Account struct {
	ID           int        `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	Bio          string     `json:"bio" db:"bio"`
	Avatar       *string    `json:"avatar,omitempty" db:"avatar"`
	IsStaff      bool       `json:"is_staff" db:"is_staff"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// PublicName 有 display name 時優先使用
func (a *Account) PublicName() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

type UpdateAccountParams struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
	Bio         *string
	Avatar      *string
}

func (p UpdateAccountParams) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.DisplayName == nil &&
		p.Bio == nil && p.Avatar == nil
}

// RegisterRequest 註冊請求
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// LoginRequest identifier 可為 username 或 email
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
}

type UsernameURIRequest struct {
	Username string `uri:"username" binding:"required"`
}

// PublicProfile 對外公開的帳號資訊，不含 email
type PublicProfile struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Avatar      *string   `json:"avatar,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
	EventsCount int       `json:"events_count"`
}
