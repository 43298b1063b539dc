package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/service"
	"go-gin-stream-events/internal/session"
	apperrors "go-gin-stream-events/pkg/app_errors"
	"go-gin-stream-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accountKey   = "auth.account"
	sessionKey   = "auth.session"
	authErrorKey = "auth.error"
)

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate 解析 Bearer token；沒帶或無效時以訪客身分繼續
func Authenticate(accounts service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		account, sess, err := accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				logger.WithComponent("middleware").Error("Failed to resolve session", zap.Error(err))
			}
			c.Set(authErrorKey, err)
			c.Next()
			return
		}

		c.Set(accountKey, account)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAuth 必須先經過 Authenticate
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAccount(c) != nil {
			c.Next()
			return
		}

		if v, ok := c.Get(authErrorKey); ok {
			if err, _ := v.(error); err != nil && !errors.Is(err, apperrors.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
}

func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !account.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff only"})
			return
		}
		c.Next()
	}
}

// CurrentAccount 未登入時回傳 nil
func CurrentAccount(c *gin.Context) *model.Account {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil
	}
	account, _ := v.(*model.Account)
	return account
}

func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// SetAccount 測試與內部使用
func SetAccount(c *gin.Context, account *model.Account, sess *session.Session) {
	c.Set(accountKey, account)
	c.Set(sessionKey, sess)
}
