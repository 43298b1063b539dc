package handler

import (
	"net/http"

	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/service"
	"go-gin-stream-events/internal/storage"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service   service.AccountService
	authLimit gin.HandlerFunc
}

// NewAccountHandler authLimit 只套用在註冊與登入，nil 表示不限流
func NewAccountHandler(service service.AccountService, authLimit gin.HandlerFunc) *AccountHandler {
	if authLimit == nil {
		authLimit = func(c *gin.Context) { c.Next() }
	}
	return &AccountHandler{service: service, authLimit: authLimit}
}

func (h *AccountHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("auth/register", h.authLimit, h.Register)
		router.POST("auth/login", h.authLimit, h.Login)
		router.GET("accounts/:username", h.PublicProfile)
	}

	authed := router.Group("", middleware.RequireAuth())
	{
		authed.POST("auth/logout", h.Logout)
		authed.GET("accounts/me", h.Me)
		authed.PUT("accounts/me", h.UpdateProfile)
		authed.PUT("accounts/me/avatar", h.SetAvatar)
	}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AccountHandler) Logout(c *gin.Context) {
	var sessionID string
	if sess := middleware.CurrentSession(c); sess != nil {
		sessionID = sess.ID
	}

	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		handleError(c, err, "Logout")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) Me(c *gin.Context) {
	account, err := h.service.Me(c.Request.Context(), middleware.CurrentAccount(c).ID)
	if err != nil {
		handleError(c, err, "Me")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	account, err := h.service.UpdateProfile(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		handleError(c, err, "UpdateProfile")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) SetAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An avatar file is required", "field": "avatar"})
		return
	}
	if file.Size > storage.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The file cannot exceed 2 MB", "field": "avatar"})
		return
	}

	f, err := file.Open()
	if err != nil {
		handleError(c, err, "SetAvatar")
		return
	}
	defer f.Close()

	account, err := h.service.SetAvatar(c.Request.Context(), middleware.CurrentAccount(c), f)
	if err != nil {
		handleError(c, err, "SetAvatar")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) PublicProfile(c *gin.Context) {
	var req model.UsernameURIRequest
	if err := BindUri(c, &req); err != nil {
		return
	}

	profile, err := h.service.PublicProfile(c.Request.Context(), req.Username)
	if err != nil {
		handleError(c, err, "PublicProfile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
