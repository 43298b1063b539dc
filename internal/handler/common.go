package handler

import (
	"errors"
	"net/http"

	"go-gin-stream-events/internal/model"
	apperrors "go-gin-stream-events/pkg/app_errors"
	"go-gin-stream-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listingPath = "/api/v1/events"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// bindEventID 解析路徑上的 event_id
func bindEventID(c *gin.Context) (uuid.UUID, bool) {
	var req model.EventURIRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.EventID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var verr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrUsernameTaken), errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Account already exists")
		body := gin.H{"error": err.Error()}
		if errors.As(err, &verr) {
			body = gin.H{"error": verr.Message, "field": verr.Field}
		}
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &verr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, apperrors.ErrInvalidCategory):
		log.Warn("Invalid category")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "redirect": listingPath})
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrValidation):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrFileTooLarge), errors.Is(err, apperrors.ErrUnsupportedFile):
		log.Warn("Rejected upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials, check your username/email and password"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to do this"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found", "redirect": listingPath})
	case errors.Is(err, apperrors.ErrEventUnavailable):
		log.Error("Event store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "We could not load the event, please try again later", "redirect": listingPath})
	case errors.Is(err, apperrors.ErrAccountNotFound):
		log.Warn("Account not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
