package handler

import (
	"net/http"

	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/service"
	"go-gin-stream-events/internal/storage"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// RegisterRoutes 需要先掛上 middleware.Authenticate
func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:event_id", h.Get)
		router.GET("events/:event_id/history", h.History)
		router.GET("categories", h.Categories)
		router.GET("categories/:category/events", h.ByCategory)
	}

	authed := router.Group("", middleware.RequireAuth())
	{
		authed.POST("events", h.Create)
		authed.PUT("events/:event_id", h.Update)
		authed.DELETE("events/:event_id", h.Delete)
		authed.PUT("events/:event_id/thumbnail", h.SetThumbnail)
		authed.PUT("events/:event_id/featured", middleware.RequireStaff(), h.SetFeatured)
		authed.GET("my/events", h.MyEvents)
	}
}

type eventDetailResponse struct {
	*service.EventDetail
	IsCreator bool `json:"is_creator"`
}

func (h *EventHandler) List(c *gin.Context) {
	var query model.ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "Get")
		return
	}

	resp := eventDetailResponse{EventDetail: detail}
	if account := middleware.CurrentAccount(c); account != nil {
		resp.IsCreator = detail.IsOwnedBy(account.ID)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) History(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}

	entries, err := h.service.History(c.Request.Context(), eventID)
	if err != nil {
		handleError(c, err, "History")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.CurrentAccount(c), eventID, req)
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentAccount(c), eventID); err != nil {
		handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted", "redirect": listingPath})
}

func (h *EventHandler) SetThumbnail(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A thumbnail file is required", "field": "thumbnail"})
		return
	}
	if file.Size > storage.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The file cannot exceed 2 MB", "field": "thumbnail"})
		return
	}

	f, err := file.Open()
	if err != nil {
		handleError(c, err, "SetThumbnail")
		return
	}
	defer f.Close()

	updated, err := h.service.SetThumbnail(c.Request.Context(), middleware.CurrentAccount(c), eventID, f)
	if err != nil {
		handleError(c, err, "SetThumbnail")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) SetFeatured(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	var req model.SetFeaturedRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.SetFeatured(c.Request.Context(), middleware.CurrentAccount(c), eventID, *req.Featured)
	if err != nil {
		handleError(c, err, "SetFeatured")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) MyEvents(c *gin.Context) {
	result, err := h.service.MyEvents(c.Request.Context(), middleware.CurrentAccount(c), c.Query("status"))
	if err != nil {
		handleError(c, err, "MyEvents")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventHandler) ByCategory(c *gin.Context) {
	result, err := h.service.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		handleError(c, err, "ByCategory")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.service.Categories()})
}
