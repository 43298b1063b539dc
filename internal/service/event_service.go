package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go-gin-stream-events/internal/embed"
	"go-gin-stream-events/internal/lifecycle"
	"go-gin-stream-events/internal/listing"
	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/observability"
	"go-gin-stream-events/internal/queue"
	"go-gin-stream-events/internal/repository"
	"go-gin-stream-events/internal/storage"
	apperrors "go-gin-stream-events/pkg/app_errors"
	"go-gin-stream-events/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const listUnavailableMessage = "There was a problem loading the events"

type EventService interface {
	// List 列表查詢；資料庫錯誤時回傳空頁與訊息，只有查詢參數錯誤才回傳 error
	List(ctx context.Context, query model.ListEventsQuery) (*EventListResult, error)
	Get(ctx context.Context, eventID uuid.UUID) (*EventDetail, error)
	// Refresh 依時間推進狀態並寫回，回傳是否寫入成功
	Refresh(ctx context.Context, event *model.Event) (*model.Event, bool)
	Create(ctx context.Context, actor *model.Account, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, actor *model.Account, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, actor *model.Account, eventID uuid.UUID) error
	SetThumbnail(ctx context.Context, actor *model.Account, eventID uuid.UUID, content io.Reader) (*model.Event, error)
	SetFeatured(ctx context.Context, actor *model.Account, eventID uuid.UUID, featured bool) (*model.Event, error)
	MyEvents(ctx context.Context, actor *model.Account, status string) (*MyEventsResult, error)
	ByCategory(ctx context.Context, raw string) (*CategoryEventsResult, error)
	History(ctx context.Context, eventID uuid.UUID) ([]*model.StatusHistoryEntry, error)
	Categories() []CategoryInfo
}

type EventListResult struct {
	listing.Page
	Message string `json:"message,omitempty"`
}

// EventDetail 單一活動加上顯示用的衍生欄位
type EventDetail struct {
	*model.Event
	Embed           embed.Embed `json:"embed"`
	TagList         []string    `json:"tag_list"`
	ThumbnailURL    string      `json:"thumbnail_url,omitempty"`
	DurationDisplay string      `json:"duration"`
	CategoryLabel   string      `json:"category_label"`
	CategoryIcon    string      `json:"category_icon"`
	StatusLabel     string      `json:"status_label"`
	BadgeClass      string      `json:"badge_class"`
}

type MyEventsResult struct {
	Events       []*model.Event     `json:"events"`
	Counts       model.StatusCounts `json:"counts"`
	StatusFilter model.EventStatus  `json:"status_filter"`
	Message      string             `json:"message,omitempty"`
}

type CategoryEventsResult struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Icon     string         `json:"icon"`
	Events   []*model.Event `json:"events"`
	Message  string         `json:"message,omitempty"`
}

type CategoryInfo struct {
	Value           model.Category `json:"value"`
	Label           string         `json:"label"`
	Icon            string         `json:"icon"`
	DurationMinutes int            `json:"duration_minutes"`
}

type EventServiceImpl struct {
	repo       repository.EventRepository
	history    repository.StatusHistoryRepository
	queue      queue.StatusQueue
	files      storage.FileStorage
	normalizer *embed.Normalizer
	now        func() time.Time
}

type EventServiceOption func(*EventServiceImpl)

// WithClock 測試用，替換時間來源
func WithClock(now func() time.Time) EventServiceOption {
	return func(s *EventServiceImpl) { s.now = now }
}

func NewEventService(
	repo repository.EventRepository,
	history repository.StatusHistoryRepository,
	statusQueue queue.StatusQueue,
	files storage.FileStorage,
	normalizer *embed.Normalizer,
	opts ...EventServiceOption,
) EventService {
	s := &EventServiceImpl{
		repo:       repo,
		history:    history,
		queue:      statusQueue,
		files:      files,
		normalizer: normalizer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EventServiceImpl) List(ctx context.Context, query model.ListEventsQuery) (*EventListResult, error) {
	ctx, span := observability.StartSpan(ctx, "event_service", "List",
		attribute.String("search", query.Search),
		attribute.String("page", query.Page),
	)
	defer span.End()

	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		degraded("List", err)
		return &EventListResult{Page: listing.Empty(), Message: listUnavailableMessage}, nil
	}

	for i, e := range events {
		if e != nil {
			events[i], _ = s.Refresh(ctx, e)
		}
	}

	return &EventListResult{Page: listing.Build(events, query.Page, s.now())}, nil
}

// degraded 讀取失敗時記錄並計數，呼叫端回傳空結果
func degraded(operation string, err error) {
	logger.WithComponent("service").Error("Failed to load events, serving empty result",
		zap.String("operation", operation), zap.Error(err))
	observability.ListingDegraded.Inc()
}

// unavailable 將非 not found 的讀取錯誤轉成 ErrEventUnavailable
func unavailable(operation string, err error) error {
	if errors.Is(err, apperrors.ErrEventNotFound) {
		return err
	}
	degraded(operation, err)
	return fmt.Errorf("%w: %v", apperrors.ErrEventUnavailable, err)
}

func buildFilter(query model.ListEventsQuery) (model.EventFilter, error) {
	filter := model.EventFilter{Search: strings.TrimSpace(query.Search)}

	if strings.TrimSpace(query.Category) != "" {
		category, ok := model.ParseCategory(query.Category)
		if !ok {
			return filter, apperrors.WrapValidation("category", "Select a valid category", apperrors.ErrInvalidCategory)
		}
		filter.Category = category
	}

	if strings.TrimSpace(query.Status) != "" {
		status, err := parseStatusField(query.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = status
	}

	from, to, err := parseDateRange(query.DateFrom, query.DateTo)
	if err != nil {
		return filter, err
	}
	filter.DateFrom, filter.DateTo = from, to
	return filter, nil
}

func (s *EventServiceImpl) Get(ctx context.Context, eventID uuid.UUID) (*EventDetail, error) {
	ctx, span := observability.StartSpan(ctx, "event_service", "Get", attribute.String("event_id", eventID.String()))
	defer span.End()

	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		return nil, unavailable("Get", err)
	}
	event, _ = s.Refresh(ctx, event)

	return s.detail(event), nil
}

func (s *EventServiceImpl) detail(event *model.Event) *EventDetail {
	d := &EventDetail{
		Event:           event,
		Embed:           s.normalizer.Normalize(event.StreamURL),
		TagList:         event.TagList(),
		DurationDisplay: event.DurationDisplay(),
		CategoryLabel:   event.Category.Label(),
		CategoryIcon:    event.Icon(),
		StatusLabel:     event.Status.Label(),
		BadgeClass:      event.BadgeClass(),
	}
	if event.Thumbnail != nil {
		d.ThumbnailURL = s.files.URL(*event.Thumbnail)
	}
	return d
}

func (s *EventServiceImpl) Refresh(ctx context.Context, event *model.Event) (*model.Event, bool) {
	now := s.now()
	next, changed := lifecycle.EvaluateEvent(event, now)
	if !changed {
		return event, false
	}

	updated := *event
	updated.Status = next

	if err := s.repo.UpdateStatus(ctx, event.ID, next, now); err != nil {
		// 寫入失敗不影響讀取
		logger.WithComponent("service").Warn("Failed to persist lifecycle transition",
			zap.String("event_id", event.EventID.String()),
			zap.String("to", string(next)),
			zap.Error(err),
		)
		observability.LifecycleWriteFailures.Inc()
		return &updated, false
	}

	updatedAt := now
	updated.UpdatedAt = &updatedAt
	observability.LifecycleTransitions.WithLabelValues(string(next)).Inc()
	s.publishChange(ctx, &updated, event.Status, model.ChangeReasonAuto, now)

	return &updated, true
}

// publishChange 發送失敗只記錄，不影響原本的請求
func (s *EventServiceImpl) publishChange(ctx context.Context, event *model.Event, from model.EventStatus, reason model.ChangeReason, at time.Time) {
	change := model.StatusChange{
		EventID:   event.ID,
		EventUUID: event.EventID,
		From:      from,
		To:        event.Status,
		Reason:    reason,
		At:        at.UTC(),
	}

	if err := s.queue.Publish(context.WithoutCancel(ctx), change); err != nil {
		logger.WithComponent("service").Warn("Failed to publish status change",
			zap.String("event_id", event.EventID.String()),
			zap.String("to", string(change.To)),
			zap.Error(err),
		)
		observability.StatusChangesPublished.WithLabelValues("failed").Inc()
		return
	}
	observability.StatusChangesPublished.WithLabelValues("ok").Inc()
}

func (s *EventServiceImpl) Create(ctx context.Context, actor *model.Account, req model.CreateEventRequest) (*model.Event, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}

	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	category, err := parseCategoryField(req.Category)
	if err != nil {
		return nil, err
	}
	if err := validateFutureDate(req.ScheduledDate, s.now()); err != nil {
		return nil, err
	}

	maxViewers := model.DefaultMaxViewers
	if req.MaxViewers != nil {
		maxViewers = *req.MaxViewers
	}
	if err := validateMaxViewers(maxViewers); err != nil {
		return nil, err
	}

	tags, err := validateTags(req.Tags)
	if err != nil {
		return nil, err
	}
	streamURL, err := validateStreamURL(req.StreamURL)
	if err != nil {
		return nil, err
	}

	// 沒有資料庫層的唯一約束，併發時可能重複
	exists, err := s.repo.ExistsByCreatorAndTitle(ctx, actor.ID, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.WrapValidation("title", "You already have an event with this title", apperrors.ErrDuplicateTitle)
	}

	event := &model.Event{
		EventID:       uuid.New(),
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		CreatorID:     actor.ID,
		Category:      category,
		ScheduledDate: req.ScheduledDate.UTC(),
		Status:        model.EventStatusScheduled,
		MaxViewers:    maxViewers,
		Tags:          tags,
		StreamURL:     streamURL,
	}
	return s.repo.Create(ctx, event)
}

// loadOwned 查詢活動並確認 actor 是建立者
func (s *EventServiceImpl) loadOwned(ctx context.Context, actor *model.Account, eventID uuid.UUID) (*model.Event, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(actor.ID) {
		return nil, apperrors.ErrForbidden
	}
	return event, nil
}

func isEmptyUpdate(req model.UpdateEventRequest) bool {
	return req.Title == nil && req.Description == nil && req.Category == nil &&
		req.ScheduledDate == nil && req.Status == nil && req.MaxViewers == nil &&
		req.Tags == nil && req.StreamURL == nil
}

func (s *EventServiceImpl) Update(ctx context.Context, actor *model.Account, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.loadOwned(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}
	if isEmptyUpdate(req) {
		return nil, apperrors.ErrInvalidInput
	}
	event, _ = s.Refresh(ctx, event)

	now := s.now()
	params := model.UpdateEventParams{}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		params.Title = &title
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		params.Description = &description
	}

	if req.Category != nil {
		category, err := parseCategoryField(*req.Category)
		if err != nil {
			return nil, err
		}
		params.Category = &category
	}

	resultDate := event.ScheduledDate
	if req.ScheduledDate != nil && !req.ScheduledDate.Equal(event.ScheduledDate) {
		if event.IsLive() {
			return nil, apperrors.WrapValidation("scheduled_date",
				"The scheduled date cannot change while the event is live", apperrors.ErrScheduleLocked)
		}
		date := req.ScheduledDate.UTC()
		params.ScheduledDate = &date
		resultDate = date
	}

	resultStatus := event.Status
	if req.Status != nil {
		status, err := parseStatusField(*req.Status)
		if err != nil {
			return nil, err
		}
		if !event.Status.CanTransitionTo(status) {
			return nil, apperrors.WrapValidation("status",
				fmt.Sprintf("Cannot change status from %s to %s", event.Status, status), apperrors.ErrInvalidStatus)
		}
		if status != event.Status {
			params.Status = &status
		}
		resultStatus = status
	}

	if (req.Status != nil || req.ScheduledDate != nil) && resultStatus == model.EventStatusScheduled && resultDate.Before(now) {
		return nil, apperrors.NewValidationError("scheduled_date", "An event cannot be scheduled in the past")
	}

	if req.MaxViewers != nil {
		if err := validateMaxViewers(*req.MaxViewers); err != nil {
			return nil, err
		}
		params.MaxViewers = req.MaxViewers
	}

	if req.Tags != nil {
		tags, err := validateTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		params.Tags = &tags
	}

	if req.StreamURL != nil {
		streamURL, err := validateStreamURL(*req.StreamURL)
		if err != nil {
			return nil, err
		}
		params.StreamURL = &streamURL
	}

	if params.IsEmpty() {
		return event, nil
	}

	updated, err := s.repo.Update(ctx, event.ID, params)
	if err != nil {
		return nil, err
	}

	if params.Status != nil {
		s.publishChange(ctx, updated, event.Status, model.ChangeReasonOwner, now)
	}
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, actor *model.Account, eventID uuid.UUID) error {
	event, err := s.loadOwned(ctx, actor, eventID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, event.ID); err != nil {
		return err
	}

	if event.Thumbnail != nil {
		s.removeFile(ctx, *event.Thumbnail)
	}
	return nil
}

func (s *EventServiceImpl) removeFile(ctx context.Context, relPath string) {
	if err := s.files.Delete(ctx, relPath); err != nil {
		logger.WithComponent("service").Warn("Failed to remove stored file",
			zap.String("path", relPath), zap.Error(err))
	}
}

func (s *EventServiceImpl) SetThumbnail(ctx context.Context, actor *model.Account, eventID uuid.UUID, content io.Reader) (*model.Event, error) {
	event, err := s.loadOwned(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Save(ctx, storage.KindThumbnail, content)
	if err != nil {
		return nil, uploadError("thumbnail", err)
	}

	updated, err := s.repo.Update(ctx, event.ID, model.UpdateEventParams{Thumbnail: &path})
	if err != nil {
		s.removeFile(ctx, path)
		return nil, err
	}

	if event.Thumbnail != nil {
		s.removeFile(ctx, *event.Thumbnail)
	}
	return updated, nil
}

// uploadError 將儲存層的檔案錯誤轉成欄位驗證錯誤
func uploadError(field string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return apperrors.WrapValidation(field, "The file cannot exceed 2 MB", err)
	case errors.Is(err, apperrors.ErrUnsupportedFile):
		return apperrors.WrapValidation(field, "The file must be an image", err)
	default:
		return err
	}
}

func (s *EventServiceImpl) SetFeatured(ctx context.Context, actor *model.Account, eventID uuid.UUID, featured bool) (*model.Event, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !actor.IsStaff {
		return nil, apperrors.ErrForbidden
	}

	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsFeatured == featured {
		return event, nil
	}
	return s.repo.Update(ctx, event.ID, model.UpdateEventParams{IsFeatured: &featured})
}

func (s *EventServiceImpl) MyEvents(ctx context.Context, actor *model.Account, status string) (*MyEventsResult, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}

	var filter model.EventStatus
	if strings.TrimSpace(status) != "" {
		parsed, err := parseStatusField(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	events, err := s.repo.ListByCreator(ctx, actor.ID)
	if err != nil {
		degraded("MyEvents", err)
		return &MyEventsResult{
			Events:       []*model.Event{},
			StatusFilter: filter,
			Message:      listUnavailableMessage,
		}, nil
	}
	for i, e := range events {
		events[i], _ = s.Refresh(ctx, e)
	}

	// 統計在過濾前計算
	result := &MyEventsResult{
		Counts:       model.CountByStatus(events),
		StatusFilter: filter,
		Events:       make([]*model.Event, 0, len(events)),
	}
	for _, e := range events {
		if filter == "" || e.Status == filter {
			result.Events = append(result.Events, e)
		}
	}
	return result, nil
}

func (s *EventServiceImpl) ByCategory(ctx context.Context, raw string) (*CategoryEventsResult, error) {
	category, ok := model.ParseCategory(raw)
	if !ok {
		return nil, apperrors.ErrInvalidCategory
	}

	result := &CategoryEventsResult{
		Category: category,
		Label:    category.Label(),
		Icon:     category.Icon(),
		Events:   []*model.Event{},
	}

	events, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		degraded("ByCategory", err)
		result.Message = listUnavailableMessage
		return result, nil
	}
	for i, e := range events {
		events[i], _ = s.Refresh(ctx, e)
	}
	if events != nil {
		result.Events = events
	}
	return result, nil
}

func (s *EventServiceImpl) History(ctx context.Context, eventID uuid.UUID) ([]*model.StatusHistoryEntry, error) {
	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, unavailable("History", err)
	}

	entries, err := s.history.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, unavailable("History", err)
	}
	if entries == nil {
		entries = []*model.StatusHistoryEntry{}
	}
	return entries, nil
}

func (s *EventServiceImpl) Categories() []CategoryInfo {
	categories := model.Categories()
	infos := make([]CategoryInfo, 0, len(categories))
	for _, c := range categories {
		infos = append(infos, CategoryInfo{
			Value:           c,
			Label:           c.Label(),
			Icon:            c.Icon(),
			DurationMinutes: c.DurationMinutes(),
		})
	}
	return infos
}
