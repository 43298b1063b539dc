package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinMaxViewers     = 1
	MaxMaxViewers     = 1000
	DefaultMaxViewers = 100
)

// Category 活動分類
type Category string

const (
	CategoryGaming        Category = "gaming"
	CategoryMusic         Category = "music"
	CategoryTalk          Category = "talk"
	CategoryEducation     Category = "education"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryTechnology    Category = "technology"
	CategoryArt           Category = "art"
	CategoryOther         Category = "other"
)

type categoryInfo struct {
	label           string
	icon            string
	durationMinutes int
}

var categoryTable = map[Category]categoryInfo{
	CategoryGaming:        {"Gaming", "🎮", 180},
	CategoryMusic:         {"Music", "🎵", 90},
	CategoryTalk:          {"Talks", "💬", 60},
	CategoryEducation:     {"Education", "📚", 120},
	CategorySports:        {"Sports", "⚽", 150},
	CategoryEntertainment: {"Entertainment", "🎭", 120},
	CategoryTechnology:    {"Technology", "💻", 90},
	CategoryArt:           {"Art & Creativity", "🎨", 120},
	CategoryOther:         {"Other", "📅", 90},
}

var categoryOrder = []Category{
	CategoryGaming,
	CategoryMusic,
	CategoryTalk,
	CategoryEducation,
	CategorySports,
	CategoryEntertainment,
	CategoryTechnology,
	CategoryArt,
	CategoryOther,
}

// Categories 依固定順序回傳所有分類
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory 只接受列舉內的值
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}

func (c Category) IsValid() bool {
	_, ok := categoryTable[c]
	return ok
}

func (c Category) info() categoryInfo {
	if info, ok := categoryTable[c]; ok {
		return info
	}
	return categoryTable[CategoryOther]
}

func (c Category) Label() string { return c.info().label }
func (c Category) Icon() string  { return c.info().icon }

func (c Category) DurationMinutes() int { return c.info().durationMinutes }

func (c Category) Duration() time.Duration {
	return time.Duration(c.DurationMinutes()) * time.Minute
}

// EventStatus 活動狀態類型
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusLive      EventStatus = "live"
	EventStatusFinished  EventStatus = "finished"
	EventStatusCancelled EventStatus = "cancelled"
)

type statusInfo struct {
	label      string
	badgeClass string
}

var statusTable = map[EventStatus]statusInfo{
	EventStatusScheduled: {"Scheduled", "bg-primary"},
	EventStatusLive:      {"Live", "bg-danger"},
	EventStatusFinished:  {"Finished", "bg-secondary"},
	EventStatusCancelled: {"Cancelled", "bg-dark"},
}

// Statuses 依生命週期順序回傳所有狀態
func Statuses() []EventStatus {
	return []EventStatus{EventStatusScheduled, EventStatusLive, EventStatusFinished, EventStatusCancelled}
}

func ParseEventStatus(raw string) (EventStatus, bool) {
	s := EventStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

// IsValid 驗證狀態是否有效
func (s EventStatus) IsValid() bool {
	_, ok := statusTable[s]
	return ok
}

func (s EventStatus) Label() string {
	if info, ok := statusTable[s]; ok {
		return info.label
	}
	return string(s)
}

func (s EventStatus) BadgeClass() string {
	if info, ok := statusTable[s]; ok {
		return info.badgeClass
	}
	return "bg-secondary"
}

// IsTerminal finished 與 cancelled 不再自動轉換
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusFinished || s == EventStatusCancelled
}

// CanTransitionTo 檢查是否可以轉換到目標狀態，相同狀態視為允許
func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	if s == target {
		return s.IsValid()
	}

	transitions := map[EventStatus][]EventStatus{
		EventStatusScheduled: {EventStatusLive, EventStatusCancelled},
		EventStatusLive:      {EventStatusFinished, EventStatusCancelled},
		EventStatusFinished:  {},
		EventStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Event 直播活動
type Event struct {
	ID              int         `json:"-" db:"id"`
	EventID         uuid.UUID   `json:"event_id" db:"event_id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	CreatorID       int         `json:"-" db:"creator_id"`
	CreatorUsername string      `json:"creator" db:"creator_username"`
	Category        Category    `json:"category" db:"category"`
	ScheduledDate   time.Time   `json:"scheduled_date" db:"scheduled_date"`
	Status          EventStatus `json:"status" db:"status"`
	Thumbnail       *string     `json:"thumbnail,omitempty" db:"thumbnail"`
	MaxViewers      int         `json:"max_viewers" db:"max_viewers"`
	IsFeatured      bool        `json:"is_featured" db:"is_featured"`
	Tags            string      `json:"tags" db:"tags"`
	StreamURL       string      `json:"stream_url" db:"stream_url"`
	CreatedAt       *time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time  `json:"updated_at" db:"updated_at"`
}

func (e *Event) IsLive() bool {
	return e.Status == EventStatusLive
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Status == EventStatusScheduled && e.ScheduledDate.After(now)
}

func (e *Event) IsOwnedBy(accountID int) bool {
	return e.CreatorID == accountID
}

// Duration 只由分類決定
func (e *Event) Duration() time.Duration {
	return e.Category.Duration()
}

func (e *Event) DurationDisplay() string {
	minutes := e.Category.DurationMinutes()
	hours, mins := minutes/60, minutes%60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", mins)
	case mins == 0:
		return fmt.Sprintf("%d h", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
}

// TagList 拆分逗號分隔的標籤，去除空白與空項目
func (e *Event) TagList() []string {
	tags := make([]string, 0)
	for _, raw := range strings.Split(e.Tags, ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (e *Event) BadgeClass() string { return e.Status.BadgeClass() }
func (e *Event) Icon() string       { return e.Category.Icon() }

// UpdateEventParams 部分更新欄位，nil 表示不變更
type UpdateEventParams struct {
	Title         *string
	Description   *string
	Category      *Category
	ScheduledDate *time.Time
	Status        *EventStatus
	MaxViewers    *int
	Tags          *string
	StreamURL     *string
	Thumbnail     *string
	IsFeatured    *bool
}

func (p UpdateEventParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.ScheduledDate == nil && p.Status == nil && p.MaxViewers == nil &&
		p.Tags == nil && p.StreamURL == nil && p.Thumbnail == nil && p.IsFeatured == nil
}

// EventFilter 列表搜尋條件，零值表示不過濾
type EventFilter struct {
	Search   string
	Category Category
	Status   EventStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// StatusCounts 「我的活動」各狀態數量
type StatusCounts struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Live      int `json:"live"`
	Finished  int `json:"finished"`
	Cancelled int `json:"cancelled"`
}

func CountByStatus(events []*Event) StatusCounts {
	counts := StatusCounts{Total: len(events)}
	for _, e := range events {
		switch e.Status {
		case EventStatusScheduled:
			counts.Scheduled++
		case EventStatusLive:
			counts.Live++
		case EventStatusFinished:
			counts.Finished++
		case EventStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	MaxViewers    *int      `json:"max_viewers"`
	Tags          string    `json:"tags"`
	StreamURL     string    `json:"stream_url"`
}

// UpdateEventRequest 更新活動請求，未帶的欄位維持原值
type UpdateEventRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Category      *string    `json:"category"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        *string    `json:"status"`
	MaxViewers    *int       `json:"max_viewers"`
	Tags          *string    `json:"tags"`
	StreamURL     *string    `json:"stream_url"`
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

type EventURIRequest struct {
	EventID string `uri:"event_id" binding:"required,uuid"`
}

// ListEventsQuery 列表查詢參數，page 保留原字串交給分頁處理
type ListEventsQuery struct {
	Page     string `form:"page"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}
