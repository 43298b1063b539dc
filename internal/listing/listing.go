// Package listing sorts, features and paginates an in-memory set of events.
package listing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"go-gin-stream-events/internal/model"
)

const (
	PageSize    = 12
	MaxFeatured = 6
)

type Page struct {
	Events      []*model.Event `json:"events"`
	Featured    []*model.Event `json:"featured"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	TotalEvents int            `json:"total_events"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// Empty returns a well-formed first page with no events.
func Empty() Page {
	return Page{
		Events:      []*model.Event{},
		Featured:    []*model.Event{},
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// ParsePage 非數字或小於 1 時回傳 1
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// SortByCreatedDesc sorts a copy of events newest first. Missing CreatedAt
// counts as now; ties keep their input order.
func SortByCreatedDesc(events []*model.Event, now time.Time) []*model.Event {
	sorted := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if e != nil {
			sorted = append(sorted, e)
		}
	}

	createdAt := func(e *model.Event) time.Time {
		if e.CreatedAt == nil {
			return now
		}
		return *e.CreatedAt
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	return sorted
}

// Featured picks up to MaxFeatured featured events that are scheduled or live,
// in the given order.
func Featured(sorted []*model.Event) []*model.Event {
	featured := make([]*model.Event, 0, MaxFeatured)
	for _, e := range sorted {
		if !e.IsFeatured {
			continue
		}
		if e.Status != model.EventStatusScheduled && e.Status != model.EventStatusLive {
			continue
		}
		featured = append(featured, e)
		if len(featured) == MaxFeatured {
			break
		}
	}
	return featured
}

// Build assembles one page from the full collection.
func Build(events []*model.Event, pageParam string, now time.Time) Page {
	sorted := SortByCreatedDesc(events, now)
	total := len(sorted)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := ParsePage(pageParam)
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	if start >= total {
		start = 0
		page = 1
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return Page{
		Events:      append([]*model.Event{}, sorted[start:end]...),
		Featured:    Featured(sorted),
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalEvents: total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
