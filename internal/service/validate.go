package service

import (
	"net/url"
	"strings"
	"time"

	"go-gin-stream-events/internal/model"
	apperrors "go-gin-stream-events/pkg/app_errors"
)

const (
	maxTitleLength     = 200
	maxTagsLength      = 500
	maxStreamURLLength = 500
	dateLayout         = "2006-01-02"
)

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", apperrors.NewValidationError("title", "Title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return "", apperrors.NewValidationError("title", "Title must be at most 200 characters")
	}
	return title, nil
}

// parseCategoryField 空字串視為 other
func parseCategoryField(raw string) (model.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return model.CategoryOther, nil
	}
	category, ok := model.ParseCategory(raw)
	if !ok {
		return "", apperrors.WrapValidation("category", "Select a valid category", apperrors.ErrInvalidCategory)
	}
	return category, nil
}

func parseStatusField(raw string) (model.EventStatus, error) {
	status, ok := model.ParseEventStatus(raw)
	if !ok {
		return "", apperrors.WrapValidation("status", "Select a valid status", apperrors.ErrInvalidStatus)
	}
	return status, nil
}

func validateMaxViewers(n int) error {
	if n < model.MinMaxViewers || n > model.MaxMaxViewers {
		return apperrors.NewValidationError("max_viewers", "Max viewers must be between 1 and 1000")
	}
	return nil
}

func validateTags(tags string) (string, error) {
	tags = strings.TrimSpace(tags)
	if len([]rune(tags)) > maxTagsLength {
		return "", apperrors.NewValidationError("tags", "Tags must be at most 500 characters")
	}
	return tags, nil
}

// validateStreamURL 允許空字串；其餘必須是絕對 http(s) URL
func validateStreamURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if len(raw) > maxStreamURLLength {
		return "", apperrors.NewValidationError("stream_url", "Stream URL must be at most 500 characters")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.NewValidationError("stream_url", "Enter a valid URL")
	}
	return raw, nil
}

func validateFutureDate(date, now time.Time) error {
	if date.Before(now) {
		return apperrors.NewValidationError("scheduled_date", "Scheduled date cannot be in the past")
	}
	return nil
}

// parseDateRange 將 YYYY-MM-DD 轉為 [from, to+1d)
func parseDateRange(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if s := strings.TrimSpace(fromRaw); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("date_from", "Enter a valid date")
		}
		from = &d
	}

	if s := strings.TrimSpace(toRaw); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("date_to", "Enter a valid date")
		}
		next := d.AddDate(0, 0, 1)
		to = &next
	}

	return from, to, nil
}
