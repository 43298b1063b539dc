package lifecycle

import (
	"testing"
	"time"

	"go-gin-stream-events/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	duration := 90 * time.Minute

	tests := []struct {
		name    string
		status  model.EventStatus
		now     time.Time
		want    model.EventStatus
		changed bool
	}{
		{"scheduled before start", model.EventStatusScheduled, start.Add(-time.Second), model.EventStatusScheduled, false},
		{"scheduled exactly at start", model.EventStatusScheduled, start, model.EventStatusLive, true},
		{"scheduled long after end still goes live first", model.EventStatusScheduled, start.Add(10 * time.Hour), model.EventStatusLive, true},
		{"live before end", model.EventStatusLive, start.Add(duration - time.Second), model.EventStatusLive, false},
		{"live exactly at end", model.EventStatusLive, start.Add(duration), model.EventStatusFinished, true},
		{"live before start", model.EventStatusLive, start.Add(-time.Hour), model.EventStatusLive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Evaluate(tt.status, start, duration, tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestEvaluate_TerminalNeverChanges(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	offsets := []time.Duration{-48 * time.Hour, 0, time.Minute, 3 * time.Hour, 365 * 24 * time.Hour}

	for _, status := range []model.EventStatus{model.EventStatusFinished, model.EventStatusCancelled} {
		for _, offset := range offsets {
			got, changed := Evaluate(status, start, time.Hour, start.Add(offset))
			assert.Equal(t, status, got)
			assert.False(t, changed)
		}
	}
}

func TestEvaluateEvent_UsesCategoryDuration(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	talk := &model.Event{Category: model.CategoryTalk, Status: model.EventStatusLive, ScheduledDate: start}
	gaming := &model.Event{Category: model.CategoryGaming, Status: model.EventStatusLive, ScheduledDate: start}
	now := start.Add(2 * time.Hour)

	got, changed := EvaluateEvent(talk, now)
	assert.True(t, changed)
	assert.Equal(t, model.EventStatusFinished, got)

	got, changed = EvaluateEvent(gaming, now)
	assert.False(t, changed)
	assert.Equal(t, model.EventStatusLive, got)
}
