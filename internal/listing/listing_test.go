package listing

import (
	"fmt"
	"testing"
	"time"

	"go-gin-stream-events/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// makeEvents 建立 n 筆活動，ID 越大越新
func makeEvents(n int) []*model.Event {
	events := make([]*model.Event, 0, n)
	for i := 1; i <= n; i++ {
		createdAt := now.Add(-time.Duration(n-i+1) * time.Minute)
		events = append(events, &model.Event{
			ID:        i,
			Title:     fmt.Sprintf("Event %d", i),
			Status:    model.EventStatusScheduled,
			CreatedAt: &createdAt,
		})
	}
	return events
}

func TestBuild_Empty(t *testing.T) {
	page := Build(nil, "", now)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalEvents)
	assert.Empty(t, page.Events)
	assert.NotNil(t, page.Events)
	assert.Empty(t, page.Featured)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestBuild_Pagination(t *testing.T) {
	events := makeEvents(25)

	t.Run("FirstPage", func(t *testing.T) {
		page := Build(events, "1", now)

		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 25, page.TotalEvents)
		require.Len(t, page.Events, PageSize)
		assert.Equal(t, 25, page.Events[0].ID)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrevious)
	})

	t.Run("LastPage", func(t *testing.T) {
		page := Build(events, "3", now)

		assert.Equal(t, 3, page.CurrentPage)
		require.Len(t, page.Events, 1)
		assert.Equal(t, 1, page.Events[0].ID)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrevious)
	})

	t.Run("BeyondLastClampsToLast", func(t *testing.T) {
		page := Build(events, "99", now)

		assert.Equal(t, 3, page.CurrentPage)
		require.Len(t, page.Events, 1)
		assert.Equal(t, 1, page.Events[0].ID)
	})

	for _, raw := range []string{"", "abc", "0", "-4", "1.5"} {
		t.Run("MalformedPage_"+raw, func(t *testing.T) {
			page := Build(events, raw, now)

			assert.Equal(t, 1, page.CurrentPage)
			assert.Len(t, page.Events, PageSize)
		})
	}
}

func TestBuild_MissingCreatedAtSortsAsNow(t *testing.T) {
	events := makeEvents(3)
	events[0].CreatedAt = nil

	page := Build(events, "1", now)

	require.Len(t, page.Events, 3)
	assert.Equal(t, 1, page.Events[0].ID)
	assert.Equal(t, 3, page.Events[1].ID)
	assert.Nil(t, events[0].CreatedAt)
}

func TestBuild_StableForTies(t *testing.T) {
	same := now.Add(-time.Hour)
	events := []*model.Event{
		{ID: 1, CreatedAt: &same},
		{ID: 2, CreatedAt: &same},
		{ID: 3, CreatedAt: &same},
	}

	page := Build(events, "1", now)

	require.Len(t, page.Events, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{page.Events[0].ID, page.Events[1].ID, page.Events[2].ID})
}

func TestBuild_SkipsNilEntries(t *testing.T) {
	events := append(makeEvents(2), nil)

	page := Build(events, "1", now)

	assert.Equal(t, 2, page.TotalEvents)
	assert.Len(t, page.Events, 2)
}

func TestFeatured(t *testing.T) {
	events := makeEvents(10)
	for _, e := range events {
		e.IsFeatured = true
	}
	events[9].Status = model.EventStatusFinished
	events[8].Status = model.EventStatusCancelled
	events[7].Status = model.EventStatusLive
	events[0].IsFeatured = false

	page := Build(events, "1", now)

	require.Len(t, page.Featured, MaxFeatured)
	for _, e := range page.Featured {
		assert.True(t, e.IsFeatured)
		assert.Contains(t, []model.EventStatus{model.EventStatusScheduled, model.EventStatusLive}, e.Status)
	}
	assert.Equal(t, 8, page.Featured[0].ID)
	assert.Equal(t, 7, page.Featured[1].ID)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("x"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 4, ParsePage(" 4 "))
}

func TestEmpty(t *testing.T) {
	page := Empty()

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.NotNil(t, page.Events)
	assert.NotNil(t, page.Featured)
}
