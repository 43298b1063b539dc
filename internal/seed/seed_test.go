package seed_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/repository/mocks"
	"go-gin-stream-events/internal/seed"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

func TestBuildAccount(t *testing.T) {
	s := seed.NewSeeder(nil, nil, gofakeit.New(42))

	for i := 0; i < 20; i++ {
		account := s.BuildAccount(i)
		assert.Regexp(t, usernamePattern, account.Username)
		assert.True(t, strings.HasSuffix(account.Email, "@streamevents.com"))
		assert.NotEmpty(t, account.Bio)
	}
}

func TestBuildEvent(t *testing.T) {
	s := seed.NewSeeder(nil, nil, gofakeit.New(7))
	creator := &model.Account{ID: 9, Username: "alice"}
	now := time.Now()

	for i := 0; i < 50; i++ {
		event := s.BuildEvent(creator)

		assert.Equal(t, creator.ID, event.CreatorID)
		assert.True(t, event.Category.IsValid())
		assert.True(t, event.Status.IsValid())
		assert.LessOrEqual(t, len(event.TagList()), 3)
		assert.Contains(t, []int{50, 100, 150, 200, 300, 500}, event.MaxViewers)
		assert.True(t, strings.HasPrefix(event.StreamURL, "https://"))
		assert.True(t, event.ScheduledDate.After(now.Add(-31*24*time.Hour)))
		assert.True(t, event.ScheduledDate.Before(now.Add(62*24*time.Hour)))
	}
}

func TestAdjustStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     model.EventStatus
		scheduled  time.Time
		preferLive bool
		want       model.EventStatus
	}{
		{"past scheduled becomes finished", model.EventStatusScheduled, now.Add(-time.Hour), false, model.EventStatusFinished},
		{"past scheduled becomes live", model.EventStatusScheduled, now.Add(-time.Hour), true, model.EventStatusLive},
		{"future scheduled kept", model.EventStatusScheduled, now.Add(time.Hour), false, model.EventStatusScheduled},
		{"far future live becomes scheduled", model.EventStatusLive, now.Add(48 * time.Hour), false, model.EventStatusScheduled},
		{"near future live kept", model.EventStatusLive, now.Add(2 * time.Hour), false, model.EventStatusLive},
		{"cancelled kept", model.EventStatusCancelled, now.Add(-time.Hour), true, model.EventStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seed.AdjustStatus(tt.status, tt.scheduled, now, tt.preferLive))
		})
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creates admin, accounts and events", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		events := mocks.NewMockEventRepository(t)
		s := seed.NewSeeder(accounts, events, gofakeit.New(1))

		nextID := 0
		accounts.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, a *model.Account) (*model.Account, error) {
			nextID++
			a.ID = nextID
			return a, nil
		}).Times(3)
		events.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) {
			return e, nil
		}).Times(5)

		report, err := s.Run(ctx, seed.Options{Users: 2, Events: 5, BcryptCost: bcrypt.MinCost})

		require.NoError(t, err)
		assert.Equal(t, 3, report.AccountsCreated)
		assert.Equal(t, 5, report.EventsCreated)
	})

	t.Run("Success - existing admin is reused", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		events := mocks.NewMockEventRepository(t)
		s := seed.NewSeeder(accounts, events, gofakeit.New(1))

		admin := &model.Account{ID: 1, Username: seed.AdminUsername, IsStaff: true}
		accounts.EXPECT().Create(ctx, mock.MatchedBy(func(a *model.Account) bool { return a.Username == seed.AdminUsername })).
			Return(nil, apperrors.ErrUsernameTaken).Once()
		accounts.EXPECT().FindByUsername(ctx, seed.AdminUsername).Return(admin, nil).Once()
		events.EXPECT().Create(ctx, mock.MatchedBy(func(e *model.Event) bool { return e.CreatorID == admin.ID })).
			RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) { return e, nil }).Times(2)

		report, err := s.Run(ctx, seed.Options{Users: 0, Events: 2, BcryptCost: bcrypt.MinCost})

		require.NoError(t, err)
		assert.Equal(t, 1, report.AccountsSkipped)
		assert.Equal(t, 2, report.EventsCreated)
	})

	t.Run("Success - clear wipes events before accounts", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		events := mocks.NewMockEventRepository(t)
		s := seed.NewSeeder(accounts, events, gofakeit.New(1))

		clearEvents := events.EXPECT().DeleteAll(ctx).Return(nil).Once()
		accounts.EXPECT().DeleteAll(ctx).Return(nil).Once().NotBefore(clearEvents)
		accounts.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, a *model.Account) (*model.Account, error) {
			a.ID = 1
			return a, nil
		}).Once()

		_, err := s.Run(ctx, seed.Options{Clear: true, BcryptCost: bcrypt.MinCost})
		require.NoError(t, err)
	})

	t.Run("Failed - event insert errors are counted", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository(t)
		events := mocks.NewMockEventRepository(t)
		s := seed.NewSeeder(accounts, events, gofakeit.New(1))

		accounts.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, a *model.Account) (*model.Account, error) {
			a.ID = 1
			return a, nil
		}).Once()
		events.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrInternalServerError).Times(3)

		report, err := s.Run(ctx, seed.Options{Events: 3, BcryptCost: bcrypt.MinCost})

		require.NoError(t, err)
		assert.Equal(t, 3, report.EventsFailed)
		assert.Zero(t, report.EventsCreated)
	})
}
