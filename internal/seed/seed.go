// Package seed fills a development database with demo accounts and events.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/repository"
	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUsername   = "admin"
	AdminPassword   = "admin123"
	DefaultPassword = "password123"

	featuredChance = 0.2
	tagsPerEvent   = 3
)

var (
	statusWeights = []struct {
		status model.EventStatus
		weight int
	}{
		{model.EventStatusScheduled, 50},
		{model.EventStatusLive, 15},
		{model.EventStatusFinished, 30},
		{model.EventStatusCancelled, 5},
	}

	maxViewerChoices = []int{50, 100, 150, 200, 300, 500}

	tagsByCategory = map[model.Category][]string{
		model.CategoryGaming:        {"fortnite", "valorant", "league of legends", "minecraft", "gaming", "tournament", "esports"},
		model.CategoryMusic:         {"jazz", "rock", "electronic", "acoustic", "concert", "music", "live", "dj"},
		model.CategoryTalk:          {"debate", "talk", "conference", "discussion", "education", "technology"},
		model.CategoryEducation:     {"workshop", "tutorial", "course", "learning", "programming", "python", "web"},
		model.CategorySports:        {"football", "esports", "competition", "marathon", "fitness", "training"},
		model.CategoryEntertainment: {"comedy", "cooking", "creative", "fun", "streaming"},
		model.CategoryTechnology:    {"ai", "blockchain", "programming", "technology", "innovation", "startup"},
		model.CategoryArt:           {"photography", "drawing", "painting", "creativity", "design", "digital art"},
		model.CategoryOther:         {"community", "chat", "q&a", "meetup", "networking"},
	}

	streamURLs = map[model.Category][]string{
		model.CategoryGaming: {
			"https://www.twitch.tv/gamingstream",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.twitch.tv/esportstv",
		},
		model.CategoryMusic: {
			"https://youtu.be/6LASz6HAL7E",
			"https://youtu.be/9vDL7AgLdYQ",
			"https://youtu.be/Ov5ljc44Ajs",
		},
		model.CategoryTalk: {
			"https://www.youtube.com/watch?v=video_id_talk1",
			"https://www.youtube.com/watch?v=video_id_talk2",
		},
		model.CategoryEducation: {
			"https://www.youtube.com/watch?v=video_id_edu1",
			"https://www.youtube.com/watch?v=video_id_edu2",
		},
		model.CategoryOther: {
			"https://www.twitch.tv/community",
			"https://www.youtube.com/watch?v=video_id_other",
		},
	}
)

type Options struct {
	Users  int
	Events int
	Clear  bool
	// BcryptCost 0 表示 bcrypt.DefaultCost
	BcryptCost int
}

type Report struct {
	AccountsCreated int
	AccountsSkipped int
	EventsCreated   int
	EventsFailed    int
	Featured        int
	Live            int
	Scheduled       int
}

// Seeder 只寫入資料庫，不經過 service 的驗證與狀態推進
type Seeder struct {
	accounts repository.AccountRepository
	events   repository.EventRepository
	faker    *gofakeit.Faker
	now      func() time.Time
	// Progress 每建立一筆資料呼叫一次，可為 nil
	Progress func(msg string)
}

func NewSeeder(accounts repository.AccountRepository, events repository.EventRepository, faker *gofakeit.Faker) *Seeder {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &Seeder{
		accounts: accounts,
		events:   events,
		faker:    faker,
		now:      time.Now,
	}
}

func (s *Seeder) progress(format string, args ...interface{}) {
	if s.Progress != nil {
		s.Progress(fmt.Sprintf(format, args...))
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	if opts.Clear {
		if err := s.events.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear events: %w", err)
		}
		if err := s.accounts.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear accounts: %w", err)
		}
	}

	report := &Report{}
	creators, err := s.seedAccounts(ctx, opts.Users, cost, report)
	if err != nil {
		return nil, err
	}
	if len(creators) == 0 {
		return report, errors.New("no accounts available to own events")
	}

	for i := 0; i < opts.Events; i++ {
		event := s.BuildEvent(creators[s.faker.Number(0, len(creators)-1)])
		if _, err := s.events.Create(ctx, event); err != nil {
			report.EventsFailed++
			s.progress("failed to create %q: %v", event.Title, err)
			continue
		}
		report.EventsCreated++
		if event.IsFeatured {
			report.Featured++
		}
		switch event.Status {
		case model.EventStatusLive:
			report.Live++
		case model.EventStatusScheduled:
			report.Scheduled++
		}
		s.progress("%s %q by %s", event.Category.Icon(), event.Title, event.CreatorUsername)
	}
	return report, nil
}

func (s *Seeder) seedAccounts(ctx context.Context, n, cost int, report *Report) ([]*model.Account, error) {
	var creators []*model.Account

	admin, err := s.createAccount(ctx, &model.Account{
		Username:    AdminUsername,
		Email:       "admin@streamevents.com",
		FirstName:   "Admin",
		LastName:    "StreamEvents",
		DisplayName: "Administrator",
		Bio:         "StreamEvents system administrator.",
		IsStaff:     true,
	}, AdminPassword, cost)
	switch {
	case err == nil:
		report.AccountsCreated++
		creators = append(creators, admin)
	case isTaken(err):
		report.AccountsSkipped++
		existing, err := s.accounts.FindByUsername(ctx, AdminUsername)
		if err != nil {
			return nil, err
		}
		creators = append(creators, existing)
	default:
		return nil, err
	}

	for i := 0; i < n; i++ {
		account := s.BuildAccount(i)
		created, err := s.createAccount(ctx, account, DefaultPassword, cost)
		if err != nil {
			if isTaken(err) {
				report.AccountsSkipped++
				s.progress("account %s already exists", account.Username)
				continue
			}
			return nil, err
		}
		report.AccountsCreated++
		creators = append(creators, created)
		s.progress("account %s created", created.Username)
	}
	return creators, nil
}

func (s *Seeder) createAccount(ctx context.Context, account *model.Account, password string, cost int) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = string(hash)
	return s.accounts.Create(ctx, account)
}

func isTaken(err error) bool {
	return errors.Is(err, apperrors.ErrUsernameTaken) || errors.Is(err, apperrors.ErrEmailTaken)
}

// BuildAccount 第 i 個示範帳號，username 只含字母與數字
func (s *Seeder) BuildAccount(i int) *model.Account {
	first := s.faker.FirstName()
	last := s.faker.LastName()
	username := fmt.Sprintf("%s%s%d", asciiAlnum(first), asciiAlnum(last), i+1)

	role := "Regular viewer."
	switch {
	case (i+1)%5 == 0:
		role = "Streaming event organizer."
	case (i+1)%3 == 0:
		role = "Event and chat moderator."
	}

	return &model.Account{
		Username:    username,
		Email:       username + "@streamevents.com",
		FirstName:   first,
		LastName:    last,
		DisplayName: first + " " + last,
		Bio:         s.faker.Sentence(8) + " " + role,
	}
}

func asciiAlnum(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildEvent 隨機產生一筆活動，日期落在過去 30 天到未來 60 天之間
func (s *Seeder) BuildEvent(creator *model.Account) *model.Event {
	now := s.now()
	categories := model.Categories()
	category := categories[s.faker.Number(0, len(categories)-1)]

	scheduled := now.
		Add(time.Duration(s.faker.Number(-30, 60)) * 24 * time.Hour).
		Add(time.Duration(s.faker.Number(0, 23)) * time.Hour).
		Add(time.Duration(s.faker.Number(0, 59)) * time.Minute)

	title, description := s.content(category)

	return &model.Event{
		EventID:         uuid.New(),
		Title:           title,
		Description:     description,
		CreatorID:       creator.ID,
		CreatorUsername: creator.Username,
		Category:        category,
		ScheduledDate:   scheduled,
		Status:          AdjustStatus(s.pickStatus(), scheduled, now, s.faker.Bool()),
		MaxViewers:      maxViewerChoices[s.faker.Number(0, len(maxViewerChoices)-1)],
		IsFeatured:      s.faker.Float64() < featuredChance,
		Tags:            s.tags(category),
		StreamURL:       s.streamURL(category),
	}
}

func (s *Seeder) pickStatus() model.EventStatus {
	total := 0
	for _, w := range statusWeights {
		total += w.weight
	}
	roll := s.faker.Number(0, total-1)
	for _, w := range statusWeights {
		if roll < w.weight {
			return w.status
		}
		roll -= w.weight
	}
	return model.EventStatusScheduled
}

// AdjustStatus 讓隨機狀態與日期一致：過去的 scheduled 改為 finished 或 live，
// 一天以後的 live 改回 scheduled
func AdjustStatus(status model.EventStatus, scheduled, now time.Time, preferLive bool) model.EventStatus {
	switch {
	case status == model.EventStatusScheduled && scheduled.Before(now):
		if preferLive {
			return model.EventStatusLive
		}
		return model.EventStatusFinished
	case status == model.EventStatusLive && scheduled.After(now.Add(24*time.Hour)):
		return model.EventStatusScheduled
	}
	return status
}

func (s *Seeder) content(category model.Category) (string, string) {
	pick := func(options ...string) string { return options[s.faker.Number(0, len(options)-1)] }
	icon := category.Icon()
	paragraph := s.faker.Paragraph(1, 3, 12, " ")

	switch category {
	case model.CategoryGaming:
		game := pick("Fortnite", "Valorant", "League of Legends", "Minecraft", "Call of Duty")
		return fmt.Sprintf("%s %s: %s", icon, pick("Tournament", "Marathon", "Stream", "Competition"), game),
			paragraph + " " + game + " with players of every level."
	case model.CategoryMusic:
		genre := pick("Jazz", "Rock", "Electronic", "Acoustic", "Hip Hop")
		return fmt.Sprintf("%s %s: %s", icon, pick("Concert", "Jam Session", "Live Set", "Session"), genre),
			paragraph + " " + genre + " with " + pick("local", "international", "emerging") + " artists."
	case model.CategoryTalk:
		topic := pick("Artificial Intelligence", "Climate Change", "Mental Health", "Blockchain", "Entrepreneurship")
		return fmt.Sprintf("%s %s: %s", icon, pick("Talk", "Debate", "Conference", "Panel"), topic),
			paragraph + " About " + strings.ToLower(topic) + " with industry experts."
	case model.CategoryEducation:
		subject := pick("Python", "Web Development", "Photography", "Digital Drawing", "Cooking")
		return fmt.Sprintf("%s %s: %s", icon, pick("Workshop", "Course", "Tutorial", "Masterclass"), subject),
			paragraph + " Learn " + strings.ToLower(subject) + " from scratch with professionals."
	}
	return fmt.Sprintf("%s %s", icon, strings.TrimSuffix(s.faker.Sentence(4), ".")), paragraph
}

func (s *Seeder) tags(category model.Category) string {
	pool := tagsByCategory[category]
	if len(pool) == 0 {
		return "event, streaming"
	}
	shuffled := append([]string(nil), pool...)
	s.faker.ShuffleStrings(shuffled)
	n := tagsPerEvent
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return strings.Join(shuffled[:n], ", ")
}

func (s *Seeder) streamURL(category model.Category) string {
	urls, ok := streamURLs[category]
	if !ok {
		urls = streamURLs[model.CategoryOther]
	}
	return urls[s.faker.Number(0, len(urls)-1)]
}
