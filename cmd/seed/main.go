package main

import (
	"context"
	"flag"
	"os"

	"go-gin-stream-events/config"
	"go-gin-stream-events/internal/database"
	"go-gin-stream-events/internal/repository"
	"go-gin-stream-events/internal/seed"

	"github.com/fatih/color"
)

func main() {
	users := flag.Int("users", 10, "number of demo accounts to create")
	events := flag.Int("events", 15, "number of demo events to create")
	clearAll := flag.Bool("clear", false, "delete all events and accounts first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		color.Red("failed to load config: %v", err)
		os.Exit(1)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		color.Red("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		color.Red("failed to run migrations: %v", err)
		os.Exit(1)
	}

	seeder := seed.NewSeeder(repository.NewAccountRepository(pool), repository.NewEventRepository(pool), nil)
	seeder.Progress = func(msg string) { color.White("  %s", msg) }

	if *clearAll {
		color.Yellow("Clearing existing events and accounts")
	}
	color.Cyan("Seeding %d accounts and %d events", *users, *events)

	report, err := seeder.Run(ctx, seed.Options{Users: *users, Events: *events, Clear: *clearAll})
	if err != nil {
		color.Red("seed failed: %v", err)
		os.Exit(1)
	}

	color.Green("Accounts created: %d (skipped %d)", report.AccountsCreated, report.AccountsSkipped)
	color.Green("Events created: %d", report.EventsCreated)
	if report.EventsFailed > 0 {
		color.Red("Events failed: %d", report.EventsFailed)
	}
	color.Cyan("Featured: %d  Live: %d  Scheduled: %d", report.Featured, report.Live, report.Scheduled)
	color.Cyan("Admin login: %s / %s", seed.AdminUsername, seed.AdminPassword)
}
