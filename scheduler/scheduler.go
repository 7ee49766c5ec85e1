package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valfantasy/pkg/config"
	"valfantasy/pkg/database"
	"valfantasy/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(cfg, rawDb); err != nil {
		log.Fatal(err)
	}

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register leaderboard cache revalidation - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.RevalidateLeaderboard,
			cfg,
		),
		gocron.WithName("leaderboard-revalidation"),
		gocron.WithTags("leaderboard"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create leaderboard job: %v", err)
	}

	// Register stale player deactivation - once per day at 5:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(5, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.DeactivateStalePlayers,
			cfg,
		),
		gocron.WithName("stale-player-deactivation"),
		gocron.WithTags("players"),
	)
	if err != nil {
		log.Fatalf("Failed to create player deactivation job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Printf("Error shutting down the scheduler: %v", err)
		}
	}()

	// Wait for a termination signal.
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	<-signalChannel

	log.Println("Stopping scheduler.")
}
