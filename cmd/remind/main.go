package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"totl_backend/internal/app"
	"totl_backend/internal/config"
	"totl_backend/internal/logger"
	"totl_backend/internal/services"
)

// remind runs one follow-up reminder sweep over pending client applications
// and exits. Scheduling belongs to cron or the platform's job runner, never
// to the server process.
func main() {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := app.OpenDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	notifier := app.BuildNotifier(db, cfg)
	svc := services.NewServiceContainer(db, notifier)

	result, err := svc.ClientApplication.SendFollowUpReminders()
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	fmt.Printf("processed=%d sent=%d failures=%d\n", result.Processed, result.Sent, len(result.Failures))
	for _, f := range result.Failures {
		fmt.Printf("  %s stage=%s: %s\n", f.ApplicationID, f.Stage, f.Reason)
	}
	if len(result.Failures) > 0 {
		os.Exit(1)
	}
}
