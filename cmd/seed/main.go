package main

import (
	"context"
	"flag"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/database"
	"github.com/enapu/yard-backend/seeders"
	"github.com/enapu/yard-backend/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	runAll := flag.Bool("all", false, "Seed roles, levels, users, yard, ships, containers and tickets")
	runNormalize := flag.Bool("normalize", false, "Rewrite ticket status variants to their canonical spelling")
	flag.Parse()

	if !*runAll && !*runNormalize {
		utils.InfoLogger.Println("No seeder selected. Available flags:")
		flag.PrintDefaults()
		utils.InfoLogger.Println("Examples:")
		utils.InfoLogger.Println("  go run ./cmd/seed -all")
		utils.InfoLogger.Println("  go run ./cmd/seed -normalize")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	ctx := context.Background()
	if *runAll {
		hasher := utils.NewPasswordHasher(cfg.PasswordHasher, cfg.PBKDF2Iter)
		summary, err := seeders.Seed(ctx, db, hasher)
		if err != nil {
			utils.ErrorLogger.Fatalf("Seeding failed: %v", err)
		}
		utils.InfoLogger.WithFields(logrus.Fields{
			"roles":        summary.Roles,
			"levels":       summary.Levels,
			"users":        summary.Users,
			"zones":        summary.Zones,
			"slots":        summary.Slots,
			"ships":        summary.Ships,
			"appointments": summary.Appointments,
			"containers":   summary.Containers,
			"tickets":      summary.Tickets,
		}).Info("Seed completed.")
	}

	if *runNormalize {
		changed, err := seeders.NormalizeTicketStatuses(ctx, db)
		if err != nil {
			utils.ErrorLogger.Fatalf("Normalizing ticket statuses failed: %v", err)
		}
		utils.InfoLogger.WithField("tickets", changed).Info("Ticket statuses normalized.")
	}
}
