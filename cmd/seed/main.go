package main

import (
	"context"
	"log"

	"lendcircle/internal/config"
	"lendcircle/internal/db"
	"lendcircle/internal/model"
	"lendcircle/internal/repository"
	"lendcircle/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LoanProfile{},
		&model.Transaction{},
		&model.LoanUpdate{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewLoanProfileRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)

	ledger := service.NewLedgerService(txnRepo, userRepo, profileRepo)
	seeder := service.NewSeedService(userRepo, profileRepo, ledger)

	stats, err := seeder.SeedDemoData(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Lenders created: %d", stats.Lenders)
	log.Printf("  - Borrowers created: %d", stats.Borrowers)
	log.Printf("  - Loan profiles created: %d", stats.LoanProfiles)
	log.Printf("  - Transactions recorded: %d", stats.Transactions)
}
