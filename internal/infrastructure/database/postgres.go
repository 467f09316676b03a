package database

import (
	"fmt"
	"log"

	"github.com/mitienda/pos-api/internal/config"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Purchase{},
		&entity.PurchaseItem{},
		&entity.StoreSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedUser creates a user with the given role unless the email is taken.
// A user is only seeded when its password env var is set.
func seedUser(db *gorm.DB, email, password, name, role string) {
	if password == "" {
		return
	}

	var existing entity.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("User already exists: %s", email)
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Warning: failed to hash password for %s: %v", email, err)
		return
	}

	user := entity.User{
		FullName: name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Warning: failed to create user %s: %v", email, err)
		return
	}
	log.Printf("%s user created: %s", role, email)
}

// SeedDefaultData seeds the initial accounts and the walk-in customer
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminName := viper.GetString("ADMIN_NAME")
	if adminEmail == "" {
		adminEmail = "admin@pos.local"
	}
	if adminName == "" {
		adminName = "Administrador"
	}
	seedUser(db, adminEmail, viper.GetString("ADMIN_PASSWORD"), adminName, entity.RoleAdmin)

	cashierEmail := viper.GetString("CASHIER_EMAIL")
	cashierName := viper.GetString("CASHIER_NAME")
	if cashierEmail == "" {
		cashierEmail = "cajero@pos.local"
	}
	if cashierName == "" {
		cashierName = "Cajero"
	}
	seedUser(db, cashierEmail, viper.GetString("CASHIER_PASSWORD"), cashierName, entity.RoleCashier)

	// Walk-in customer used when no customer is attached to a sale
	var walkIn entity.Customer
	if err := db.Where("name = ?", "Cliente General").First(&walkIn).Error; err != nil {
		walkIn = entity.Customer{
			Name:  "Cliente General",
			TaxID: "XAXX010101000",
		}
		if err := db.Create(&walkIn).Error; err != nil {
			log.Printf("Warning: failed to create walk-in customer: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
