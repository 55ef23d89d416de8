package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"workforce-portal-backend/internal/config"
	"workforce-portal-backend/internal/database"
	"workforce-portal-backend/internal/database/models"

	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Team     string `yaml:"team,omitempty"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type CustomerData struct {
	Name         string            `yaml:"name"`
	Environments []EnvironmentData `yaml:"environments,omitempty"`
}

type EnvironmentData struct {
	Name                string `yaml:"name"`
	RequestInstructions string `yaml:"request_instructions,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CustomersFile struct {
	Customers []CustomerData `yaml:"customers"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	customers, err := loadCustomers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create customers and their environments
	customerCreated := 0
	environmentCreated := 0
	for _, customerData := range customers {
		customer, created, err := createCustomer(db, customerData)
		if err != nil {
			return fmt.Errorf("failed to create customer %s: %w", customerData.Name, err)
		}
		if created {
			customerCreated++
		}

		for _, envData := range customerData.Environments {
			_, created, err := createEnvironment(db, customer, envData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create environment %s/%s: %v", customerData.Name, envData.Name, err)
				continue // Continue with other environments
			}
			if created {
				environmentCreated++
			}
		}
	}
	log.Printf("📋 Customers: %d created, %d total", customerCreated, len(customers))
	log.Printf("📋 Environments: %d created", environmentCreated)

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadCustomers(dataDir string) ([]CustomerData, error) {
	var allCustomers []CustomerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "customers") {
			var file CustomersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCustomers = append(allCustomers, file.Customers...)
		}
		return nil
	})

	return allCustomers, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			role := models.UserRole(userData.Role)
			if !role.IsValid() {
				return nil, false, fmt.Errorf("invalid role %q", userData.Role)
			}

			team := models.TeamNone
			if userData.Team != "" {
				team = models.ShiftTeam(userData.Team)
				if !team.IsValid() {
					return nil, false, fmt.Errorf("invalid team %q", userData.Team)
				}
			}

			isActive := true
			if userData.IsActive != nil {
				isActive = *userData.IsActive
			}

			user = models.User{
				Name:         userData.Name,
				Email:        email,
				PasswordHash: string(hash),
				Role:         role,
				Team:         team,
				IsActive:     isActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createCustomer(db *gorm.DB, customerData CustomerData) (*models.Customer, bool, error) {
	var customer models.Customer
	if err := db.Where("name = ?", customerData.Name).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			customer = models.Customer{
				Name: customerData.Name,
			}

			if err := db.Create(&customer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create customer: %w", err)
			}
			return &customer, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query customer: %w", err)
		}
	}

	return &customer, false, nil // created = false (existing)
}

func createEnvironment(db *gorm.DB, customer *models.Customer, envData EnvironmentData) (*models.Environment, bool, error) {
	var environment models.Environment
	if err := db.Where("name = ? AND customer_id = ?", envData.Name, customer.ID).First(&environment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			environment = models.Environment{
				CustomerID:          customer.ID,
				Name:                envData.Name,
				RequestInstructions: envData.RequestInstructions,
			}

			if err := db.Create(&environment).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create environment: %w", err)
			}
			return &environment, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query environment: %w", err)
		}
	}

	return &environment, false, nil // created = false (existing)
}
