// Seeds the database with a demo account and sample projects/tasks.
// Wipes existing data first; never run against production.
package main

import (
	"context"
	"os"
	"time"

	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "test@example.com"
	seedPassword = "Test@123"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()

	if err := db.Migrate(ctx, dsn); err != nil {
		logger.Fatal("migrations failed", "error", err)
	}

	pool := db.Connect(ctx, dsn)
	defer pool.Close()

	logger.Info("clearing existing data")
	if _, err := pool.Exec(ctx, `TRUNCATE tasks, projects, users`); err != nil {
		logger.Fatal("truncate failed", "error", err)
	}

	users := repository.NewUserRepository(pool)
	projects := service.NewProjectService(repository.NewProjectRepository(pool))
	tasks := service.NewTaskService(repository.NewTaskRepository(pool))

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("hash password failed", "error", err)
	}

	user := &domain.User{Email: seedEmail, PasswordHash: string(hash)}
	if err := users.Create(ctx, user); err != nil {
		logger.Fatal("create user failed", "error", err)
	}
	logger.Info("user created", "email", user.Email)

	ecommerce, err := projects.Create(ctx, user.ID, service.CreateProjectInput{
		Title:       "E-Commerce Platform",
		Description: "Build a modern e-commerce platform with shopping cart, payment integration, and order management.",
		Status:      domain.ProjectActive,
	})
	if err != nil {
		logger.Fatal("create project failed", "error", err)
	}

	mobile, err := projects.Create(ctx, user.ID, service.CreateProjectInput{
		Title:       "Mobile App Development",
		Description: "Develop a cross-platform mobile application using React Native for iOS and Android.",
		Status:      domain.ProjectActive,
	})
	if err != nil {
		logger.Fatal("create project failed", "error", err)
	}

	seedTasks := []service.CreateTaskInput{
		{
			Title:       "Setup Project Repository",
			Description: "Initialize Git repository and setup project structure with React and Node.js.",
			Status:      domain.TaskDone,
			DueDate:     date(2025, 10, 15),
			ProjectID:   ecommerce.ID,
		},
		{
			Title:       "Design Database Schema",
			Description: "Create schema for users, products, orders, and shopping cart.",
			Status:      domain.TaskDone,
			DueDate:     date(2025, 10, 18),
			ProjectID:   ecommerce.ID,
		},
		{
			Title:       "Implement User Authentication",
			Description: "Build JWT-based authentication system with login, register, and password reset.",
			Status:      domain.TaskInProgress,
			DueDate:     date(2025, 10, 25),
			ProjectID:   ecommerce.ID,
		},
		{
			Title:       "Create Product Catalog",
			Description: "Build product listing page with search, filters, and pagination.",
			Status:      domain.TaskTodo,
			DueDate:     date(2025, 11, 1),
			ProjectID:   ecommerce.ID,
		},
		{
			Title:       "Design App Wireframes",
			Description: "Create wireframes and mockups for all app screens.",
			Status:      domain.TaskInProgress,
			DueDate:     date(2025, 10, 28),
			ProjectID:   mobile.ID,
		},
		{
			Title:       "Setup React Native Environment",
			Description: "Configure development environment for iOS and Android builds.",
			Status:      domain.TaskTodo,
			DueDate:     date(2025, 11, 5),
			ProjectID:   mobile.ID,
		},
	}

	for _, in := range seedTasks {
		if _, err := tasks.Create(ctx, user.ID, in); err != nil {
			logger.Fatal("create task failed", "title", in.Title, "error", err)
		}
	}

	logger.Info("seed complete",
		"user", seedEmail,
		"projects", 2,
		"tasks", len(seedTasks),
	)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
