package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
)

const (
	demoEmail    = "demo@taskhub.local"
	demoPassword = "demo-password"
)

// seedDemoData registers a demo account with a couple of categories and tasks.
// An existing demo account is left untouched.
func seedDemoData(ctx context.Context, svc services) error {
	auth, err := svc.auth.Register(ctx, domain.RegisterInput{
		Email:     demoEmail,
		Password:  demoPassword,
		FirstName: "Demo",
		LastName:  "User",
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		zap.L().Info("demo account already present", zap.String("email", demoEmail))
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	userID := auth.User.ID

	work, err := svc.categories.CreateCategory(ctx, userID, domain.CreateCategoryInput{
		Name:        "Work",
		Description: ptr("Things that pay the bills"),
	})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	if _, err := svc.categories.CreateCategory(ctx, userID, domain.CreateCategoryInput{
		Name:  "Personal",
		Color: ptr("#10B981"),
	}); err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	due := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	report, err := svc.tasks.CreateTask(ctx, userID, domain.CreateTaskInput{
		Title:      "Write quarterly report",
		Priority:   domain.TaskPriorityHigh,
		DueDate:    &due,
		CategoryID: &work.ID,
	})
	if err != nil {
		return fmt.Errorf("seed task: %w", err)
	}
	if _, err := svc.tasks.AddNote(ctx, report.ID, userID, "Numbers are in the shared drive"); err != nil {
		return fmt.Errorf("seed note: %w", err)
	}

	inProgress := domain.TaskStatusInProgress
	groceries, err := svc.tasks.CreateTask(ctx, userID, domain.CreateTaskInput{Title: "Buy groceries"})
	if err != nil {
		return fmt.Errorf("seed task: %w", err)
	}
	if _, err := svc.tasks.UpdateTask(ctx, groceries.ID, userID, domain.UpdateTaskInput{Status: &inProgress}); err != nil {
		return fmt.Errorf("seed task: %w", err)
	}

	zap.L().Info("demo data seeded", zap.String("email", demoEmail))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
