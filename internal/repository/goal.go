package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/pkg/supabase"
)

type goalRepository struct {
	client *supabase.Client
}

// NewGoalRepository creates a new Supabase-backed goal repository
func NewGoalRepository(client *supabase.Client) GoalRepository {
	return &goalRepository{client: client}
}

func goalRow(goal *models.Goal) map[string]interface{} {
	data := map[string]interface{}{
		"id":               goal.ID,
		"title":            goal.Title,
		"description":      goal.Description,
		"type":             goal.Type,
		"category":         goal.Category,
		"timeframe":        goal.Timeframe,
		"start_date":       goal.StartDate,
		"end_date":         goal.EndDate,
		"target":           goal.Target,
		"current_progress": goal.CurrentProgress,
		"progress_model":   goal.ProgressModel,
		"metric":           goal.Metric,
		"status":           goal.Status,
		"progress_history": goal.ProgressHistory,
		"tags":             goal.Tags,
		"recurrence":       goal.Recurrence,
		"milestones":       goal.Milestones,
	}

	if goal.ReminderFrequency != "" {
		data["reminder_frequency"] = goal.ReminderFrequency
	}
	if goal.ReminderTime != "" {
		data["reminder_time"] = goal.ReminderTime
	}
	if goal.ProgressHistory == nil {
		data["progress_history"] = []models.Progress{}
	}

	return data
}

func decodeGoals(body []byte) ([]models.Goal, error) {
	var goals []models.Goal
	if err := json.Unmarshal(body, &goals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	for i := range goals {
		goals[i].Normalize()
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	body, err := r.client.Insert(ctx, "goals", goalRow(goal))
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	goals, err := decodeGoals(body)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("no goal returned")
	}

	return &goals[0], nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	query := map[string]interface{}{
		"id": fmt.Sprintf("eq.%s", id),
	}

	body, err := r.client.Query(ctx, "goals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	goals, err := decodeGoals(body)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}

	return &goals[0], nil
}

func (r *goalRepository) List(ctx context.Context) ([]models.Goal, error) {
	query := map[string]interface{}{
		"select": "*",
		"order":  "created_at.asc",
	}

	body, err := r.client.Query(ctx, "goals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return decodeGoals(body)
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	data := goalRow(goal)
	delete(data, "id")

	body, err := r.client.Update(ctx, "goals", goal.ID, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	goals, err := decodeGoals(body)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("goal %s: %w", goal.ID, ErrNotFound)
	}

	return &goals[0], nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if err := r.client.Delete(ctx, "goals", id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
