package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/pkg/supabase"
)

type todoListRepository struct {
	client *supabase.Client
}

// NewTodoListRepository creates a new Supabase-backed todo list repository
func NewTodoListRepository(client *supabase.Client) TodoListRepository {
	return &todoListRepository{client: client}
}

// dateRange builds PostgREST filters for column within [start, end]
func dateRange(start, end models.Date) []string {
	var filters []string
	if !start.IsZero() {
		filters = append(filters, "gte."+start.String())
	}
	if !end.IsZero() {
		filters = append(filters, "lte."+end.String())
	}
	return filters
}

func (r *todoListRepository) Upsert(ctx context.Context, list *models.TodoList) (*models.TodoList, error) {
	items := list.Items
	if items == nil {
		items = []models.TodoItem{}
	}

	data := map[string]interface{}{
		"id":    list.ID,
		"date":  list.Date,
		"items": items,
	}
	if list.MorningNotificationTime != "" {
		data["morning_notification_time"] = list.MorningNotificationTime
	}
	if list.EveningNotificationTime != "" {
		data["evening_notification_time"] = list.EveningNotificationTime
	}

	body, err := r.client.Upsert(ctx, "todo_lists", data, "date")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert todo list: %w", err)
	}

	var lists []models.TodoList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(lists) == 0 {
		return nil, fmt.Errorf("no todo list returned")
	}

	return &lists[0], nil
}

func (r *todoListRepository) GetByDate(ctx context.Context, date models.Date) (*models.TodoList, error) {
	query := map[string]interface{}{
		"date": fmt.Sprintf("eq.%s", date),
	}

	body, err := r.client.Query(ctx, "todo_lists", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo list: %w", err)
	}

	var lists []models.TodoList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(lists) == 0 {
		return nil, fmt.Errorf("todo list %s: %w", date, ErrNotFound)
	}

	return &lists[0], nil
}

func (r *todoListRepository) List(ctx context.Context, start, end models.Date) ([]models.TodoList, error) {
	query := map[string]interface{}{
		"select": "*",
		"order":  "date.asc",
	}
	if filters := dateRange(start, end); len(filters) > 0 {
		query["date"] = filters
	}

	body, err := r.client.Query(ctx, "todo_lists", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}

	var lists []models.TodoList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return lists, nil
}

func (r *todoListRepository) Delete(ctx context.Context, date models.Date) error {
	if _, err := r.GetByDate(ctx, date); err != nil {
		return err
	}

	query := map[string]interface{}{
		"date": fmt.Sprintf("eq.%s", date),
	}
	if err := r.client.DeleteWhere(ctx, "todo_lists", query); err != nil {
		return fmt.Errorf("failed to delete todo list: %w", err)
	}
	return nil
}
