package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

type todoService struct {
	todoRepo repository.TodoListRepository
	engine   *analytics.Engine
}

// NewTodoService creates a new todo list service
func NewTodoService(todoRepo repository.TodoListRepository, engine *analytics.Engine) TodoService {
	return &todoService{
		todoRepo: todoRepo,
		engine:   engine,
	}
}

func (s *todoService) GetList(ctx context.Context, date models.Date) (*models.TodoList, error) {
	return s.todoRepo.GetByDate(ctx, date)
}

func (s *todoService) ListLists(ctx context.Context, start, end models.Date) ([]models.TodoList, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, invalid("end", "must not be before start")
	}
	return s.todoRepo.List(ctx, start, end)
}

// UpsertList replaces the list for a date. Items get ids when missing,
// default to pending, and inherit the list date as their due date.
func (s *todoService) UpsertList(ctx context.Context, req *models.UpsertTodoListRequest) (*models.TodoList, error) {
	date := req.Date
	if date.IsZero() {
		date = models.DateOf(s.engine.Now())
	}

	list := &models.TodoList{
		Date:                    date,
		Items:                   make([]models.TodoItem, 0, len(req.Items)),
		MorningNotificationTime: req.MorningNotificationTime,
		EveningNotificationTime: req.EveningNotificationTime,
	}

	existing, err := s.todoRepo.GetByDate(ctx, date)
	switch {
	case err == nil:
		list.ID = existing.ID
		list.CreatedAt = existing.CreatedAt
	case errors.Is(err, repository.ErrNotFound):
		id, err := ResolveID("")
		if err != nil {
			return nil, err
		}
		list.ID = id
	default:
		return nil, err
	}

	now := s.engine.Now()
	for i, item := range req.Items {
		if strings.TrimSpace(item.Title) == "" {
			return nil, invalid(fmt.Sprintf("items[%d].title", i), "is required")
		}

		id, err := ResolveID(item.ID)
		if err != nil {
			return nil, err
		}
		item.ID = id

		switch item.Status {
		case "":
			item.Status = models.TodoStatusPending
		case models.TodoStatusPending, models.TodoStatusCompleted, models.TodoStatusFailed:
		default:
			return nil, invalid(fmt.Sprintf("items[%d].status", i), "must be pending, completed or failed")
		}

		if item.DueDate.IsZero() {
			item.DueDate = date
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		setCompletedAt(&item, now)

		list.Items = append(list.Items, item)
	}

	return s.todoRepo.Upsert(ctx, list)
}

func (s *todoService) UpdateItemStatus(ctx context.Context, date models.Date, itemID string, status models.TodoStatus) (*models.TodoList, error) {
	switch status {
	case models.TodoStatusPending, models.TodoStatusCompleted, models.TodoStatusFailed:
	default:
		return nil, invalid("status", "must be pending, completed or failed")
	}

	list, err := s.todoRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for i := range list.Items {
		if list.Items[i].ID != itemID {
			continue
		}
		list.Items[i].Status = status
		setCompletedAt(&list.Items[i], s.engine.Now())
		return s.todoRepo.Upsert(ctx, list)
	}

	return nil, fmt.Errorf("todo item %s: %w", itemID, repository.ErrNotFound)
}

func (s *todoService) DeleteList(ctx context.Context, date models.Date) error {
	return s.todoRepo.Delete(ctx, date)
}

// setCompletedAt stamps completed items and clears the stamp otherwise
func setCompletedAt(item *models.TodoItem, now time.Time) {
	if item.Status != models.TodoStatusCompleted {
		item.CompletedAt = nil
		return
	}
	if item.CompletedAt == nil {
		t := now
		item.CompletedAt = &t
	}
}
