package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

// Todo lists are keyed by their date so an upsert replaces the day's list.
type todoListRepository struct {
	store *Store
}

// NewTodoListRepository creates a SQLite-backed todo list repository
func NewTodoListRepository(store *Store) repository.TodoListRepository {
	return &todoListRepository{store: store}
}

func (r *todoListRepository) Upsert(ctx context.Context, list *models.TodoList) (*models.TodoList, error) {
	if list.Date.IsZero() {
		return nil, fmt.Errorf("todo list date is required")
	}

	l := *list
	now := time.Now().UTC()
	if existing, err := get[models.TodoList](ctx, r.store.db, "todo_lists", l.Date.String()); err == nil {
		l.CreatedAt = existing.CreatedAt
		if l.ID == "" {
			l.ID = existing.ID
		}
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	if l.Items == nil {
		l.Items = []models.TodoItem{}
	}

	key := l.Date.String()
	if err := put(ctx, r.store.db, "todo_lists", key, key, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *todoListRepository) GetByDate(ctx context.Context, date models.Date) (*models.TodoList, error) {
	return get[models.TodoList](ctx, r.store.db, "todo_lists", date.String())
}

func (r *todoListRepository) List(ctx context.Context, start, end models.Date) ([]models.TodoList, error) {
	return list[models.TodoList](ctx, r.store.db, "todo_lists", start.String(), end.String())
}

func (r *todoListRepository) Delete(ctx context.Context, date models.Date) error {
	return remove(ctx, r.store.db, "todo_lists", date.String())
}
