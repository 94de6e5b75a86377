package sqlite

import (
	"context"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

type goalRepository struct {
	store *Store
}

// NewGoalRepository creates a SQLite-backed goal repository
func NewGoalRepository(store *Store) repository.GoalRepository {
	return &goalRepository{store: store}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	g := *goal
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	g.Normalize()

	if err := put(ctx, r.store.db, "goals", g.ID, g.CreatedAt.Format(time.RFC3339Nano), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	g, err := get[models.Goal](ctx, r.store.db, "goals", id)
	if err != nil {
		return nil, err
	}
	g.Normalize()
	return g, nil
}

func (r *goalRepository) List(ctx context.Context) ([]models.Goal, error) {
	goals, err := list[models.Goal](ctx, r.store.db, "goals", "", "")
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Normalize()
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	existing, err := r.GetByID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}

	g := *goal
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	g.Normalize()

	if err := put(ctx, r.store.db, "goals", g.ID, g.CreatedAt.Format(time.RFC3339Nano), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.store.db, "goals", id)
}
