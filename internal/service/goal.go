package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
)

type goalService struct {
	goalRepo repository.GoalRepository
	engine   *analytics.Engine
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repository.GoalRepository, engine *analytics.Engine) GoalService {
	return &goalService{
		goalRepo: goalRepo,
		engine:   engine,
	}
}

func validTarget(target float64) bool {
	return target >= 0 && !math.IsInf(target, 0)
}

func (s *goalService) CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.Goal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalid("title", "is required")
	}
	if !validTarget(req.Target) {
		return nil, invalid("target", "must be a finite number >= 0")
	}

	id, err := ResolveID(req.ID)
	if err != nil {
		return nil, err
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = models.DateOf(s.engine.Now())
	}
	if !req.EndDate.IsZero() && req.EndDate.Before(startDate) {
		return nil, invalid("end_date", "must not be before start_date")
	}

	goal := &models.Goal{
		ID:                id,
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Type:              req.Type,
		Category:          req.Category,
		Timeframe:         req.Timeframe,
		StartDate:         startDate,
		EndDate:           req.EndDate,
		Target:            req.Target,
		ProgressModel:     req.ProgressModel,
		Metric:            req.Metric,
		Status:            models.GoalStatusNotStarted,
		ProgressHistory:   []models.Progress{},
		ReminderFrequency: req.ReminderFrequency,
		ReminderTime:      req.ReminderTime,
		Tags:              req.Tags,
		Recurrence:        req.Recurrence,
		Milestones:        req.Milestones,
		CreatedAt:         ExtractUUIDv7Timestamp(id),
	}
	goal.Normalize()

	return s.goalRepo.Create(ctx, goal)
}

func (s *goalService) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	return s.goalRepo.GetByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context, category string) ([]models.Goal, error) {
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return goals, nil
	}

	filtered := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Category == category {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req *models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, invalid("title", "must not be empty")
		}
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description.Set {
		goal.Description = req.Description.ToPtr()
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Timeframe != nil {
		goal.Timeframe = *req.Timeframe
	}
	if req.EndDate.Set {
		goal.EndDate = req.EndDate.OrZero()
		if !goal.EndDate.IsZero() && goal.EndDate.Before(goal.StartDate) {
			return nil, invalid("end_date", "must not be before start_date")
		}
	}
	if req.Target != nil {
		if !validTarget(*req.Target) {
			return nil, invalid("target", "must be a finite number >= 0")
		}
		goal.Target = *req.Target
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Metric != nil {
		goal.Metric = *req.Metric
	}
	if req.Tags != nil {
		goal.Tags = req.Tags
	}
	if req.Milestones != nil {
		goal.Milestones = req.Milestones
	}

	return s.goalRepo.Update(ctx, goal)
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	return s.goalRepo.Delete(ctx, goalID)
}

// RecordProgress appends a review to the goal's history and makes it the
// current progress. The goal completes once it reaches 100%. For recurring
// goals each review counts as a session; the session count restarts after
// the recurrence target is met.
func (s *goalService) RecordProgress(ctx context.Context, goalID string, req *models.RecordProgressRequest) (*models.Goal, error) {
	if req.Value == nil {
		return nil, invalid("value", "is required")
	}
	value := *req.Value
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, invalid("value", "must be a finite number")
	}

	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	entryID, err := ResolveID(req.ID)
	if err != nil {
		return nil, err
	}

	now := s.engine.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
		if models.DateOf(date).After(models.DateOf(now)) {
			return nil, fmt.Errorf("%w: review dated %s", ErrFutureTimestamp, models.DateOf(date))
		}
	}

	goal.ProgressHistory = append(goal.ProgressHistory, models.Progress{
		ID:     entryID,
		GoalID: goal.ID,
		Date:   date,
		Value:  value,
		Notes:  req.Notes,
	})
	goal.CurrentProgress = value

	if analytics.GoalProgressPercent(*goal) >= analytics.GoalReachedThreshold {
		goal.Status = models.GoalStatusCompleted
	} else {
		goal.Status = models.GoalStatusInProgress
	}

	if goal.Recurrence != nil {
		goal.Recurrence.Completed++
		if goal.Recurrence.Target > 0 && float64(goal.Recurrence.Completed) >= goal.Recurrence.Target {
			goal.Recurrence.Completed = 0
		}
	}

	return s.goalRepo.Update(ctx, goal)
}
