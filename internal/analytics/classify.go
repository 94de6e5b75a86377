package analytics

import "github.com/JonnyWalker81/habithub/backend/internal/models"

// Band thresholds, inclusive lower bounds
const (
	GoalReachedThreshold  = 100
	NearCompleteThreshold = 75
	HalfwayThreshold      = 50
	StartedThreshold      = 25
)

// MotivationalBand classifies a progress percentage. Input is clamped to
// [0, 100] first; non-finite input is treated as 0.
func MotivationalBand(progress float64) models.Band {
	if !finite(progress) {
		progress = 0
	}
	progress = clamp(progress, 0, 100)

	switch {
	case progress >= GoalReachedThreshold:
		return models.BandGoalReached
	case progress >= NearCompleteThreshold:
		return models.BandNearComplete
	case progress >= HalfwayThreshold:
		return models.BandHalfway
	case progress >= StartedThreshold:
		return models.BandStarted
	default:
		return models.BandBeginning
	}
}
