package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/validation"
)

var ErrExerciseTitleRequired = errors.New("exercise title is required")

type ExerciseLogService struct {
	logRepo repository.ExerciseLogRepository
}

func NewExerciseLogService(logRepo repository.ExerciseLogRepository) *ExerciseLogService {
	return &ExerciseLogService{logRepo: logRepo}
}

// ExerciseLogInput carries a completed-exercise entry as submitted.
// Sets, reps and duration are optional; empty or unparseable is stored NULL.
type ExerciseLogInput struct {
	ExerciseTitle   string `json:"exercise_title"`
	Sets            string `json:"sets"`
	Reps            string `json:"reps"`
	DurationSeconds string `json:"duration_seconds"`
	Notes           string `json:"notes"`
	CompletedAt     string `json:"completed_at"`
}

func (s *ExerciseLogService) Create(userID string, input ExerciseLogInput) (*model.ExerciseLog, error) {
	title := strings.TrimSpace(input.ExerciseTitle)
	if title == "" {
		return nil, ErrExerciseTitleRequired
	}

	log := &model.ExerciseLog{
		UserID:          userID,
		ExerciseTitle:   title,
		Sets:            validation.ParseIntOrNil(input.Sets),
		Reps:            validation.ParseIntOrNil(input.Reps),
		DurationSeconds: validation.ParseIntOrNil(input.DurationSeconds),
		Notes:           input.Notes,
	}

	if input.CompletedAt != "" {
		if completed, err := time.Parse(time.RFC3339, input.CompletedAt); err == nil {
			log.CompletedAt = completed
		}
	}

	if err := s.logRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create exercise log: %w", err)
	}

	return log, nil
}

func (s *ExerciseLogService) ByUserID(userID string) ([]*model.ExerciseLog, error) {
	logs, err := s.logRepo.ByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}

	return logs, nil
}

func (s *ExerciseLogService) Delete(id, userID string) error {
	return s.logRepo.Delete(id, userID)
}
