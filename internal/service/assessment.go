package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitposture/fitposture/internal/catalog"
	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
)

var ErrInvalidCondition = errors.New("invalid posture condition")

type AssessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{assessmentRepo: assessmentRepo}
}

func (s *AssessmentService) ByUserID(userID string) (*model.PostureAssessment, error) {
	return s.assessmentRepo.ByUserID(userID)
}

// AssessmentInput carries the per-region conditions as submitted. The date
// arrives as a string; empty or unparseable falls back to now.
type AssessmentInput struct {
	Ankle          string `json:"ankle"`
	Foot           string `json:"foot"`
	Knee           string `json:"knee"`
	Hip            string `json:"hip"`
	Spine          string `json:"spine"`
	Neck           string `json:"neck"`
	AssessmentDate string `json:"assessment_date"`
	Notes          string `json:"notes"`
}

func (in *AssessmentInput) conditions() map[string]string {
	return map[string]string{
		catalog.RegionAnkle: in.Ankle,
		catalog.RegionFoot:  in.Foot,
		catalog.RegionKnee:  in.Knee,
		catalog.RegionHip:   in.Hip,
		catalog.RegionSpine: in.Spine,
		catalog.RegionNeck:  in.Neck,
	}
}

// Save validates each submitted condition against the region vocabulary and
// replaces the user's current assessment. Saving twice with the same input
// yields the same stored row.
func (s *AssessmentService) Save(userID string, input AssessmentInput) (*model.PostureAssessment, error) {
	for region, condition := range input.conditions() {
		if !catalog.ValidCondition(region, condition) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidCondition, region, condition)
		}
	}

	assessment := &model.PostureAssessment{
		UserID: userID,
		Ankle:  input.Ankle,
		Foot:   input.Foot,
		Knee:   input.Knee,
		Hip:    input.Hip,
		Spine:  input.Spine,
		Neck:   input.Neck,
		Notes:  input.Notes,
	}

	if input.AssessmentDate != "" {
		if date, err := time.Parse("2006-01-02", input.AssessmentDate); err == nil {
			assessment.AssessmentDate = date
		}
	}

	// Preserve the row identity so repeat saves update in place.
	existing, err := s.assessmentRepo.ByUserID(userID)
	if err == nil {
		assessment.ID = existing.ID
		assessment.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, repository.ErrAssessmentNotFound) {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	if err := s.assessmentRepo.Upsert(assessment); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	return assessment, nil
}

// Recommendations looks up the exercises for the user's current assessment.
// A missing assessment yields no exercises rather than an error.
func (s *AssessmentService) Recommendations(userID string) ([]catalog.Exercise, error) {
	assessment, err := s.assessmentRepo.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	return catalog.Recommend(assessment.Conditions()), nil
}
