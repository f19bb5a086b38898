package service

import (
	"errors"
	"testing"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
)

type stubAssessmentRepo struct {
	byUserID map[string]*model.PostureAssessment
	upserts  int
}

func newStubAssessmentRepo() *stubAssessmentRepo {
	return &stubAssessmentRepo{byUserID: make(map[string]*model.PostureAssessment)}
}

func (r *stubAssessmentRepo) ByUserID(userID string) (*model.PostureAssessment, error) {
	assessment, ok := r.byUserID[userID]
	if !ok {
		return nil, repository.ErrAssessmentNotFound
	}
	return assessment, nil
}

func (r *stubAssessmentRepo) Upsert(assessment *model.PostureAssessment) error {
	if assessment.ID == "" {
		assessment.ID = "a1"
	}
	r.upserts++
	r.byUserID[assessment.UserID] = assessment
	return nil
}

func TestAssessmentSaveRejectsUnknownCondition(t *testing.T) {
	svc := NewAssessmentService(newStubAssessmentRepo())

	_, err := svc.Save("u1", AssessmentInput{Spine: "bent sideways"})
	if !errors.Is(err, ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestAssessmentSaveKeepsRowIdentity(t *testing.T) {
	repo := newStubAssessmentRepo()
	svc := NewAssessmentService(repo)

	first, err := svc.Save("u1", AssessmentInput{Spine: "lordosis"})
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := svc.Save("u1", AssessmentInput{Spine: "kyphosis", Neck: "forward head"})
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected repeat save to keep row id %q, got %q", first.ID, second.ID)
	}
	if len(repo.byUserID) != 1 {
		t.Errorf("expected a single assessment row, got %d", len(repo.byUserID))
	}
}

func TestRecommendationsWithoutAssessment(t *testing.T) {
	svc := NewAssessmentService(newStubAssessmentRepo())

	exercises, err := svc.Recommendations("u1")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("expected no exercises without an assessment, got %d", len(exercises))
	}
}

func TestRecommendationsMatchAssessment(t *testing.T) {
	repo := newStubAssessmentRepo()
	svc := NewAssessmentService(repo)

	if _, err := svc.Save("u1", AssessmentInput{Spine: "lordosis", Neck: "neutral"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	exercises, err := svc.Recommendations("u1")
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(exercises) == 0 {
		t.Fatal("expected exercises for a flagged spine condition")
	}
	for _, ex := range exercises {
		if ex.Region != "spine" {
			t.Errorf("expected only spine exercises, got one for %q", ex.Region)
		}
	}
}
