package service

import (
	"errors"
	"testing"

	"github.com/fitposture/fitposture/internal/model"
)

func TestProfileSaveParsesNumerics(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo)

	profile, err := svc.Save("u1", ProfileInput{
		FullName: "Kim Lee",
		Gender:   model.GenderFemale,
		Age:      "34",
		Height:   "172.5",
		Weight:   "abc",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if profile.Age == nil || *profile.Age != 34 {
		t.Errorf("expected age 34, got %v", profile.Age)
	}
	if profile.Height == nil || *profile.Height != 172.5 {
		t.Errorf("expected height 172.5, got %v", profile.Height)
	}
	if profile.Weight != nil {
		t.Errorf("expected unparseable weight to store as nil, got %v", profile.Weight)
	}
	if profile.HeightUnit != model.HeightUnitCentimeters || profile.WeightUnit != model.WeightUnitKilograms {
		t.Errorf("expected default units cm/kg, got %s/%s", profile.HeightUnit, profile.WeightUnit)
	}
}

func TestProfileSaveIdempotent(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo)

	input := ProfileInput{FullName: "Kim Lee", Gender: model.GenderOther, Age: "34"}

	first, err := svc.Save("u1", input)
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := svc.Save("u1", input)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if second.FullName != first.FullName || *second.Age != *first.Age {
		t.Error("expected identical row after resubmitting the same input")
	}
	if len(repo.profiles) != 1 {
		t.Errorf("expected a single profile row, got %d", len(repo.profiles))
	}
}

func TestProfileSaveRejectsUnknownEnums(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo())

	if _, err := svc.Save("u1", ProfileInput{Gender: "robot"}); !errors.Is(err, ErrInvalidProfileField) {
		t.Errorf("expected ErrInvalidProfileField for gender, got %v", err)
	}
	if _, err := svc.Save("u1", ProfileInput{FitnessLevel: "olympian"}); !errors.Is(err, ErrInvalidProfileField) {
		t.Errorf("expected ErrInvalidProfileField for fitness level, got %v", err)
	}
}

func TestOnboardingLinearProgression(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo)

	state, err := svc.Onboarding("u1")
	if err != nil {
		t.Fatalf("Onboarding: %v", err)
	}
	if state.Complete {
		t.Error("expected incomplete onboarding before any profile exists")
	}
	if state.NextStep != model.OnboardingStepFullName {
		t.Errorf("expected first step %q, got %q", model.OnboardingStepFullName, state.NextStep)
	}

	if _, err := svc.Save("u1", ProfileInput{FullName: "Kim Lee"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	state, err = svc.Onboarding("u1")
	if err != nil {
		t.Fatalf("Onboarding: %v", err)
	}
	if state.NextStep != model.OnboardingStepGender {
		t.Errorf("expected next step %q, got %q", model.OnboardingStepGender, state.NextStep)
	}

	if _, err := svc.Save("u1", ProfileInput{
		FullName:     "Kim Lee",
		Gender:       model.GenderFemale,
		Age:          "34",
		Height:       "172",
		Weight:       "65",
		FitnessLevel: model.FitnessLevelBeginner,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	state, err = svc.Onboarding("u1")
	if err != nil {
		t.Fatalf("Onboarding: %v", err)
	}
	if !state.Complete {
		t.Error("expected complete onboarding once every step has a value")
	}
	if state.NextStep != "" {
		t.Errorf("expected no next step when complete, got %q", state.NextStep)
	}
}
