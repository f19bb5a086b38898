package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/repository"
	"github.com/fitposture/fitposture/internal/validation"
)

var ErrInvalidProfileField = errors.New("invalid profile field")

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByID(userID)
}

// ProfileInput carries form values as submitted. Numeric fields arrive as
// strings; empty or unparseable values are stored as NULL.
type ProfileInput struct {
	FullName     string `json:"full_name"`
	Gender       string `json:"gender"`
	Age          string `json:"age"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	FitnessLevel string `json:"fitness_level"`
	HeightUnit   string `json:"height_unit"`
	WeightUnit   string `json:"weight_unit"`
	IsPublic     bool   `json:"is_public"`
}

// Save upserts the user's profile. Saving the same input twice yields the
// same stored row, so wizard steps can be resubmitted freely.
func (s *ProfileService) Save(userID string, input ProfileInput) (*model.Profile, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName != "" {
		if err := validation.ValidateName(fullName); err != nil {
			return nil, err
		}
	}

	if input.Gender != "" &&
		input.Gender != model.GenderMale &&
		input.Gender != model.GenderFemale &&
		input.Gender != model.GenderOther {
		return nil, fmt.Errorf("%w: gender %q", ErrInvalidProfileField, input.Gender)
	}

	if input.FitnessLevel != "" &&
		input.FitnessLevel != model.FitnessLevelBeginner &&
		input.FitnessLevel != model.FitnessLevelIntermediate &&
		input.FitnessLevel != model.FitnessLevelAdvanced {
		return nil, fmt.Errorf("%w: fitness level %q", ErrInvalidProfileField, input.FitnessLevel)
	}

	heightUnit := input.HeightUnit
	if heightUnit == "" {
		heightUnit = model.HeightUnitCentimeters
	}
	weightUnit := input.WeightUnit
	if weightUnit == "" {
		weightUnit = model.WeightUnitKilograms
	}

	profile := &model.Profile{
		ID:           userID,
		FullName:     fullName,
		Gender:       input.Gender,
		Age:          validation.ParseIntOrNil(input.Age),
		Height:       validation.ParseFloatOrNil(input.Height),
		Weight:       validation.ParseFloatOrNil(input.Weight),
		FitnessLevel: input.FitnessLevel,
		HeightUnit:   heightUnit,
		WeightUnit:   weightUnit,
		IsPublic:     input.IsPublic,
	}

	// Preserve created_at for existing rows.
	existing, err := s.profileRepo.ByID(userID)
	if err == nil {
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// OnboardingState describes where the user is in the linear wizard.
type OnboardingState struct {
	Complete bool     `json:"complete"`
	NextStep string   `json:"next_step,omitempty"`
	Steps    []string `json:"steps"`
}

// Onboarding reports the wizard state for the profile. A missing profile
// means the wizard starts at the first step.
func (s *ProfileService) Onboarding(userID string) (*OnboardingState, error) {
	profile, err := s.profileRepo.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &OnboardingState{
				Complete: false,
				NextStep: model.OnboardingSteps[0],
				Steps:    model.OnboardingSteps,
			}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &OnboardingState{
		Complete: profile.OnboardingComplete(),
		NextStep: profile.NextOnboardingStep(),
		Steps:    model.OnboardingSteps,
	}, nil
}
