package model

import "time"

// Profile holds fitness onboarding data. The id equals the owning user's id;
// a row is created on first login and filled in by the onboarding wizard.
type Profile struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"full_name"`
	Gender       string    `db:"gender" json:"gender"`
	Age          *int      `db:"age" json:"age"`
	Height       *float64  `db:"height" json:"height"`
	Weight       *float64  `db:"weight" json:"weight"`
	FitnessLevel string    `db:"fitness_level" json:"fitness_level"`
	HeightUnit   string    `db:"height_unit" json:"height_unit"`
	WeightUnit   string    `db:"weight_unit" json:"weight_unit"`
	IsPublic     bool      `db:"is_public" json:"is_public"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	FitnessLevelBeginner     = "Beginner"
	FitnessLevelIntermediate = "Intermediate"
	FitnessLevelAdvanced     = "Advanced"
)

const (
	HeightUnitCentimeters = "cm"
	HeightUnitMeters      = "m"
	HeightUnitFeet        = "ft"
)

const (
	WeightUnitKilograms = "kg"
	WeightUnitPounds    = "lb"
)

// Onboarding steps in wizard order. Each step is complete when its
// profile field is non-empty (strings) or non-null (numerics).
const (
	OnboardingStepFullName     = "full_name"
	OnboardingStepGender       = "gender"
	OnboardingStepAge          = "age"
	OnboardingStepHeight       = "height"
	OnboardingStepWeight       = "weight"
	OnboardingStepFitnessLevel = "fitness_level"
)

// OnboardingSteps is the fixed linear sequence of the wizard.
var OnboardingSteps = []string{
	OnboardingStepFullName,
	OnboardingStepGender,
	OnboardingStepAge,
	OnboardingStepHeight,
	OnboardingStepWeight,
	OnboardingStepFitnessLevel,
}

// StepComplete reports whether a single onboarding step's field is filled.
func (p *Profile) StepComplete(step string) bool {
	switch step {
	case OnboardingStepFullName:
		return p.FullName != ""
	case OnboardingStepGender:
		return p.Gender != ""
	case OnboardingStepAge:
		return p.Age != nil
	case OnboardingStepHeight:
		return p.Height != nil
	case OnboardingStepWeight:
		return p.Weight != nil
	case OnboardingStepFitnessLevel:
		return p.FitnessLevel != ""
	default:
		return false
	}
}

// NextOnboardingStep returns the first incomplete step in wizard order,
// or "" when onboarding is done.
func (p *Profile) NextOnboardingStep() string {
	for _, step := range OnboardingSteps {
		if !p.StepComplete(step) {
			return step
		}
	}
	return ""
}

func (p *Profile) OnboardingComplete() bool {
	return p.NextOnboardingStep() == ""
}
