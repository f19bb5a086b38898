package model

import "time"

// PostureAssessment stores one self-reported condition per body region.
// An empty string means the region was not assessed. Each user has at most
// one current assessment; saving replaces the previous values.
type PostureAssessment struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Ankle          string    `db:"ankle" json:"ankle"`
	Foot           string    `db:"foot" json:"foot"`
	Knee           string    `db:"knee" json:"knee"`
	Hip            string    `db:"hip" json:"hip"`
	Spine          string    `db:"spine" json:"spine"`
	Neck           string    `db:"neck" json:"neck"`
	AssessmentDate time.Time `db:"assessment_date" json:"assessment_date"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Condition returns the recorded condition for a body region.
func (a *PostureAssessment) Condition(region string) string {
	switch region {
	case "ankle":
		return a.Ankle
	case "foot":
		return a.Foot
	case "knee":
		return a.Knee
	case "hip":
		return a.Hip
	case "spine":
		return a.Spine
	case "neck":
		return a.Neck
	default:
		return ""
	}
}

// Conditions returns the region -> condition map used for recommendations.
func (a *PostureAssessment) Conditions() map[string]string {
	return map[string]string{
		"ankle": a.Ankle,
		"foot":  a.Foot,
		"knee":  a.Knee,
		"hip":   a.Hip,
		"spine": a.Spine,
		"neck":  a.Neck,
	}
}
