// Package catalog holds the static corrective exercise catalog and the
// recommendation lookup. It is pure data plus deterministic lookups; no I/O.
package catalog

// Exercise is one corrective exercise for a (region, condition) pair.
type Exercise struct {
	Title       string   `json:"title"`
	Description []string `json:"description"`
	Tips        string   `json:"tips"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Region      string   `json:"region"`
	Condition   string   `json:"condition"`
	ImageURL    string   `json:"image_url"`
}

const (
	RegionAnkle = "ankle"
	RegionFoot  = "foot"
	RegionKnee  = "knee"
	RegionHip   = "hip"
	RegionSpine = "spine"
	RegionNeck  = "neck"
)

// ConditionNeutral marks a well-aligned region; it never yields exercises.
const ConditionNeutral = "neutral"

// Regions is the canonical body region order. Recommendations are assembled
// by walking this list, so output order is stable regardless of input order.
var Regions = []string{
	RegionAnkle,
	RegionFoot,
	RegionKnee,
	RegionHip,
	RegionSpine,
	RegionNeck,
}

// Conditions maps each region to its selectable condition vocabulary.
var Conditions = map[string][]string{
	RegionAnkle: {"dorsiflexed", "plantar flexed", ConditionNeutral},
	RegionFoot:  {"supinated", "pronated", ConditionNeutral},
	RegionKnee:  {"hyperextended", "flexed", ConditionNeutral},
	RegionHip:   {"anterior pelvic tilt", "posterior pelvic tilt", ConditionNeutral},
	RegionSpine: {"lordosis", "kyphosis", ConditionNeutral},
	RegionNeck:  {"forward head", ConditionNeutral},
}

// ValidCondition reports whether the condition is selectable for the region.
// The empty string is always valid and means "not assessed".
func ValidCondition(region, condition string) bool {
	if condition == "" {
		return true
	}
	for _, c := range Conditions[region] {
		if c == condition {
			return true
		}
	}
	return false
}

// Exercises returns the catalog entries for a (region, condition) pair in
// catalog order. Unknown pairs and neutral conditions return nil.
func Exercises(region, condition string) []Exercise {
	if condition == "" || condition == ConditionNeutral {
		return nil
	}
	byCondition, ok := exercises[region]
	if !ok {
		return nil
	}
	return byCondition[condition]
}

// All returns every catalog entry in catalog order, for browsing.
func All() []Exercise {
	var out []Exercise
	for _, region := range Regions {
		byCondition := exercises[region]
		for _, condition := range Conditions[region] {
			out = append(out, byCondition[condition]...)
		}
	}
	return out
}

// Recommend selects exercises for an assessment given as region -> condition.
// Regions marked neutral or left empty are skipped, as are pairs the catalog
// does not know. An empty result means the posture is well aligned.
func Recommend(conditions map[string]string) []Exercise {
	var out []Exercise
	for _, region := range Regions {
		out = append(out, Exercises(region, conditions[region])...)
	}
	return out
}

// WellAlignedMessage is shown when Recommend returns nothing.
const WellAlignedMessage = "No specific exercises recommended. Your posture is well aligned!"
