package catalog

import (
	"testing"
)

func TestRecommendLordosis(t *testing.T) {
	got := Recommend(map[string]string{"spine": "lordosis"})

	want := []string{"Child's Pose", "Cat-Cow Stretch", "Bridge Pose"}
	if len(got) != len(want) {
		t.Fatalf("expected %d exercises, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("exercise %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestRecommendAllNeutral(t *testing.T) {
	got := Recommend(map[string]string{
		"ankle": "neutral",
		"foot":  "neutral",
		"knee":  "neutral",
		"hip":   "neutral",
		"spine": "neutral",
		"neck":  "neutral",
	})

	if len(got) != 0 {
		t.Errorf("expected no exercises for all-neutral assessment, got %d", len(got))
	}
}

func TestRecommendSkipsEmptyAndNeutral(t *testing.T) {
	got := Recommend(map[string]string{
		"spine": "neutral",
		"neck":  "forward head",
		"ankle": "",
	})

	for _, e := range got {
		if e.Region != RegionNeck {
			t.Errorf("expected only neck exercises, got %s/%s", e.Region, e.Condition)
		}
	}
	if len(got) != 3 {
		t.Errorf("expected 3 forward head exercises, got %d", len(got))
	}
}

func TestRecommendUnknownPairSkipped(t *testing.T) {
	// Knee conditions have no catalog entries yet; they must not error
	// or contribute results.
	got := Recommend(map[string]string{"knee": "hyperextended"})
	if len(got) != 0 {
		t.Errorf("expected no exercises for uncatalogued pair, got %d", len(got))
	}
}

func TestRecommendOrderFollowsCatalog(t *testing.T) {
	// Input map order is irrelevant; ankle results always precede spine.
	got := Recommend(map[string]string{
		"spine": "kyphosis",
		"ankle": "dorsiflexed",
	})

	if len(got) != 4 {
		t.Fatalf("expected 4 exercises, got %d", len(got))
	}
	if got[0].Region != RegionAnkle {
		t.Errorf("expected ankle exercises first, got %s", got[0].Region)
	}
	for _, e := range got[1:] {
		if e.Region != RegionSpine {
			t.Errorf("expected spine exercises after ankle, got %s", e.Region)
		}
	}
}

func TestValidCondition(t *testing.T) {
	cases := []struct {
		region    string
		condition string
		want      bool
	}{
		{"spine", "lordosis", true},
		{"spine", "forward head", false},
		{"neck", "forward head", true},
		{"neck", "", true},
		{"hip", "anterior pelvic tilt", true},
		{"shoulder", "rounded", false},
	}

	for _, tc := range cases {
		got := ValidCondition(tc.region, tc.condition)
		if got != tc.want {
			t.Errorf("ValidCondition(%q, %q) = %v, want %v", tc.region, tc.condition, got, tc.want)
		}
	}
}

func TestExercisesNeutralIsEmpty(t *testing.T) {
	if len(Exercises("ankle", "neutral")) != 0 {
		t.Error("neutral condition must not yield exercises")
	}
	if len(Exercises("spine", "")) != 0 {
		t.Error("unassessed region must not yield exercises")
	}
}

func TestAllEntriesCarryValidPairs(t *testing.T) {
	for _, e := range All() {
		if !ValidCondition(e.Region, e.Condition) {
			t.Errorf("catalog entry %q has unknown pair %s/%s", e.Title, e.Region, e.Condition)
		}
		if len(e.Description) == 0 {
			t.Errorf("catalog entry %q has no description steps", e.Title)
		}
	}
}
