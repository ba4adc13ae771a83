package domain

import (
	"math/rand"
	"testing"
)

func TestWeakTopics(t *testing.T) {
	heatmap := []TopicConfidence{
		{Topic: "Optics", Confidence: 90},
		{Topic: "Thermodynamics", Confidence: 60},
		{Topic: "Kinematics", Confidence: 59},
		{Topic: "Waves", Confidence: 10},
	}

	weak := WeakTopics(heatmap)
	if len(weak) != 2 {
		t.Fatalf("weak topics = %v, want 2 entries", weak)
	}
	if weak[0] != "Kinematics" || weak[1] != "Waves" {
		t.Errorf("weak topics = %v, want [Kinematics Waves]", weak)
	}
}

func TestPlan_CappedAtSevenDistinct(t *testing.T) {
	weak := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	planner := NewRevisionPlanner(rand.New(rand.NewSource(1)))

	plan := planner.Plan(weak)
	if len(plan) != MaxPlanDays {
		t.Fatalf("plan length = %d, want %d", len(plan), MaxPlanDays)
	}

	seen := make(map[string]bool)
	for i, entry := range plan {
		if entry.Day != i+1 {
			t.Errorf("plan[%d].Day = %d, want %d", i, entry.Day, i+1)
		}
		if seen[entry.Topic] {
			t.Errorf("topic %q assigned twice", entry.Topic)
		}
		seen[entry.Topic] = true
	}
}

func TestPlan_FewerTopicsThanDays(t *testing.T) {
	planner := NewRevisionPlanner(rand.New(rand.NewSource(1)))

	plan := planner.Plan([]string{"x", "y"})
	if len(plan) != 2 {
		t.Fatalf("plan length = %d, want 2", len(plan))
	}
}

func TestPlan_EmptyWeakSet(t *testing.T) {
	planner := NewRevisionPlanner(nil)

	plan := planner.Plan(nil)
	if plan == nil || len(plan) != 0 {
		t.Errorf("plan = %v, want empty non-nil plan", plan)
	}
}

func TestPlan_SeededDeterminism(t *testing.T) {
	weak := []string{"a", "b", "c", "d", "e"}

	first := NewRevisionPlanner(rand.New(rand.NewSource(42))).Plan(weak)
	second := NewRevisionPlanner(rand.New(rand.NewSource(42))).Plan(weak)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different plans: %v vs %v", first, second)
		}
	}
}
