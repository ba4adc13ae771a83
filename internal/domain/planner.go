package domain

import (
	"math/rand"
	"time"
)

const (
	// WeakConfidenceThreshold is the confidence below which a topic is
	// considered weak and eligible for the revision plan.
	WeakConfidenceThreshold = 60
	// MaxPlanDays caps the plan length.
	MaxPlanDays = 7
)

// PlanEntry assigns one topic to one study day.
type PlanEntry struct {
	Day   int    `json:"day"`
	Topic string `json:"topic"`
}

// RevisionPlanner samples weak topics into a day-by-day plan. The randomness
// source is injected so tests can seed it; production callers pass nil to
// get a time-seeded source, which intentionally produces a different plan on
// every call.
type RevisionPlanner struct {
	rng *rand.Rand
}

func NewRevisionPlanner(rng *rand.Rand) *RevisionPlanner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RevisionPlanner{rng: rng}
}

// WeakTopics filters the heatmap to topics below the weakness threshold,
// preserving heatmap order.
func WeakTopics(heatmap []TopicConfidence) []string {
	var weak []string
	for _, tc := range heatmap {
		if tc.Confidence < WeakConfidenceThreshold {
			weak = append(weak, tc.Topic)
		}
	}
	return weak
}

// Plan samples min(len(weakTopics), MaxPlanDays) topics without replacement
// and assigns them to days 1..N in sampled order. An empty weak set yields
// an empty plan, which callers render as a congratulation rather than an
// error.
func (p *RevisionPlanner) Plan(weakTopics []string) []PlanEntry {
	if len(weakTopics) == 0 {
		return []PlanEntry{}
	}

	days := len(weakTopics)
	if days > MaxPlanDays {
		days = MaxPlanDays
	}

	sampled := make([]string, len(weakTopics))
	copy(sampled, weakTopics)
	p.rng.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})

	plan := make([]PlanEntry, days)
	for i := 0; i < days; i++ {
		plan[i] = PlanEntry{Day: i + 1, Topic: sampled[i]}
	}
	return plan
}
