package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Period selects the window of attempts included in an aggregation.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"  // trailing 7 days
	PeriodMonth Period = "month" // trailing 30 days
)

// ParsePeriod maps a query-string filter to a Period, defaulting to all-time.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return Period(s)
	default:
		return PeriodAll
	}
}

// SubjectStat is the per-subject/topic slice of an aggregation.
type SubjectStat struct {
	Average int `json:"average"`
	Count   int `json:"count"`
}

// HistoryEntry is one formatted attempt for display, newest first.
type HistoryEntry struct {
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

// AggregateStats is derived from attempt records on every request; it is
// never persisted, so it is always consistent with the underlying data at
// the instant of computation.
type AggregateStats struct {
	TotalAttempts  int
	OverallAverage int
	SubjectStats   map[string]SubjectStat
	SubjectLabels  []string
	SubjectData    []int
	WeakestSubject string
	History        []HistoryEntry // newest first
	TrendLabels    []string       // oldest first, last 10
	TrendData      []int
}

const trendWindow = 10

// percentage computes round(100 * score / total). Callers must ensure
// total > 0.
func percentage(score, total int) int {
	return int(math.Round(100 * float64(score) / float64(total)))
}

// FilterByPeriod returns the attempts whose timestamp falls inside the
// period, evaluated against now.
func FilterByPeriod(attempts []Attempt, now time.Time, period Period) []Attempt {
	if period == PeriodAll {
		return attempts
	}

	var cutoff time.Time
	switch period {
	case PeriodToday:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		cutoff = now.AddDate(0, 0, -7)
	case PeriodMonth:
		cutoff = now.AddDate(0, 0, -30)
	}

	filtered := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		if !a.CompletedAt.Before(cutoff) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Aggregate computes the full statistics view over the given attempts for
// the requested period. Attempts with total <= 0 contribute nothing to the
// sums; they can neither lower nor raise an average.
func Aggregate(attempts []Attempt, now time.Time, period Period) AggregateStats {
	attempts = FilterByPeriod(attempts, now, period)

	stats := AggregateStats{
		TotalAttempts:  len(attempts),
		SubjectStats:   make(map[string]SubjectStat),
		WeakestSubject: "N/A",
	}

	// Oldest first for the trend series.
	ordered := make([]Attempt, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CompletedAt.Before(ordered[j].CompletedAt)
	})

	type bucket struct {
		score int
		total int
		count int
	}
	buckets := make(map[string]*bucket)

	var scoreSum, totalSum int
	for _, a := range ordered {
		if a.Total > 0 {
			scoreSum += a.Score
			totalSum += a.Total
			stats.TrendLabels = append(stats.TrendLabels, a.CompletedAt.Format("Jan 02"))
			stats.TrendData = append(stats.TrendData, percentage(a.Score, a.Total))
		}

		key := a.SubjectKey()
		if key == "" {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.score += a.Score
		b.total += a.Total
		b.count++
	}

	if totalSum > 0 {
		stats.OverallAverage = percentage(scoreSum, totalSum)
	}

	if len(stats.TrendData) > trendWindow {
		stats.TrendLabels = stats.TrendLabels[len(stats.TrendLabels)-trendWindow:]
		stats.TrendData = stats.TrendData[len(stats.TrendData)-trendWindow:]
	}

	// Deterministic iteration: lexicographic key order. This also makes the
	// weakest-area tie-break stable.
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lowest := 101
	for _, key := range keys {
		b := buckets[key]
		if b.total > 0 {
			avg := percentage(b.score, b.total)
			stats.SubjectStats[key] = SubjectStat{Average: avg, Count: b.count}
			stats.SubjectLabels = append(stats.SubjectLabels, key)
			stats.SubjectData = append(stats.SubjectData, avg)
			if avg < lowest {
				lowest = avg
				stats.WeakestSubject = key
			}
		} else {
			// Groups without any scored questions are reported but excluded
			// from weakest-area consideration.
			stats.SubjectStats[key] = SubjectStat{Average: 0, Count: 0}
		}
	}

	// Newest first for the history view.
	for i := len(ordered) - 1; i >= 0; i-- {
		a := ordered[i]
		stats.History = append(stats.History, HistoryEntry{
			Name:        a.DisplayName(),
			Score:       a.Score,
			Total:       a.Total,
			CompletedAt: a.CompletedAt,
		})
	}

	return stats
}

// HistoryText renders the history as the plain-text summary handed to the AI
// study coach.
func (s AggregateStats) HistoryText() string {
	if len(s.History) == 0 {
		return "No quizzes taken for this period."
	}
	var b strings.Builder
	for _, h := range s.History {
		fmt.Fprintf(&b, "%s - %d/%d on %s\n", h.Name, h.Score, h.Total, h.CompletedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}

// TrendText renders the trend series as the plain-text summary used for
// dashboard coach feedback.
func (s AggregateStats) TrendText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "User's overall average is %d%%.\n", s.OverallAverage)
	b.WriteString("Here are their recent quiz scores (performance trend):\n")
	if len(s.TrendData) == 0 {
		b.WriteString("No quizzes have been completed yet.")
		return b.String()
	}
	for i, label := range s.TrendLabels {
		fmt.Fprintf(&b, "On %s, score was %d%%\n", label, s.TrendData[i])
	}
	return strings.TrimRight(b.String(), "\n")
}

// TopicConfidence is one row of the per-topic confidence heatmap.
type TopicConfidence struct {
	Topic      string `json:"topic"`
	Scored     int    `json:"total_scored"`
	Possible   int    `json:"total_possible"`
	Confidence int    `json:"confidence"`
}

// ConfidenceHeatmap aggregates AI-quiz attempts per topic, ordered by
// confidence descending (ties by topic for determinism). Static-quiz
// attempts are ignored; only free-text AI topics participate.
func ConfidenceHeatmap(attempts []Attempt) []TopicConfidence {
	type bucket struct {
		score int
		total int
	}
	buckets := make(map[string]*bucket)
	for _, a := range attempts {
		if a.AITopic == "" {
			continue
		}
		b, ok := buckets[a.AITopic]
		if !ok {
			b = &bucket{}
			buckets[a.AITopic] = b
		}
		b.score += a.Score
		b.total += a.Total
	}

	heatmap := make([]TopicConfidence, 0, len(buckets))
	for topic, b := range buckets {
		if b.total <= 0 {
			continue
		}
		heatmap = append(heatmap, TopicConfidence{
			Topic:      topic,
			Scored:     b.score,
			Possible:   b.total,
			Confidence: percentage(b.score, b.total),
		})
	}
	sort.Slice(heatmap, func(i, j int) bool {
		if heatmap[i].Confidence != heatmap[j].Confidence {
			return heatmap[i].Confidence > heatmap[j].Confidence
		}
		return heatmap[i].Topic < heatmap[j].Topic
	})
	return heatmap
}
