package domain

import "time"

// DateLayout is the calendar-date format used for streak bookkeeping.
// Streak comparisons are whole-day, so dates are compared as formatted
// strings rather than instants.
const DateLayout = "2006-01-02"

// AdvanceStreak applies one qualifying activity event (e.g. a task completed)
// to the state, evaluated against the given calendar day.
//
// Same-day repeats are no-ops, activity the day after the last one extends
// the streak, and anything else (a gap of two or more days, or no prior
// activity) restarts it at 1.
func AdvanceStreak(s ActivityState, today time.Time) ActivityState {
	todayStr := today.Format(DateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(DateLayout)

	switch s.LastActivityDate {
	case todayStr:
		return s
	case yesterdayStr:
		return ActivityState{Streak: s.Streak + 1, LastActivityDate: todayStr}
	default:
		return ActivityState{Streak: 1, LastActivityDate: todayStr}
	}
}

// ObserveStreak is the passive decay check run on dashboard load. If the last
// activity is neither today nor yesterday the streak is reset to zero. This
// is a read-path correction, not a scheduled job; it only takes effect the
// next time the user is observed.
func ObserveStreak(s ActivityState, today time.Time) ActivityState {
	todayStr := today.Format(DateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(DateLayout)

	if s.LastActivityDate != todayStr && s.LastActivityDate != yesterdayStr {
		return ActivityState{Streak: 0, LastActivityDate: s.LastActivityDate}
	}
	return s
}
