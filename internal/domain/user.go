package domain

import "time"

// User represents a registered account.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	ExamGroup        string
	Points           int
	CurrentStreak    int
	LastActivityDate string // ISO calendar date, empty when no prior activity
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// ActivityState is the slice of User owned by the streak engine. It is
// mutated only through AdvanceStreak and ObserveStreak.
type ActivityState struct {
	Streak           int
	LastActivityDate string
}

// ExamGroups lists the streams a user can register under.
var ExamGroups = []string{"JEE", "NEET", "UPSC", "SSC", "Other"}

func IsValidExamGroup(group string) bool {
	for _, g := range ExamGroups {
		if g == group {
			return true
		}
	}
	return false
}
