package domain

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrChallengeNotFound      = errors.New("challenge not found")
	ErrChallengeNotJoined     = errors.New("challenge not joined")
	ErrChallengeAlreadyJoined = errors.New("challenge already joined")
	ErrChallengeCompleted     = errors.New("challenge already completed")
	ErrChallengeAlreadyLogged = errors.New("challenge already logged for this date")
	ErrChallengeAutoTracked   = errors.New("challenge is tracked automatically")
)

type TrackingMode string

const (
	TrackingAuto   TrackingMode = "auto"
	TrackingManual TrackingMode = "manual"
)

// ActivityKind links auto-tracked challenges to the events that advance them.
type ActivityKind string

const (
	ActivityPrayerOnTime ActivityKind = "prayer_on_time"
	ActivityAzkarSet     ActivityKind = "azkar_set"
	ActivityQuranReading ActivityKind = "quran_reading"
	ActivityVoluntary    ActivityKind = "voluntary_prayer"
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

type ChallengeDefinition struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Points   int          `json:"points"`
	Target   int          `json:"target"`
	Mode     TrackingMode `json:"mode"`
	Activity ActivityKind `json:"activity,omitempty"`
}

type ChallengeProgress struct {
	ID             string          `json:"id" db:"id"`
	UserID         string          `json:"user_id" db:"user_id"`
	ChallengeID    string          `json:"challenge_id" db:"challenge_id"`
	Status         ChallengeStatus `json:"status" db:"status"`
	Progress       int             `json:"progress" db:"progress"`
	LastLoggedDate *string         `json:"last_logged_date,omitempty" db:"last_logged_date"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

func NewChallengeProgress(id, userID, challengeID string) *ChallengeProgress {
	now := time.Now().UTC()
	return &ChallengeProgress{
		ID:          id,
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      ChallengeActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Advance applies one log for date. Logging the same date twice is rejected,
// and the record flips to completed once it reaches the target.
func (p *ChallengeProgress) Advance(def ChallengeDefinition, date string) error {
	if p.Status == ChallengeCompleted {
		return ErrChallengeCompleted
	}
	if err := ValidateDateKey(date); err != nil {
		return err
	}
	if p.LastLoggedDate != nil && *p.LastLoggedDate == date {
		return ErrChallengeAlreadyLogged
	}

	p.Progress++
	p.LastLoggedDate = &date
	if p.Progress >= def.Target {
		p.Status = ChallengeCompleted
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// ChallengeCatalog is a typed lookup table of challenge definitions.
type ChallengeCatalog map[string]ChallengeDefinition

func NewChallengeCatalog(defs []ChallengeDefinition) ChallengeCatalog {
	c := make(ChallengeCatalog, len(defs))
	for _, d := range defs {
		c[d.ID] = d
	}
	return c
}

func (c ChallengeCatalog) Lookup(id string) (ChallengeDefinition, bool) {
	d, ok := c[id]
	return d, ok
}

// List returns the definitions ordered by id.
func (c ChallengeCatalog) List() []ChallengeDefinition {
	out := make([]ChallengeDefinition, 0, len(c))
	for _, d := range c {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var DefaultChallengeCatalog = NewChallengeCatalog([]ChallengeDefinition{
	{ID: "fajr_week", Title: "Pray on time for 7 days", Points: 100, Target: 7, Mode: TrackingAuto, Activity: ActivityPrayerOnTime},
	{ID: "azkar_month", Title: "Complete an azkar set for 30 days", Points: 300, Target: 30, Mode: TrackingAuto, Activity: ActivityAzkarSet},
	{ID: "quran_daily_10", Title: "Read Quran for 10 days", Points: 150, Target: 10, Mode: TrackingAuto, Activity: ActivityQuranReading},
	{ID: "duha_week", Title: "Pray Duha for 7 days", Points: 80, Target: 7, Mode: TrackingAuto, Activity: ActivityVoluntary},
	{ID: "sadaqah_week", Title: "Give charity every day for a week", Points: 120, Target: 7, Mode: TrackingManual},
	{ID: "kindness_3", Title: "Three acts of kindness", Points: 50, Target: 3, Mode: TrackingManual},
})
