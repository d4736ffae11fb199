package domain

import "time"

type UserSettings struct {
	UserID          string        `json:"user_id" db:"user_id"`
	QuranPosition   QuranPosition `json:"quran_position"`
	HijriAdjustment int           `json:"hijri_adjustment" db:"hijri_adjustment"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// StartPosition is where a new reader starts: the first verse of Al-Fatiha.
var StartPosition = QuranPosition{Chapter: 1, Verse: 1}

func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		QuranPosition: StartPosition,
	}
}

func (s *UserSettings) SetHijriAdjustment(adj int) error {
	if adj < MinHijriAdjustment || adj > MaxHijriAdjustment {
		return ErrInvalidHijriAdjustment
	}
	s.HijriAdjustment = adj
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// MoveTo stores the new reading position and returns the pages read since the old one.
func (s *UserSettings) MoveTo(pos QuranPosition, table QuranTable, totalPages int) (int, error) {
	if err := pos.Validate(table); err != nil {
		return 0, err
	}
	delta := PageDelta(s.QuranPosition, pos, table, totalPages)
	s.QuranPosition = pos
	s.UpdatedAt = time.Now().UTC()
	return delta, nil
}
