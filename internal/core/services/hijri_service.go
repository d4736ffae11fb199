package services

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

const (
	HijriSourceProvider = "provider"
	HijriSourceLocal    = "local"
)

// HijriProvider returns the authoritative Hijri date for a Gregorian day.
type HijriProvider interface {
	HijriDate(ctx context.Context, day time.Time) (*domain.HijriDate, error)
}

type HijriDay struct {
	domain.HijriDate
	MonthName  string `json:"month_name"`
	Formatted  string `json:"formatted"`
	LeapYear   bool   `json:"leap_year"`
	Adjustment int    `json:"adjustment"`
	Source     string `json:"source"`
	Gregorian  string `json:"gregorian"`
}

type HijriService struct {
	settings domain.SettingsRepository
	provider HijriProvider
}

func NewHijriService(settings domain.SettingsRepository, provider HijriProvider) *HijriService {
	return &HijriService{
		settings: settings,
		provider: provider,
	}
}

// Today derives the user's Hijri date for the calendar day of now. When the
// provider is missing or fails, the tabular calendar is used instead.
func (s *HijriService) Today(ctx context.Context, userID string, now time.Time) (*HijriDay, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	adj := domain.ClampHijriAdjustment(settings.HijriAdjustment)

	// The provider is asked about the shifted day so its own month lengths apply.
	source := HijriSourceLocal
	var date domain.HijriDate
	var authoritative *domain.HijriDate
	if s.provider != nil {
		h, err := s.provider.HijriDate(ctx, now.AddDate(0, 0, adj))
		switch {
		case err != nil:
			log.Warn("hijri provider unavailable, using local calendar", "err", err)
		case h == nil:
			log.Warn("hijri provider returned no date, using local calendar")
		case h.Validate() != nil:
			log.Warn("hijri provider returned an invalid date, using local calendar", "date", *h)
		default:
			authoritative = h
			source = HijriSourceProvider
		}
	}

	if authoritative != nil {
		date = domain.DeriveHijriDate(authoritative, 0, now)
	} else {
		date = domain.DeriveHijriDate(nil, adj, now)
	}

	return &HijriDay{
		HijriDate:  date,
		MonthName:  date.MonthName(),
		Formatted:  date.String(),
		LeapYear:   domain.IsHijriLeapYear(date.Year),
		Adjustment: adj,
		Source:     source,
		Gregorian:  domain.DateKey(now),
	}, nil
}

func (s *HijriService) SetAdjustment(ctx context.Context, userID string, adj int) (*domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := settings.SetHijriAdjustment(adj); err != nil {
		return nil, err
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
