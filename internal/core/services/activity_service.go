package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

// ChallengeTracker advances auto-tracked challenges when qualifying activity is logged.
type ChallengeTracker interface {
	Record(ctx context.Context, userID string, kind domain.ActivityKind, date string) error
}

// StatsEnqueuer schedules a background recomputation of a user's stats.
type StatsEnqueuer interface {
	Enqueue(userID string)
}

type ActivityService struct {
	repo     domain.ActivityRepository
	settings domain.SettingsRepository
	tracker  ChallengeTracker
	worker   StatsEnqueuer
	azkar    domain.AzkarCatalog
	quran    domain.QuranTable
}

func NewActivityService(repo domain.ActivityRepository, settings domain.SettingsRepository, tracker ChallengeTracker, worker StatsEnqueuer) *ActivityService {
	return &ActivityService{
		repo:     repo,
		settings: settings,
		tracker:  tracker,
		worker:   worker,
		azkar:    domain.DefaultAzkarCatalog,
		quran:    domain.DefaultQuranTable,
	}
}

type SetPrayerInput struct {
	UserID       string
	Date         string
	Prayer       domain.PrayerID
	Fard         domain.FardStatus
	SunnahBefore bool
	SunnahAfter  bool
}

type AddZikrInput struct {
	UserID string
	Date   string
	Set    domain.AzkarSetID
	ItemID string
	Count  int
}

type UpdateQuranInput struct {
	UserID   string
	Date     string
	Position domain.QuranPosition
}

type QuranUpdate struct {
	Position   domain.QuranPosition `json:"position"`
	Page       int                  `json:"page"`
	PagesAdded int                  `json:"pages_added"`
	PagesToday int                  `json:"pages_today"`
}

type SetVoluntaryInput struct {
	UserID string
	Date   string
	ID     string
	Value  int
}

type SetGoalInput struct {
	UserID string
	Date   string
	GoalID string
	Done   bool
}

func validateUserDate(userID, date string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrActivityUserRequired
	}
	return domain.ValidateDateKey(date)
}

func (s *ActivityService) GetDay(ctx context.Context, userID, date string) (*domain.DailyActivity, error) {
	if err := validateUserDate(userID, date); err != nil {
		return nil, err
	}
	day, err := s.repo.GetDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *ActivityService) GetLog(ctx context.Context, userID string) (domain.ActivityLog, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrActivityUserRequired
	}
	return s.repo.GetLog(ctx, userID)
}

func (s *ActivityService) SetPrayerStatus(ctx context.Context, input SetPrayerInput) (*domain.DailyActivity, error) {
	if err := validateUserDate(input.UserID, input.Date); err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	wasOnTime := day.Prayers[input.Prayer].Fard.CountsOnTime()
	status := domain.PrayerStatus{
		Fard:         input.Fard,
		SunnahBefore: input.SunnahBefore,
		SunnahAfter:  input.SunnahAfter,
	}
	if err := day.SetPrayer(input.Prayer, status); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDay(ctx, input.UserID, input.Date, day); err != nil {
		return nil, fmt.Errorf("activity service: save prayer: %w", err)
	}

	if !wasOnTime && input.Fard.CountsOnTime() {
		s.track(ctx, input.UserID, domain.ActivityPrayerOnTime, input.Date)
	}
	s.enqueue(input.UserID)

	return &day, nil
}

func (s *ActivityService) AddZikr(ctx context.Context, input AddZikrInput) (*domain.DailyActivity, error) {
	if err := validateUserDate(input.UserID, input.Date); err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	wasCompleted := s.azkar.SetCompleted(day, input.Set)
	if _, err := day.AddZikr(s.azkar, input.Set, input.ItemID, input.Count); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDay(ctx, input.UserID, input.Date, day); err != nil {
		return nil, fmt.Errorf("activity service: save zikr: %w", err)
	}

	if !wasCompleted && s.azkar.SetCompleted(day, input.Set) {
		s.track(ctx, input.UserID, domain.ActivityAzkarSet, input.Date)
	}
	s.enqueue(input.UserID)

	return &day, nil
}

// UpdateQuranPosition moves the reading position and credits the pages
// between the old and new position to the given date. Moving backwards
// credits nothing.
func (s *ActivityService) UpdateQuranPosition(ctx context.Context, input UpdateQuranInput) (*QuranUpdate, error) {
	if err := validateUserDate(input.UserID, input.Date); err != nil {
		return nil, err
	}
	if err := input.Position.Validate(s.quran); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	delta, err := settings.MoveTo(input.Position, s.quran, domain.QuranTotalPages)
	if err != nil {
		return nil, err
	}

	if delta > 0 {
		// Pages and position are written together.
		day.AddQuranPages(delta)
		if err := s.repo.SaveReading(ctx, input.UserID, input.Date, day, input.Position); err != nil {
			return nil, fmt.Errorf("activity service: save reading: %w", err)
		}
	} else if err := s.settings.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("activity service: save position: %w", err)
	}

	if delta > 0 {
		s.track(ctx, input.UserID, domain.ActivityQuranReading, input.Date)
		s.enqueue(input.UserID)
	}

	return &QuranUpdate{
		Position:   input.Position,
		Page:       domain.ApproximatePage(input.Position, s.quran, domain.QuranTotalPages),
		PagesAdded: delta,
		PagesToday: day.QuranPages,
	}, nil
}

func (s *ActivityService) SetVoluntaryPrayer(ctx context.Context, input SetVoluntaryInput) (*domain.DailyActivity, error) {
	if err := validateUserDate(input.UserID, input.Date); err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	before := day.Voluntary[input.ID]
	if err := day.SetVoluntary(input.ID, input.Value); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDay(ctx, input.UserID, input.Date, day); err != nil {
		return nil, fmt.Errorf("activity service: save voluntary prayer: %w", err)
	}

	if before == 0 && input.Value > 0 {
		s.track(ctx, input.UserID, domain.ActivityVoluntary, input.Date)
	}

	return &day, nil
}

func (s *ActivityService) SetGoal(ctx context.Context, input SetGoalInput) (*domain.DailyActivity, error) {
	if err := validateUserDate(input.UserID, input.Date); err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}

	if err := day.SetGoal(input.GoalID, input.Done); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDay(ctx, input.UserID, input.Date, day); err != nil {
		return nil, fmt.Errorf("activity service: save goal: %w", err)
	}

	return &day, nil
}

// Reset wipes every logged day, challenge progress and the reading position.
func (s *ActivityService) Reset(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrActivityUserRequired
	}
	if err := s.repo.Reset(ctx, userID); err != nil {
		return fmt.Errorf("activity service: reset: %w", err)
	}
	s.enqueue(userID)
	return nil
}

func (s *ActivityService) track(ctx context.Context, userID string, kind domain.ActivityKind, date string) {
	if s.tracker == nil {
		return
	}
	if err := s.tracker.Record(ctx, userID, kind, date); err != nil {
		log.Warn("challenge tracking failed", "user", userID, "activity", kind, "date", date, "err", err)
	}
}

func (s *ActivityService) enqueue(userID string) {
	if s.worker != nil {
		s.worker.Enqueue(userID)
	}
}
