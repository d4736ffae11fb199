package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

// MemoryStore keeps every user's data behind a single lock so that Reset is
// atomic across the log, challenge progress and settings. It backs the
// STORAGE=memory mode and the handler tests.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[string]*domain.User
	emails     map[string]string
	days       map[string]map[string]domain.DailyActivity
	challenges map[string]map[string]domain.ChallengeProgress
	settings   map[string]domain.UserSettings
	snapshots  map[string]domain.StatsSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]*domain.User),
		emails:     make(map[string]string),
		days:       make(map[string]map[string]domain.DailyActivity),
		challenges: make(map[string]map[string]domain.ChallengeProgress),
		settings:   make(map[string]domain.UserSettings),
		snapshots:  make(map[string]domain.StatsSnapshot),
	}
}

func (s *MemoryStore) Users() *InMemoryUserRepository           { return &InMemoryUserRepository{s} }
func (s *MemoryStore) Activity() *InMemoryActivityRepository    { return &InMemoryActivityRepository{s} }
func (s *MemoryStore) Challenges() *InMemoryChallengeRepository { return &InMemoryChallengeRepository{s} }
func (s *MemoryStore) Settings() *InMemorySettingsRepository    { return &InMemorySettingsRepository{s} }
func (s *MemoryStore) Snapshots() *InMemorySnapshotRepository   { return &InMemorySnapshotRepository{s} }

type InMemoryUserRepository struct{ s *MemoryStore }

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.s.users[user.ID] = &cp
	r.s.emails[user.Email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *r.s.users[id]
	return &cp, nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type InMemoryActivityRepository struct{ s *MemoryStore }

func (r *InMemoryActivityRepository) GetLog(ctx context.Context, userID string) (domain.ActivityLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	log := make(domain.ActivityLog, len(r.s.days[userID]))
	for date, day := range r.s.days[userID] {
		log[date] = day.Clone()
	}
	return log, nil
}

func (r *InMemoryActivityRepository) GetDay(ctx context.Context, userID, date string) (domain.DailyActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.days[userID][date].Clone(), nil
}

func (r *InMemoryActivityRepository) SaveDay(ctx context.Context, userID, date string, activity domain.DailyActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.days[userID] == nil {
		r.s.days[userID] = make(map[string]domain.DailyActivity)
	}
	r.s.days[userID][date] = activity.Clone()
	return nil
}

func (r *InMemoryActivityRepository) SaveReading(ctx context.Context, userID, date string, activity domain.DailyActivity, position domain.QuranPosition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.days[userID] == nil {
		r.s.days[userID] = make(map[string]domain.DailyActivity)
	}
	r.s.days[userID][date] = activity.Clone()

	st, ok := r.s.settings[userID]
	if !ok {
		st = *domain.DefaultSettings(userID)
	}
	st.QuranPosition = position
	r.s.settings[userID] = st
	return nil
}

func (r *InMemoryActivityRepository) Reset(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.days, userID)
	delete(r.s.challenges, userID)
	delete(r.s.snapshots, userID)
	if st, ok := r.s.settings[userID]; ok {
		st.QuranPosition = domain.StartPosition
		r.s.settings[userID] = st
	}
	return nil
}

type InMemoryChallengeRepository struct{ s *MemoryStore }

func (r *InMemoryChallengeRepository) ListByUserID(ctx context.Context, userID string) ([]domain.ChallengeProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]domain.ChallengeProgress, 0, len(r.s.challenges[userID]))
	for _, p := range r.s.challenges[userID] {
		list = append(list, copyProgress(p))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ChallengeID < list[j].ChallengeID
	})
	return list, nil
}

func (r *InMemoryChallengeRepository) Get(ctx context.Context, userID, challengeID string) (*domain.ChallengeProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.challenges[userID][challengeID]
	if !ok {
		return nil, domain.ErrChallengeNotJoined
	}
	cp := copyProgress(p)
	return &cp, nil
}

func (r *InMemoryChallengeRepository) Create(ctx context.Context, p *domain.ChallengeProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.challenges[p.UserID][p.ChallengeID]; ok {
		return domain.ErrChallengeAlreadyJoined
	}
	if r.s.challenges[p.UserID] == nil {
		r.s.challenges[p.UserID] = make(map[string]domain.ChallengeProgress)
	}
	r.s.challenges[p.UserID][p.ChallengeID] = copyProgress(*p)
	return nil
}

func (r *InMemoryChallengeRepository) Update(ctx context.Context, p *domain.ChallengeProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.challenges[p.UserID][p.ChallengeID]; !ok {
		return domain.ErrChallengeNotJoined
	}
	r.s.challenges[p.UserID][p.ChallengeID] = copyProgress(*p)
	return nil
}

func copyProgress(p domain.ChallengeProgress) domain.ChallengeProgress {
	if p.LastLoggedDate != nil {
		d := *p.LastLoggedDate
		p.LastLoggedDate = &d
	}
	return p
}

type InMemorySettingsRepository struct{ s *MemoryStore }

func (r *InMemorySettingsRepository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.settings[userID]
	if !ok {
		return domain.DefaultSettings(userID), nil
	}
	return &st, nil
}

func (r *InMemorySettingsRepository) Save(ctx context.Context, settings *domain.UserSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.settings[settings.UserID] = *settings
	return nil
}

type InMemorySnapshotRepository struct{ s *MemoryStore }

func (r *InMemorySnapshotRepository) Get(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	snap, ok := r.s.snapshots[userID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return &snap, nil
}

func (r *InMemorySnapshotRepository) Save(ctx context.Context, snap *domain.StatsSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.snapshots[snap.UserID] = *snap
	return nil
}
