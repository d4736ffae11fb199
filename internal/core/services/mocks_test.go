package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) GetLog(ctx context.Context, userID string) (domain.ActivityLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ActivityLog), args.Error(1)
}

func (m *MockActivityRepo) GetDay(ctx context.Context, userID, date string) (domain.DailyActivity, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(domain.DailyActivity), args.Error(1)
}

func (m *MockActivityRepo) SaveDay(ctx context.Context, userID, date string, activity domain.DailyActivity) error {
	return m.Called(ctx, userID, date, activity).Error(0)
}

func (m *MockActivityRepo) SaveReading(ctx context.Context, userID, date string, activity domain.DailyActivity, position domain.QuranPosition) error {
	return m.Called(ctx, userID, date, activity, position).Error(0)
}

func (m *MockActivityRepo) Reset(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockChallengeRepo struct {
	mock.Mock
}

func (m *MockChallengeRepo) ListByUserID(ctx context.Context, userID string) ([]domain.ChallengeProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChallengeProgress), args.Error(1)
}

func (m *MockChallengeRepo) Get(ctx context.Context, userID, challengeID string) (*domain.ChallengeProgress, error) {
	args := m.Called(ctx, userID, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallengeProgress), args.Error(1)
}

func (m *MockChallengeRepo) Create(ctx context.Context, progress *domain.ChallengeProgress) error {
	return m.Called(ctx, progress).Error(0)
}

func (m *MockChallengeRepo) Update(ctx context.Context, progress *domain.ChallengeProgress) error {
	return m.Called(ctx, progress).Error(0)
}

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsRepo) Save(ctx context.Context, settings *domain.UserSettings) error {
	return m.Called(ctx, settings).Error(0)
}

type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Get(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockSnapshotRepo) Save(ctx context.Context, snapshot *domain.StatsSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) Record(ctx context.Context, userID string, kind domain.ActivityKind, date string) error {
	return m.Called(ctx, userID, kind, date).Error(0)
}

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(userID string) {
	m.Called(userID)
}

type MockHijriProvider struct {
	mock.Mock
}

func (m *MockHijriProvider) HijriDate(ctx context.Context, day time.Time) (*domain.HijriDate, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HijriDate), args.Error(1)
}
