package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

func TestHijriService_Today(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 3, 23, 9, 0, 0, 0, time.UTC)

	t.Run("Success: Provider date wins and the adjustment is applied", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		provider := new(MockHijriProvider)
		svc := NewHijriService(settingsRepo, provider)

		settings := domain.DefaultSettings(testUser)
		settings.HijriAdjustment = 1
		settingsRepo.On("Get", ctx, testUser).Return(settings, nil)
		provider.On("HijriDate", ctx, now.AddDate(0, 0, 1)).Return(&domain.HijriDate{Year: 1444, Month: 9, Day: 1}, nil)

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		provider.AssertExpectations(t)
		assert.Equal(t, HijriSourceProvider, day.Source)
		assert.Equal(t, domain.HijriDate{Year: 1444, Month: 9, Day: 1}, day.HijriDate)
		assert.Equal(t, "Ramadan", day.MonthName)
		assert.Equal(t, 1, day.Adjustment)
		assert.Equal(t, "2023-03-23", day.Gregorian)
	})

	t.Run("Success: Provider day 30 is returned unchanged", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		provider := new(MockHijriProvider)
		svc := NewHijriService(settingsRepo, provider)

		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)
		provider.On("HijriDate", ctx, now).Return(&domain.HijriDate{Year: 1447, Month: 2, Day: 30}, nil)

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		assert.Equal(t, HijriSourceProvider, day.Source)
		assert.Equal(t, domain.HijriDate{Year: 1447, Month: 2, Day: 30}, day.HijriDate)
	})

	t.Run("Success: Missing provider date falls back to the tabular calendar", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		provider := new(MockHijriProvider)
		svc := NewHijriService(settingsRepo, provider)

		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)
		provider.On("HijriDate", ctx, now).Return(nil, nil)

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		assert.Equal(t, HijriSourceLocal, day.Source)
		assert.Equal(t, domain.HijriDate{Year: 1444, Month: 9, Day: 1}, day.HijriDate)
	})

	t.Run("Success: Provider failure falls back to the tabular calendar", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		provider := new(MockHijriProvider)
		svc := NewHijriService(settingsRepo, provider)

		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)
		provider.On("HijriDate", ctx, mock.Anything).Return(nil, errors.New("timeout"))

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		assert.Equal(t, HijriSourceLocal, day.Source)
		assert.Equal(t, domain.HijriDate{Year: 1444, Month: 9, Day: 1}, day.HijriDate)
		assert.False(t, day.LeapYear)
	})

	t.Run("Success: Invalid provider payload is ignored", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		provider := new(MockHijriProvider)
		svc := NewHijriService(settingsRepo, provider)

		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)
		provider.On("HijriDate", ctx, mock.Anything).Return(&domain.HijriDate{Year: 1444, Month: 13, Day: 1}, nil)

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		assert.Equal(t, HijriSourceLocal, day.Source)
	})

	t.Run("Success: No provider configured", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := NewHijriService(settingsRepo, nil)
		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)

		day, err := svc.Today(ctx, testUser, now)

		require.NoError(t, err)
		assert.Equal(t, HijriSourceLocal, day.Source)
		assert.Equal(t, "1 Ramadan 1444 AH", day.Formatted)
	})
}

func TestHijriService_SetAdjustment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Stores the adjustment", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := NewHijriService(settingsRepo, nil)
		settings := domain.DefaultSettings(testUser)
		settingsRepo.On("Get", ctx, testUser).Return(settings, nil)
		settingsRepo.On("Save", ctx, settings).Return(nil)

		got, err := svc.SetAdjustment(ctx, testUser, -2)

		require.NoError(t, err)
		assert.Equal(t, -2, got.HijriAdjustment)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("Fail: Out of range", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := NewHijriService(settingsRepo, nil)
		settingsRepo.On("Get", ctx, testUser).Return(domain.DefaultSettings(testUser), nil)

		_, err := svc.SetAdjustment(ctx, testUser, 3)

		assert.ErrorIs(t, err, domain.ErrInvalidHijriAdjustment)
		settingsRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
