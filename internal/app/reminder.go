package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// ReminderSettings is the reminder state shown to the user.
type ReminderSettings struct {
	Authorization domain.AuthorizationStatus
	Time          *domain.NotificationTime
	Scheduled     bool
}

// ReminderServiceConfig contains the reminder service's dependencies.
type ReminderServiceConfig struct {
	Notifier    ports.Notifier
	Preferences ports.PreferenceStore
	Logger      *slog.Logger
}

// ReminderService schedules the daily "quote is available" reminder.
type ReminderService struct {
	notifier ports.Notifier
	prefs    ports.PreferenceStore
	logger   *slog.Logger
}

// NewReminderService creates the service. Panics if a dependency is nil.
func NewReminderService(cfg ReminderServiceConfig) *ReminderService {
	if cfg.Notifier == nil {
		panic("ReminderService: Notifier is required")
	}

	if cfg.Preferences == nil {
		panic("ReminderService: Preferences is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ReminderService{
		notifier: cfg.Notifier,
		prefs:    cfg.Preferences,
		logger:   logger.With(slog.String("component", "app.ReminderService")),
	}
}

// Schedule replaces any pending reminder with a daily one at t and
// remembers t. It asks for permission first when none was decided.
func (s *ReminderService) Schedule(ctx context.Context, t domain.NotificationTime) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if err := s.ensureAuthorized(ctx); err != nil {
		return err
	}

	if err := s.notifier.RemoveAllPending(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFailedToSetReminder, err)
	}

	if err := s.notifier.ScheduleDaily(ctx, t, domain.DailyQuoteReminder); err != nil {
		s.logger.ErrorContext(ctx, "scheduling reminder failed",
			slog.String("time", t.String()),
			slog.Any("error", err),
		)

		return fmt.Errorf("%w: %w", domain.ErrFailedToSetReminder, err)
	}

	if err := s.prefs.SetPreference(ctx, domain.ReminderPreferenceKey, t.String()); err != nil {
		return fmt.Errorf("remembering reminder time: %w", err)
	}

	s.logger.InfoContext(ctx, "daily reminder scheduled", slog.String("time", t.String()))

	return nil
}

func (s *ReminderService) ensureAuthorized(ctx context.Context) error {
	status, err := s.notifier.AuthorizationStatus(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuthorizationDenied, err)
	}

	if status.CanSchedule() {
		return nil
	}

	if status != domain.AuthorizationNotDetermined {
		return domain.ErrAuthorizationDenied
	}

	granted, err := s.notifier.RequestAuthorization(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuthorizationDenied, err)
	}

	if !granted {
		return domain.ErrAuthorizationDenied
	}

	return nil
}

// Cancel removes the pending reminder. The remembered time is kept.
func (s *ReminderService) Cancel(ctx context.Context) error {
	return s.notifier.RemoveAllPending(ctx)
}

// Settings reports permission, the remembered time and whether a reminder
// is currently pending.
func (s *ReminderService) Settings(ctx context.Context) (ReminderSettings, error) {
	status, err := s.notifier.AuthorizationStatus(ctx)
	if err != nil {
		return ReminderSettings{}, err
	}

	remembered, err := s.rememberedTime(ctx)
	if err != nil {
		return ReminderSettings{}, err
	}

	pending, err := s.notifier.Pending(ctx)
	if err != nil {
		return ReminderSettings{}, err
	}

	out := ReminderSettings{Authorization: status, Time: remembered, Scheduled: pending != nil}
	if pending != nil {
		out.Time = pending
	}

	return out, nil
}

// Restore reschedules the remembered reminder, typically at startup.
// It does nothing when no time was remembered or permission is missing.
func (s *ReminderService) Restore(ctx context.Context) error {
	t, err := s.rememberedTime(ctx)
	if err != nil || t == nil {
		return err
	}

	status, err := s.notifier.AuthorizationStatus(ctx)
	if err != nil {
		return err
	}

	if !status.CanSchedule() {
		s.logger.InfoContext(ctx, "not restoring reminder without permission",
			slog.String("authorization", status.String()))

		return nil
	}

	return s.Schedule(ctx, *t)
}

func (s *ReminderService) rememberedTime(ctx context.Context) (*domain.NotificationTime, error) {
	raw, ok, err := s.prefs.Preference(ctx, domain.ReminderPreferenceKey)
	if err != nil || !ok {
		return nil, err
	}

	t, err := domain.ParseNotificationTime(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring unreadable reminder time", slog.String("value", raw))

		return nil, nil //nolint:nilnil // an unreadable value reads as unset
	}

	return &t, nil
}
