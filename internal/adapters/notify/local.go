// Package notify delivers the daily reminder from inside the process.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Sink receives delivered reminders.
type Sink func(content domain.NotificationContent, firedAt time.Time)

// Config configures a LocalNotifier.
type Config struct {
	// Authorization is the permission the notifier starts with.
	Authorization domain.AuthorizationStatus

	// GrantOnRequest decides how RequestAuthorization resolves a
	// notDetermined permission.
	GrantOnRequest bool

	// Sink is called for every delivered reminder. Optional.
	Sink Sink

	Logger *slog.Logger
}

// LocalNotifier implements ports.Notifier with one repeating in-process
// timer. Scheduling replaces the previous trigger.
type LocalNotifier struct {
	sink   Sink
	logger *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	status     domain.AuthorizationStatus
	grant      bool
	timer      *time.Timer
	at         *domain.NotificationTime
	content    domain.NotificationContent
	generation uint64
}

// New creates a notifier with nothing scheduled.
func New(cfg Config) *LocalNotifier {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalNotifier{
		sink:   cfg.Sink,
		logger: logger.With(slog.String("component", "notify.LocalNotifier")),
		now:    time.Now,
		status: cfg.Authorization,
		grant:  cfg.GrantOnRequest,
	}
}

// AuthorizationStatus implements ports.Notifier.
func (n *LocalNotifier) AuthorizationStatus(_ context.Context) (domain.AuthorizationStatus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.status, nil
}

// RequestAuthorization implements ports.Notifier. A decided permission is
// returned unchanged.
func (n *LocalNotifier) RequestAuthorization(ctx context.Context) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.status == domain.AuthorizationNotDetermined {
		n.status = domain.AuthorizationDenied
		if n.grant {
			n.status = domain.AuthorizationAuthorized
		}

		n.logger.InfoContext(ctx, "notification permission decided", slog.String("status", n.status.String()))
	}

	return n.status.CanSchedule(), nil
}

// ScheduleDaily implements ports.Notifier.
func (n *LocalNotifier) ScheduleDaily(ctx context.Context, t domain.NotificationTime, content domain.NotificationContent) error {
	if err := t.Validate(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.status.CanSchedule() {
		return domain.ErrAuthorizationDenied
	}

	n.stopLocked()

	at := t
	n.at = &at
	n.content = content
	n.armLocked(n.generation)

	n.logger.DebugContext(ctx, "reminder armed",
		slog.String("time", t.String()),
		slog.Time("next", nextFire(n.now(), t)),
	)

	return nil
}

// RemoveAllPending implements ports.Notifier.
func (n *LocalNotifier) RemoveAllPending(_ context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()

	return nil
}

// Pending implements ports.Notifier.
func (n *LocalNotifier) Pending(_ context.Context) (*domain.NotificationTime, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.at == nil {
		return nil, nil //nolint:nilnil // nothing scheduled
	}

	at := *n.at

	return &at, nil
}

// Close cancels the pending reminder.
func (n *LocalNotifier) Close() {
	_ = n.RemoveAllPending(context.Background())
}

// stopLocked cancels the trigger. A fire already running sees the bumped
// generation and does not re-arm.
func (n *LocalNotifier) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	n.at = nil
	n.generation++
}

func (n *LocalNotifier) armLocked(gen uint64) {
	d := nextFire(n.now(), *n.at).Sub(n.now())
	n.timer = time.AfterFunc(d, func() { n.fire(gen) })
}

func (n *LocalNotifier) fire(gen uint64) {
	n.mu.Lock()

	if gen != n.generation || n.at == nil {
		n.mu.Unlock()

		return
	}

	content := n.content
	firedAt := n.now()
	n.armLocked(gen)
	n.mu.Unlock()

	n.logger.Info("daily reminder delivered",
		slog.String("title", content.Title),
		slog.String("body", content.Body),
	)

	if n.sink != nil {
		n.sink(content, firedAt)
	}
}

// nextFire returns the first instant strictly after now at t's wall-clock
// time in now's location.
func nextFire(now time.Time, t domain.NotificationTime) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate
}
