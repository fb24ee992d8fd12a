package jobs

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/adapters/out/notification"
	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultNotificationSchedule drains the queue every second.
	DefaultNotificationSchedule = "@every 1s"
	// DefaultNotificationMaxAttempts is how often an event is tried before it is dropped.
	DefaultNotificationMaxAttempts = 5
	// DefaultNotificationBatchSize caps the events handled per run.
	DefaultNotificationBatchSize = 100
)

// scheduleParser accepts an optional seconds field and descriptors such as "@every 1s".
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule parses spec the way the job scheduler will.
func ValidateSchedule(spec string) error {
	_, err := scheduleParser.Parse(spec)
	return err
}

// NotificationQueue is the buffer the workflow publishes StatusEntered events to.
type NotificationQueue interface {
	Drain(limit int) []notification.Envelope
	Requeue(envs ...notification.Envelope) error
}

// NotificationDispatcher sends the email for one event.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event ports.StatusEntered) (notification.Outcome, error)
}

// DropCounter is told about every event given up on.
type DropCounter interface {
	Dropped()
}

// NotificationDispatchJobConfig holds the schedule and retry settings.
type NotificationDispatchJobConfig struct {
	Schedule    string
	MaxAttempts int
	BatchSize   int
}

// NotificationDispatchJob periodically drains the notification queue.
// Failed events go back to the queue until MaxAttempts is reached.
type NotificationDispatchJob struct {
	queue      NotificationQueue
	dispatcher NotificationDispatcher
	drops      DropCounter
	cfg        NotificationDispatchJobConfig
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationDispatchJob fills zero config values with the defaults. drops may be nil.
func NewNotificationDispatchJob(
	queue NotificationQueue,
	dispatcher NotificationDispatcher,
	drops DropCounter,
	cfg NotificationDispatchJobConfig,
	logger *slog.Logger,
) *NotificationDispatchJob {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultNotificationSchedule
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultNotificationMaxAttempts
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultNotificationBatchSize
	}

	return &NotificationDispatchJob{
		queue:      queue,
		dispatcher: dispatcher,
		drops:      drops,
		cfg:        cfg,
		cron:       cron.New(cron.WithParser(scheduleParser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "notification_dispatch_job"),
	}
}

// Start schedules RunOnce.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started", "schedule", j.cfg.Schedule)
	return nil
}

// Stop waits for a running batch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// RunOnce dispatches one batch and returns how many events were processed.
func (j *NotificationDispatchJob) RunOnce(ctx context.Context) int {
	batch := j.queue.Drain(j.cfg.BatchSize)

	for _, env := range batch {
		if ctx.Err() != nil {
			j.requeue(ctx, env)
			continue
		}

		_, err := j.dispatcher.Dispatch(ctx, env.Event)
		if err == nil {
			continue
		}

		env.Attempts++
		if env.Attempts >= j.cfg.MaxAttempts {
			j.logger.ErrorContext(ctx, "Dropping status notification",
				"order_id", env.Event.OrderID.String(),
				"status", env.Event.Status,
				"attempts", env.Attempts,
				"error", err,
			)
			if j.drops != nil {
				j.drops.Dropped()
			}
			continue
		}

		j.logger.WarnContext(ctx, "Status notification failed, will retry",
			"order_id", env.Event.OrderID.String(),
			"status", env.Event.Status,
			"attempts", env.Attempts,
			"error", err,
		)
		j.requeue(ctx, env)
	}

	return len(batch)
}

func (j *NotificationDispatchJob) requeue(ctx context.Context, env notification.Envelope) {
	if err := j.queue.Requeue(env); err != nil {
		if errors.Is(err, notification.ErrQueueFull) && j.drops != nil {
			j.drops.Dropped()
		}
		j.logger.ErrorContext(ctx, "Could not requeue status notification", "error", err)
	}
}
