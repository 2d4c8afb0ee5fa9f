package jobs

import (
	"context"
	"log/slog"

	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultOverduePickupSchedule runs the check every 15 minutes.
const DefaultOverduePickupSchedule = "*/15 * * * *"

// OverdueOrdersFinder returns the orders whose pickup date lies before the query's reference time
// and that are not completed.
type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueServiceOrdersQuery) ([]queries.ServiceOrderView, error)
}

// OverduePickupJob periodically reports service orders that missed their pickup date.
// It only reads.
type OverduePickupJob struct {
	finder   OverdueOrdersFinder
	clock    ports.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverduePickupJob creates the job. schedule is a standard five-field cron
// expression or a descriptor such as "@every 10m"; empty means DefaultOverduePickupSchedule.
func NewOverduePickupJob(
	finder OverdueOrdersFinder,
	clock ports.Clock,
	schedule string,
	logger *slog.Logger,
) *OverduePickupJob {
	if schedule == "" {
		schedule = DefaultOverduePickupSchedule
	}
	return &OverduePickupJob{
		finder:   finder,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "overdue_pickup_job"),
	}
}

// Start registers the check with the scheduler and starts it.
func (j *OverduePickupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue pickup job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue pickup job started", "schedule", j.schedule)
	return nil
}

// Run performs one check and returns the number of overdue orders.
func (j *OverduePickupJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetOverdueServiceOrdersQuery(j.clock.Now())
	if err != nil {
		return 0, err
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	if len(overdue) == 0 {
		j.logger.DebugContext(ctx, "No overdue service orders")
		return 0, nil
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Service order pickup is overdue",
			"order_id", o.ID,
			"customer", o.CustomerName,
			"status", o.Status,
			"pickup_at", o.PickupAt)
	}
	j.logger.InfoContext(ctx, "Overdue service orders found", "count", len(overdue))

	return len(overdue), nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (j *OverduePickupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue pickup job stopped")
}
