package jobs

import (
	"context"
	"log/slog"

	"shopdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type idleStaffReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseIdleStaffCommand) (int, error)
}

// StaffReleaseJob returns Busy staff members whose packages are all finished to Available.
type StaffReleaseJob struct {
	handler  idleStaffReleaser
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaffReleaseJob takes a six-field cron schedule, seconds first.
func NewStaffReleaseJob(handler idleStaffReleaser, schedule string, logger *slog.Logger) *StaffReleaseJob {
	return &StaffReleaseJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "staff_release_job"),
	}
}

func (j *StaffReleaseJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Staff release job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running release to finish.
func (j *StaffReleaseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Staff release job stopped")
}

func (j *StaffReleaseJob) run() {
	ctx := context.Background()

	released, err := j.handler.Handle(ctx, commands.NewReleaseIdleStaffCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Staff release job failed", "error", err)
		return
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Released idle delivery staff", "count", released)
	}
}
