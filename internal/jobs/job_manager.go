package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job of the service together.
type JobManager struct {
	staffReleaseJob *StaffReleaseJob
}

func NewJobManager(
	releaseIdleStaffHandler idleStaffReleaser,
	staffReleaseSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staffReleaseJob: NewStaffReleaseJob(releaseIdleStaffHandler, staffReleaseSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.staffReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start staff release job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.staffReleaseJob.Stop()
}
