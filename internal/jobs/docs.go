// Package jobs runs the periodic background work of the delivery service on
// github.com/robfig/cron/v3 schedules with a seconds field.
//
// # Jobs
//
// StaffReleaseJob runs ReleaseIdleStaffCommand, by default every five minutes
// ("0 */5 * * * *"). Packaging marks a staff member Busy; once every package of
// that member is completed or failed the job flips the member back to Available.
// Overlapping runs are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(releaseIdleStaffHandler, cfg.StaffReleaseSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and retried on the next tick.
package jobs
