// Package jobs provides scheduled background tasks for the ski service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and read-only.
//
// # Available Jobs
//
// OverduePickupJob - lists service orders whose pickup date has passed while their
// status is not Abgeschlossen, and logs each of them together with a total count.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueQueryHandler, clock, cfg.OverdueJobSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression, "*/15 * * * *" by default.
// Descriptors such as "@every 1m" are accepted as well.
package jobs
