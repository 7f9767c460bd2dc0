// Package jobs provides scheduled background tasks for the POD system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DailyReportJob generates the daily situation report (DSR) for the previous
// day. It runs the same command as POST /api/reports/dsr, without a
// coordinator.
//
// # Usage
//
//	job := jobs.NewDailyReportJob(generateReportHandler, cfg.DSRCron, kernel.SystemClock{}, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. The default "0 5 0 * * *" runs
// five minutes after midnight so the report sees the whole closed day.
//
// # Error Handling
//
// A failed run is logged and the next run happens on schedule. A failed
// start stops any job that was already running.
package jobs
