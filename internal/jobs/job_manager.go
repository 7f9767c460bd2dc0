package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyReportJob *DailyReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(dailyReportJob *DailyReportJob) *JobManager {
	return &JobManager{
		dailyReportJob: dailyReportJob,
	}
}

func (jm *JobManager) jobs() []job {
	return []job{jm.dailyReportJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	var started []job
	for _, j := range jm.jobs() {
		if err := j.Start(); err != nil {
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start job: %w", err)
		}
		started = append(started, j)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.Stop()
	}
}
