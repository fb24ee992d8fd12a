// Package jobs provides scheduled background tasks for the storefront service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// They live outside the workflow core: the core only publishes events, and the
// jobs here consume them.
//
// # Available Jobs
//
// NotificationDispatchJob drains the in-process notification queue on a schedule
// (default "@every 1s") and hands each StatusEntered event to the email dispatcher.
// A failed event is re-queued with its attempt count; after MaxAttempts it is
// dropped and logged at error level.
//
// # Usage
//
//	job := jobs.NewNotificationDispatchJob(queue, dispatcher, metrics, jobs.NotificationDispatchJobConfig{}, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Runs never overlap: a run that is still going when the next tick fires causes
// that tick to be skipped.
package jobs
