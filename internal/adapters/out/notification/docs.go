// Package notification turns StatusEntered events into customer emails.
//
// The workflow core only publishes events. Queue is the publisher it is given: an
// in-process buffer that remembers how often each event was attempted. A job drains
// the queue and hands every event to Dispatcher, which decides whether the status
// wants an email, renders the bound template (or a generic message) and passes the
// result to a Sender with exponential backoff.
//
//	queue := notification.NewQueue(0)
//	dispatcher := notification.NewDispatcher(uowFactory, notification.NewLoggingSender(logger),
//	    notification.NewMetrics(prometheus.DefaultRegisterer), notification.DefaultConfig(), logger)
//
//	for _, env := range queue.Drain(100) {
//	    if _, err := dispatcher.Dispatch(ctx, env.Event); err != nil {
//	        _ = queue.Requeue(env)
//	    }
//	}
//
// Delivery is at-most-once per successful Send and best effort overall: events in
// the queue are lost on process exit.
package notification
