// Package services provides the domain services of the status workflow engine that
// don't naturally belong to a single aggregate.
//
// The package includes:
//   - TransitionPolicy: decides whether a status change is allowed, in strict or
//     permissive mode, against the transition graph
//   - DwellCalculator: derives time-in-status figures from the status history log
//   - DwellTime: a duration rendered for reports (milliseconds, hours, days, label)
//
// The services are pure: they receive already-loaded entities and a clock value, and
// never touch storage.
package services
