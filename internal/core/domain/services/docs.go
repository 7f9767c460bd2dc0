// Package services provides domain services that work across several
// aggregates of the POD system.
//
// The package includes:
//   - ReportAggregator: builds the daily situation report from one day of bills,
//     deliveries and the messenger roster
//
// Services here are pure: they take loaded aggregates and return new ones,
// leaving persistence to the application layer.
package services
