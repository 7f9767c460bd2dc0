// Package report provides the Report aggregate: an immutable daily situation
// report (DSR) built by the report aggregator from one day of bills and
// deliveries.
package report
