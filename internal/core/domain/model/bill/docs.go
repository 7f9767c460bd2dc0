// Package bill provides the Bill aggregate: one billing record (a regular
// bill or a disconnection notice) that coordinators enter and hand to
// messengers for physical delivery.
//
// Bill status mirrors the delivery outcome:
//
//	unassigned ──> assigned ──> delivered
//
// A bill becomes delivered only when one of its deliveries is delivered, so a
// delivered bill cannot be assigned again.
package bill
