// Package ports defines the contracts between the POD application core and
// its infrastructure: repositories for each aggregate, the unit of work that
// scopes them to one transaction, and the outbound proof storage and event
// publishing ports.
package ports
