// Package delivery provides the Delivery aggregate root: one physical hand-off
// of a bill by a messenger, together with its proof images and verification.
//
// The package includes:
//   - Delivery: the aggregate root driving the lifecycle
//   - Status: the lifecycle state machine
//   - VerificationStatus: the coordinator review axis
//   - ProofImage: a captured proof reference (URL, capture time, size)
//   - DeliveryCompleted, DeliveryReassigned: domain events recorded by the aggregate
//
// Lifecycle:
//
//	pending ──> assigned ──> in-progress ──┬──> delivered
//	              ^   │                    └──> failed
//	              │   └── attach proof ──────> delivered
//	              └──── reassign (from any state)
//
// Key business rules:
//   - A delivery is created assigned, with copies of the bill fields used for display
//   - Only the delivery's messenger may change its status or attach proof
//   - Status delivered requires at least one proof image
//   - Reassignment never touches proof images, verification or the failure reason
//   - Verification fields are written only by Verify
package delivery
