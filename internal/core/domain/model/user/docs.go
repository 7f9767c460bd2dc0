// Package user provides the User aggregate: the people who sign in to the POD
// system, their roles, and the capability table that decides which operations
// each role may perform.
//
// The package includes:
//   - User: identity, credentials (bcrypt hash), profile and active flag
//   - Role: a closed enum of admin, coordinator and messenger
//   - Capability: named permissions resolved from a static role table
//
// Key business rules:
//   - Email is unique (enforced by storage) and stored lower-cased
//   - Passwords are never kept in clear text
//   - Only messengers can be assigned bills
package user
