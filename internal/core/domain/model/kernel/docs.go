// Package kernel holds the primitives shared by every aggregate of the POD
// domain: the UUID identifier value object and the Clock abstraction used to
// stamp lifecycle transitions.
package kernel
