// Package tier maps raw subscription identifiers onto the closed set of
// canonical tiers and resolves each tier's quota table and feature set.
//
// Everything here is pure: no I/O, no mutable package state. A Policy is
// built once from configuration and shared by reference.
package tier
