// Package types defines the warehouse domain entities (Item, Order,
// Task), the robot status and automation mode enums, and the standard
// errors shared across the warebot packages.
package types
