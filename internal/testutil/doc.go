// Package testutil provides fluent builders for constructing domain objects
// in tests without repeating field-by-field setup.
package testutil
