// Package testutil provides helpers shared by package tests: building i18n
// trees on an afero filesystem, file assertions, a fault-injecting
// filesystem and a Reporter that records events.
package testutil
