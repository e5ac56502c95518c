// Package processor runs the merge pipeline over one i18n tree. It drives
// discovery, merges every language, and only then cleans up the namespace
// directories. Only a missing or unlistable root aborts the run; every other
// failure is reported and collected in the Result.
package processor
