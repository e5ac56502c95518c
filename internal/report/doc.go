// Package report defines the Reporter sink the merge pipeline uses to announce
// progress and failures, plus its charmbracelet/log backed implementation.
package report
