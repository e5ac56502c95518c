// Package cleanup removes consumed namespace translation files and any
// namespace directory left empty afterwards. Every failure is reported and
// cleanup carries on with the next file or namespace.
package cleanup
