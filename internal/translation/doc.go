// Package translation models a single translation document: a JSON object
// mapping keys to values. Documents keep key insertion order so merged output
// is deterministic, and merging is strictly shallow.
package translation
