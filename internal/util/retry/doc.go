// Package retry repeats cloud lookups that fail for transient reasons.
//
// [Do] runs an operation until it succeeds, returns an error the configured
// classifier rejects, runs out of attempts, or the context ends. Delays grow
// exponentially up to a ceiling.
package retry
