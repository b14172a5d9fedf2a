// Package submission orchestrates one user-initiated submit of the
// registration form: assemble the payload, re-validate it, consult the
// cooldown limiter, POST it to the configured webhook and interpret the
// response.
//
// A Submitter holds an advisory in-flight flag so that a second submit from
// the same form instance is rejected instead of queued while one is on the
// wire. Every failure kind (validation, cooldown, transport, application) is
// converted into a single notification at this boundary; the error is also
// returned for programmatic callers.
package submission
