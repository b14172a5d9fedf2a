// Package form holds the domain model of the beneficiary registration form:
// the raw input captured by the UI layer, the outbound submission payload,
// and the pure assembly and validation steps between them.
//
// Assemble is a pure function over (raw input, environment): every free-text
// field is sanitized, enumerations are normalized to safe defaults, and the
// client metadata (timestamp, user agent, referrer, session token) comes from
// the injected Env rather than ambient globals. ValidateCritical re-checks
// the assembled payload independently of any UI-level schema validation, so
// a value that sanitized into an invalid shape is still caught before the
// network call.
//
// JSON field names follow the wire contract of the receiving webhook
// (titular, dependentes, plano, ...), which predates this package.
package form
