// Package sanitizer provides small, focused helpers for cleaning untrusted
// form input before it is validated or serialized.
//
// The helpers fall into three groups:
//
//   - Strings – trimming, case conversion and length capping.
//
//   - Security – Text, which strips markup delimiters, script protocols and
//     inline event handlers from free-text fields.
//
//   - Numeric – Digits, which reduces formatted phone and document numbers to
//     their digit content, and generic clamping for counts and enumerations.
//
// None of the helpers returns an error – they always produce a safe result,
// falling back to the empty string when nothing survives sanitization. The
// package is stateless and safe for concurrent use.
//
// The higher-order Apply and Compose helpers allow building reusable
// sanitization pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	email := clean("  John.Doe@Example.COM ") // "john.doe@example.com"
package sanitizer
