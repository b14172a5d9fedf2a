// Package validator provides format predicates for registration form fields
// and a small rule engine for accumulating human-readable validation errors.
//
// The predicates (IsEmail, IsPhone, IsSessionToken) are pure boolean checks
// that never panic: malformed input yields false, not an error. They mirror
// the checks applied by the form UI so that a payload can be re-validated
// independently of any schema layer.
//
// The rule engine evaluates every rule and collects all failures instead of
// short-circuiting on the first one:
//
//	err := validator.Apply(
//	    validator.Email("email", addr, 255),
//	    validator.Phone("telefone", phone),
//	)
//	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
//	    // errs.Messages() holds one entry per failed rule
//	}
package validator
