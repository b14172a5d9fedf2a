package form

import (
	"time"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/sanitizer"
)

// maxClientInfoLen caps the user agent and referrer strings attached to the
// payload.
const maxClientInfoLen = 200

// timestampLayout matches the ISO-8601 millisecond format the webhook has
// always received.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Env is the request context injected into assembly: the clock, the session
// token source and the client environment strings. Keeping these explicit
// makes Assemble deterministic under test.
type Env struct {
	Now       func() time.Time
	NewToken  func() string
	UserAgent string
	Referrer  string
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) newToken() string {
	if e.NewToken != nil {
		return e.NewToken()
	}
	return ""
}

var cleanEmail = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.ToLower,
)

// Assemble builds the outbound payload from raw form state. Every string
// field is sanitized, enumerations and counts are clamped into their valid
// ranges, and the client metadata comes from env. Given identical input and
// a fixed clock and token source the result is identical.
func Assemble(in Input, env Env, limits Limits) Payload {
	dependents := make([]Dependent, 0, len(in.Dependents))
	for _, dep := range in.Dependents {
		dependents = append(dependents, Dependent{
			Name:           sanitizer.Text(dep.Name, limits.MaxStringLen),
			Phone:          sanitizer.Digits(dep.Phone, limits.MaxPhoneLen),
			CountryCode:    DialCode(dep.Country),
			Email:          cleanEmail(sanitizer.Text(dep.Email, limits.MaxStringLen)),
			Gender:         NormalizeGender(dep.Gender),
			DocumentType:   DocumentTypeFromInt(dep.DocumentType),
			DocumentNumber: sanitizer.Digits(dep.DocumentNumber, limits.MaxPhoneLen),
		})
	}

	return Payload{
		Holder: Holder{
			DocumentType:   DocumentTypeFromInt(in.Holder.DocumentType),
			DocumentNumber: sanitizer.Digits(in.Holder.DocumentNumber, limits.MaxPhoneLen),
			Gender:         NormalizeGender(in.Holder.Gender),
		},
		Dependents:     dependents,
		Plan:           sanitizer.Text(in.Plan, limits.MaxStringLen),
		DependentCount: sanitizer.Clamp(in.DependentCount, 0, limits.MaxDependents),
		CustomerRef:    sanitizer.Text(in.CustomerRef, limits.MaxStringLen),
		Timestamp:      env.now().UTC().Format(timestampLayout),
		UserAgent:      sanitizer.MaxLength(env.UserAgent, maxClientInfoLen),
		Referrer:       sanitizer.MaxLength(env.Referrer, maxClientInfoLen),
		SessionToken:   env.newToken(),
	}
}

// Reconcile adjusts the dependent list to the externally supplied target
// count: extra entries are dropped, missing entries are appended with the
// form's default selections. The invariant is that at submission time the
// list length equals the target count.
func Reconcile(dependents []RawPerson, count int) []RawPerson {
	if count < 0 {
		count = 0
	}

	out := make([]RawPerson, 0, count)
	out = append(out, dependents[:min(len(dependents), count)]...)

	for len(out) < count {
		out = append(out, RawPerson{
			Country:      "BR",
			Gender:       string(GenderMale),
			DocumentType: int(DocumentCPF),
		})
	}

	return out
}

// FormatPhoneInput is the as-you-type phone mask: digits only, capped.
func FormatPhoneInput(s string, limits Limits) string {
	return sanitizer.Digits(s, limits.MaxPhoneLen)
}

// FormatDocumentInput is the as-you-type document mask. Numeric documents
// keep digits only with their per-type cap; passports keep letters.
func FormatDocumentInput(s string, t DocumentType, limits Limits) string {
	switch t {
	case DocumentPassport:
		return sanitizer.MaxLength(s, limits.MaxDocumentLen)
	case DocumentCPF, DocumentSSN, DocumentITIN:
		return sanitizer.Digits(s, t.MaxInputLen())
	default:
		return sanitizer.Digits(s, limits.MaxDocumentLen)
	}
}
