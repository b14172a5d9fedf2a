package form

// Gender is the closed set accepted by the webhook.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// NormalizeGender maps untrusted input onto the closed set, defaulting to
// male, the form's pre-selected option.
func NormalizeGender(s string) Gender {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s)
	default:
		return GenderMale
	}
}

// Country describes a selectable country with its dialing code.
type Country struct {
	Code     string
	Label    string
	DialCode string
	Flag     string
}

// Countries lists the countries the form offers. Brazil first, as the
// default selection.
var Countries = []Country{
	{Code: "BR", Label: "Brasil", DialCode: "+55", Flag: "🇧🇷"},
	{Code: "US", Label: "Estados Unidos", DialCode: "+1", Flag: "🇺🇸"},
}

// DefaultDialCode is used whenever a country cannot be resolved.
const DefaultDialCode = "+55"

// DialCode resolves a country identifier (such as "BR") to its dialing code.
// Unknown identifiers, or codes outside the allowed set, fall back to
// DefaultDialCode.
func DialCode(country string) string {
	for _, c := range Countries {
		if c.Code == country {
			return c.DialCode
		}
	}
	return DefaultDialCode
}
