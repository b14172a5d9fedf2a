package form

import "github.com/JoaoLuiz92/dependente-plan-form/pkg/sanitizer"

// DocumentType identifies which identity document a person registered with.
// The wire format is the numeric code the webhook has always received.
type DocumentType int

const (
	DocumentCPF DocumentType = iota
	DocumentSSN
	DocumentITIN
	DocumentPassport
)

// DocumentTypeFromInt converts an untrusted integer into a DocumentType,
// clamping out-of-range values into the valid code space. Negative or
// unknown codes become CPF, matching the form's default selection.
func DocumentTypeFromInt(v int) DocumentType {
	return DocumentType(sanitizer.Clamp(v, int(DocumentCPF), int(DocumentPassport)))
}

func (t DocumentType) String() string {
	switch t {
	case DocumentCPF:
		return "CPF"
	case DocumentSSN:
		return "SSN"
	case DocumentITIN:
		return "ITIN"
	case DocumentPassport:
		return "PASSPORT"
	default:
		return "UNKNOWN"
	}
}

// ValidNumber reports whether number is a plausible document of this type.
// Numeric documents are judged on their digit count: CPF has 11 digits, SSN
// and ITIN have 9. Passports are judged on raw length (5 to 20 characters)
// because they may contain letters. A type outside the known set is never
// valid.
func (t DocumentType) ValidNumber(number string) bool {
	switch t {
	case DocumentCPF:
		return digitCount(number) == 11
	case DocumentSSN, DocumentITIN:
		return digitCount(number) == 9
	case DocumentPassport:
		return len(number) >= 5 && len(number) <= 20
	default:
		return false
	}
}

// MaxInputLen is the per-type cap applied while the field is being typed.
func (t DocumentType) MaxInputLen() int {
	switch t {
	case DocumentCPF:
		return 11
	case DocumentSSN, DocumentITIN:
		return 9
	default:
		return 20
	}
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
