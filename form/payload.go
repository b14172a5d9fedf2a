package form

// Limits carries the configured bounds applied during assembly and critical
// validation. Zero values are not usable; use DefaultLimits or derive one
// from the loaded configuration.
type Limits struct {
	MaxDependents  int
	MaxStringLen   int
	MaxPhoneLen    int
	MaxDocumentLen int
}

// DefaultLimits returns the production defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxDependents:  20,
		MaxStringLen:   255,
		MaxPhoneLen:    11,
		MaxDocumentLen: 20,
	}
}

// RawHolder is the policyholder section of the form as typed by the user.
// The holder registers with document and gender only; contact details are
// collected per dependent.
type RawHolder struct {
	DocumentType   int
	DocumentNumber string
	Gender         string
}

// RawPerson is one dependent's section of the form as typed by the user.
type RawPerson struct {
	Name           string
	Phone          string
	Country        string
	Email          string
	Gender         string
	DocumentType   int
	DocumentNumber string
}

// Input is the raw form state handed over by the UI layer on submit.
// Nothing in it is trusted: every field goes through sanitization during
// assembly.
type Input struct {
	Holder         RawHolder
	Dependents     []RawPerson
	Plan           string
	CustomerRef    string
	DependentCount int
}

// Holder is the sanitized policyholder record in the outbound payload.
type Holder struct {
	DocumentType   DocumentType `json:"tipoDocumento"`
	DocumentNumber string       `json:"numeroDocumento"`
	Gender         Gender       `json:"genero"`
}

// Dependent is one sanitized dependent record in the outbound payload.
type Dependent struct {
	Name           string       `json:"nome"`
	Phone          string       `json:"telefone"`
	CountryCode    string       `json:"codigoPais"`
	Email          string       `json:"email"`
	Gender         Gender       `json:"genero"`
	DocumentType   DocumentType `json:"tipoDocumento"`
	DocumentNumber string       `json:"numeroDocumento"`
}

// Payload is the finalized JSON body sent to the webhook. It is built once
// per submit attempt, used for exactly one request and then discarded.
type Payload struct {
	Holder         Holder      `json:"titular"`
	Dependents     []Dependent `json:"dependentes"`
	Plan           string      `json:"plano"`
	DependentCount int         `json:"quantidadeDependentes"`
	CustomerRef    string      `json:"customerStripe"`
	Timestamp      string      `json:"timestamp"`
	UserAgent      string      `json:"userAgent"`
	Referrer       string      `json:"referrer"`
	SessionToken   string      `json:"sessionToken"`
}
