package form

import (
	"fmt"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/validator"
)

// ValidateCritical re-validates an assembled payload before it leaves the
// client. It runs independently of any schema validation in the UI layer:
// sanitization can silently turn a value invalid (a document number reduced
// to the wrong digit count, for instance), and those must not reach the
// webhook. All checks run; nothing short-circuits.
//
// The returned errors are ordered: dependent count, then per-dependent
// emails, phones and documents, then the policyholder document. An empty
// result means the payload is accepted.
func ValidateCritical(p Payload, limits Limits) validator.ValidationErrors {
	rules := make([]validator.Rule, 0, 3*len(p.Dependents)+2)

	rules = append(rules, validator.MaxCount("quantidadeDependentes", p.DependentCount, limits.MaxDependents))

	for i, dep := range p.Dependents {
		field := validator.Field("dependentes", i) + ".email"
		rules = append(rules, validator.Email(field, dep.Email, limits.MaxStringLen))
	}

	for i, dep := range p.Dependents {
		field := validator.Field("dependentes", i) + ".telefone"
		rules = append(rules, validator.Phone(field, dep.Phone))
	}

	for i, dep := range p.Dependents {
		field := validator.Field("dependentes", i) + ".numeroDocumento"
		rules = append(rules, documentRule(field, dep.DocumentNumber, dep.DocumentType))
	}

	rules = append(rules, documentRule("titular.numeroDocumento", p.Holder.DocumentNumber, p.Holder.DocumentType))

	return validator.ExtractValidationErrors(validator.Apply(rules...))
}

func documentRule(field, number string, t DocumentType) validator.Rule {
	message := fmt.Sprintf("%s: invalid %s number", field, t)
	return validator.Check(field, message, func() bool {
		return t.ValidNumber(number)
	})
}
