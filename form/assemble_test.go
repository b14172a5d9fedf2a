package form_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaoLuiz92/dependente-plan-form/form"
)

func frozenEnv() form.Env {
	return form.Env{
		Now:       func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) },
		NewToken:  func() string { return "stubsessiontoken0001" },
		UserAgent: "test-agent/1.0",
		Referrer:  "https://example.com/plans",
	}
}

func TestAssembleSanitizesEveryField(t *testing.T) {
	t.Parallel()

	in := form.Input{
		Holder: form.RawHolder{
			DocumentType:   0,
			DocumentNumber: "123.456.789-01",
			Gender:         "invalid",
		},
		Dependents: []form.RawPerson{
			{
				Name:           "  <b>Maria</b> Silva  ",
				Phone:          "(11) 98765-4321",
				Country:        "US",
				Email:          "  Maria.Silva@Example.COM ",
				Gender:         "female",
				DocumentType:   1,
				DocumentNumber: "123-45-6789",
			},
		},
		Plan:           "<script>Plano Premium</script>",
		CustomerRef:    "cus_123<>",
		DependentCount: 1,
	}

	p := form.Assemble(in, frozenEnv(), form.DefaultLimits())

	assert.Equal(t, form.DocumentCPF, p.Holder.DocumentType)
	assert.Equal(t, "12345678901", p.Holder.DocumentNumber)
	assert.Equal(t, form.GenderMale, p.Holder.Gender)

	require.Len(t, p.Dependents, 1)
	dep := p.Dependents[0]
	assert.Equal(t, "bMaria/b Silva", dep.Name)
	assert.Equal(t, "11987654321", dep.Phone)
	assert.Equal(t, "+1", dep.CountryCode)
	assert.Equal(t, "maria.silva@example.com", dep.Email)
	assert.Equal(t, form.GenderFemale, dep.Gender)
	assert.Equal(t, form.DocumentSSN, dep.DocumentType)
	assert.Equal(t, "123456789", dep.DocumentNumber)

	assert.Equal(t, "scriptPlano Premium/script", p.Plan)
	assert.Equal(t, "cus_123", p.CustomerRef)
	assert.Equal(t, 1, p.DependentCount)
	assert.Equal(t, "2025-01-01T12:00:00.000Z", p.Timestamp)
	assert.Equal(t, "test-agent/1.0", p.UserAgent)
	assert.Equal(t, "https://example.com/plans", p.Referrer)
	assert.Equal(t, "stubsessiontoken0001", p.SessionToken)
}

func TestAssembleDefaults(t *testing.T) {
	t.Parallel()

	in := form.Input{
		Holder: form.RawHolder{DocumentType: -2, DocumentNumber: "12345678901"},
		Dependents: []form.RawPerson{
			{Country: "XX", DocumentType: 99},
		},
		DependentCount: 1,
	}

	p := form.Assemble(in, frozenEnv(), form.DefaultLimits())

	assert.Equal(t, form.DocumentCPF, p.Holder.DocumentType)
	assert.Equal(t, form.GenderMale, p.Holder.Gender)

	require.Len(t, p.Dependents, 1)
	assert.Equal(t, "+55", p.Dependents[0].CountryCode)
	assert.Equal(t, form.GenderMale, p.Dependents[0].Gender)
	assert.Equal(t, form.DocumentPassport, p.Dependents[0].DocumentType)
}

func TestAssembleClampsCountAndClientInfo(t *testing.T) {
	t.Parallel()

	env := frozenEnv()
	env.UserAgent = strings.Repeat("u", 300)
	env.Referrer = strings.Repeat("r", 300)

	p := form.Assemble(form.Input{DependentCount: 99}, env, form.DefaultLimits())
	assert.Equal(t, 20, p.DependentCount)
	assert.Len(t, p.UserAgent, 200)
	assert.Len(t, p.Referrer, 200)

	p = form.Assemble(form.Input{DependentCount: -3}, env, form.DefaultLimits())
	assert.Equal(t, 0, p.DependentCount)
}

func TestAssembleDeterministicUnderFrozenEnv(t *testing.T) {
	t.Parallel()

	in := form.Input{
		Holder: form.RawHolder{DocumentNumber: "12345678901", Gender: "male"},
		Dependents: []form.RawPerson{
			{
				Name:           "João Souza",
				Phone:          "11987654321",
				Country:        "BR",
				Email:          "joao@example.com",
				Gender:         "male",
				DocumentNumber: "98765432109",
			},
		},
		Plan:           "Plano Essencial",
		DependentCount: 1,
	}

	first, err := json.Marshal(form.Assemble(in, frozenEnv(), form.DefaultLimits()))
	require.NoError(t, err)

	second, err := json.Marshal(form.Assemble(in, frozenEnv(), form.DefaultLimits()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAssembleEmptyDependentsMarshalsAsArray(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(form.Assemble(form.Input{}, frozenEnv(), form.DefaultLimits()))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"dependentes":[]`)
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	deps := []form.RawPerson{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	}

	trimmed := form.Reconcile(deps, 2)
	require.Len(t, trimmed, 2)
	assert.Equal(t, "A", trimmed[0].Name)
	assert.Equal(t, "B", trimmed[1].Name)

	extended := form.Reconcile(deps, 5)
	require.Len(t, extended, 5)
	assert.Equal(t, "C", extended[2].Name)
	assert.Equal(t, "BR", extended[3].Country)
	assert.Equal(t, "male", extended[4].Gender)

	assert.Empty(t, form.Reconcile(deps, 0))
	assert.Empty(t, form.Reconcile(nil, -1))
}

func TestFormatPhoneInput(t *testing.T) {
	t.Parallel()

	limits := form.DefaultLimits()
	assert.Equal(t, "11987654321", form.FormatPhoneInput("(11) 98765-4321 ext 9", limits))
}

func TestFormatDocumentInput(t *testing.T) {
	t.Parallel()

	limits := form.DefaultLimits()

	assert.Equal(t, "12345678901", form.FormatDocumentInput("123.456.789-012", form.DocumentCPF, limits))
	assert.Equal(t, "123456789", form.FormatDocumentInput("123-45-67890", form.DocumentSSN, limits))
	assert.Equal(t, "AB1234567890123456789"[:20], form.FormatDocumentInput("AB1234567890123456789", form.DocumentPassport, limits))
	assert.Equal(t, "12345", form.FormatDocumentInput("12-345a", form.DocumentType(9), limits))
}
