package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// NORMALIZATION — Column canonicalization and value cleanup
// ============================================================================
// Canonical form: accents stripped (NFD decompose, drop combining marks),
// whitespace collapsed to underscores, every other non-alphanumeric rune
// removed. A presence check against a canonical name is then reliable no
// matter how the source spreadsheet formatted its headers.
// ============================================================================

// CanonicalColumn converts a raw header into its canonical form:
// "Data de Contratação" → "Data_de_Contratacao".
func CanonicalColumn(name string) string {
	s := stripDiacritics(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('_')
		}
		// Every other rune is dropped.
	}
	return b.String()
}

// stripDiacritics removes accents by decomposing to NFD form and dropping
// combining marks (the Mn category).
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeGender maps free-text gender input to the closed Gender set.
func NormalizeGender(raw string) Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// ============================================================================
// FIELD BINDING — canonical header → known Employee field
// ============================================================================

// fieldKey identifies a bound Employee field.
type fieldKey string

const (
	fieldFullName           fieldKey = "full_name"
	fieldBirthDate          fieldKey = "birth_date"
	fieldHireDate           fieldKey = "hire_date"
	fieldTerminationDate    fieldKey = "termination_date"
	fieldDepartment         fieldKey = "department"
	fieldLevel              fieldKey = "level"
	fieldRole               fieldKey = "role"
	fieldBaseSalary         fieldKey = "base_salary"
	fieldTaxes              fieldKey = "taxes"
	fieldBenefits           fieldKey = "benefits"
	fieldTransportAllowance fieldKey = "transport_allowance"
	fieldMealAllowance      fieldKey = "meal_allowance"
	fieldGender             fieldKey = "gender"
	fieldAddress            fieldKey = "address"
)

// fieldAliases maps lowercased canonical header names to Employee fields.
// Covers the Portuguese headers of the reference payroll base and their
// English equivalents.
var fieldAliases = map[string]fieldKey{
	"nome_completo": fieldFullName,
	"nome":          fieldFullName,
	"full_name":     fieldFullName,

	"data_de_nascimento": fieldBirthDate,
	"data_nascimento":    fieldBirthDate,
	"birth_date":         fieldBirthDate,

	"data_de_contratacao": fieldHireDate,
	"data_de_admissao":    fieldHireDate,
	"hire_date":           fieldHireDate,

	"data_de_demissao": fieldTerminationDate,
	"termination_date": fieldTerminationDate,

	"area":         fieldDepartment,
	"departamento": fieldDepartment,
	"department":   fieldDepartment,

	"nivel": fieldLevel,
	"level": fieldLevel,

	"cargo": fieldRole,
	"role":  fieldRole,

	"salario_base": fieldBaseSalary,
	"base_salary":  fieldBaseSalary,

	"impostos": fieldTaxes,
	"taxes":    fieldTaxes,

	"beneficios": fieldBenefits,
	"benefits":   fieldBenefits,

	"vt":                  fieldTransportAllowance,
	"vale_transporte":     fieldTransportAllowance,
	"transport_allowance": fieldTransportAllowance,

	"vr":             fieldMealAllowance,
	"vale_refeicao":  fieldMealAllowance,
	"meal_allowance": fieldMealAllowance,

	"sexo":   fieldGender,
	"genero": fieldGender,
	"gender": fieldGender,

	"endereco": fieldAddress,
	"address":  fieldAddress,
}

// bindField resolves a canonical column name to a known field, if any.
func bindField(canonical string) (fieldKey, bool) {
	key, ok := fieldAliases[strings.ToLower(canonical)]
	return key, ok
}
