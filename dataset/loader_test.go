package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is pinned so derived ages are stable.
var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func rowsFixture() [][]string {
	return [][]string{
		{"Nome Completo", "Data de Nascimento", "Data de Contratação", "Data de Demissão", "Área", "Nível", "Cargo", "Salário Base", "Impostos", "Sexo", "Endereço", "Matrícula"},
		{"Ana Silva", "1990-06-15", "2020-03-01", "", "Sales", "Pleno", "Analista", "5000", "500", "F", "Rua A, 10 - São Paulo - SP", "E-001"},
		{"Bruno Costa", "1985-01-20", "2018-07-15", "2024-11-30", "Sales", "Senior", "Gerente", "R$ 7.000,00", "700", "m", "Av. B, 20 - Rio de Janeiro - RJ", "E-002"},
		{"Carla Souza", "not-a-date", "2026-02-10", "", "Ops", "Junior", "Assistente", "abc", "", "X", "Somewhere abroad", "E-003"},
	}
}

func TestBuildNormalizesAndDerives(t *testing.T) {
	ds, err := build(rowsFixture(), testNow)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	// Canonical columns plus derived ones.
	assert.Contains(t, ds.Columns, "Nome_Completo")
	assert.Contains(t, ds.Columns, "Data_de_Contratacao")
	assert.Contains(t, ds.Columns, ColumnAge)
	assert.Contains(t, ds.Columns, ColumnStatus)

	ana := ds.Employees[0]
	assert.Equal(t, "Ana Silva", ana.FullName)
	require.NotNil(t, ana.BirthDate)
	require.NotNil(t, ana.Age)
	assert.Equal(t, 36, *ana.Age)
	assert.Equal(t, StatusActive, ana.Status)
	assert.Equal(t, GenderFemale, ana.Gender)
	require.True(t, ana.BaseSalary.Valid)
	assert.Equal(t, "5000", ana.BaseSalary.Decimal.String())
	assert.Equal(t, "E-001", ana.Extra["Matricula"])

	bruno := ds.Employees[1]
	assert.Equal(t, StatusTerminated, bruno.Status)
	assert.Equal(t, GenderMale, bruno.Gender)
	require.True(t, bruno.BaseSalary.Valid)
	assert.Equal(t, "7000.00", bruno.BaseSalary.Decimal.String())

	// Per-cell coercion failures degrade to "no value", never an error.
	carla := ds.Employees[2]
	assert.Nil(t, carla.BirthDate)
	assert.Nil(t, carla.Age)
	assert.False(t, carla.BaseSalary.Valid)
	assert.Equal(t, GenderUnknown, carla.Gender)
	assert.Equal(t, StatusActive, carla.Status)
}

func TestBuildCapabilities(t *testing.T) {
	ds, err := build(rowsFixture(), testNow)
	require.NoError(t, err)

	assert.True(t, ds.Caps.HasBirthDate)
	assert.True(t, ds.Caps.HasHireDate)
	assert.True(t, ds.Caps.HasTerminationDate)
	assert.True(t, ds.Caps.HasDepartment)
	assert.True(t, ds.Caps.HasLevel)
	assert.True(t, ds.Caps.HasRole)
	assert.True(t, ds.Caps.HasSalary)
	assert.True(t, ds.Caps.HasCostComponents)
	assert.True(t, ds.Caps.HasGender)
	assert.True(t, ds.Caps.HasAddress)
}

func TestBuildWithoutTerminationColumn(t *testing.T) {
	rows := [][]string{
		{"Nome Completo", "Cargo"},
		{"Ana", "Analista"},
		{"Bruno", "Gerente"},
	}
	ds, err := build(rows, testNow)
	require.NoError(t, err)

	assert.False(t, ds.Caps.HasTerminationDate)
	for _, e := range ds.Employees {
		assert.Equal(t, StatusActive, e.Status)
	}
}

func TestBuildEmptyTable(t *testing.T) {
	_, err := build(nil, testNow)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.csv")
	csvData := "\xEF\xBB\xBFNome Completo,Área,Salário Base\nAna Silva,Sales,\"5000\"\nBruno Costa,Ops,6000\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "Nome_Completo", ds.Columns[0]) // BOM stripped before the header
	assert.Equal(t, "Ana Silva", ds.Employees[0].FullName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadCorruptCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n\"unterminated\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseDateLayouts(t *testing.T) {
	for _, cell := range []string{"2020-03-01", "01/03/2020", "2020-03-01 00:00:00"} {
		got := parseDate(cell)
		require.NotNil(t, got, cell)
		assert.Equal(t, 2020, got.Year(), cell)
		assert.Equal(t, time.March, got.Month(), cell)
	}
	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("soon"))
}

func TestParseMoneyFormats(t *testing.T) {
	cases := map[string]string{
		"5000":        "5000",
		"5000.50":     "5000.50",
		"1.234,56":    "1234.56",
		"R$ 7.000,00": "7000.00",
	}
	for in, want := range cases {
		got := parseMoney(in)
		require.True(t, got.Valid, in)
		assert.Equal(t, want, got.Decimal.String(), in)
	}
	assert.False(t, parseMoney("").Valid)
	assert.False(t, parseMoney("abc").Valid)
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 36, ageAt(birth, testNow))

	// Day before the 365.25-day boundary still counts the lower year.
	justUnder := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, ageAt(justUnder, testNow))
}

func TestTotalMonthlyCost(t *testing.T) {
	ds, err := build(rowsFixture(), testNow)
	require.NoError(t, err)

	ana := ds.Employees[0]
	assert.Equal(t, "5500", ana.TotalMonthlyCost().String())

	carla := ds.Employees[2]
	assert.True(t, carla.TotalMonthlyCost().IsZero())
}
