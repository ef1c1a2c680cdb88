package demographics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

func testParams() refdata.DemographicsParams {
	return refdata.DemographicsParams{
		AgeBands: map[int]refdata.AgeRange{
			1: {Min: 21, Max: 40},
			2: {Min: 22, Max: 45},
			3: {Min: 30, Max: 60},
			4: {Min: 40, Max: 65},
			5: {Min: 45, Max: 65},
		},
		ProbNeutral:    0.02,
		ProbFemale:     0.46,
		ProbFullTime:   0.70,
		ProbContract:   0.10,
		CareerStartAge: 21,
		HireYearMin:    1985,
		FemaleNames:    []string{"Alice", "Brenda"},
		MaleNames:      []string{"Adam", "Bruno"},
		NeutralNames:   []string{"Alex", "Casey"},
		LastNames:      []string{"Anderson", "Brown"},
	}
}

func testLocations() []refdata.Location {
	return []refdata.Location{
		{LocationID: "LOC001", Region: "EMEA"},
		{LocationID: "LOC002", Region: "AMER"},
	}
}

func TestEmployeeID_Format(t *testing.T) {
	assert.Equal(t, "EMP000001", EmployeeID(0))
	assert.Equal(t, "EMP000042", EmployeeID(41))
	assert.Equal(t, "EMP010000", EmployeeID(9999))
}

func TestGenerate_FieldsPopulated(t *testing.T) {
	gen := New(testParams(), testLocations())
	simEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	emp := gen.Generate(3, 2, simEnd, randx.ForEmployee(42, 3))

	assert.Equal(t, "EMP000004", emp.EmployeeID)
	assert.NotEmpty(t, emp.FirstName)
	assert.NotEmpty(t, emp.LastName)
	assert.Contains(t, []string{"female", "male", "na"}, emp.Gender)
	assert.Contains(t, []string{"Full-time", "Part-time", "Contract"}, emp.EmploymentType)
	assert.Equal(t, "Active", emp.EmploymentStatus)
	assert.Equal(t, 2, emp.SeniorityLevel)
	assert.Nil(t, emp.TerminationDate)
	assert.Nil(t, emp.ManagerID)
	assert.Contains(t, []string{"LOC001", "LOC002"}, emp.LocationID)
}

func TestGenerate_HireDateNeverAfterWindowEnd(t *testing.T) {
	gen := New(testParams(), testLocations())
	simEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for idx := 0; idx < 500; idx++ {
		emp := gen.Generate(idx, 1+idx%5, simEnd, randx.ForEmployee(7, idx))
		assert.False(t, emp.HireDate.After(simEnd), "employee %d hired %s", idx, emp.HireDate)
		assert.GreaterOrEqual(t, emp.HireDate.Year(), 1985)
	}
}

func TestGenerate_BirthDateBeforeHireDate(t *testing.T) {
	gen := New(testParams(), testLocations())
	simEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for idx := 0; idx < 200; idx++ {
		emp := gen.Generate(idx, 1+idx%5, simEnd, randx.ForEmployee(3, idx))
		assert.True(t, emp.BirthDate.Before(emp.HireDate),
			"employee %d born %s hired %s", idx, emp.BirthDate, emp.HireDate)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := New(testParams(), testLocations())
	simEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	a := gen.Generate(12, 3, simEnd, randx.ForEmployee(42, 12))
	b := gen.Generate(12, 3, simEnd, randx.ForEmployee(42, 12))
	assert.Equal(t, a, b)
}

func TestGenerate_NameMatchesGenderPool(t *testing.T) {
	gen := New(testParams(), testLocations())
	simEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for idx := 0; idx < 300; idx++ {
		emp := gen.Generate(idx, 1, simEnd, randx.ForEmployee(9, idx))
		switch emp.Gender {
		case "female":
			assert.Contains(t, testParams().FemaleNames, emp.FirstName)
		case "male":
			assert.Contains(t, testParams().MaleNames, emp.FirstName)
		default:
			assert.Contains(t, testParams().NeutralNames, emp.FirstName)
		}
	}
}
