// Package demographics samples per-employee identity attributes. It is a pure
// per-row transform over the employee's own random stream, so it is safe to
// run in any order and in parallel.
package demographics

import (
	"fmt"
	"time"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

type Generator struct {
	params    refdata.DemographicsParams
	locations []refdata.Location
}

func New(params refdata.DemographicsParams, locations []refdata.Location) *Generator {
	return &Generator{params: params, locations: locations}
}

// Generate produces the hub row for the employee at slot idx with the given
// seniority level. The hire date never lands after simEnd.
func (g *Generator) Generate(idx, seniorityLevel int, simEnd time.Time, rng *randx.Rand) dataset.Employee {
	band := g.params.AgeBands[seniorityLevel]
	age := rng.IntBetween(band.Min, band.Max)
	gender := g.sampleGender(rng)
	firstName, lastName := g.sampleName(gender, rng)
	hireDate := g.sampleHireDate(age, simEnd, rng)
	birthDate := sampleBirthDate(age, hireDate, rng)
	empType := g.sampleEmploymentType(rng)
	location := randx.Pick(rng, g.locations)

	return dataset.Employee{
		EmployeeID:       EmployeeID(idx),
		FirstName:        firstName,
		LastName:         lastName,
		Gender:           gender,
		BirthDate:        birthDate,
		HireDate:         hireDate,
		EmploymentType:   empType,
		EmploymentStatus: dataset.StatusActive,
		LocationID:       location.LocationID,
		SeniorityLevel:   seniorityLevel,
	}
}

// EmployeeID renders the stable identifier for a slot index.
func EmployeeID(idx int) string {
	return fmt.Sprintf("EMP%06d", idx+1)
}

func (g *Generator) sampleGender(rng *randx.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < g.params.ProbNeutral:
		return "na"
	case roll < g.params.ProbNeutral+g.params.ProbFemale:
		return "female"
	default:
		return "male"
	}
}

func (g *Generator) sampleName(gender string, rng *randx.Rand) (string, string) {
	var pool []string
	switch gender {
	case "female":
		pool = g.params.FemaleNames
	case "male":
		pool = g.params.MaleNames
	default:
		pool = g.params.NeutralNames
	}
	return randx.Pick(rng, pool), randx.Pick(rng, g.params.LastNames)
}

// sampleHireDate derives a hire date from age under the career-start rule:
// the employee entered the workforce around CareerStartAge, so the hire date
// falls uniformly between that career start and simEnd, clamped to the
// configured plausible range.
func (g *Generator) sampleHireDate(age int, simEnd time.Time, rng *randx.Rand) time.Time {
	startYear := simEnd.Year() - age + g.params.CareerStartAge
	if startYear > simEnd.Year() {
		return simEnd
	}
	if startYear < g.params.HireYearMin {
		startYear = g.params.HireYearMin
	}

	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	deltaDays := int(simEnd.Sub(start).Hours() / 24)
	if deltaDays <= 0 {
		return simEnd
	}
	return start.AddDate(0, 0, rng.IntBetween(0, deltaDays))
}

func sampleBirthDate(age int, hireDate time.Time, rng *randx.Rand) time.Time {
	birthYear := hireDate.Year() - age
	month := rng.IntBetween(1, 12)
	maxDay := 31
	switch time.Month(month) {
	case time.February:
		maxDay = 28
	case time.April, time.June, time.September, time.November:
		maxDay = 30
	}
	day := rng.IntBetween(1, maxDay)
	return time.Date(birthYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (g *Generator) sampleEmploymentType(rng *randx.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < g.params.ProbFullTime:
		return "Full-time"
	case roll < g.params.ProbFullTime+g.params.ProbContract:
		return "Contract"
	default:
		return "Part-time"
	}
}
