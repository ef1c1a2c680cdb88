package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/shared/apperror"
)

func validDataset(bundleLocation, bundleJob, bundleOrg string) *dataset.Dataset {
	hire := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	mgr := "EMP000001"
	return &dataset.Dataset{
		Employees: []dataset.Employee{
			{EmployeeID: "EMP000001", SeniorityLevel: 5, LocationID: bundleLocation, HireDate: hire},
			{EmployeeID: "EMP000002", SeniorityLevel: 2, LocationID: bundleLocation, HireDate: hire, ManagerID: &mgr},
		},
		JobAssignments: []dataset.JobAssignment{
			{EmployeeID: "EMP000001", JobID: bundleJob, SeniorityLevel: 5, StartDate: hire},
			{EmployeeID: "EMP000002", JobID: bundleJob, SeniorityLevel: 2, StartDate: hire},
		},
		OrgAssignments: []dataset.OrgAssignment{
			{EmployeeID: "EMP000001", OrgID: bundleOrg, StartDate: hire},
			{EmployeeID: "EMP000002", OrgID: bundleOrg, StartDate: hire},
		},
	}
}

func TestValidate_PassesOnConsistentDataset(t *testing.T) {
	bundle := loadBundle(t)
	ds := validDataset(bundle.Locations[0].LocationID, bundle.JobRoles[0].JobID, bundle.OrgUnits[0].OrgID)

	err := validate(ds, bundle, date(2024, 12, 31))
	assert.NoError(t, err)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	bundle := loadBundle(t)
	ds := validDataset(bundle.Locations[0].LocationID, bundle.JobRoles[0].JobID, bundle.OrgUnits[0].OrgID)

	// Two independent defects: a dangling manager and an unknown job id.
	ghost := "EMP999999"
	ds.Employees[1].ManagerID = &ghost
	ds.JobAssignments[0].JobID = "JOB999"

	err := validate(ds, bundle, date(2024, 12, 31))
	assert.Error(t, err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeDataIntegrity, appErr.Code)

	details, ok := appErr.Details.([]string)
	assert.True(t, ok)
	assert.Len(t, details, 2)
}

func TestValidate_TwoRoots(t *testing.T) {
	bundle := loadBundle(t)
	ds := validDataset(bundle.Locations[0].LocationID, bundle.JobRoles[0].JobID, bundle.OrgUnits[0].OrgID)
	ds.Employees[1].ManagerID = nil

	err := validate(ds, bundle, date(2024, 12, 31))
	assert.Error(t, err)
}

func TestValidate_BrokenChainContiguity(t *testing.T) {
	bundle := loadBundle(t)
	ds := validDataset(bundle.Locations[0].LocationID, bundle.JobRoles[0].JobID, bundle.OrgUnits[0].OrgID)

	gapEnd := date(2021, 6, 30)
	ds.JobAssignments[0].EndDate = &gapEnd
	ds.JobAssignments = append(ds.JobAssignments, dataset.JobAssignment{
		EmployeeID:     "EMP000001",
		JobID:          bundle.JobRoles[0].JobID,
		SeniorityLevel: 5,
		StartDate:      date(2021, 7, 1),
	})

	err := validate(ds, bundle, date(2024, 12, 31))
	assert.Error(t, err)
	assert.Contains(t, integrityViolations(t, err)[0], "contiguity")
}

func integrityViolations(t *testing.T, err error) []string {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details.([]string)
	assert.True(t, ok)
	assert.NotEmpty(t, details)
	return details
}

func TestValidate_DecreasingSalary(t *testing.T) {
	bundle := loadBundle(t)
	ds := validDataset(bundle.Locations[0].LocationID, bundle.JobRoles[0].JobID, bundle.OrgUnits[0].OrgID)
	ds.IncludeCompensation = true

	cut := date(2021, 4, 1)
	ds.Compensation = []dataset.CompensationRecord{
		{EmployeeID: "EMP000001", BaseSalary: decimal.NewFromInt(200000), StartDate: ds.Employees[0].HireDate, EndDate: &cut},
		{EmployeeID: "EMP000001", BaseSalary: decimal.NewFromInt(190000), StartDate: cut},
	}

	err := validate(ds, bundle, date(2024, 12, 31))
	assert.Error(t, err)
	assert.Contains(t, integrityViolations(t, err)[0], "salary")
}
