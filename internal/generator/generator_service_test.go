package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func seedPtr(s int64) *int64 { return &s }

func loadBundle(t *testing.T) *refdata.Bundle {
	t.Helper()
	bundle, err := refdata.Load()
	assert.NoError(t, err)
	return bundle
}

func defaultRequest(n int) GenerateRequest {
	return GenerateRequest{
		NEmployees:          n,
		StartDate:           date(2015, 1, 1),
		EndDate:             date(2024, 12, 31),
		Seed:                seedPtr(42),
		IncludePerformance:  true,
		IncludeCompensation: true,
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	ctx := context.Background()

	a, err := svc.Generate(ctx, defaultRequest(200))
	assert.NoError(t, err)
	b, err := svc.Generate(ctx, defaultRequest(200))
	assert.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_WorkerCountDoesNotChangeOutput(t *testing.T) {
	bundle := loadBundle(t)
	ctx := context.Background()

	parallel, err := NewService(bundle, nil).Generate(ctx, defaultRequest(200))
	assert.NoError(t, err)
	sequential, err := NewService(bundle, nil, WithWorkers(1)).Generate(ctx, defaultRequest(200))
	assert.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	ctx := context.Background()

	a, err := svc.Generate(ctx, defaultRequest(100))
	assert.NoError(t, err)

	req := defaultRequest(100)
	req.Seed = seedPtr(43)
	b, err := svc.Generate(ctx, req)
	assert.NoError(t, err)

	assert.NotEqual(t, a.Employees, b.Employees)
}

func TestGenerate_SingleEmployeeIsRoot(t *testing.T) {
	svc := NewService(loadBundle(t), nil)

	ds, err := svc.Generate(context.Background(), defaultRequest(1))
	assert.NoError(t, err)

	assert.Len(t, ds.Employees, 1)
	emp := ds.Employees[0]
	assert.Equal(t, 5, emp.SeniorityLevel)
	assert.Nil(t, emp.ManagerID)
}

func TestGenerate_SingleRootAndManagerSeniority(t *testing.T) {
	svc := NewService(loadBundle(t), nil)

	ds, err := svc.Generate(context.Background(), defaultRequest(300))
	assert.NoError(t, err)

	byID := map[string]dataset.Employee{}
	for _, emp := range ds.Employees {
		byID[emp.EmployeeID] = emp
	}

	roots := 0
	for _, emp := range ds.Employees {
		if emp.ManagerID == nil {
			roots++
			continue
		}
		mgr, ok := byID[*emp.ManagerID]
		assert.True(t, ok, "employee %s has unknown manager %s", emp.EmployeeID, *emp.ManagerID)
		assert.Greater(t, mgr.SeniorityLevel, emp.SeniorityLevel)
		assert.NotEqual(t, emp.EmployeeID, mgr.EmployeeID)
	}
	assert.Equal(t, 1, roots)
}

func TestGenerate_ReferentialIntegrity(t *testing.T) {
	bundle := loadBundle(t)
	svc := NewService(bundle, nil)

	ds, err := svc.Generate(context.Background(), defaultRequest(300))
	assert.NoError(t, err)

	employees := map[string]bool{}
	for _, emp := range ds.Employees {
		employees[emp.EmployeeID] = true
	}
	jobs := map[string]bool{}
	for _, job := range bundle.JobRoles {
		jobs[job.JobID] = true
	}
	orgs := map[string]bool{}
	for _, org := range bundle.OrgUnits {
		orgs[org.OrgID] = true
	}
	locations := map[string]bool{}
	for _, loc := range bundle.Locations {
		locations[loc.LocationID] = true
	}

	for _, emp := range ds.Employees {
		assert.True(t, locations[emp.LocationID])
	}
	for _, a := range ds.JobAssignments {
		assert.True(t, employees[a.EmployeeID])
		assert.True(t, jobs[a.JobID])
	}
	for _, a := range ds.OrgAssignments {
		assert.True(t, employees[a.EmployeeID])
		assert.True(t, orgs[a.OrgID])
	}
	for _, c := range ds.Compensation {
		assert.True(t, employees[c.EmployeeID])
	}
	for _, p := range ds.Performance {
		assert.True(t, employees[p.EmployeeID])
		if p.ManagerID != nil {
			assert.True(t, employees[*p.ManagerID])
		}
	}
}

func TestGenerate_ChainsAreContiguous(t *testing.T) {
	svc := NewService(loadBundle(t), nil)

	ds, err := svc.Generate(context.Background(), defaultRequest(300))
	assert.NoError(t, err)

	jobsByEmp := map[string][]dataset.JobAssignment{}
	for _, a := range ds.JobAssignments {
		jobsByEmp[a.EmployeeID] = append(jobsByEmp[a.EmployeeID], a)
	}
	for id, chain := range jobsByEmp {
		for i := 0; i < len(chain)-1; i++ {
			assert.NotNil(t, chain[i].EndDate, "employee %s record %d", id, i)
			assert.Equal(t, *chain[i].EndDate, chain[i+1].StartDate)
			assert.GreaterOrEqual(t, chain[i+1].SeniorityLevel, chain[i].SeniorityLevel)
		}
		assert.Nil(t, chain[len(chain)-1].EndDate)
	}

	compByEmp := map[string][]dataset.CompensationRecord{}
	for _, c := range ds.Compensation {
		compByEmp[c.EmployeeID] = append(compByEmp[c.EmployeeID], c)
	}
	for id, chain := range compByEmp {
		for i := 0; i < len(chain)-1; i++ {
			assert.NotNil(t, chain[i].EndDate, "employee %s record %d", id, i)
			assert.Equal(t, *chain[i].EndDate, chain[i+1].StartDate)
			assert.True(t, chain[i+1].BaseSalary.GreaterThanOrEqual(chain[i].BaseSalary))
		}
		assert.Nil(t, chain[len(chain)-1].EndDate)
	}
}

func TestGenerate_OneDayWindow(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	req := GenerateRequest{
		NEmployees:          50,
		StartDate:           date(2020, 1, 1),
		EndDate:             date(2020, 1, 2),
		Seed:                seedPtr(42),
		IncludePerformance:  true,
		IncludeCompensation: true,
	}

	ds, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	assert.Len(t, ds.Employees, 50)
	assert.Len(t, ds.JobAssignments, 50)
	assert.Len(t, ds.OrgAssignments, 50)
	assert.Len(t, ds.Compensation, 50)
	assert.Empty(t, ds.Performance)

	for _, emp := range ds.Employees {
		assert.Nil(t, emp.TerminationDate)
		assert.Equal(t, dataset.StatusActive, emp.EmploymentStatus)
	}
	for _, c := range ds.Compensation {
		assert.Equal(t, dataset.ReasonNewHire, c.ChangeReason)
		assert.Nil(t, c.EndDate)
	}
}

func TestGenerate_IncludeFlagsOmitTables(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	req := defaultRequest(20)
	req.IncludePerformance = false
	req.IncludeCompensation = false

	ds, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	assert.Empty(t, ds.Compensation)
	assert.Empty(t, ds.Performance)

	tables := ds.Tables()
	assert.Contains(t, tables, dataset.TableEmployee)
	assert.Contains(t, tables, dataset.TableJobAssignment)
	assert.Contains(t, tables, dataset.TableOrgAssignment)
	assert.NotContains(t, tables, dataset.TableCompensation)
	assert.NotContains(t, tables, dataset.TablePerformance)
}

func TestGenerate_NilSeedStillValid(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	req := defaultRequest(30)
	req.Seed = nil

	ds, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, ds.Employees, 30)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	ctx := context.Background()

	req := defaultRequest(0)
	_, err := svc.Generate(ctx, req)
	assert.Error(t, err)

	req = defaultRequest(10)
	req.StartDate = date(2024, 1, 1)
	req.EndDate = date(2020, 1, 1)
	_, err = svc.Generate(ctx, req)
	assert.Error(t, err)
}

func TestGenerate_LevelDistributionAtScale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large population run")
	}
	svc := NewService(loadBundle(t), nil)
	req := defaultRequest(10000)
	req.IncludePerformance = false
	req.IncludeCompensation = false

	ds, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	byLevel := map[int]int{}
	for _, emp := range ds.Employees {
		byLevel[emp.SeniorityLevel]++
	}
	want := map[int]float64{1: 0.25, 2: 0.30, 3: 0.25, 4: 0.15, 5: 0.05}
	for level, share := range want {
		got := float64(byLevel[level]) / 10000
		assert.InDelta(t, share, got, 0.02, "level %d", level)
	}
}

func TestGenerate_EventDatesInsideWindow(t *testing.T) {
	svc := NewService(loadBundle(t), nil)
	req := defaultRequest(300)

	ds, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	byID := map[string]dataset.Employee{}
	for _, emp := range ds.Employees {
		byID[emp.EmployeeID] = emp
	}

	for _, a := range ds.JobAssignments {
		emp := byID[a.EmployeeID]
		if a.StartDate.Equal(emp.HireDate) {
			continue
		}
		assert.True(t, a.StartDate.After(req.StartDate) || a.StartDate.Equal(req.StartDate))
		assert.True(t, a.StartDate.Before(req.EndDate))
	}

	for _, emp := range ds.Employees {
		if emp.TerminationDate != nil {
			assert.Equal(t, dataset.StatusTerminated, emp.EmploymentStatus)
			assert.False(t, emp.TerminationDate.After(req.EndDate))
		}
	}
}
