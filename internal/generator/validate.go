package generator

import (
	"fmt"
	"sort"
	"time"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/apperror"
)

// validate is the defensive post-generation pass. It should never fire: any
// violation it reports is a logic defect, not bad input. All violations are
// collected into a single DataIntegrityError.
func validate(ds *dataset.Dataset, bundle *refdata.Bundle, windowEnd time.Time) error {
	var violations []string
	report := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	empLevel := make(map[string]int, len(ds.Employees))
	for _, e := range ds.Employees {
		empLevel[e.EmployeeID] = e.SeniorityLevel
	}
	jobIDs := make(map[string]bool, len(bundle.JobRoles))
	for _, j := range bundle.JobRoles {
		jobIDs[j.JobID] = true
	}
	orgIDs := make(map[string]bool, len(bundle.OrgUnits))
	for _, o := range bundle.OrgUnits {
		orgIDs[o.OrgID] = true
	}
	locationIDs := make(map[string]bool, len(bundle.Locations))
	for _, l := range bundle.Locations {
		locationIDs[l.LocationID] = true
	}

	validateHierarchy(ds, empLevel, report)

	for _, a := range ds.JobAssignments {
		if _, ok := empLevel[a.EmployeeID]; !ok {
			report("job assignment references unknown employee %s", a.EmployeeID)
		}
		if !jobIDs[a.JobID] {
			report("job assignment for %s references unknown job %s", a.EmployeeID, a.JobID)
		}
	}
	for _, a := range ds.OrgAssignments {
		if _, ok := empLevel[a.EmployeeID]; !ok {
			report("org assignment references unknown employee %s", a.EmployeeID)
		}
		if !orgIDs[a.OrgID] {
			report("org assignment for %s references unknown org %s", a.EmployeeID, a.OrgID)
		}
	}
	for _, e := range ds.Employees {
		if !locationIDs[e.LocationID] {
			report("employee %s references unknown location %s", e.EmployeeID, e.LocationID)
		}
	}

	validateJobChains(ds, windowEnd, report)
	validateOrgChains(ds, windowEnd, report)
	if ds.IncludeCompensation {
		validateCompensationChains(ds, bundle, windowEnd, report)
	}
	if ds.IncludePerformance {
		for _, p := range ds.Performance {
			if _, ok := empLevel[p.EmployeeID]; !ok {
				report("performance review references unknown employee %s", p.EmployeeID)
			}
			if p.ManagerID != nil {
				if _, ok := empLevel[*p.ManagerID]; !ok {
					report("performance review for %s references unknown manager %s", p.EmployeeID, *p.ManagerID)
				}
			}
		}
	}

	if len(violations) > 0 {
		return apperror.DataIntegrity(violations)
	}
	return nil
}

func validateHierarchy(ds *dataset.Dataset, empLevel map[string]int, report func(string, ...any)) {
	var roots []string
	maxLevel := 0
	for _, e := range ds.Employees {
		if e.SeniorityLevel > maxLevel {
			maxLevel = e.SeniorityLevel
		}
	}
	for _, e := range ds.Employees {
		if e.ManagerID == nil {
			roots = append(roots, e.EmployeeID)
			if e.SeniorityLevel != maxLevel {
				report("root employee %s has level %d, below maximum %d", e.EmployeeID, e.SeniorityLevel, maxLevel)
			}
			continue
		}
		mgrLevel, ok := empLevel[*e.ManagerID]
		if !ok {
			report("employee %s has unknown manager %s", e.EmployeeID, *e.ManagerID)
			continue
		}
		if *e.ManagerID == e.EmployeeID {
			report("employee %s reports to themselves", e.EmployeeID)
		}
		if mgrLevel <= e.SeniorityLevel {
			report("employee %s (level %d) has manager %s of level %d",
				e.EmployeeID, e.SeniorityLevel, *e.ManagerID, mgrLevel)
		}
	}
	if len(roots) != 1 {
		report("expected exactly 1 root employee, found %d", len(roots))
	}
}

// chainSpan is the common shape of a time-variant record for chain checks.
type chainSpan struct {
	start time.Time
	end   *time.Time
}

func validateChain(track, employeeID string, spans []chainSpan, windowEnd time.Time, report func(string, ...any)) {
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	open := 0
	for i, span := range spans {
		if span.end == nil {
			open++
			if i != len(spans)-1 {
				report("%s chain for %s has an open record before the last", track, employeeID)
			}
			if span.start.After(windowEnd) {
				report("%s chain for %s has an open record starting after the window end", track, employeeID)
			}
			continue
		}
		if i == len(spans)-1 {
			continue
		}
		if !span.end.Equal(spans[i+1].start) {
			report("%s chain for %s breaks contiguity at %s", track, employeeID, span.end.Format("2006-01-02"))
		}
	}
	if open != 1 {
		report("%s chain for %s has %d open records, want 1", track, employeeID, open)
	}
}

func validateJobChains(ds *dataset.Dataset, windowEnd time.Time, report func(string, ...any)) {
	byEmp := make(map[string][]dataset.JobAssignment)
	for _, a := range ds.JobAssignments {
		byEmp[a.EmployeeID] = append(byEmp[a.EmployeeID], a)
	}
	for empID, chain := range byEmp {
		sort.SliceStable(chain, func(i, j int) bool { return chain[i].StartDate.Before(chain[j].StartDate) })
		spans := make([]chainSpan, len(chain))
		for i, a := range chain {
			spans[i] = chainSpan{start: a.StartDate, end: a.EndDate}
			if i > 0 && a.SeniorityLevel < chain[i-1].SeniorityLevel {
				report("job chain for %s decreases seniority at %s", empID, a.StartDate.Format("2006-01-02"))
			}
		}
		validateChain("job", empID, spans, windowEnd, report)
	}
}

func validateOrgChains(ds *dataset.Dataset, windowEnd time.Time, report func(string, ...any)) {
	byEmp := make(map[string][]chainSpan)
	for _, a := range ds.OrgAssignments {
		byEmp[a.EmployeeID] = append(byEmp[a.EmployeeID], chainSpan{start: a.StartDate, end: a.EndDate})
	}
	for empID, spans := range byEmp {
		validateChain("org", empID, spans, windowEnd, report)
	}
}

func validateCompensationChains(ds *dataset.Dataset, bundle *refdata.Bundle, windowEnd time.Time, report func(string, ...any)) {
	byEmp := make(map[string][]dataset.CompensationRecord)
	for _, c := range ds.Compensation {
		byEmp[c.EmployeeID] = append(byEmp[c.EmployeeID], c)
	}
	for empID, chain := range byEmp {
		sort.SliceStable(chain, func(i, j int) bool { return chain[i].StartDate.Before(chain[j].StartDate) })
		spans := make([]chainSpan, len(chain))
		for i, c := range chain {
			spans[i] = chainSpan{start: c.StartDate, end: c.EndDate}
			if i > 0 && c.BaseSalary.LessThan(chain[i-1].BaseSalary) {
				report("compensation chain for %s decreases base salary at %s", empID, c.StartDate.Format("2006-01-02"))
			}
		}
		validateChain("compensation", empID, spans, windowEnd, report)
	}
}
