// Package dataset holds the generated row types and the tabular containers
// returned to callers. Rows accumulate per employee and each table is
// assembled exactly once; nothing here mutates after assembly.
package dataset

import (
	"go-hrgen/internal/refdata"
)

// Dataset is the complete generation result. Compensation and Performance are
// nil when the request excluded them, and their tables are then absent from
// Tables() entirely.
type Dataset struct {
	Employees      []Employee
	JobAssignments []JobAssignment
	OrgAssignments []OrgAssignment
	Compensation   []CompensationRecord
	Performance    []PerformanceReview

	OrgUnits  []refdata.OrgUnit
	JobRoles  []refdata.JobRole
	Locations []refdata.Location

	IncludeCompensation bool
	IncludePerformance  bool
}

// Tables assembles the name-to-table mapping of the generation contract.
func (d *Dataset) Tables() map[string]*Table {
	tables := map[string]*Table{
		TableEmployee:         d.employeeTable(),
		TableJobAssignment:    d.jobAssignmentTable(),
		TableOrgAssignment:    d.orgAssignmentTable(),
		TableOrganizationUnit: d.orgUnitTable(),
		TableJobRole:          d.jobRoleTable(),
		TableLocation:         d.locationTable(),
	}
	if d.IncludeCompensation {
		tables[TableCompensation] = d.compensationTable()
	}
	if d.IncludePerformance {
		tables[TablePerformance] = d.performanceTable()
	}
	return tables
}

func (d *Dataset) employeeTable() *Table {
	t := &Table{
		Name: TableEmployee,
		Columns: []string{
			"employee_id", "first_name", "last_name", "gender", "birth_date",
			"hire_date", "termination_date", "employment_type", "employment_status",
			"location_id", "seniority_level", "manager_id",
		},
		Rows: make([][]any, 0, len(d.Employees)),
	}
	for _, e := range d.Employees {
		t.Rows = append(t.Rows, []any{
			e.EmployeeID, e.FirstName, e.LastName, e.Gender, FormatDate(e.BirthDate),
			FormatDate(e.HireDate), FormatDatePtr(e.TerminationDate), e.EmploymentType,
			e.EmploymentStatus, e.LocationID, e.SeniorityLevel, strPtrCell(e.ManagerID),
		})
	}
	return t
}

func (d *Dataset) jobAssignmentTable() *Table {
	t := &Table{
		Name: TableJobAssignment,
		Columns: []string{
			"employee_id", "job_id", "job_title", "job_family", "job_level",
			"seniority_level", "start_date", "end_date",
		},
		Rows: make([][]any, 0, len(d.JobAssignments)),
	}
	for _, a := range d.JobAssignments {
		t.Rows = append(t.Rows, []any{
			a.EmployeeID, a.JobID, a.JobTitle, a.JobFamily, a.JobLevel,
			a.SeniorityLevel, FormatDate(a.StartDate), FormatDatePtr(a.EndDate),
		})
	}
	return t
}

func (d *Dataset) orgAssignmentTable() *Table {
	t := &Table{
		Name: TableOrgAssignment,
		Columns: []string{
			"employee_id", "org_id", "org_name", "cost_center", "business_unit",
			"start_date", "end_date",
		},
		Rows: make([][]any, 0, len(d.OrgAssignments)),
	}
	for _, a := range d.OrgAssignments {
		t.Rows = append(t.Rows, []any{
			a.EmployeeID, a.OrgID, a.OrgName, a.CostCenter, a.BusinessUnit,
			FormatDate(a.StartDate), FormatDatePtr(a.EndDate),
		})
	}
	return t
}

func (d *Dataset) compensationTable() *Table {
	t := &Table{
		Name: TableCompensation,
		Columns: []string{
			"employee_id", "base_salary", "bonus_target_pct", "currency",
			"start_date", "end_date", "change_reason",
		},
		Rows: make([][]any, 0, len(d.Compensation)),
	}
	for _, c := range d.Compensation {
		t.Rows = append(t.Rows, []any{
			c.EmployeeID, c.BaseSalary.StringFixed(2), c.BonusTargetPct, c.Currency,
			FormatDate(c.StartDate), FormatDatePtr(c.EndDate), c.ChangeReason,
		})
	}
	return t
}

func (d *Dataset) performanceTable() *Table {
	t := &Table{
		Name: TablePerformance,
		Columns: []string{
			"employee_id", "review_period_year", "review_date", "rating",
			"rating_label", "manager_id",
		},
		Rows: make([][]any, 0, len(d.Performance)),
	}
	for _, p := range d.Performance {
		t.Rows = append(t.Rows, []any{
			p.EmployeeID, p.ReviewPeriodYear, FormatDate(p.ReviewDate), p.Rating,
			p.RatingLabel, strPtrCell(p.ManagerID),
		})
	}
	return t
}

func (d *Dataset) orgUnitTable() *Table {
	t := &Table{
		Name:    TableOrganizationUnit,
		Columns: []string{"org_id", "org_name", "parent_org_id", "cost_center", "business_unit"},
		Rows:    make([][]any, 0, len(d.OrgUnits)),
	}
	for _, o := range d.OrgUnits {
		t.Rows = append(t.Rows, []any{
			o.OrgID, o.OrgName, strPtrCell(o.ParentOrgID), o.CostCenter, o.BusinessUnit,
		})
	}
	return t
}

func (d *Dataset) jobRoleTable() *Table {
	t := &Table{
		Name:    TableJobRole,
		Columns: []string{"job_id", "job_title", "job_family", "job_level", "seniority_level"},
		Rows:    make([][]any, 0, len(d.JobRoles)),
	}
	for _, j := range d.JobRoles {
		t.Rows = append(t.Rows, []any{
			j.JobID, j.JobTitle, j.JobFamily, j.JobLevel, j.SeniorityLevel,
		})
	}
	return t
}

func (d *Dataset) locationTable() *Table {
	t := &Table{
		Name:    TableLocation,
		Columns: []string{"location_id", "region", "latitude", "longitude"},
		Rows:    make([][]any, 0, len(d.Locations)),
	}
	for _, l := range d.Locations {
		t.Rows = append(t.Rows, []any{l.LocationID, l.Region, l.Latitude, l.Longitude})
	}
	return t
}
