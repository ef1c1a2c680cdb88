package dataset

import "time"

// Table is the generic tabular container the generation contract returns.
// Cells hold strings, numbers, or nil (SQL-null semantics for open end dates
// and the root manager_id).
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Output table names.
const (
	TableEmployee         = "employee"
	TableJobAssignment    = "employee_job_assignment"
	TableOrgAssignment    = "employee_org_assignment"
	TableCompensation     = "employee_compensation"
	TablePerformance      = "employee_performance"
	TableOrganizationUnit = "organization_unit"
	TableJobRole          = "job_role"
	TableLocation         = "location"
)

const dateLayout = "2006-01-02"

// FormatDate renders a civil date cell.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDatePtr renders a nullable date cell; nil stays nil.
func FormatDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func strPtrCell(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
