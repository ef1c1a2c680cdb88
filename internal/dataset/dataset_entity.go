package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the hub table row. Owned by the hierarchy/demographics phases at
// creation time, read-only for every downstream component.
type Employee struct {
	EmployeeID       string     `gorm:"column:employee_id;primaryKey"`
	FirstName        string     `gorm:"column:first_name"`
	LastName         string     `gorm:"column:last_name"`
	Gender           string     `gorm:"column:gender"`
	BirthDate        time.Time  `gorm:"column:birth_date"`
	HireDate         time.Time  `gorm:"column:hire_date"`
	TerminationDate  *time.Time `gorm:"column:termination_date"`
	EmploymentType   string     `gorm:"column:employment_type"`
	EmploymentStatus string     `gorm:"column:employment_status"`
	LocationID       string     `gorm:"column:location_id"`
	SeniorityLevel   int        `gorm:"column:seniority_level"`
	ManagerID        *string    `gorm:"column:manager_id"`
}

func (Employee) TableName() string { return "employee" }

// JobAssignment is a time-variant satellite row valid over [StartDate, EndDate).
// A nil EndDate means currently in force.
type JobAssignment struct {
	EmployeeID     string     `gorm:"column:employee_id"`
	JobID          string     `gorm:"column:job_id"`
	JobTitle       string     `gorm:"column:job_title"`
	JobFamily      string     `gorm:"column:job_family"`
	JobLevel       string     `gorm:"column:job_level"`
	SeniorityLevel int        `gorm:"column:seniority_level"`
	StartDate      time.Time  `gorm:"column:start_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
}

func (JobAssignment) TableName() string { return "employee_job_assignment" }

type OrgAssignment struct {
	EmployeeID   string     `gorm:"column:employee_id"`
	OrgID        string     `gorm:"column:org_id"`
	OrgName      string     `gorm:"column:org_name"`
	CostCenter   string     `gorm:"column:cost_center"`
	BusinessUnit string     `gorm:"column:business_unit"`
	StartDate    time.Time  `gorm:"column:start_date"`
	EndDate      *time.Time `gorm:"column:end_date"`
}

func (OrgAssignment) TableName() string { return "employee_org_assignment" }

type CompensationRecord struct {
	EmployeeID     string          `gorm:"column:employee_id"`
	BaseSalary     decimal.Decimal `gorm:"column:base_salary;type:numeric(12,2)"`
	BonusTargetPct float64         `gorm:"column:bonus_target_pct"`
	Currency       string          `gorm:"column:currency"`
	StartDate      time.Time       `gorm:"column:start_date"`
	EndDate        *time.Time      `gorm:"column:end_date"`
	ChangeReason   string          `gorm:"column:change_reason"`
}

func (CompensationRecord) TableName() string { return "employee_compensation" }

type PerformanceReview struct {
	EmployeeID       string    `gorm:"column:employee_id"`
	ReviewPeriodYear int       `gorm:"column:review_period_year"`
	ReviewDate       time.Time `gorm:"column:review_date"`
	Rating           int       `gorm:"column:rating"`
	RatingLabel      string    `gorm:"column:rating_label"`
	ManagerID        *string   `gorm:"column:manager_id"`
}

func (PerformanceReview) TableName() string { return "employee_performance" }

// Change reasons on compensation records.
const (
	ReasonNewHire     = "New Hire"
	ReasonAnnualMerit = "Annual Merit"
	ReasonPromotion   = "Promotion"
)

// Employment statuses on the hub table.
const (
	StatusActive     = "Active"
	StatusTerminated = "Terminated"
)
