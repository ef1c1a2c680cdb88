package refdata

// Reference catalogs are loaded once before generation and never mutated.
// The gorm tags let the store persist catalog tables alongside generated ones.

type OrgUnit struct {
	OrgID        string  `gorm:"column:org_id;primaryKey"`
	OrgName      string  `gorm:"column:org_name"`
	ParentOrgID  *string `gorm:"column:parent_org_id"`
	CostCenter   string  `gorm:"column:cost_center"`
	BusinessUnit string  `gorm:"column:business_unit"`
}

func (OrgUnit) TableName() string { return "organization_unit" }

type JobRole struct {
	JobID          string `gorm:"column:job_id;primaryKey"`
	JobTitle       string `gorm:"column:job_title"`
	JobFamily      string `gorm:"column:job_family"`
	JobLevel       string `gorm:"column:job_level"`
	SeniorityLevel int    `gorm:"column:seniority_level"`
}

func (JobRole) TableName() string { return "job_role" }

type Location struct {
	LocationID string  `gorm:"column:location_id;primaryKey"`
	Region     string  `gorm:"column:region"`
	Latitude   float64 `gorm:"column:latitude"`
	Longitude  float64 `gorm:"column:longitude"`
}

func (Location) TableName() string { return "location" }

// BusinessUnitForFamily maps a job family to the business unit its orgs must
// belong to. Unknown families fall back to Corporate.
func BusinessUnitForFamily(family string) string {
	switch family {
	case "Engineering", "Sales":
		return family
	default:
		return "Corporate"
	}
}
