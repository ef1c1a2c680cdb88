package refdata

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/params.yaml data/org_data.csv data/job_data.csv data/location_data.csv
var dataFS embed.FS

// Bundle is the full read-only reference data set passed into generation.
type Bundle struct {
	Params    Params
	OrgUnits  []OrgUnit
	JobRoles  []JobRole
	Locations []Location
}

// Load reads and validates the bundled reference data. File-level failures are
// propagated unchanged; only semantic violations become configuration errors.
func Load() (*Bundle, error) {
	raw, err := dataFS.ReadFile("data/params.yaml")
	if err != nil {
		return nil, err
	}

	var params Params
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	orgs, err := loadOrgUnits()
	if err != nil {
		return nil, err
	}
	jobs, err := loadJobRoles()
	if err != nil {
		return nil, err
	}
	locations, err := loadLocations()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Params:    params,
		OrgUnits:  orgs,
		JobRoles:  jobs,
		Locations: locations,
	}, nil
}

func openCSV(name string) (*csv.Reader, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(bytes.NewReader(raw))
	r.TrimLeadingSpace = true
	return r, nil
}

func headerIndex(r *csv.Reader, required []string) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header")
		}
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, req := range required {
		if _, ok := idx[req]; !ok {
			return nil, fmt.Errorf("missing required header column: %s", req)
		}
	}
	return idx, nil
}

func loadOrgUnits() ([]OrgUnit, error) {
	r, err := openCSV("data/org_data.csv")
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(r, []string{"org_id", "org_name", "parent_org_id", "cost_center", "business_unit"})
	if err != nil {
		return nil, err
	}

	var orgs []OrgUnit
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		org := OrgUnit{
			OrgID:        rec[idx["org_id"]],
			OrgName:      rec[idx["org_name"]],
			CostCenter:   rec[idx["cost_center"]],
			BusinessUnit: rec[idx["business_unit"]],
		}
		if parent := rec[idx["parent_org_id"]]; parent != "" {
			org.ParentOrgID = &parent
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func loadJobRoles() ([]JobRole, error) {
	r, err := openCSV("data/job_data.csv")
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(r, []string{"job_id", "job_title", "job_family", "job_level", "seniority_level"})
	if err != nil {
		return nil, err
	}

	var jobs []JobRole
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		level, err := strconv.Atoi(rec[idx["seniority_level"]])
		if err != nil {
			return nil, fmt.Errorf("job %s: invalid seniority_level: %w", rec[idx["job_id"]], err)
		}
		jobs = append(jobs, JobRole{
			JobID:          rec[idx["job_id"]],
			JobTitle:       rec[idx["job_title"]],
			JobFamily:      rec[idx["job_family"]],
			JobLevel:       rec[idx["job_level"]],
			SeniorityLevel: level,
		})
	}
	return jobs, nil
}

func loadLocations() ([]Location, error) {
	r, err := openCSV("data/location_data.csv")
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(r, []string{"location_id", "region", "latitude", "longitude"})
	if err != nil {
		return nil, err
	}

	var locations []Location
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lat, err := strconv.ParseFloat(rec[idx["latitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("location %s: invalid latitude: %w", rec[idx["location_id"]], err)
		}
		lon, err := strconv.ParseFloat(rec[idx["longitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("location %s: invalid longitude: %w", rec[idx["location_id"]], err)
		}
		locations = append(locations, Location{
			LocationID: rec[idx["location_id"]],
			Region:     rec[idx["region"]],
			Latitude:   lat,
			Longitude:  lon,
		})
	}
	return locations, nil
}
