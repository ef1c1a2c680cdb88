// Package assignment turns career events into chained job-assignment and
// org-assignment records, keeping job family and org business unit aligned.
package assignment

import (
	"sort"
	"time"

	"go-hrgen/internal/career"
	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/apperror"
	"go-hrgen/internal/shared/randx"
)

type Simulator struct {
	jobsByLevel map[int][]refdata.JobRole
	orgsByUnit  map[string][]refdata.OrgUnit
	leafsByUnit map[string][]refdata.OrgUnit
	families    []string
}

// NewSimulator indexes the reference catalogs and verifies up front that every
// job family has at least one compatible org. A gap is a configuration-level
// alignment failure, not a per-row skip.
func NewSimulator(jobs []refdata.JobRole, orgs []refdata.OrgUnit) (*Simulator, error) {
	s := &Simulator{
		jobsByLevel: make(map[int][]refdata.JobRole),
		orgsByUnit:  make(map[string][]refdata.OrgUnit),
		leafsByUnit: make(map[string][]refdata.OrgUnit),
	}

	parents := make(map[string]bool)
	for _, org := range orgs {
		if org.ParentOrgID != nil {
			parents[*org.ParentOrgID] = true
		}
	}
	for _, org := range orgs {
		s.orgsByUnit[org.BusinessUnit] = append(s.orgsByUnit[org.BusinessUnit], org)
		if !parents[org.OrgID] {
			s.leafsByUnit[org.BusinessUnit] = append(s.leafsByUnit[org.BusinessUnit], org)
		}
	}

	seen := make(map[string]bool)
	for _, job := range jobs {
		s.jobsByLevel[job.SeniorityLevel] = append(s.jobsByLevel[job.SeniorityLevel], job)
		if !seen[job.JobFamily] {
			seen[job.JobFamily] = true
			s.families = append(s.families, job.JobFamily)
		}
	}
	sort.Strings(s.families)

	for _, family := range s.families {
		unit := refdata.BusinessUnitForFamily(family)
		if len(s.orgsByUnit[unit]) == 0 {
			return nil, apperror.Alignment(
				"no organization with business unit %q for job family %q", unit, family)
		}
	}
	return s, nil
}

// Simulate opens the initial job and org assignments at hire and replays the
// event list: promotions close and reopen the job track at the new level,
// transfers close and reopen the org track in a different compatible org. The
// last record on each track keeps a nil end date.
func (s *Simulator) Simulate(
	emp dataset.Employee,
	events []career.Event,
	rng *randx.Rand,
) ([]dataset.JobAssignment, []dataset.OrgAssignment) {
	job := s.pickInitialJob(emp.SeniorityLevel, rng)
	jobs := []dataset.JobAssignment{{
		EmployeeID:     emp.EmployeeID,
		JobID:          job.JobID,
		JobTitle:       job.JobTitle,
		JobFamily:      job.JobFamily,
		JobLevel:       job.JobLevel,
		SeniorityLevel: job.SeniorityLevel,
		StartDate:      emp.HireDate,
	}}

	org := s.pickInitialOrg(job.JobFamily, rng)
	orgs := []dataset.OrgAssignment{{
		EmployeeID:   emp.EmployeeID,
		OrgID:        org.OrgID,
		OrgName:      org.OrgName,
		CostCenter:   org.CostCenter,
		BusinessUnit: org.BusinessUnit,
		StartDate:    emp.HireDate,
	}}

	for _, ev := range events {
		switch ev.Type {
		case career.EventPromotion:
			next, ok := s.pickPromotionJob(ev.ToLevel, jobs[len(jobs)-1].JobFamily, rng)
			if !ok {
				continue
			}
			closeJob(&jobs[len(jobs)-1], ev.Date)
			jobs = append(jobs, dataset.JobAssignment{
				EmployeeID:     emp.EmployeeID,
				JobID:          next.JobID,
				JobTitle:       next.JobTitle,
				JobFamily:      next.JobFamily,
				JobLevel:       next.JobLevel,
				SeniorityLevel: next.SeniorityLevel,
				StartDate:      ev.Date,
			})

		case career.EventTransfer:
			family := jobs[len(jobs)-1].JobFamily
			next := s.pickTransferOrg(family, orgs[len(orgs)-1].OrgID, rng)
			closeOrg(&orgs[len(orgs)-1], ev.Date)
			orgs = append(orgs, dataset.OrgAssignment{
				EmployeeID:   emp.EmployeeID,
				OrgID:        next.OrgID,
				OrgName:      next.OrgName,
				CostCenter:   next.CostCenter,
				BusinessUnit: next.BusinessUnit,
				StartDate:    ev.Date,
			})
		}
	}

	return jobs, orgs
}

func (s *Simulator) pickInitialJob(seniority int, rng *randx.Rand) refdata.JobRole {
	candidates := s.jobsByLevel[seniority]
	if len(candidates) == 0 {
		// No exact match: fall back to any job at or below the level.
		for level := seniority; level >= 1; level-- {
			if len(s.jobsByLevel[level]) > 0 {
				candidates = s.jobsByLevel[level]
				break
			}
		}
	}
	return randx.Pick(rng, candidates)
}

func (s *Simulator) pickInitialOrg(family string, rng *randx.Rand) refdata.OrgUnit {
	unit := refdata.BusinessUnitForFamily(family)
	if leafs := s.leafsByUnit[unit]; len(leafs) > 0 {
		return randx.Pick(rng, leafs)
	}
	return randx.Pick(rng, s.orgsByUnit[unit])
}

func (s *Simulator) pickPromotionJob(level int, family string, rng *randx.Rand) (refdata.JobRole, bool) {
	candidates := s.jobsByLevel[level]
	if len(candidates) == 0 {
		return refdata.JobRole{}, false
	}
	sameFamily := make([]refdata.JobRole, 0, len(candidates))
	for _, job := range candidates {
		if job.JobFamily == family {
			sameFamily = append(sameFamily, job)
		}
	}
	if len(sameFamily) > 0 {
		candidates = sameFamily
	}
	return randx.Pick(rng, candidates), true
}

func (s *Simulator) pickTransferOrg(family, currentOrgID string, rng *randx.Rand) refdata.OrgUnit {
	compatible := s.orgsByUnit[refdata.BusinessUnitForFamily(family)]
	others := make([]refdata.OrgUnit, 0, len(compatible))
	for _, org := range compatible {
		if org.OrgID != currentOrgID {
			others = append(others, org)
		}
	}
	if len(others) == 0 {
		others = compatible
	}
	return randx.Pick(rng, others)
}

func closeJob(a *dataset.JobAssignment, at time.Time) {
	end := at
	a.EndDate = &end
}

func closeOrg(a *dataset.OrgAssignment, at time.Time) {
	end := at
	a.EndDate = &end
}
