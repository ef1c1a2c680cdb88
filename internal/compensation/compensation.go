// Package compensation builds the chained salary history for an employee from
// the job-assignment chain plus annual merit cycles. Base salary never
// decreases across a chain and always stays inside the band of the record's
// seniority level.
package compensation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

type Simulator struct {
	params refdata.CompensationParams
}

func NewSimulator(params refdata.CompensationParams) *Simulator {
	return &Simulator{params: params}
}

type changeKind int

const (
	changePromotion changeKind = iota
	changeMerit
)

type changePoint struct {
	date     time.Time
	kind     changeKind
	level    int    // promotion only
	jobLevel string // promotion only
}

// Simulate opens the first record at hire with a salary drawn from the
// seniority band, then replays promotions (from the job chain) and annual
// merit boundaries in order. Merit cycles, like career events, only fire
// inside the simulation window; a merit boundary coinciding with a promotion
// date yields no extra record.
func (s *Simulator) Simulate(
	emp dataset.Employee,
	jobs []dataset.JobAssignment,
	windowStart, windowEnd time.Time,
	rng *randx.Rand,
) []dataset.CompensationRecord {
	if len(jobs) == 0 {
		return nil
	}

	level := jobs[0].SeniorityLevel
	jobLevel := jobs[0].JobLevel
	band := s.params.SalaryBands[level]
	salary := rng.Money(band.Min, band.Max)

	records := []dataset.CompensationRecord{{
		EmployeeID:     emp.EmployeeID,
		BaseSalary:     salary,
		BonusTargetPct: s.bonusTarget(jobLevel),
		Currency:       s.params.Currency,
		StartDate:      emp.HireDate,
		ChangeReason:   dataset.ReasonNewHire,
	}}

	for _, cp := range s.changePoints(emp, jobs, windowStart, windowEnd) {
		var raisePct float64
		reason := dataset.ReasonAnnualMerit
		if cp.kind == changePromotion {
			raisePct = rng.Pct(s.params.PromotionRaiseMin, s.params.PromotionRaiseMax)
			reason = dataset.ReasonPromotion
			level = cp.level
			jobLevel = cp.jobLevel
		} else {
			raisePct = rng.Pct(s.params.AnnualRaiseMin, s.params.AnnualRaiseMax)
		}

		raised := salary.Mul(decimal.NewFromFloat(1 + raisePct)).Round(2)
		next := clipToBand(raised, s.params.SalaryBands[level])
		if next.LessThan(salary) {
			next = salary
		}

		end := cp.date
		records[len(records)-1].EndDate = &end
		records = append(records, dataset.CompensationRecord{
			EmployeeID:     emp.EmployeeID,
			BaseSalary:     next,
			BonusTargetPct: s.bonusTarget(jobLevel),
			Currency:       s.params.Currency,
			StartDate:      cp.date,
			ChangeReason:   reason,
		})
		salary = next
	}

	return records
}

// changePoints merges promotion dates from the job chain with annual merit
// boundaries inside the window, sorted chronologically. Merit boundaries
// falling on a promotion date, outside [windowStart, windowEnd], or at/after
// termination are dropped.
func (s *Simulator) changePoints(
	emp dataset.Employee,
	jobs []dataset.JobAssignment,
	windowStart, windowEnd time.Time,
) []changePoint {
	var points []changePoint
	promoDates := make(map[string]bool, len(jobs))
	for _, job := range jobs[1:] {
		points = append(points, changePoint{
			date:     job.StartDate,
			kind:     changePromotion,
			level:    job.SeniorityLevel,
			jobLevel: job.JobLevel,
		})
		promoDates[dataset.FormatDate(job.StartDate)] = true
	}

	for year := emp.HireDate.Year() + 1; ; year++ {
		merit := time.Date(year, time.Month(s.params.MeritMonth), s.params.MeritDay, 0, 0, 0, 0, time.UTC)
		if merit.After(windowEnd) {
			break
		}
		if !merit.After(emp.HireDate) || merit.Before(windowStart) {
			continue
		}
		if emp.TerminationDate != nil && !merit.Before(*emp.TerminationDate) {
			break
		}
		if promoDates[dataset.FormatDate(merit)] {
			continue
		}
		points = append(points, changePoint{date: merit, kind: changeMerit})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].date.Equal(points[j].date) {
			return points[i].kind == changePromotion && points[j].kind == changeMerit
		}
		return points[i].date.Before(points[j].date)
	})
	return points
}

func (s *Simulator) bonusTarget(jobLevel string) float64 {
	if pct, ok := s.params.BonusTargets[jobLevel]; ok {
		return pct
	}
	return s.params.BonusTargets["IC"]
}

func clipToBand(v decimal.Decimal, band refdata.SalaryBand) decimal.Decimal {
	lo := decimal.NewFromFloat(band.Min)
	hi := decimal.NewFromFloat(band.Max)
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
