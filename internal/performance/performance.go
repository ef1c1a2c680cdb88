// Package performance emits one annual review per employed calendar year.
// Reviews are independent of the other timelines except for tenure bounds.
package performance

import (
	"time"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

type Generator struct {
	params refdata.PerformanceParams
}

func New(params refdata.PerformanceParams) *Generator {
	return &Generator{params: params}
}

// Generate emits reviews for every window year in which the employee had been
// employed at least the configured number of months by the review date. The
// review date must fall at or before the window end and before any
// termination date. ManagerID is the employee's static manager.
func (g *Generator) Generate(emp dataset.Employee, windowStart, windowEnd time.Time, rng *randx.Rand) []dataset.PerformanceReview {
	var reviews []dataset.PerformanceReview

	for year := windowStart.Year(); year <= windowEnd.Year(); year++ {
		reviewDate := time.Date(year, time.Month(g.params.ReviewMonth), g.params.ReviewDay, 0, 0, 0, 0, time.UTC)
		if reviewDate.Before(windowStart) || reviewDate.After(windowEnd) {
			continue
		}
		if !emp.HireDate.Before(reviewDate) {
			continue
		}
		if emp.TerminationDate != nil && !reviewDate.Before(*emp.TerminationDate) {
			continue
		}
		if monthsBetween(emp.HireDate, reviewDate) < g.params.MinMonthsEmployed {
			continue
		}

		rating := g.sampleRating(rng)
		reviews = append(reviews, dataset.PerformanceReview{
			EmployeeID:       emp.EmployeeID,
			ReviewPeriodYear: year,
			ReviewDate:       reviewDate,
			Rating:           rating,
			RatingLabel:      g.params.RatingLabels[rating],
			ManagerID:        emp.ManagerID,
		})
	}

	return reviews
}

func (g *Generator) sampleRating(rng *randx.Rand) int {
	roll := rng.Float64()
	cumulative := 0.0
	for rating := 1; rating <= 5; rating++ {
		cumulative += g.params.RatingDistribution[rating]
		if roll < cumulative {
			return rating
		}
	}
	return 3
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
