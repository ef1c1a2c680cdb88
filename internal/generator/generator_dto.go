package generator

import (
	"time"

	"go-hrgen/internal/shared/apperror"
)

// GenerateRequest is the generation contract input. A nil Seed means a fresh
// non-reproducible run; everything else about the output is a pure function
// of this struct.
type GenerateRequest struct {
	NEmployees          int
	StartDate           time.Time
	EndDate             time.Time
	Seed                *int64
	IncludePerformance  bool
	IncludeCompensation bool
}

func (r GenerateRequest) Validate() error {
	if r.NEmployees < 1 {
		return apperror.Configuration("n_employees must be at least 1, got %d", r.NEmployees)
	}
	if !r.StartDate.Before(r.EndDate) {
		return apperror.Configuration("start_date must be before end_date")
	}
	return nil
}
