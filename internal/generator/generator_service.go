// Package generator orchestrates the generation pipeline: hierarchy first
// (manager assignment is global), then embarrassingly parallel per-employee
// work, then single-pass table assembly and integrity validation. A failed
// generation returns nothing; partial tables are never produced.
package generator

import (
	"context"
	"math/rand/v2"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-hrgen/internal/assignment"
	"go-hrgen/internal/career"
	"go-hrgen/internal/compensation"
	"go-hrgen/internal/dataset"
	"go-hrgen/internal/demographics"
	"go-hrgen/internal/hierarchy"
	"go-hrgen/internal/performance"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

//go:generate mockgen -source=generator_service.go -destination=mock/generator_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*dataset.Dataset, error)
}

type service struct {
	bundle  *refdata.Bundle
	workers int
	logger  *zap.Logger
}

type Option func(*service)

// WithWorkers caps the per-employee worker pool. Output is identical for any
// worker count; 1 forces fully sequential execution.
func WithWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewService(bundle *refdata.Bundle, logger *zap.Logger, opts ...Option) Service {
	l := zap.L().Named("generator.service")
	if logger != nil {
		l = logger.Named("generator.service")
	}
	s := &service{
		bundle:  bundle,
		workers: runtime.NumCPU(),
		logger:  l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// employeeResult collects one employee's rows; results are merged in slot
// order so execution order never leaks into the output.
type employeeResult struct {
	employee dataset.Employee
	jobs     []dataset.JobAssignment
	orgs     []dataset.OrgAssignment
	comp     []dataset.CompensationRecord
	perf     []dataset.PerformanceReview
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*dataset.Dataset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seed := rand.Int64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	s.logger.Info("generation started",
		zap.Int("n_employees", req.NEmployees),
		zap.Time("start_date", req.StartDate),
		zap.Time("end_date", req.EndDate),
		zap.Bool("seeded", req.Seed != nil),
	)

	sim, err := assignment.NewSimulator(s.bundle.JobRoles, s.bundle.OrgUnits)
	if err != nil {
		return nil, err
	}

	slots, err := hierarchy.Build(req.NEmployees, s.bundle.Params.Seniority, randx.New(seed, randx.StreamHierarchy))
	if err != nil {
		return nil, err
	}

	demoGen := demographics.New(s.bundle.Params.Demographics, s.bundle.Locations)
	scheduler := career.NewScheduler(s.bundle.Params.Events)
	compSim := compensation.NewSimulator(s.bundle.Params.Compensation)
	perfGen := performance.New(s.bundle.Params.Performance)

	results := make([]employeeResult, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slot := slots[i]
			rng := randx.ForEmployee(seed, slot.Index)

			emp := demoGen.Generate(slot.Index, slot.SeniorityLevel, req.EndDate, rng)
			if slot.ManagerIndex >= 0 {
				managerID := demographics.EmployeeID(slot.ManagerIndex)
				emp.ManagerID = &managerID
			}

			timeline := scheduler.Simulate(emp, req.StartDate, req.EndDate, rng)
			if timeline.TerminationDate != nil {
				emp.TerminationDate = timeline.TerminationDate
				emp.EmploymentStatus = dataset.StatusTerminated
			}

			jobs, orgs := sim.Simulate(emp, timeline.Events, rng)

			res := employeeResult{employee: emp, jobs: jobs, orgs: orgs}
			if req.IncludeCompensation {
				res.comp = compSim.Simulate(emp, jobs, req.StartDate, req.EndDate, rng)
			}
			if req.IncludePerformance {
				res.perf = perfGen.Generate(emp, req.StartDate, req.EndDate, rng)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &dataset.Dataset{
		Employees:           make([]dataset.Employee, 0, len(results)),
		OrgUnits:            s.bundle.OrgUnits,
		JobRoles:            s.bundle.JobRoles,
		Locations:           s.bundle.Locations,
		IncludeCompensation: req.IncludeCompensation,
		IncludePerformance:  req.IncludePerformance,
	}
	for _, res := range results {
		ds.Employees = append(ds.Employees, res.employee)
		ds.JobAssignments = append(ds.JobAssignments, res.jobs...)
		ds.OrgAssignments = append(ds.OrgAssignments, res.orgs...)
		ds.Compensation = append(ds.Compensation, res.comp...)
		ds.Performance = append(ds.Performance, res.perf...)
	}

	if err := validate(ds, s.bundle, req.EndDate); err != nil {
		s.logger.Error("integrity validation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("generation finished",
		zap.Int("employees", len(ds.Employees)),
		zap.Int("job_assignments", len(ds.JobAssignments)),
		zap.Int("org_assignments", len(ds.OrgAssignments)),
		zap.Int("compensation_records", len(ds.Compensation)),
		zap.Int("performance_reviews", len(ds.Performance)),
	)
	return ds, nil
}
