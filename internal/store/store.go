// Package store loads a generated dataset into Postgres. It is a sink only:
// generation never reads anything back.
package store

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
)

const insertBatchSize = 500

type DatasetStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger ...*zap.Logger) *DatasetStore {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	return &DatasetStore{db: db, logger: l}
}

// Migrate creates the output tables.
func (s *DatasetStore) Migrate() error {
	return s.db.AutoMigrate(
		&refdata.OrgUnit{},
		&refdata.JobRole{},
		&refdata.Location{},
		&dataset.Employee{},
		&dataset.JobAssignment{},
		&dataset.OrgAssignment{},
		&dataset.CompensationRecord{},
		&dataset.PerformanceReview{},
	)
}

// Save inserts the whole dataset in a single transaction. Reference tables go
// first so foreign keys resolve; a failure rolls everything back.
func (s *DatasetStore) Save(ctx context.Context, ds *dataset.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertBatch(tx, ds.OrgUnits); err != nil {
			return err
		}
		if err := insertBatch(tx, ds.JobRoles); err != nil {
			return err
		}
		if err := insertBatch(tx, ds.Locations); err != nil {
			return err
		}
		if err := insertBatch(tx, ds.Employees); err != nil {
			return err
		}
		if err := insertBatch(tx, ds.JobAssignments); err != nil {
			return err
		}
		if err := insertBatch(tx, ds.OrgAssignments); err != nil {
			return err
		}
		if ds.IncludeCompensation {
			if err := insertBatch(tx, ds.Compensation); err != nil {
				return err
			}
		}
		if ds.IncludePerformance {
			if err := insertBatch(tx, ds.Performance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return mapStoreError(err)
	}

	s.logger.Info("dataset persisted",
		zap.Int("employees", len(ds.Employees)),
		zap.Int("job_assignments", len(ds.JobAssignments)),
		zap.Int("org_assignments", len(ds.OrgAssignments)),
	)
	return nil
}

func insertBatch[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, insertBatchSize).Error
}
