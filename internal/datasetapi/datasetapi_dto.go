package datasetapi

import (
	"go-hrgen/internal/dataset"
)

// GenerateDatasetRequest is the wire form of a generation request. Omitted
// dates default to the trailing five-year window ending today.
type GenerateDatasetRequest struct {
	NEmployees          int    `json:"n_employees" binding:"required,min=1"`
	StartDate           string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate             string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Seed                *int64 `json:"seed"`
	IncludePerformance  bool   `json:"include_performance"`
	IncludeCompensation bool   `json:"include_compensation"`
}

type GenerateDatasetResponse struct {
	RunID  string                    `json:"run_id"`
	Seed   *int64                    `json:"seed,omitempty"`
	Tables map[string]*dataset.Table `json:"tables"`
}
