package refdata

import (
	"math"

	"go-hrgen/internal/shared/apperror"
)

// Params holds every tunable of the simulation, decoded from params.yaml into
// an immutable, validated struct before generation starts.
type Params struct {
	Seniority    SeniorityParams    `yaml:"seniority"`
	Demographics DemographicsParams `yaml:"demographics"`
	Events       EventParams        `yaml:"events"`
	Compensation CompensationParams `yaml:"compensation"`
	Performance  PerformanceParams  `yaml:"performance"`
}

type LevelShare struct {
	Share float64 `yaml:"share"`
	Min   int     `yaml:"min"`
}

type SeniorityParams struct {
	// Distribution is keyed by seniority level 1-5.
	Distribution map[int]LevelShare `yaml:"distribution"`
}

type AgeRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type DemographicsParams struct {
	// AgeBands is keyed by seniority level 1-5.
	AgeBands       map[int]AgeRange `yaml:"age_bands"`
	ProbNeutral    float64          `yaml:"prob_neutral"`
	ProbFemale     float64          `yaml:"prob_female"`
	ProbFullTime   float64          `yaml:"prob_full_time"`
	ProbContract   float64          `yaml:"prob_contract"`
	CareerStartAge int              `yaml:"career_start_age"`
	HireYearMin    int              `yaml:"hire_year_min"`
	FemaleNames    []string         `yaml:"female_names"`
	MaleNames      []string         `yaml:"male_names"`
	NeutralNames   []string         `yaml:"neutral_names"`
	LastNames      []string         `yaml:"last_names"`
}

type EventParams struct {
	PromotionProb      float64 `yaml:"promotion_prob"`
	TransferProb       float64 `yaml:"transfer_prob"`
	TerminationProb    float64 `yaml:"termination_prob"`
	TransferOffsetDays int     `yaml:"transfer_offset_days"`
	EventMonth         int     `yaml:"event_month"`
	EventDay           int     `yaml:"event_day"`
}

type SalaryBand struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type CompensationParams struct {
	// SalaryBands is keyed by seniority level 1-5.
	SalaryBands       map[int]SalaryBand `yaml:"salary_bands"`
	BonusTargets      map[string]float64 `yaml:"bonus_targets"`
	Currency          string             `yaml:"currency"`
	AnnualRaiseMin    float64            `yaml:"annual_raise_min"`
	AnnualRaiseMax    float64            `yaml:"annual_raise_max"`
	PromotionRaiseMin float64            `yaml:"promotion_raise_min"`
	PromotionRaiseMax float64            `yaml:"promotion_raise_max"`
	MeritMonth        int                `yaml:"merit_month"`
	MeritDay          int                `yaml:"merit_day"`
}

type PerformanceParams struct {
	ReviewMonth        int             `yaml:"review_month"`
	ReviewDay          int             `yaml:"review_day"`
	MinMonthsEmployed  int             `yaml:"min_months_employed"`
	RatingDistribution map[int]float64 `yaml:"rating_distribution"`
	RatingLabels       map[int]string  `yaml:"rating_labels"`
}

// Validate rejects malformed parameter sets before any generation work runs.
func (p *Params) Validate() error {
	var total float64
	for level := 1; level <= 5; level++ {
		share, ok := p.Seniority.Distribution[level]
		if !ok {
			return apperror.Configuration("seniority distribution missing level %d", level)
		}
		if share.Share < 0 || share.Min < 0 {
			return apperror.Configuration("seniority level %d has negative share or minimum", level)
		}
		total += share.Share
	}
	if math.Abs(total-1.0) > 1e-9 {
		return apperror.Configuration("seniority distribution sums to %.4f, want 1.0", total)
	}
	if p.Seniority.Distribution[5].Min < 1 {
		return apperror.Configuration("seniority level 5 minimum must be at least 1 (CEO slot)")
	}

	for level := 1; level <= 5; level++ {
		band, ok := p.Demographics.AgeBands[level]
		if !ok {
			return apperror.Configuration("age bands missing level %d", level)
		}
		if band.Min > band.Max {
			return apperror.Configuration("age band for level %d has min > max", level)
		}
		sal, ok := p.Compensation.SalaryBands[level]
		if !ok {
			return apperror.Configuration("salary bands missing level %d", level)
		}
		if sal.Min > sal.Max {
			return apperror.Configuration("salary band for level %d has min > max", level)
		}
	}

	if len(p.Demographics.FemaleNames) == 0 || len(p.Demographics.MaleNames) == 0 ||
		len(p.Demographics.NeutralNames) == 0 || len(p.Demographics.LastNames) == 0 {
		return apperror.Configuration("name lists must not be empty")
	}

	var ratingTotal float64
	for rating := 1; rating <= 5; rating++ {
		prob, ok := p.Performance.RatingDistribution[rating]
		if !ok {
			return apperror.Configuration("rating distribution missing rating %d", rating)
		}
		if _, ok := p.Performance.RatingLabels[rating]; !ok {
			return apperror.Configuration("rating label missing for rating %d", rating)
		}
		ratingTotal += prob
	}
	if math.Abs(ratingTotal-1.0) > 1e-9 {
		return apperror.Configuration("rating distribution sums to %.4f, want 1.0", ratingTotal)
	}

	return nil
}
