// Package career simulates the per-employee timeline of career events that
// drives the time-variant satellites. Events are ephemeral: the timeline
// simulators consume them and they never appear in output tables.
package career

import (
	"sort"
	"time"

	"go-hrgen/internal/dataset"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/randx"
)

type EventType string

const (
	EventPromotion EventType = "promotion"
	EventTransfer  EventType = "transfer"
)

type Event struct {
	EmployeeID string
	Type       EventType
	Date       time.Time
	FromLevel  int // promotion only
	ToLevel    int // promotion only
}

// Timeline is one employee's simulated career inside the window. Termination
// is not an Event: it caps the window and surfaces on the hub row instead.
type Timeline struct {
	Events          []Event
	TerminationDate *time.Time
}

type Scheduler struct {
	params refdata.EventParams
}

func NewScheduler(params refdata.EventParams) *Scheduler {
	return &Scheduler{params: params}
}

// Simulate rolls one promotion, one transfer, and one termination chance per
// employed calendar year between max(hire, windowStart) and windowEnd. A
// promotion raises the working seniority by exactly one and never past 5; an
// employee already at 5 generates no promotion events. Events are returned in
// chronological order with promotion-before-transfer tie-breaking.
func (s *Scheduler) Simulate(emp dataset.Employee, windowStart, windowEnd time.Time, rng *randx.Rand) Timeline {
	var tl Timeline

	simStart := emp.HireDate
	if windowStart.After(simStart) {
		simStart = windowStart
	}

	level := emp.SeniorityLevel
	for year := simStart.Year(); year <= windowEnd.Year(); year++ {
		yearDate := time.Date(year, time.Month(s.params.EventMonth), s.params.EventDay, 0, 0, 0, 0, time.UTC)
		if !yearDate.After(emp.HireDate) {
			continue
		}

		if rng.Float64() < s.params.PromotionProb && level < 5 && yearDate.Before(windowEnd) {
			tl.Events = append(tl.Events, Event{
				EmployeeID: emp.EmployeeID,
				Type:       EventPromotion,
				Date:       yearDate,
				FromLevel:  level,
				ToLevel:    level + 1,
			})
			level++
		}

		if rng.Float64() < s.params.TransferProb {
			transferDate := yearDate.AddDate(0, 0, rng.IntBetween(0, s.params.TransferOffsetDays))
			if transferDate.Before(windowEnd) {
				tl.Events = append(tl.Events, Event{
					EmployeeID: emp.EmployeeID,
					Type:       EventTransfer,
					Date:       transferDate,
				})
			}
		}

		if rng.Float64() < s.params.TerminationProb {
			termDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
			if !termDate.After(windowEnd) {
				tl.TerminationDate = &termDate
				break
			}
		}
	}

	sort.SliceStable(tl.Events, func(i, j int) bool {
		if tl.Events[i].Date.Equal(tl.Events[j].Date) {
			return tl.Events[i].Type == EventPromotion && tl.Events[j].Type == EventTransfer
		}
		return tl.Events[i].Date.Before(tl.Events[j].Date)
	})
	return tl
}
