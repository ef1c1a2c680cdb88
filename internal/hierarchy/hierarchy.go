// Package hierarchy assigns seniority levels to the employee population and
// builds the manager graph. It runs before any per-employee work because the
// manager assignment is global.
package hierarchy

import (
	"sort"

	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/apperror"
	"go-hrgen/internal/shared/randx"
)

// Slot is one employee position in the hierarchy. ManagerIndex refers to
// another slot; -1 marks the single root (CEO).
type Slot struct {
	Index          int
	SeniorityLevel int
	ManagerIndex   int
}

// Build partitions n slots across seniority levels per the configured
// distribution and wires every non-root slot to a manager of strictly higher
// seniority. Slots are ordered by descending level, so slot 0 is the CEO.
func Build(n int, params refdata.SeniorityParams, rng *randx.Rand) ([]Slot, error) {
	if n < 1 {
		return nil, apperror.Configuration("n_employees must be at least 1, got %d", n)
	}

	counts, err := partition(n, params.Distribution)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, n)
	byLevel := make(map[int][]int, 5)
	idx := 0
	for level := 5; level >= 1; level-- {
		for i := 0; i < counts[level]; i++ {
			slots = append(slots, Slot{Index: idx, SeniorityLevel: level, ManagerIndex: -1})
			byLevel[level] = append(byLevel[level], idx)
			idx++
		}
	}

	assignManagers(slots, byLevel, rng)
	return slots, nil
}

// partition rounds the distribution into per-level counts, enforces the
// declared minimums, and folds the rounding remainder into the largest-share
// bucket so the counts always sum to n.
func partition(n int, dist map[int]refdata.LevelShare) (map[int]int, error) {
	var minTotal int
	for level := 1; level <= 5; level++ {
		minTotal += dist[level].Min
	}
	if minTotal > n {
		return nil, apperror.Configuration(
			"seniority minimums require %d employees but only %d requested", minTotal, n)
	}

	counts := make(map[int]int, 5)
	total := 0
	for level := 1; level <= 5; level++ {
		c := int(float64(n) * dist[level].Share)
		if c < dist[level].Min {
			c = dist[level].Min
		}
		counts[level] = c
		total += c
	}

	// Rebalance into the largest-share level. Ties resolve to the lower level
	// so the outcome never depends on map iteration order.
	largest := 1
	for level := 2; level <= 5; level++ {
		if dist[level].Share > dist[largest].Share {
			largest = level
		}
	}

	counts[largest] += n - total
	if counts[largest] < dist[largest].Min {
		// The largest bucket absorbed more overflow than it can give up,
		// meaning some other minimum forced the total past n.
		return nil, apperror.Configuration(
			"seniority minimums unsatisfiable at %d employees", n)
	}
	return counts, nil
}

// assignManagers wires the reporting graph: remaining level-5 slots report to
// the CEO, level 4 to level 5, level 3 to level 4, level 2 to level 3, and
// level 1 to any of levels 2-4. Empty buckets cascade upward so a manager of
// strictly higher seniority always exists.
func assignManagers(slots []Slot, byLevel map[int][]int, rng *randx.Rand) {
	ceo := byLevel[5][0]

	for _, i := range byLevel[5][1:] {
		slots[i].ManagerIndex = ceo
	}

	directors := byLevel[5]
	for _, i := range byLevel[4] {
		slots[i].ManagerIndex = randx.Pick(rng, directors)
	}

	managers := byLevel[4]
	if len(managers) == 0 {
		managers = directors
	}
	for _, i := range byLevel[3] {
		slots[i].ManagerIndex = randx.Pick(rng, managers)
	}

	seniors := byLevel[3]
	if len(seniors) == 0 {
		seniors = managers
	}
	for _, i := range byLevel[2] {
		slots[i].ManagerIndex = randx.Pick(rng, seniors)
	}

	supervisors := make([]int, 0, len(byLevel[2])+len(byLevel[3])+len(byLevel[4]))
	supervisors = append(supervisors, byLevel[2]...)
	supervisors = append(supervisors, byLevel[3]...)
	supervisors = append(supervisors, byLevel[4]...)
	sort.Ints(supervisors)
	if len(supervisors) == 0 {
		supervisors = directors
	}
	for _, i := range byLevel[1] {
		slots[i].ManagerIndex = randx.Pick(rng, supervisors)
	}
}
