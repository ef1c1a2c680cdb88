package events

import "time"

const DatasetGeneratedTopic = "hr.dataset.generated"

// DatasetGeneratedEvent announces a finished generation run. The payload
// carries run metadata only, never the generated rows.
type DatasetGeneratedEvent struct {
	RunID       string    `json:"run_id"`
	NEmployees  int       `json:"n_employees"`
	Seeded      bool      `json:"seeded"`
	Tables      []string  `json:"tables"`
	GeneratedAt time.Time `json:"generated_at"`
}
