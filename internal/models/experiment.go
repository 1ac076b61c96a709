package models

// ExperimentLog is one day's slot in a 7-day experiment.
type ExperimentLog struct {
	Day       string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
	Mood      Mood   `json:"mood,omitempty"`
	Energy    int    `json:"energy,omitempty"` // 1-5
}

// Experiment is a bounded 7-day behavioral trial. Active flips to false once
// the end date is passed and never flips back.
type Experiment struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	StartDate  string          `json:"start_date"` // YYYY-MM-DD format
	EndDate    string          `json:"end_date"`   // YYYY-MM-DD format
	Logs       []ExperimentLog `json:"logs"`
	Conclusion string          `json:"conclusion,omitempty"`
	Active     bool            `json:"active"`
}
