package models

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Pattern string

const (
	PatternEveryDay Pattern = "every_day"
	PatternCustom   Pattern = "custom"
)

// Goal is the target quantity a habit aims for, e.g. 20 minutes per day.
type Goal struct {
	Value  int    `json:"value"`
	Unit   string `json:"unit"`
	Period string `json:"period"`
}

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Habit represents a recurring practice to track.
//
// DisciplineScore stays in [0,100] and is moved only by engine.ApplyScore;
// nothing else assigns it directly.
type Habit struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	StartDate       string  `json:"start_date"` // YYYY-MM-DD format
	Private         bool    `json:"private"`
	HiddenFromFlow  bool    `json:"hidden_from_flow,omitempty"`
	DisciplineScore float64 `json:"discipline_score"`

	Frequency     Frequency       `json:"frequency,omitempty"`
	Pattern       Pattern         `json:"pattern,omitempty"`
	Goal          *Goal           `json:"goal,omitempty"`
	TimesOfDay    []string        `json:"times_of_day,omitempty"` // morning, afternoon, evening
	EndCondition  string          `json:"end_condition,omitempty"`
	CustomEndDate string          `json:"custom_end_date,omitempty"`
	Areas         []string        `json:"areas,omitempty"`
	Checklist     []ChecklistItem `json:"checklist,omitempty"`
}
