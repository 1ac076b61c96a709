package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/iksdev/habita/internal/models"
)

// SQLiteStore persists the snapshot in a SQLite database. Save rewrites the
// whole aggregate inside one transaction, so the previous snapshot survives
// any failure mid-write.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	join_date TEXT NOT NULL,
	timezone TEXT NOT NULL,
	onboarded INTEGER NOT NULL,
	anti_motivation INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	start_date TEXT NOT NULL,
	private INTEGER NOT NULL,
	hidden_from_flow INTEGER NOT NULL,
	discipline_score REAL NOT NULL,
	config TEXT,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS logs (
	day TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	status TEXT NOT NULL,
	completed_items TEXT,
	applied_delta REAL NOT NULL,
	PRIMARY KEY (day, habit_id)
);
CREATE TABLE IF NOT EXISTS moods (
	day TEXT PRIMARY KEY,
	mood TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	target_date TEXT NOT NULL,
	content TEXT NOT NULL,
	author_version TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS experiments (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	logs TEXT,
	conclusion TEXT,
	active INTEGER NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT
);
`

// habitConfig bundles the optional goal/schedule descriptor so the habits
// table stays flat.
type habitConfig struct {
	Frequency     models.Frequency       `json:"frequency,omitempty"`
	Pattern       models.Pattern         `json:"pattern,omitempty"`
	Goal          *models.Goal           `json:"goal,omitempty"`
	TimesOfDay    []string               `json:"times_of_day,omitempty"`
	EndCondition  string                 `json:"end_condition,omitempty"`
	CustomEndDate string                 `json:"custom_end_date,omitempty"`
	Areas         []string               `json:"areas,omitempty"`
	Checklist     []models.ChecklistItem `json:"checklist,omitempty"`
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO meta (key, value) VALUES ('schema_version', '1')`); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habita init' first")
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) Load() (models.Snapshot, error) {
	if err := s.open(); err != nil {
		return models.Snapshot{}, err
	}

	snap := models.EmptySnapshot()

	row := s.db.QueryRow(`SELECT id, username, email, join_date, timezone, onboarded, anti_motivation FROM users LIMIT 1`)
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.JoinDate, &u.Timezone, &u.Onboarded, &u.AntiMotivation)
	switch {
	case err == sql.ErrNoRows:
		// no user yet
	case err != nil:
		return models.Snapshot{}, fmt.Errorf("failed to load user: %w", err)
	default:
		snap.User = &u
	}

	if err := s.loadHabits(&snap); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.loadLogs(&snap); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.loadMoods(&snap); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.loadMessages(&snap); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.loadExperiments(&snap); err != nil {
		return models.Snapshot{}, err
	}

	row = s.db.QueryRow(`SELECT value FROM meta WHERE key = 'micro_dare_completed_date'`)
	var dare sql.NullString
	if err := row.Scan(&dare); err == nil && dare.Valid {
		snap.MicroDareCompletedDate = dare.String
	}

	return snap, nil
}

func (s *SQLiteStore) loadHabits(snap *models.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, name, description, start_date, private, hidden_from_flow, discipline_score, config FROM habits ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var desc, config sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &desc, &h.StartDate, &h.Private, &h.HiddenFromFlow, &h.DisciplineScore, &config); err != nil {
			return fmt.Errorf("failed to scan habit: %w", err)
		}
		h.Description = desc.String
		if config.Valid && config.String != "" {
			var cfg habitConfig
			if err := json.Unmarshal([]byte(config.String), &cfg); err != nil {
				return fmt.Errorf("failed to parse habit config: %w", err)
			}
			h.Frequency = cfg.Frequency
			h.Pattern = cfg.Pattern
			h.Goal = cfg.Goal
			h.TimesOfDay = cfg.TimesOfDay
			h.EndCondition = cfg.EndCondition
			h.CustomEndDate = cfg.CustomEndDate
			h.Areas = cfg.Areas
			h.Checklist = cfg.Checklist
		}
		snap.Habits = append(snap.Habits, h)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadLogs(snap *models.Snapshot) error {
	rows, err := s.db.Query(`SELECT day, habit_id, status, completed_items, applied_delta FROM logs ORDER BY day, habit_id`)
	if err != nil {
		return fmt.Errorf("failed to load logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.DailyLog
		var items sql.NullString
		var status string
		if err := rows.Scan(&l.Day, &l.HabitID, &status, &items, &l.AppliedDelta); err != nil {
			return fmt.Errorf("failed to scan log: %w", err)
		}
		l.Status = models.LogStatus(status)
		if items.Valid && items.String != "" {
			if err := json.Unmarshal([]byte(items.String), &l.CompletedItems); err != nil {
				return fmt.Errorf("failed to parse completed items: %w", err)
			}
		}
		snap.Logs = append(snap.Logs, l)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadMoods(snap *models.Snapshot) error {
	rows, err := s.db.Query(`SELECT day, mood FROM moods ORDER BY day`)
	if err != nil {
		return fmt.Errorf("failed to load moods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MoodEntry
		var mood string
		if err := rows.Scan(&m.Day, &mood); err != nil {
			return fmt.Errorf("failed to scan mood: %w", err)
		}
		m.Mood = models.Mood(mood)
		snap.Moods = append(snap.Moods, m)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadMessages(snap *models.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, target_date, content, author_version, created_at FROM messages ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.FutureMessage
		var author, createdAt string
		if err := rows.Scan(&m.ID, &m.TargetDate, &m.Content, &author, &createdAt); err != nil {
			return fmt.Errorf("failed to scan message: %w", err)
		}
		m.AuthorVersion = models.AuthorVersion(author)
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return fmt.Errorf("failed to parse created_at: %w", err)
		}
		snap.Messages = append(snap.Messages, m)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadExperiments(snap *models.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, title, start_date, end_date, logs, conclusion, active FROM experiments ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load experiments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Experiment
		var logs, conclusion sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.StartDate, &e.EndDate, &logs, &conclusion, &e.Active); err != nil {
			return fmt.Errorf("failed to scan experiment: %w", err)
		}
		e.Conclusion = conclusion.String
		if logs.Valid && logs.String != "" {
			if err := json.Unmarshal([]byte(logs.String), &e.Logs); err != nil {
				return fmt.Errorf("failed to parse experiment logs: %w", err)
			}
		}
		snap.Experiments = append(snap.Experiments, e)
	}
	return rows.Err()
}

func (s *SQLiteStore) Save(snap models.Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"users", "habits", "logs", "moods", "messages", "experiments"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if snap.User != nil {
		u := snap.User
		if _, err := tx.Exec(`INSERT INTO users (id, username, email, join_date, timezone, onboarded, anti_motivation) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Username, u.Email, u.JoinDate, u.Timezone, u.Onboarded, u.AntiMotivation); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
	}

	for i, h := range snap.Habits {
		cfg, err := json.Marshal(habitConfig{
			Frequency:     h.Frequency,
			Pattern:       h.Pattern,
			Goal:          h.Goal,
			TimesOfDay:    h.TimesOfDay,
			EndCondition:  h.EndCondition,
			CustomEndDate: h.CustomEndDate,
			Areas:         h.Areas,
			Checklist:     h.Checklist,
		})
		if err != nil {
			return fmt.Errorf("failed to serialize habit config: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO habits (id, name, description, start_date, private, hidden_from_flow, discipline_score, config, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, h.StartDate, h.Private, h.HiddenFromFlow, h.DisciplineScore, string(cfg), i); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
	}

	for _, l := range snap.Logs {
		items := ""
		if len(l.CompletedItems) > 0 {
			b, err := json.Marshal(l.CompletedItems)
			if err != nil {
				return fmt.Errorf("failed to serialize completed items: %w", err)
			}
			items = string(b)
		}
		if _, err := tx.Exec(`INSERT INTO logs (day, habit_id, status, completed_items, applied_delta) VALUES (?, ?, ?, ?, ?)`,
			l.Day, l.HabitID, string(l.Status), items, l.AppliedDelta); err != nil {
			return fmt.Errorf("failed to save log: %w", err)
		}
	}

	for _, m := range snap.Moods {
		if _, err := tx.Exec(`INSERT INTO moods (day, mood) VALUES (?, ?)`, m.Day, string(m.Mood)); err != nil {
			return fmt.Errorf("failed to save mood: %w", err)
		}
	}

	for _, m := range snap.Messages {
		if _, err := tx.Exec(`INSERT INTO messages (id, target_date, content, author_version, created_at) VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.TargetDate, m.Content, string(m.AuthorVersion), m.CreatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}
	}

	for i, e := range snap.Experiments {
		logs, err := json.Marshal(e.Logs)
		if err != nil {
			return fmt.Errorf("failed to serialize experiment logs: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO experiments (id, title, start_date, end_date, logs, conclusion, active, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.StartDate, e.EndDate, string(logs), e.Conclusion, e.Active, i); err != nil {
			return fmt.Errorf("failed to save experiment: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('micro_dare_completed_date', ?)`, snap.MicroDareCompletedDate); err != nil {
		return fmt.Errorf("failed to save dare marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
