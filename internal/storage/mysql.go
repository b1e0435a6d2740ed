package storage

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"jtr/internal/config"
	"jtr/internal/domain"
)

// HistoryStore records run summaries in MySQL so CI trends can be tracked
// across runs. Connection settings come from the environment (.env is loaded
// by config).
type HistoryStore struct {
	cfg *config.Config
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(cfg *config.Config) *HistoryStore {
	return &HistoryStore{cfg: cfg}
}

// RunRow is one persisted run summary
type RunRow struct {
	ID            int64
	RunLabel      string
	Modules       int
	TotalTests    int
	EnabledTests  int
	DisabledTests int
	Failures      int
	CreatedAt     time.Time
}

func (h *HistoryStore) connect() (*sql.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		dbName = "jtr"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the history table if it does not exist
func (h *HistoryStore) EnsureSchema() error {
	db, err := h.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS jtr_run_history (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_label VARCHAR(64) NOT NULL,
		modules INT NOT NULL,
		total_tests INT NOT NULL,
		enabled_tests INT NOT NULL,
		disabled_tests INT NOT NULL,
		failures INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// SaveRun appends one run summary row
func (h *HistoryStore) SaveRun(summary domain.ReportSummary, failures int, runLabel string) error {
	if err := h.EnsureSchema(); err != nil {
		return err
	}

	db, err := h.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO jtr_run_history (run_label, modules, total_tests, enabled_tests, disabled_tests, failures)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runLabel, summary.TotalModules, summary.TotalTests, summary.EnabledTests, summary.DisabledTests, failures,
	)
	if err != nil {
		return fmt.Errorf("failed to save run history: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent run summaries, newest first
func (h *HistoryStore) RecentRuns(limit int) ([]RunRow, error) {
	db, err := h.connect()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, run_label, modules, total_tests, enabled_tests, disabled_tests, failures, created_at
		 FROM jtr_run_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.ID, &r.RunLabel, &r.Modules, &r.TotalTests, &r.EnabledTests, &r.DisabledTests, &r.Failures, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run history row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
