package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"storycoach/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	analysis_id TEXT NOT NULL,
	file_name TEXT NOT NULL,
	workspace TEXT NOT NULL,
	word_count INTEGER NOT NULL DEFAULT 0,
	total_filler_words INTEGER NOT NULL DEFAULT 0,
	story_strength TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the run-history database at the
// given path. Schema setup failures are fatal; a tool that cannot record its
// runs should not start one.
func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	// On a fresh tree the data directory does not exist yet, and sqlite
	// cannot create the database file without its parent.
	if err := os.MkdirAll(filepath.Dir(dbFilePath), os.ModePerm); err != nil {
		log.Fatalf("Failed to create database directory: %v\n", err)
	}
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create analysis_runs table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

// NewWithDB wraps an existing connection, mainly for tests.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) RecordRun(record model.RunRecord) error {
	insertSQL := `INSERT INTO analysis_runs (analysis_id, file_name, workspace, word_count, total_filler_words, story_strength, summary, created_at, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, record.AnalysisID, record.FileName, record.Workspace,
		record.WordCount, record.TotalFillers, record.StoryStrength, record.Summary,
		record.CreatedAt, record.HasError, record.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert run record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll() ([]model.RunRecord, error) {
	sqlStr := `
		SELECT id, analysis_id, file_name, workspace, word_count, total_filler_words, story_strength, summary, created_at, has_error, error_message
		FROM analysis_runs
		ORDER BY created_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.RunRecord, 0)

	for rows.Next() {
		var r model.RunRecord
		err = rows.Scan(&r.ID, &r.AnalysisID, &r.FileName, &r.Workspace, &r.WordCount,
			&r.TotalFillers, &r.StoryStrength, &r.Summary, &r.CreatedAt, &r.HasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}

		records = append(records, r)
	}
	return records, rows.Err()
}
