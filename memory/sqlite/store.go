// Package sqlite persists session contexts in a SQLite database so screening
// sessions survive process restarts. The history column stores JSON decoded
// leniently: unknown fields are ignored and missing fields defaulted, keeping
// the record forward compatible.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hupe1980/screenmesh/core"
)

// Store manages the session database.
type Store struct {
	db *sql.DB
}

var _ core.MemoryStore = (*Store)(nil)

// NewStore opens or creates the session database at path and creates the
// schema if it does not exist.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			last_target_id TEXT,
			last_target_name TEXT,
			last_library_size INTEGER,
			history TEXT,
			history_cap INTEGER,
			updated_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// historyRecord is the persisted JSON shape of one history entry. It mirrors
// the external memory record schema; decoding tolerates unknown fields.
type historyRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	Target         string    `json:"target"`
	BestScore      int       `json:"bestScore"`
	TopCandidateID string    `json:"topCandidateId"`
}

// Load reads the context for sessionID, or returns a fresh empty context when
// the session has never been saved.
func (s *Store) Load(sessionID string) (core.SessionContext, error) {
	row := s.db.QueryRow(
		`SELECT last_target_id, last_target_name, last_library_size, history, history_cap
		 FROM sessions WHERE session_id = ?`, sessionID)

	var (
		targetID   sql.NullString
		targetName sql.NullString
		size       sql.NullInt64
		historyRaw sql.NullString
		histCap    sql.NullInt64
	)
	if err := row.Scan(&targetID, &targetName, &size, &historyRaw, &histCap); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.NewSessionContext(sessionID), nil
		}
		return core.SessionContext{}, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	sc := core.NewSessionContext(sessionID)
	if targetID.Valid && targetID.String != "" {
		sc.LastTarget = &core.Target{ID: targetID.String, Name: targetName.String}
	}
	sc.LastLibrarySize = int(size.Int64)
	if histCap.Valid && histCap.Int64 > 0 {
		sc.HistoryCap = int(histCap.Int64)
	}

	if historyRaw.Valid && historyRaw.String != "" {
		var records []historyRecord
		if err := json.Unmarshal([]byte(historyRaw.String), &records); err != nil {
			return core.SessionContext{}, fmt.Errorf("decoding session history: %w", err)
		}
		sc.History = make([]core.HistoryEntry, len(records))
		for i, r := range records {
			sc.History[i] = core.HistoryEntry{
				Timestamp:      r.Timestamp,
				TargetID:       r.Target,
				BestScore:      core.Score(r.BestScore),
				TopCandidateID: r.TopCandidateID,
			}
		}
	}
	return sc, nil
}

// Save upserts the context snapshot.
func (s *Store) Save(sc core.SessionContext) error {
	records := make([]historyRecord, len(sc.History))
	for i, e := range sc.History {
		records[i] = historyRecord{
			Timestamp:      e.Timestamp,
			Target:         e.TargetID,
			BestScore:      int(e.BestScore),
			TopCandidateID: e.TopCandidateID,
		}
	}
	historyJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding session history: %w", err)
	}

	var targetID, targetName string
	if sc.LastTarget != nil {
		targetID = sc.LastTarget.ID
		targetName = sc.LastTarget.Name
	}

	_, err = s.db.Exec(
		`INSERT INTO sessions (session_id, last_target_id, last_target_name, last_library_size, history, history_cap, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
			last_target_id = excluded.last_target_id,
			last_target_name = excluded.last_target_name,
			last_library_size = excluded.last_library_size,
			history = excluded.history,
			history_cap = excluded.history_cap,
			updated_at = excluded.updated_at`,
		sc.SessionID, targetID, targetName, sc.LastLibrarySize,
		string(historyJSON), sc.HistoryCap, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving session %s: %w", sc.SessionID, err)
	}
	return nil
}

// Delete removes the stored context for the session.
func (s *Store) Delete(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session %s: %w", sessionID, err)
	}
	return nil
}
