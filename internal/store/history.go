package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/logging"
	"jalali-picker/internal/numeral"
	"jalali-picker/internal/picker"

	_ "modernc.org/sqlite"
)

var (
	ErrIncompleteDate = errors.New("only complete dates can be recorded")
	ErrDayOutOfRange  = errors.New("day is outside its month")
)

// Entry is one committed selection.
type Entry struct {
	ID        int64       `json:"id"`
	Date      picker.Date `json:"date"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (s Store) openHistory(ctx context.Context) (*sql.DB, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.historyPath())
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateHistory(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateHistory(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			year_value INTEGER NOT NULL,
			year_text TEXT NOT NULL,
			month_index INTEGER NOT NULL CHECK (month_index BETWEEN 0 AND 11),
			day_value INTEGER NOT NULL,
			day_text TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_selections_created ON selections(created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}

// Record appends a complete date to the selection history.
func (s Store) Record(ctx context.Context, d picker.Date) (Entry, error) {
	if !d.Complete() {
		return Entry{}, ErrIncompleteDate
	}
	days, err := calendar.DaysInMonth(*d.Month, d.Year.Value)
	if err != nil {
		return Entry{}, err
	}
	if d.Day.Value < 1 || d.Day.Value > days {
		return Entry{}, fmt.Errorf("%w: day %d, %s %d has %d days", ErrDayOutOfRange, d.Day.Value, d.Month.Latin(), d.Year.Value, days)
	}
	db, err := s.openHistory(ctx)
	if err != nil {
		return Entry{}, err
	}
	defer db.Close()

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx,
		`INSERT INTO selections(year_value, year_text, month_index, day_value, day_text, created_at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		d.Year.Value, d.Year.String(), int(*d.Month), d.Day.Value, d.Day.String(), now.UnixMilli(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record selection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, err
	}
	logging.Logger(ctx).Debug("recorded selection", "id", id, "date", d.String())
	return Entry{ID: id, Date: d, CreatedAt: time.UnixMilli(now.UnixMilli()).UTC()}, nil
}

// History returns up to limit entries, newest first. limit <= 0 means all.
func (s Store) History(ctx context.Context, limit int) ([]Entry, error) {
	db, err := s.openHistory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, year_value, year_text, month_index, day_value, day_text, created_at_unixms
		FROM selections ORDER BY id DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			id, createdMS       int64
			yearValue, dayValue int
			monthIndex          int
			yearText, dayText   string
		)
		if err := rows.Scan(&id, &yearValue, &yearText, &monthIndex, &dayValue, &dayText, &createdMS); err != nil {
			return nil, err
		}
		m := calendar.Month(monthIndex)
		out = append(out, Entry{
			ID: id,
			Date: picker.Date{
				Year:  &numeral.Numeral{Value: yearValue, Text: yearText},
				Month: &m,
				Day:   &numeral.Numeral{Value: dayValue, Text: dayText},
			},
			CreatedAt: time.UnixMilli(createdMS).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logging.Logger(ctx).Debug("read history", "entries", len(out), "limit", limit)
	return out, nil
}

// Last returns the most recently recorded date, if any.
func (s Store) Last(ctx context.Context) (picker.Date, bool, error) {
	entries, err := s.History(ctx, 1)
	if err != nil || len(entries) == 0 {
		return picker.Date{}, false, err
	}
	return entries[0].Date, true, nil
}
