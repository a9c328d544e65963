// Package usage counts the emoji a user sends so pickers can offer the ones
// used most.
package usage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graytonio/slackmoji/lib/emoji"
)

const schema = `
create table if not exists emoji_usage (
	glyph     text primary key,
	count     integer not null default 0,
	last_used integer not null
);`

// Entry is the usage of one emoji.
type Entry struct {
	Glyph    string
	Count    int
	LastUsed time.Time
}

// Store keeps usage counts in a sqlite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	logrus.WithField("path", path).Debug("opening usage db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open usage db %s", path)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create usage schema")
	}

	return &Store{db: db, now: time.Now}, nil
}

// Record counts every emoji found in text once per appearance.
func (s *Store) Record(ctx context.Context, text string) error {
	emojis := emoji.ExtractEmoji(text)
	if len(emojis) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := s.now().Unix()
	for _, e := range emojis {
		logrus.WithField("emoji", e).Debug("recording emoji usage")
		_, err := tx.ExecContext(ctx, `
			insert into emoji_usage (glyph, count, last_used) values (?, 1, ?)
			on conflict(glyph) do update set count = count + 1, last_used = excluded.last_used`,
			e, now)
		if err != nil {
			return errors.Wrapf(err, "failed to record %s", e)
		}
	}

	return tx.Commit()
}

// Top returns up to limit entries, most used first. Ties go to the most
// recently used.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		select glyph, count, last_used from emoji_usage
		order by count desc, last_used desc, glyph
		limit ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var lastUsed int64
		if err := rows.Scan(&e.Glyph, &e.Count, &lastUsed); err != nil {
			return nil, err
		}
		e.LastUsed = time.Unix(lastUsed, 0)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Reset forgets all recorded usage.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "delete from emoji_usage")
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
