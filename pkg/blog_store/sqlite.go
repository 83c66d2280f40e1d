package blogstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const busyTimeoutMillis = 5000

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS post_likes (
		post_id    TEXT NOT NULL,
		visitor_id TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (post_id, visitor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS post_saves (
		post_id    TEXT NOT NULL,
		visitor_id TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (post_id, visitor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_ideas (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		visitor_id   TEXT NOT NULL,
		topic        TEXT NOT NULL DEFAULT '',
		content_type TEXT NOT NULL DEFAULT '',
		tone         TEXT NOT NULL DEFAULT '',
		content      TEXT NOT NULL,
		created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		visitor_id TEXT NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		email      TEXT PRIMARY KEY COLLATE NOCASE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saves_visitor ON post_saves(visitor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ideas_visitor ON saved_ideas(visitor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_visitor ON chat_messages(visitor_id)`,
}

// SQLiteStore implements Store using modernc.org/sqlite (pure Go).
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Compile-time check that SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates a SQLite database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection to :memory: would see its own empty database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// sqliteDSN waits on a locked database instead of failing with SQLITE_BUSY.
// Transactions take the write lock at BEGIN.
func sqliteDSN(path string) string {
	return path + "?_pragma=busy_timeout(" + strconv.Itoa(busyTimeoutMillis) + ")&_txlock=immediate"
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ToggleLike flips the visitor's like on a post and returns the new state.
func (s *SQLiteStore) ToggleLike(ctx context.Context, postID, visitorID string) (LikeState, error) {
	var state LikeState

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		liked, err := toggleFlag(ctx, tx, "post_likes", postID, visitorID, s.now())
		if err != nil {
			return err
		}

		count, err := countLikes(ctx, tx, postID)
		if err != nil {
			return err
		}

		state = LikeState{Count: count, Liked: liked}
		return nil
	})

	return state, err
}

// LikeState returns the visitor's like flag and the post's like count.
func (s *SQLiteStore) LikeState(ctx context.Context, postID, visitorID string) (LikeState, error) {
	liked, err := hasFlag(ctx, s.db, "post_likes", postID, visitorID)
	if err != nil {
		return LikeState{}, err
	}

	count, err := countLikes(ctx, s.db, postID)
	if err != nil {
		return LikeState{}, err
	}

	return LikeState{Count: count, Liked: liked}, nil
}

// ToggleSave flips the visitor's saved flag on a post and returns it.
func (s *SQLiteStore) ToggleSave(ctx context.Context, postID, visitorID string) (bool, error) {
	var saved bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = toggleFlag(ctx, tx, "post_saves", postID, visitorID, s.now())
		return err
	})

	return saved, err
}

// IsSaved reports whether the visitor saved the post.
func (s *SQLiteStore) IsSaved(ctx context.Context, postID, visitorID string) (bool, error) {
	return hasFlag(ctx, s.db, "post_saves", postID, visitorID)
}

// ListSaved returns the ids of posts the visitor saved, newest first.
func (s *SQLiteStore) ListSaved(ctx context.Context, visitorID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT post_id FROM post_saves WHERE visitor_id = ? ORDER BY rowid DESC`,
		visitorID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saved posts: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// InsertIdea saves a generated idea and prunes the visitor's oldest ideas.
func (s *SQLiteStore) InsertIdea(ctx context.Context, idea Idea) error {
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = s.now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_ideas (id, visitor_id, topic, content_type, tone, content, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			idea.ID, idea.VisitorID, idea.Topic, idea.ContentType, idea.Tone, idea.Content, idea.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting idea: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM saved_ideas
			 WHERE visitor_id = ? AND seq NOT IN (
				SELECT seq FROM saved_ideas WHERE visitor_id = ? ORDER BY seq DESC LIMIT ?
			 )`,
			idea.VisitorID, idea.VisitorID, MaxIdeasPerVisitor,
		); err != nil {
			return fmt.Errorf("pruning ideas: %w", err)
		}

		return nil
	})
}

// ListIdeas returns the visitor's saved ideas, newest first.
func (s *SQLiteStore) ListIdeas(ctx context.Context, visitorID string) ([]Idea, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, visitor_id, topic, content_type, tone, content, created_at
		 FROM saved_ideas WHERE visitor_id = ? ORDER BY seq DESC`,
		visitorID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}
	defer rows.Close()

	ideas := []Idea{}
	for rows.Next() {
		var idea Idea
		if err := rows.Scan(
			&idea.ID, &idea.VisitorID, &idea.Topic, &idea.ContentType,
			&idea.Tone, &idea.Content, &idea.CreatedAt,
		); err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}

	return ideas, rows.Err()
}

// DeleteIdea removes one of the visitor's saved ideas.
func (s *SQLiteStore) DeleteIdea(ctx context.Context, visitorID, ideaID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_ideas WHERE visitor_id = ? AND id = ?`,
		visitorID, ideaID,
	)
	if err != nil {
		return fmt.Errorf("deleting idea: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// InsertChatMessage appends a message to the visitor's chat history.
func (s *SQLiteStore) InsertChatMessage(ctx context.Context, message ChatMessage) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (visitor_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		message.VisitorID, message.Role, message.Content, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}

	return nil
}

// ListChatMessages returns up to limit of the most recent messages, oldest first.
func (s *SQLiteStore) ListChatMessages(ctx context.Context, visitorID string, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT visitor_id, role, content, created_at FROM (
			SELECT id, visitor_id, role, content, created_at FROM chat_messages
			WHERE visitor_id = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		visitorID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	messages := []ChatMessage{}
	for rows.Next() {
		var message ChatMessage
		if err := rows.Scan(&message.VisitorID, &message.Role, &message.Content, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

// DeleteChatMessages clears the visitor's chat history.
func (s *SQLiteStore) DeleteChatMessages(ctx context.Context, visitorID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE visitor_id = ?`, visitorID)
	if err != nil {
		return fmt.Errorf("deleting chat messages: %w", err)
	}

	return nil
}

// Subscribe adds an address to the newsletter and reports whether it was new.
func (s *SQLiteStore) Subscribe(ctx context.Context, email string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO newsletter_subscribers (email, created_at) VALUES (?, ?)`,
		strings.TrimSpace(email), s.now(),
	)
	if err != nil {
		return false, fmt.Errorf("subscribing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			return errors.Join(err, rollbackErr)
		}
		return err
	}

	return tx.Commit()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// table is always one of the package's own table names.
func hasFlag(ctx context.Context, q queryer, table, postID, visitorID string) (bool, error) {
	var exists int
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE post_id = ? AND visitor_id = ?)`,
		postID, visitorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", table, err)
	}

	return exists == 1, nil
}

func toggleFlag(ctx context.Context, tx *sql.Tx, table, postID, visitorID string, now time.Time) (bool, error) {
	set, err := hasFlag(ctx, tx, table, postID, visitorID)
	if err != nil {
		return false, err
	}

	if set {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE post_id = ? AND visitor_id = ?`,
			postID, visitorID,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+table+` (post_id, visitor_id, created_at) VALUES (?, ?, ?)`,
			postID, visitorID, now,
		)
	}

	if err != nil {
		return false, fmt.Errorf("toggling %s: %w", table, err)
	}

	return !set, nil
}

func countLikes(ctx context.Context, q queryer, postID string) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = ?`, postID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting likes: %w", err)
	}

	return count, nil
}
