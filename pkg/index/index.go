package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ev-ko/await/pkg/await/future"
)

// MaxTextLen bounds a single entry. Larger texts fail the returned
// future instead of bloating the store.
const MaxTextLen = 1 << 20

var (
	ErrEmptyText = errors.New("index: empty text")
	ErrTooLarge  = errors.New("index: text exceeds maximum length")
	ErrClosed    = errors.New("index: indexer is closed")
)

// Entry is one indexed text.
type Entry struct {
	ID        uuid.UUID
	Text      string
	IndexedAt time.Time
}

// Indexer stores texts in a SQLite database. All writes and reads go
// through a single worker goroutine, so callers get their results as
// futures rather than blocking on the store.
type Indexer struct {
	db   *sql.DB
	path string
	log  *zap.Logger

	mu     sync.RWMutex
	closed bool
	reqs   chan func()
	done   chan struct{}
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	indexed_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_indexed_at ON entries (indexed_at);
`

// Open creates or opens the index database under dataDir and starts the
// worker. A nil logger disables logging.
func Open(dataDir string, log *zap.Logger) (*Indexer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "index.db")

	// WAL for concurrent readers while the worker writes
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	ix := &Indexer{
		db:   db,
		path: dbPath,
		log:  log,
		reqs: make(chan func(), 64),
		done: make(chan struct{}),
	}
	go ix.run()

	return ix, nil
}

// Path returns the database file path.
func (ix *Indexer) Path() string {
	return ix.path
}

func (ix *Indexer) run() {
	defer close(ix.done)

	for req := range ix.reqs {
		req()
	}
}

// submit queues work for the worker. It reports false once the indexer
// has been closed. The read lock spans the send so Close cannot close
// the queue underneath an in-flight submission.
func (ix *Indexer) submit(req func()) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return false
	}
	ix.reqs <- req
	return true
}

// Add indexes text and returns a future settling to the stored Entry.
// The future fails with ErrEmptyText or ErrTooLarge for unusable input,
// with ErrClosed when the indexer is shut down, and with the caller's
// ctx error when ctx expires before the worker reaches the request.
func (ix *Indexer) Add(ctx context.Context, text string) *future.Future[Entry] {
	f := future.Deferred[Entry]()

	if strings.TrimSpace(text) == "" {
		f.Reject(ErrEmptyText)
		return f
	}
	if len(text) > MaxTextLen {
		f.Reject(ErrTooLarge)
		return f
	}

	ok := ix.submit(func() {
		if ctx.Err() != nil {
			f.Reject(ctx.Err())
			return
		}

		entry := Entry{
			ID:        uuid.New(),
			Text:      text,
			IndexedAt: time.Now().UTC(),
		}

		start := time.Now()
		_, err := ix.db.ExecContext(ctx,
			`INSERT INTO entries (id, text, indexed_at) VALUES (?, ?, ?)`,
			entry.ID.String(), entry.Text, entry.IndexedAt)
		if err != nil {
			ix.log.Error("index add failed", zap.Error(err))
			f.Reject(fmt.Errorf("inserting entry: %w", err))
			return
		}

		if d := time.Since(start); d > 100*time.Millisecond {
			ix.log.Warn("slow index add", zap.Duration("took", d))
		}
		f.Resolve(entry)
	})
	if !ok {
		f.Reject(ErrClosed)
	}

	return f
}

// Search returns a future settling to the entries whose text contains
// term, most recent first.
func (ix *Indexer) Search(ctx context.Context, term string) *future.Future[[]Entry] {
	f := future.Deferred[[]Entry]()

	ok := ix.submit(func() {
		if ctx.Err() != nil {
			f.Reject(ctx.Err())
			return
		}

		rows, err := ix.db.QueryContext(ctx,
			`SELECT id, text, indexed_at FROM entries
			 WHERE text LIKE '%' || ? || '%'
			 ORDER BY indexed_at DESC`, term)
		if err != nil {
			ix.log.Error("index search failed", zap.Error(err))
			f.Reject(fmt.Errorf("searching entries: %w", err))
			return
		}
		defer rows.Close()

		var entries []Entry
		for rows.Next() {
			var e Entry
			var id string
			if err := rows.Scan(&id, &e.Text, &e.IndexedAt); err != nil {
				f.Reject(fmt.Errorf("scanning entry: %w", err))
				return
			}
			if e.ID, err = uuid.Parse(id); err != nil {
				f.Reject(fmt.Errorf("parsing entry id: %w", err))
				return
			}
			entries = append(entries, e)
		}
		if err := rows.Err(); err != nil {
			f.Reject(fmt.Errorf("reading entries: %w", err))
			return
		}
		f.Resolve(entries)
	})
	if !ok {
		f.Reject(ErrClosed)
	}

	return f
}

// Close drains queued requests, stops the worker and closes the
// database. Submissions after Close fail with ErrClosed.
func (ix *Indexer) Close() error {
	ix.mu.Lock()
	if ix.closed {
		ix.mu.Unlock()
		return nil
	}
	ix.closed = true
	ix.mu.Unlock()

	close(ix.reqs)
	<-ix.done
	return ix.db.Close()
}
