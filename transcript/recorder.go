// Copyright 2026 Textmode contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: transcript/recorder.go
// Summary: SQLite-backed capture of everything printed to the console.
//
// The recorder mirrors the global sink (vga.MirrorTo) into a line-oriented
// transcript with timestamps. Lines are batched through a channel and
// flushed asynchronously so capture never slows the write path. The
// display grid itself stays ephemeral; the transcript is diagnostic
// capture, not display state.

package transcript

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Config holds recorder tuning.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// BatchSize is the number of lines to accumulate before flushing.
	// Default: 64
	BatchSize int

	// BatchTimeout is how long to wait before flushing a partial batch.
	// Default: 2s
	BatchTimeout time.Duration

	// ChannelBuffer is the size of the async line channel.
	// Default: 256
	ChannelBuffer int
}

// DefaultConfig returns sensible defaults for path.
func DefaultConfig(path string) Config {
	return Config{
		DBPath:        path,
		BatchSize:     64,
		BatchTimeout:  2 * time.Second,
		ChannelBuffer: 256,
	}
}

// Line is one captured console line.
type Line struct {
	Seq       int64
	Timestamp time.Time
	Text      string
}

type entry struct {
	ts   time.Time
	text string
}

// Recorder captures console output lines into SQLite. It implements
// io.Writer so it plugs straight into vga.MirrorTo.
type Recorder struct {
	config Config
	db     *sql.DB

	lineCh  chan entry
	stopCh  chan struct{}
	doneCh  chan struct{}
	flushCh chan chan struct{}

	mu      sync.Mutex
	pending []byte // bytes of the not-yet-terminated current line
}

// NewRecorder opens (creating if needed) the transcript database and
// starts the batch writer.
func NewRecorder(cfg Config) (*Recorder, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 2 * time.Second
	}
	if cfg.ChannelBuffer <= 0 {
		cfg.ChannelBuffer = 256
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open transcript db: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS lines (
			seq  INTEGER PRIMARY KEY AUTOINCREMENT,
			ts   INTEGER NOT NULL,
			text TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_lines_ts ON lines(ts);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create transcript schema: %w", err)
	}

	r := &Recorder{
		config:  cfg,
		db:      db,
		lineCh:  make(chan entry, cfg.ChannelBuffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		flushCh: make(chan chan struct{}),
	}
	go r.batchLoop()
	return r, nil
}

// Write accepts raw console bytes, slicing them into lines at newlines.
// A full channel drops lines rather than stalling the console; Write
// always reports success, matching the sink it mirrors.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, b := range p {
		if b == '\n' {
			line := entry{ts: now, text: string(r.pending)}
			r.pending = r.pending[:0]
			select {
			case r.lineCh <- line:
			default:
			}
			continue
		}
		r.pending = append(r.pending, b)
	}
	return len(p), nil
}

// batchLoop accumulates lines and writes them in transactions.
func (r *Recorder) batchLoop() {
	defer close(r.doneCh)

	batch := make([]entry, 0, r.config.BatchSize)
	timer := time.NewTimer(r.config.BatchTimeout)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		r.insertBatch(batch)
		batch = batch[:0]
	}

	for {
		select {
		case line := <-r.lineCh:
			batch = append(batch, line)
			if len(batch) >= r.config.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
			timer.Reset(r.config.BatchTimeout)
		case ack := <-r.flushCh:
			for {
				select {
				case line := <-r.lineCh:
					batch = append(batch, line)
					continue
				default:
				}
				break
			}
			flush()
			close(ack)
		case <-r.stopCh:
			for {
				select {
				case line := <-r.lineCh:
					batch = append(batch, line)
					continue
				default:
				}
				break
			}
			flush()
			return
		}
	}
}

func (r *Recorder) insertBatch(batch []entry) {
	tx, err := r.db.Begin()
	if err != nil {
		return
	}
	stmt, err := tx.Prepare(`INSERT INTO lines(ts, text) VALUES(?, ?)`)
	if err != nil {
		tx.Rollback()
		return
	}
	for _, e := range batch {
		stmt.Exec(e.ts.UnixMicro(), e.text)
	}
	stmt.Close()
	tx.Commit()
}

// Flush blocks until all queued lines are written.
func (r *Recorder) Flush() error {
	ack := make(chan struct{})
	select {
	case r.flushCh <- ack:
		<-ack
		return nil
	case <-r.doneCh:
		return fmt.Errorf("recorder closed")
	}
}

// Tail returns the most recent limit lines, newest first.
func (r *Recorder) Tail(limit int) ([]Line, error) {
	rows, err := r.db.Query(
		`SELECT seq, ts, text FROM lines ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		var ts int64
		if err := rows.Scan(&l.Seq, &ts, &l.Text); err != nil {
			return nil, err
		}
		l.Timestamp = time.UnixMicro(ts)
		out = append(out, l)
	}
	return out, rows.Err()
}

// Close flushes pending lines, including any unterminated partial line,
// and closes the database.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if len(r.pending) > 0 {
		select {
		case r.lineCh <- entry{ts: time.Now(), text: string(r.pending)}:
		default:
		}
		r.pending = nil
	}
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
	return r.db.Close()
}
