// Package trace records the progress of an annealing run as JSON lines.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cwbudde/anneal/internal/anneal"
)

// FileName is the name of the trace file inside a run directory.
const FileName = "trace.jsonl"

// ErrNotFound is returned when a run has no trace file.
var ErrNotFound = errors.New("trace not found")

// Entry is one line of trace.jsonl and describes a single outer iteration.
type Entry struct {
	RunID       string    `json:"runId"`
	Epoch       int       `json:"epoch"`
	Temperature float64   `json:"temperature"`
	Energy      float64   `json:"energy"`
	Accepted    int       `json:"accepted"`
	Rejected    int       `json:"rejected"`
	Cooled      bool      `json:"cooled"`
	Timestamp   time.Time `json:"timestamp"`
}

// RunDir returns the directory holding the artifacts of a run.
func RunDir(baseDir, runID string) string {
	return filepath.Join(baseDir, "runs", runID)
}

// Writer is an anneal.Observer that writes one entry per epoch to a JSONL
// file. It buffers output and is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	runID  string
	file   *os.File
	writer *bufio.Writer
	path   string
	err    error
	now    func() time.Time
}

var _ anneal.Observer = (*Writer)(nil)

// NewWriter creates <baseDir>/runs/<runID>/trace.jsonl, truncating any
// existing trace for the same run.
func NewWriter(baseDir, runID string) (*Writer, error) {
	if runID == "" {
		return nil, fmt.Errorf("runID cannot be empty")
	}

	dir := RunDir(baseDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	return &Writer{
		runID:  runID,
		file:   file,
		writer: bufio.NewWriterSize(file, 64*1024),
		path:   path,
		now:    time.Now,
	}, nil
}

func (w *Writer) write(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal trace entry: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	return nil
}

// ObserveEpoch records an engine epoch. The engine cannot handle errors, so
// the first failure is kept and reported by Close.
func (w *Writer) ObserveEpoch(e anneal.Epoch) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return
	}
	w.err = w.write(Entry{
		RunID:       w.runID,
		Epoch:       e.Index,
		Temperature: e.Temperature,
		Energy:      e.Energy,
		Accepted:    e.Accepted,
		Rejected:    e.Rejected,
		Cooled:      e.Cooled,
		Timestamp:   w.now(),
	})
}

// Close flushes and closes the file. It also reports an earlier observe error.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush on close: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return w.err
}

// Path returns the filesystem path of the trace file.
func (w *Writer) Path() string {
	return w.path
}

// Reader reads trace entries back from a JSONL file.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// NewReader opens the trace of the given run.
func NewReader(baseDir, runID string) (*Reader, error) {
	path := filepath.Join(RunDir(baseDir, runID), FileName)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	return &Reader{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// Read returns the next entry, or io.EOF at the end of the file.
func (r *Reader) Read() (*Entry, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to scan trace line: %w", err)
		}
		return nil, io.EOF
	}

	var entry Entry
	if err := json.Unmarshal(r.scanner.Bytes(), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace entry: %w", err)
	}
	return &entry, nil
}

// ReadAll reads every remaining entry.
func (r *Reader) ReadAll() ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := r.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}
