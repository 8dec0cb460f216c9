package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gymhabit/internal/logger"
)

// requestLog is the JSON backing-file shape, kept compatible with the
// files the original admin tooling reads.
type requestLog struct {
	Requests []Request `json:"requests"`
}

// FileRepository is the append-only inquiry log, backed by a JSON file.
// The mutex covers both the slice and the file, same discipline as the
// catalog repository.
type FileRepository struct {
	path string

	mu       sync.RWMutex
	requests []Request

	now func() time.Time
}

func NewRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
		now:  time.Now,
	}
}

// Load reads the backing file into memory, creating an empty log when the
// file does not exist yet.
func (r *FileRepository) Load(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.mu.Lock()
		r.requests = nil
		r.mu.Unlock()
		return writeJSONFile(r.path, requestLog{Requests: []Request{}})
	}
	if err != nil {
		return err
	}

	var log requestLog
	if err := json.Unmarshal(data, &log); err != nil {
		return fmt.Errorf("malformed request log %s: %w", r.path, err)
	}

	r.mu.Lock()
	r.requests = log.Requests
	r.mu.Unlock()

	logger.Info("request log loaded", "path", r.path, "requests", len(log.Requests))
	return nil
}

// Append assigns the request id and timestamp, persists, and returns the
// stored record. Ids are REQ_<date>_<NNN> with a per-day counter.
func (r *FileRepository) Append(ctx context.Context, req Request) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	req.RequestID = r.nextIDLocked(now)
	req.Timestamp = now.Format("2006-01-02T15:04:05.000000")
	req.Status = StatusPending

	next := make([]Request, len(r.requests), len(r.requests)+1)
	copy(next, r.requests)
	next = append(next, req)

	if err := writeJSONFile(r.path, requestLog{Requests: next}); err != nil {
		return nil, err
	}
	r.requests = next

	logger.Info("inquiry saved", "request_id", req.RequestID, "gym_id", req.GymID)
	return &req, nil
}

func (r *FileRepository) nextIDLocked(now time.Time) string {
	prefix := "REQ_" + now.Format("20060102")
	count := 0
	for _, req := range r.requests {
		if strings.HasPrefix(req.RequestID, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s_%03d", prefix, count+1)
}

// All returns every stored request in insertion order.
func (r *FileRepository) All(ctx context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *FileRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requests)
}

// writeJSONFile serializes the whole log via temp-then-rename, matching
// the original's two-space indentation.
func writeJSONFile(path string, log requestLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".requests-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
