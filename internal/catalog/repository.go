package catalog

import (
	"context"
	"os"
	"sort"
	"sync"
	"time"

	"gymhabit/internal/logger"
	"gymhabit/internal/validation"
)

// FileRepository holds the whole catalog in memory, backed by a CSV file.
// A single RWMutex guards both the slice and the file: mutations hold the
// write lock across the in-memory change and the file rewrite, reads copy
// out under the read lock.
type FileRepository struct {
	path string

	mu   sync.RWMutex
	gyms []Gym

	now func() time.Time
}

func NewRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
		now:  time.Now,
	}
}

// Load reads the backing CSV into memory. A missing file is a warning,
// not an error (empty catalog). Rows that parse but violate field rules
// are skipped with a warning; their ids stay reserved so the remaining
// ids are stable.
func (r *FileRepository) Load(ctx context.Context) (int, error) {
	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		logger.Warn("catalog file not found, starting empty", "path", r.path)
		r.mu.Lock()
		r.gyms = nil
		r.mu.Unlock()
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer file.Close()

	parsed, err := ParseCSV(file)
	if err != nil {
		return 0, err
	}

	gyms := make([]Gym, 0, len(parsed))
	for _, g := range parsed {
		if err := validation.Struct(g); err != nil {
			logger.Warn("skipping invalid catalog row", "id", g.ID, "gym", g.GymName, "error", err)
			continue
		}
		gyms = append(gyms, g)
	}

	r.mu.Lock()
	r.gyms = gyms
	r.mu.Unlock()

	logger.Info("catalog loaded", "path", r.path, "gyms", len(gyms), "skipped", len(parsed)-len(gyms))
	return len(gyms), nil
}

// Partners returns distinct partner names with per-partner gym counts, in
// first-seen order.
func (r *FileRepository) Partners(ctx context.Context) ([]PartnerCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := make(map[string]int)
	var partners []PartnerCount
	for _, g := range r.gyms {
		if i, ok := index[g.PartnerName]; ok {
			partners[i].Count++
			continue
		}
		index[g.PartnerName] = len(partners)
		partners = append(partners, PartnerCount{Name: g.PartnerName, Count: 1})
	}
	return partners, nil
}

// ByPartner returns gyms whose partner name equals partner exactly.
// Empty partner means the whole catalog.
func (r *FileRepository) ByPartner(ctx context.Context, partner string) ([]Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Gym, 0, len(r.gyms))
	for _, g := range r.gyms {
		if partner == "" || g.PartnerName == partner {
			out = append(out, g)
		}
	}
	return out, nil
}

// Nearby ranks candidate gyms by haversine distance from the query point.
// The sort is stable, so equidistant gyms keep insertion order.
func (r *FileRepository) Nearby(ctx context.Context, lat, lon float64, partner string, limit int) ([]GymWithDistance, error) {
	candidates, err := r.ByPartner(ctx, partner)
	if err != nil {
		return nil, err
	}

	out := make([]GymWithDistance, 0, len(candidates))
	for _, g := range candidates {
		out = append(out, GymWithDistance{
			Gym:      g,
			Distance: Distance(lat, lon, g.Latitude, g.Longitude),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *FileRepository) ByID(ctx context.Context, id int) (*Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.gyms {
		if g.ID == id {
			found := g
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Add assigns the next unused id, appends in memory and rewrites the CSV.
// The in-memory slice is only swapped after the file write succeeds.
func (r *FileRepository) Add(ctx context.Context, g Gym) (*Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.gyms {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	g.ID = maxID + 1

	next := make([]Gym, len(r.gyms), len(r.gyms)+1)
	copy(next, r.gyms)
	next = append(next, g)

	if err := writeCSVFile(r.path, next); err != nil {
		return nil, err
	}
	r.gyms = next

	logger.Info("gym added", "id", g.ID, "gym", g.GymName, "partner", g.PartnerName)
	return &g, nil
}

func (r *FileRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, g := range r.gyms {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	next := make([]Gym, 0, len(r.gyms)-1)
	next = append(next, r.gyms[:idx]...)
	next = append(next, r.gyms[idx+1:]...)

	if err := writeCSVFile(r.path, next); err != nil {
		return err
	}
	r.gyms = next

	logger.Info("gym deleted", "id", id)
	return nil
}

// ReplaceAll swaps the entire catalog. Ids are reassigned by position.
// The previous backing file is copied to a timestamped backup before the
// overwrite. Callers validate the incoming set first; by the time this
// runs the replace is committed as a unit.
func (r *FileRepository) ReplaceAll(ctx context.Context, gyms []Gym) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Gym, len(gyms))
	copy(next, gyms)
	for i := range next {
		next[i].ID = i + 1
	}

	backup, err := backupCSVFile(r.path, r.now())
	if err != nil {
		return 0, err
	}
	if backup != "" {
		logger.Info("catalog backup created", "path", backup)
	}

	if err := writeCSVFile(r.path, next); err != nil {
		return 0, err
	}
	r.gyms = next

	logger.Info("catalog replaced", "gyms", len(next))
	return len(next), nil
}

func (r *FileRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.gyms)
}
