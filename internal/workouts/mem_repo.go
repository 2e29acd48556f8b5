package workouts

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ workoutsRepo = (*Repo)(nil)
var _ workoutsRepo = (*MemRepo)(nil)

// MemRepo keeps records in memory. Used in tests and by the
// service when started with the in-memory store.
type MemRepo struct {
	mutex   sync.Mutex
	records map[int64]Record
	lastID  int64
	now     func() time.Time
}

func NewMemRepo() *MemRepo {
	return &MemRepo{
		records: make(map[int64]Record),
		now:     time.Now,
	}
}

func (r *MemRepo) Add(_ context.Context, newRecord NewRecord) (*Record, error) {
	if err := newRecord.Validate(); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	record := newRecord.toRecord(r.now())
	r.lastID++
	record.ID = r.lastID
	r.records[record.ID] = record

	return &record, nil
}

func (r *MemRepo) Delete(_ context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *MemRepo) List(_ context.Context) ([]Record, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	records := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date.Equal(records[j].Date) {
			return records[i].ID > records[j].ID
		}
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (r *MemRepo) Count(_ context.Context) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.records), nil
}
