package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
)

type RecordRepository struct {
	mu      sync.RWMutex
	records []league.Record
}

func NewRecordRepository(records []league.Record) *RecordRepository {
	out := make([]league.Record, len(records))
	copy(out, records)

	return &RecordRepository{records: out}
}

func (r *RecordRepository) ReplaceAll(_ context.Context, records []league.Record) error {
	out := make([]league.Record, len(records))
	copy(out, records)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = out
	return nil
}

func (r *RecordRepository) ListRecords(_ context.Context) ([]league.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}
