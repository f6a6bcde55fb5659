package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"endgame-lab/internal/domain"
	"endgame-lab/internal/storage"
)

// StrategyAggregateStore is an in-memory implementation of storage.StrategyAggregateStore.
type StrategyAggregateStore struct {
	mu   sync.RWMutex
	data map[string]*domain.StrategyAggregate // keyed by composite key
}

// NewStrategyAggregateStore creates a new in-memory strategy aggregate store.
func NewStrategyAggregateStore() *StrategyAggregateStore {
	return &StrategyAggregateStore{
		data: make(map[string]*domain.StrategyAggregate),
	}
}

// aggregateKey generates a unique key for an aggregate.
func aggregateKey(runID, strategyID string) string {
	return fmt.Sprintf("%s|%s", runID, strategyID)
}

// copyAggregate returns a deep copy so callers cannot mutate stored values.
func copyAggregate(a *domain.StrategyAggregate) *domain.StrategyAggregate {
	aggCopy := *a
	if a.Resolutions != nil {
		aggCopy.Resolutions = make(map[string]int, len(a.Resolutions))
		for k, v := range a.Resolutions {
			aggCopy.Resolutions[k] = v
		}
	}
	return &aggCopy
}

// Insert adds a new aggregate. Returns ErrDuplicateKey if key exists.
func (s *StrategyAggregateStore) Insert(_ context.Context, a *domain.StrategyAggregate) error {
	if a == nil || a.RunID == "" || a.StrategyID == "" {
		return storage.ErrInvalidInput
	}

	key := aggregateKey(a.RunID, a.StrategyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[key] = copyAggregate(a)
	return nil
}

// GetByKey retrieves an aggregate by its composite key. Returns ErrNotFound if not exists.
func (s *StrategyAggregateStore) GetByKey(_ context.Context, runID, strategyID string) (*domain.StrategyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.data[aggregateKey(runID, strategyID)]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyAggregate(a), nil
}

// GetByRun retrieves all aggregates of a run, ordered as domain.StrategyTypes.
func (s *StrategyAggregateStore) GetByRun(_ context.Context, runID string) ([]*domain.StrategyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.StrategyAggregate
	for _, a := range s.data {
		if a.RunID == runID {
			result = append(result, copyAggregate(a))
		}
	}

	sortAggregates(result)
	return result, nil
}

// GetAll retrieves all aggregates.
func (s *StrategyAggregateStore) GetAll(_ context.Context) ([]*domain.StrategyAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.StrategyAggregate, 0, len(s.data))
	for _, a := range s.data {
		result = append(result, copyAggregate(a))
	}

	sortAggregates(result)
	return result, nil
}

// sortAggregates orders by run, then strategy report order, then strategy ID.
func sortAggregates(aggs []*domain.StrategyAggregate) {
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].RunID != aggs[j].RunID {
			return aggs[i].RunID < aggs[j].RunID
		}
		ri, rj := strategyRank(aggs[i].StrategyID), strategyRank(aggs[j].StrategyID)
		if ri != rj {
			return ri < rj
		}
		return aggs[i].StrategyID < aggs[j].StrategyID
	})
}

func strategyRank(strategyID string) int {
	for i, t := range domain.StrategyTypes {
		if t == strategyID {
			return i
		}
	}
	return len(domain.StrategyTypes)
}

var _ storage.StrategyAggregateStore = (*StrategyAggregateStore)(nil)
