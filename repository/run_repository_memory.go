package repository

import (
	"sync"

	"loan-optimizer/domain"
)

// RunRepositoryMemory is an in-memory implementation of RunRepository.
// Safe for concurrent handlers.
type RunRepositoryMemory struct {
	mu   sync.Mutex
	runs []domain.OptimizationRun
}

// NewRunRepositoryMemory creates a new in-memory run repository.
func NewRunRepositoryMemory() *RunRepositoryMemory {
	return &RunRepositoryMemory{
		runs: []domain.OptimizationRun{},
	}
}

// Save stores the optimization run in memory.
func (r *RunRepositoryMemory) Save(run domain.OptimizationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

// List returns the stored runs, newest first.
func (r *RunRepositoryMemory) List() ([]domain.OptimizationRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.OptimizationRun, len(r.runs))
	for i, run := range r.runs {
		out[len(r.runs)-1-i] = run
	}
	return out, nil
}
