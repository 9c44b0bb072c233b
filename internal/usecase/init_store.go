package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct{}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	Path    string // Task file path
	Created bool   // False when the file already existed
}

// InitStore creates an empty task file.
type InitStore struct {
	storeInit domain.StoreInitializer
	store     domain.TaskStore
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, store domain.TaskStore) *InitStore {
	return &InitStore{storeInit: storeInit, store: store}
}

// Execute creates the task file if it doesn't exist.
func (uc *InitStore) Execute(_ context.Context, _ InitStoreInput) (*InitStoreOutput, error) {
	created, err := uc.storeInit.Initialize()
	if err != nil {
		return nil, fmt.Errorf("initialize task store: %w", err)
	}
	return &InitStoreOutput{Path: uc.store.Path(), Created: created}, nil
}
