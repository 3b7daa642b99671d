package testutil

import (
	"context"
	"sync"
)

// TxManager runs the unit of work directly and records how it was invoked.
type TxManager struct {
	mu            sync.Mutex
	ReadWrite     int
	ReadOnly      int
	CommitErr     error
	lastCommitted bool
}

func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.ReadWrite++
	m.mu.Unlock()
	return m.run(ctx, fn)
}

func (m *TxManager) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.ReadOnly++
	m.mu.Unlock()
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		err = m.CommitErr
	}

	m.mu.Lock()
	m.lastCommitted = err == nil
	m.mu.Unlock()
	return err
}

// Committed reports whether the last unit of work ended without error.
func (m *TxManager) Committed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCommitted
}
