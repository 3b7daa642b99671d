package cache

import (
	"context"
	"time"
)

// Cache là contract của cache layer
// Repository chỉ phụ thuộc interface này nên có thể thay Redis bằng in-memory hoặc no-op
type Cache interface {
	// Get đọc value theo key rồi unmarshal vào dest.
	// Cache miss → found = false, dest giữ nguyên.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu value (marshal JSON) với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xoá các key
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern xoá mọi key match glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}

// Noop dùng khi cache bị disable hoặc Redis không available
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }
func (Noop) DeletePattern(context.Context, string) error { return nil }
func (Noop) Ping(context.Context) error { return nil }
