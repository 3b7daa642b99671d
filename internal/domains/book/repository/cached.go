package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/database"
)

// cachedRepository adds cache-aside to the shallow book lookup.
// Entries are dropped only after the surrounding transaction commits.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if database.InTransaction(ctx) {
		return r.RepositoryInterface.FindByID(ctx, id)
	}

	key := model.BookCacheKey(id)

	var b model.Book
	hit, err := r.cache.Get(ctx, key, &b)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache read failed")
	}
	if hit {
		return &b, nil
	}

	found, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	if err := r.cache.Set(ctx, key, found, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache write failed")
	}
	return found, nil
}

func (r *cachedRepository) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	saved, err := r.RepositoryInterface.Save(ctx, b)
	if err != nil {
		return nil, err
	}
	id := b.ID
	database.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, id) })
	return saved, nil
}

func (r *cachedRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.RepositoryInterface.DeleteByID(ctx, id); err != nil {
		return err
	}
	database.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, id) })
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, model.BookCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("book cache invalidation failed")
	}
}
