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

// cachedRepository adds cache-aside to the shallow author lookup.
// The cache is bypassed inside transactions so reads there see the transaction's snapshot.
// Invalidation waits for commit; a reader racing the transaction could otherwise
// refill the cache with the pre-commit row.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if database.InTransaction(ctx) {
		return r.RepositoryInterface.FindByID(ctx, id)
	}

	key := model.AuthorCacheKey(id)

	var a model.Author
	hit, err := r.cache.Get(ctx, key, &a)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache read failed")
	}
	if hit {
		return &a, nil
	}

	found, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	if err := r.cache.Set(ctx, key, found, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache write failed")
	}
	return found, nil
}

func (r *cachedRepository) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	saved, err := r.RepositoryInterface.Save(ctx, a)
	if err != nil {
		return nil, err
	}

	id, replacedBooks := a.ID, a.Books != nil
	database.AfterCommit(ctx, func(ctx context.Context) {
		r.invalidate(ctx, id)
		// Replaced books are gone from the store; drop every cached book.
		if replacedBooks {
			if err := r.cache.DeletePattern(ctx, model.BookCachePattern); err != nil {
				log.Warn().Err(err).Msg("book cache invalidation failed")
			}
		}
	})
	return saved, nil
}

func (r *cachedRepository) Delete(ctx context.Context, a *model.Author) error {
	if err := r.RepositoryInterface.Delete(ctx, a); err != nil {
		return err
	}
	id := a.ID
	database.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, id) })
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, model.AuthorCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("author cache invalidation failed")
	}
}
