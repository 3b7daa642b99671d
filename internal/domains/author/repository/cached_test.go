package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/testutil"
	"bookstore-catalog/pkg/database"
)

func TestCachedRepository_ShallowLookupIsCached(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	next.On("FindByID", ctx, a.ID).Return(a, nil).Once()

	for i := 0; i < 3; i++ {
		found, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "John", found.Name)
		assert.Nil(t, found.Books)
	}
	next.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestCachedRepository_FullLookupBypassesCache(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe", Books: []*model.Book{}}
	next.On("FindByIDWithBooks", ctx, a.ID).Return(a, nil)

	_, err := repo.FindByIDWithBooks(ctx, a.ID)
	require.NoError(t, err)
	_, err = repo.FindByIDWithBooks(ctx, a.ID)
	require.NoError(t, err)

	next.AssertNumberOfCalls(t, "FindByIDWithBooks", 2)
	assert.False(t, c.Has(model.AuthorCacheKey(a.ID)))
}

func TestCachedRepository_SaveWithBooksDropsCachedBooks(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	bookID := uuid.New()
	require.NoError(t, c.Set(ctx, model.AuthorCacheKey(a.ID), a, time.Minute))
	require.NoError(t, c.Set(ctx, model.BookCacheKey(bookID), &model.Book{ID: bookID}, time.Minute))

	next.On("Save", ctx, a).Return(testutil.EchoAuthor, nil)

	// Without books only the author entry goes.
	_, err := repo.Save(ctx, a)
	require.NoError(t, err)
	assert.False(t, c.Has(model.AuthorCacheKey(a.ID)))
	assert.True(t, c.Has(model.BookCacheKey(bookID)))

	a.Books = []*model.Book{}
	_, err = repo.Save(ctx, a)
	require.NoError(t, err)
	assert.False(t, c.Has(model.BookCacheKey(bookID)))
}

func TestCachedRepository_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	require.NoError(t, c.Set(ctx, model.AuthorCacheKey(a.ID), a, time.Minute))
	next.On("Delete", ctx, a).Return(nil)

	require.NoError(t, repo.Delete(ctx, a))
	assert.False(t, c.Has(model.AuthorCacheKey(a.ID)))
}

func TestCachedRepository_DeleteInvalidatesAfterCommit(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	txCtx, commit := database.BeginScope(ctx, false)
	next.On("Delete", txCtx, a).Return(nil)
	// The row is still visible to other readers until commit.
	next.On("FindByID", ctx, a.ID).Return(a, nil).Once()
	next.On("FindByID", ctx, a.ID).Return(nil, nil)

	require.NoError(t, repo.Delete(txCtx, a))

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, c.Has(model.AuthorCacheKey(a.ID)))

	commit()

	assert.False(t, c.Has(model.AuthorCacheKey(a.ID)))
	found, err = repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCachedRepository_RolledBackSaveKeepsCache(t *testing.T) {
	ctx := context.Background()
	next := new(testutil.MockAuthorRepository)
	c := testutil.NewMemoryCache()
	repo := NewCachedRepository(next, c, time.Minute)

	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe", Books: []*model.Book{}}
	bookID := uuid.New()
	require.NoError(t, c.Set(ctx, model.AuthorCacheKey(a.ID), a, time.Minute))
	require.NoError(t, c.Set(ctx, model.BookCacheKey(bookID), &model.Book{ID: bookID}, time.Minute))

	txCtx, _ := database.BeginScope(ctx, false)
	next.On("Save", txCtx, a).Return(testutil.EchoAuthor, nil)

	_, err := repo.Save(txCtx, a)
	require.NoError(t, err)

	// never committed
	assert.True(t, c.Has(model.AuthorCacheKey(a.ID)))
	assert.True(t, c.Has(model.BookCacheKey(bookID)))
}
