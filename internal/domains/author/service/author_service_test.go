package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/testutil"
)

func newTestService() (ServiceInterface, *testutil.MockAuthorRepository, *testutil.TxManager) {
	repo := new(testutil.MockAuthorRepository)
	tx := new(testutil.TxManager)
	return NewAuthorService(repo, tx), repo, tx
}

func johnDoe(books ...*model.Book) *model.Author {
	a := &model.Author{ID: uuid.New(), Name: "John", Surname: "Doe"}
	for _, b := range books {
		b.AuthorID = a.ID
	}
	if books != nil {
		a.Books = books
	}
	return a
}

func TestGetAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("maps scalars and omits books", func(t *testing.T) {
		svc, repo, _ := newTestService()
		a := johnDoe(&model.Book{ID: uuid.New(), Title: "T1"})
		repo.On("FindByID", ctx, a.ID).Return(a, nil)

		resp, err := svc.GetAuthor(ctx, a.ID.String())

		require.NoError(t, err)
		assert.Equal(t, &model.AuthorResponse{ID: a.ID.String(), Name: "John", Surname: "Doe"}, resp)
		repo.AssertNotCalled(t, "FindByIDWithBooks", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newTestService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := svc.GetAuthor(ctx, id.String())

		require.Error(t, err)
		assert.True(t, model.IsNotFound(err))
		assert.Equal(t, "Author not found with ID: "+id.String(), model.GetErrorMessage(err))
	})

	t.Run("malformed id never reaches the repository", func(t *testing.T) {
		svc, repo, _ := newTestService()

		_, err := svc.GetAuthor(ctx, "not-a-uuid")

		assert.True(t, model.IsInvalidInput(err))
		assert.Equal(t, "Invalid ID format: not-a-uuid", model.GetErrorMessage(err))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is passed through", func(t *testing.T) {
		svc, repo, _ := newTestService()
		id := uuid.New()
		boom := errors.New("connection reset")
		repo.On("FindByID", ctx, id).Return(nil, boom)

		_, err := svc.GetAuthor(ctx, id.String())

		assert.ErrorIs(t, err, boom)
	})
}

func TestGetAuthorWithBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("full view embeds shallow books", func(t *testing.T) {
		svc, repo, tx := newTestService()
		book := &model.Book{ID: uuid.New(), Title: "T1", Description: "D1", PageCount: 300}
		a := johnDoe(book)
		repo.On("FindByIDWithBooks", ctx, a.ID).Return(a, nil)

		resp, err := svc.GetAuthorWithBooks(ctx, a.ID.String())

		require.NoError(t, err)
		assert.Equal(t, &model.AuthorFullResponse{
			ID:      a.ID.String(),
			Name:    "John",
			Surname: "Doe",
			Books: []*model.BookResponse{
				{ID: book.ID.String(), Title: "T1", Description: "D1", PageCount: 300},
			},
		}, resp)
		assert.Equal(t, 1, tx.ReadOnly)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newTestService()
		id := uuid.New()
		repo.On("FindByIDWithBooks", ctx, id).Return(nil, nil)

		resp, err := svc.GetAuthorWithBooks(ctx, id.String())

		assert.Nil(t, resp)
		assert.True(t, model.IsNotFound(err))
	})
}

func TestListAuthors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store is NotFound", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("FindAll", ctx).Return([]*model.Author{}, nil)

		resp, err := svc.ListAuthors(ctx)

		assert.Nil(t, resp)
		assert.True(t, model.IsNotFound(err))
		assert.Equal(t, "Authors not found", model.GetErrorMessage(err))
	})

	t.Run("full list on empty store is NotFound", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("FindAllWithBooks", ctx).Return(nil, nil)

		resp, err := svc.ListAuthorsWithBooks(ctx)

		assert.Nil(t, resp)
		assert.True(t, model.IsNotFound(err))
	})

	t.Run("maps every author", func(t *testing.T) {
		svc, repo, _ := newTestService()
		a1 := johnDoe()
		a2 := &model.Author{ID: uuid.New(), Name: "Jane", Surname: "Roe"}
		repo.On("FindAll", ctx).Return([]*model.Author{a1, a2}, nil)

		resp, err := svc.ListAuthors(ctx)

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "John", resp[0].Name)
		assert.Equal(t, "Roe", resp[1].Surname)
	})

	t.Run("full list keeps empty book lists", func(t *testing.T) {
		svc, repo, _ := newTestService()
		a := johnDoe()
		a.Books = []*model.Book{}
		repo.On("FindAllWithBooks", ctx).Return([]*model.Author{a}, nil)

		resp, err := svc.ListAuthorsWithBooks(ctx)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.NotNil(t, resp[0].Books)
		assert.Empty(t, resp[0].Books)
	})
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate natural key fails without saving", func(t *testing.T) {
		svc, repo, tx := newTestService()
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(true, nil)

		_, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{Name: "John", Surname: "Doe"})

		require.Error(t, err)
		assert.True(t, model.IsAlreadyExists(err))
		assert.Equal(t, "Author already exists with name: John and surname: Doe", model.GetErrorMessage(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.False(t, tx.Committed())
	})

	t.Run("without books keeps the collection absent", func(t *testing.T) {
		svc, repo, tx := newTestService()
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.ID != uuid.Nil && a.Books == nil
		})).Return(testutil.EchoAuthor, nil)

		resp, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{Name: "John", Surname: "Doe"})

		require.NoError(t, err)
		assert.Equal(t, "John", resp.Name)
		assert.Equal(t, "Doe", resp.Surname)
		assert.Nil(t, resp.Books)
		assert.Equal(t, 1, tx.ReadWrite)
		assert.True(t, tx.Committed())
		repo.AssertExpectations(t)
	})

	t.Run("empty book list stays empty", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.Books != nil && len(a.Books) == 0
		})).Return(testutil.EchoAuthor, nil)

		resp, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{
			Name:    "John",
			Surname: "Doe",
			Books:   []*model.BookRequest{},
		})

		require.NoError(t, err)
		assert.NotNil(t, resp.Books)
		assert.Empty(t, resp.Books)
	})

	t.Run("cascades nested books wired to the new author", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(false, nil)

		var saved *model.Author
		repo.On("Save", ctx, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Author) }).
			Return(testutil.EchoAuthor, nil)

		resp, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{
			Name:    "John",
			Surname: "Doe",
			Books: []*model.BookRequest{
				{Title: "T1", Description: "D1", PageCount: 300},
				{Title: "T2", Description: "D2", PageCount: 0},
			},
		})

		require.NoError(t, err)
		require.Len(t, saved.Books, 2)
		for _, b := range saved.Books {
			assert.Equal(t, saved.ID, b.AuthorID)
			assert.NotEqual(t, uuid.Nil, b.ID)
		}
		require.Len(t, resp.Books, 2)
		assert.Equal(t, "T1", resp.Books[0].Title)
		assert.Equal(t, 300, resp.Books[0].PageCount)
		assert.Equal(t, "T2", resp.Books[1].Title)
		assert.NotEqual(t, resp.Books[0].ID, resp.Books[1].ID)
	})

	t.Run("constraint violation on save surfaces AlreadyExists", func(t *testing.T) {
		svc, repo, tx := newTestService()
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(false, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil, model.NewAuthorAlreadyExists("John", "Doe"))

		_, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{Name: "John", Surname: "Doe"})

		assert.True(t, model.IsAlreadyExists(err))
		assert.False(t, tx.Committed())
	})

	t.Run("commit failure is reported", func(t *testing.T) {
		svc, repo, tx := newTestService()
		tx.CommitErr = errors.New("commit failed")
		repo.On("ExistsByNameAndSurname", ctx, "John", "Doe").Return(false, nil)
		repo.On("Save", ctx, mock.Anything).Return(testutil.EchoAuthor, nil)

		resp, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{Name: "John", Surname: "Doe"})

		assert.Nil(t, resp)
		assert.EqualError(t, err, "commit failed")
	})
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	var stored *model.Author
	repo.On("ExistsByNameAndSurname", ctx, "Ursula", "Le Guin").Return(false, nil)
	repo.On("Save", ctx, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.Author) }).
		Return(testutil.EchoAuthor, nil)

	created, err := svc.CreateAuthor(ctx, &model.AuthorCreateRequest{Name: "Ursula", Surname: "Le Guin"})
	require.NoError(t, err)

	repo.On("FindByID", ctx, stored.ID).Return(stored, nil)

	got, err := svc.GetAuthor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ursula", got.Name)
	assert.Equal(t, "Le Guin", got.Surname)
}

func TestUpdateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("not found skips save", func(t *testing.T) {
		svc, repo, _ := newTestService()
		id := uuid.New()
		repo.On("FindByIDWithBooks", ctx, id).Return(nil, nil)

		_, err := svc.UpdateAuthor(ctx, id.String(), &model.AuthorCreateRequest{Name: "X", Surname: "Y"})

		assert.True(t, model.IsNotFound(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("non-nil books replace the whole collection", func(t *testing.T) {
		svc, repo, _ := newTestService()
		old := &model.Book{ID: uuid.New(), Title: "Old"}
		a := johnDoe(old)
		repo.On("FindByIDWithBooks", ctx, a.ID).Return(a, nil)

		var saved *model.Author
		repo.On("Save", ctx, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Author) }).
			Return(testutil.EchoAuthor, nil)

		resp, err := svc.UpdateAuthor(ctx, a.ID.String(), &model.AuthorCreateRequest{
			Name:    "Johnny",
			Surname: "Doe",
			Books:   []*model.BookRequest{{Title: "New", PageCount: 10}},
		})

		require.NoError(t, err)
		require.Len(t, saved.Books, 1)
		assert.NotEqual(t, old.ID, saved.Books[0].ID)
		assert.Equal(t, a.ID, saved.Books[0].AuthorID)
		assert.Equal(t, "Johnny", resp.Name)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "New", resp.Books[0].Title)
		repo.AssertNotCalled(t, "ExistsByNameAndSurname", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil books leave existing associations untouched", func(t *testing.T) {
		svc, repo, _ := newTestService()
		existing := &model.Book{ID: uuid.New(), Title: "Kept", PageCount: 12}
		a := johnDoe(existing)
		repo.On("FindByIDWithBooks", ctx, a.ID).Return(a, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.Books == nil && a.Name == "Jon"
		})).Return(testutil.EchoAuthor, nil)

		resp, err := svc.UpdateAuthor(ctx, a.ID.String(), &model.AuthorCreateRequest{Name: "Jon", Surname: "Doe"})

		require.NoError(t, err)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, existing.ID.String(), resp.Books[0].ID)
		assert.Equal(t, "Kept", resp.Books[0].Title)
		repo.AssertExpectations(t)
	})

	t.Run("empty books clear the collection", func(t *testing.T) {
		svc, repo, _ := newTestService()
		a := johnDoe(&model.Book{ID: uuid.New(), Title: "Gone"})
		repo.On("FindByIDWithBooks", ctx, a.ID).Return(a, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.Books != nil && len(a.Books) == 0
		})).Return(testutil.EchoAuthor, nil)

		resp, err := svc.UpdateAuthor(ctx, a.ID.String(), &model.AuthorCreateRequest{
			Name:    "John",
			Surname: "Doe",
			Books:   []*model.BookRequest{},
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Books)
	})
}

func TestDeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("not found skips delete", func(t *testing.T) {
		svc, repo, _ := newTestService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, nil)

		err := svc.DeleteAuthor(ctx, id.String())

		assert.True(t, model.IsNotFound(err))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes the found author", func(t *testing.T) {
		svc, repo, tx := newTestService()
		a := johnDoe()
		repo.On("FindByID", ctx, a.ID).Return(a, nil)
		repo.On("Delete", ctx, a).Return(nil)

		err := svc.DeleteAuthor(ctx, a.ID.String())

		require.NoError(t, err)
		assert.Equal(t, 1, tx.ReadWrite)
		repo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, repo, tx := newTestService()

		err := svc.DeleteAuthor(ctx, "42")

		assert.True(t, model.IsInvalidInput(err))
		assert.Zero(t, tx.ReadWrite)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
