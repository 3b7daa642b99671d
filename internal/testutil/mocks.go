package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bookstore-catalog/internal/domains/catalog/model"
)

// MockAuthorRepository is a testify mock of the author repository.
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindAllWithBooks(ctx context.Context) ([]*model.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) ExistsByNameAndSurname(ctx context.Context, name, surname string) (bool, error) {
	args := m.Called(ctx, name, surname)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRepository) Save(ctx context.Context, author *model.Author) (*model.Author, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(*model.Author) *model.Author); ok {
		return echo(author), args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, author *model.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

// MockBookRepository is a testify mock of the book repository.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindAllWithAuthor(ctx context.Context) ([]*model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Book), args.Error(1)
}

func (m *MockBookRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if echo, ok := args.Get(0).(func(*model.Book) *model.Book); ok {
		return echo(book), args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// EchoAuthor makes a mocked Save return the author it was given:
//
//	repo.On("Save", mock.Anything, mock.Anything).Return(testutil.EchoAuthor, nil)
func EchoAuthor(a *model.Author) *model.Author { return a }

// EchoBook is EchoAuthor for books.
func EchoBook(b *model.Book) *model.Book { return b }
