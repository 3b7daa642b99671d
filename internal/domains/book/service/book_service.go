package service

import (
	"context"

	"github.com/rs/zerolog/log"

	authorRepo "bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/domains/book/repository"
	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/metrics"
	"bookstore-catalog/pkg/database"
)

// BookService implements ServiceInterface
type BookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorRepo.RepositoryInterface
	tx         database.TxManager
}

// NewService - Constructor with DI
func NewService(
	repo repository.RepositoryInterface,
	authors authorRepo.RepositoryInterface,
	tx database.TxManager,
) ServiceInterface {
	return &BookService{
		repo:       repo,
		authorRepo: authors,
		tx:         tx,
	}
}

func (s *BookService) GetBook(ctx context.Context, id string) (*model.BookResponse, error) {
	bookID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, model.NewBookNotFound(id)
	}

	return model.ToBookResponse(b), nil
}

func (s *BookService) GetBookWithAuthor(ctx context.Context, id string) (*model.BookFullResponse, error) {
	bookID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	return database.RunInReadOnlyTx(ctx, s.tx, func(ctx context.Context) (*model.BookFullResponse, error) {
		b, err := s.repo.FindByIDWithAuthor(ctx, bookID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, model.NewBookNotFound(id)
		}
		return model.ToBookFullResponse(b), nil
	})
}

func (s *BookService) ListBooks(ctx context.Context) ([]*model.BookResponse, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}

	return model.ToBookResponses(books), nil
}

func (s *BookService) ListBooksWithAuthor(ctx context.Context) ([]*model.BookFullResponse, error) {
	return database.RunInReadOnlyTx(ctx, s.tx, func(ctx context.Context) ([]*model.BookFullResponse, error) {
		books, err := s.repo.FindAllWithAuthor(ctx)
		if err != nil {
			return nil, err
		}
		if len(books) == 0 {
			return nil, nil
		}
		return model.ToBookFullResponses(books), nil
	})
}

func (s *BookService) CreateBook(ctx context.Context, req *model.BookCreateRequest) (*model.BookFullResponse, error) {
	authorID, err := model.ParseID(req.AuthorID)
	if err != nil {
		return nil, err
	}

	resp, err := database.RunInTx(ctx, s.tx, func(ctx context.Context) (*model.BookFullResponse, error) {
		// Locked so a concurrent author delete waits for this insert.
		author, err := s.authorRepo.FindByIDForShare(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, model.NewBookAuthorNotFound(req.AuthorID)
		}

		book := model.NewBookFromRequest(&req.BookRequest)
		book.AuthorID = author.ID
		book.Author = author

		saved, err := s.repo.Save(ctx, book)
		if err != nil {
			return nil, err
		}
		return model.ToBookFullResponse(saved), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncMutation("book", "create")
	log.Info().Str("book_id", resp.ID).Str("author_id", req.AuthorID).Msg("book created")
	return resp, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id string, req *model.BookRequest) (*model.BookFullResponse, error) {
	bookID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	resp, err := database.RunInTx(ctx, s.tx, func(ctx context.Context) (*model.BookFullResponse, error) {
		b, err := s.repo.FindByIDWithAuthor(ctx, bookID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, model.NewBookNotFound(id)
		}

		model.ApplyBookRequest(b, req)

		saved, err := s.repo.Save(ctx, b)
		if err != nil {
			return nil, err
		}
		return model.ToBookFullResponse(saved), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncMutation("book", "update")
	return resp, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	bookID, err := model.ParseID(id)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByID(ctx, bookID)
		if err != nil {
			return err
		}
		if b == nil {
			return model.NewBookNotFound(id)
		}
		return s.repo.DeleteByID(ctx, b.ID)
	})
	if err != nil {
		return err
	}

	metrics.IncMutation("book", "delete")
	log.Info().Str("book_id", id).Msg("book deleted")
	return nil
}
