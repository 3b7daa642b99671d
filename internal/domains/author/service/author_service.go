package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/metrics"
	"bookstore-catalog/pkg/database"
)

type authorService struct {
	repo repository.RepositoryInterface
	tx   database.TxManager
}

func NewAuthorService(repo repository.RepositoryInterface, tx database.TxManager) ServiceInterface {
	return &authorService{
		repo: repo,
		tx:   tx,
	}
}

func (s *authorService) GetAuthor(ctx context.Context, id string) (*model.AuthorResponse, error) {
	authorID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewAuthorNotFound(id)
	}

	return model.ToAuthorResponse(a), nil
}

func (s *authorService) GetAuthorWithBooks(ctx context.Context, id string) (*model.AuthorFullResponse, error) {
	authorID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	return database.RunInReadOnlyTx(ctx, s.tx, func(ctx context.Context) (*model.AuthorFullResponse, error) {
		a, err := s.repo.FindByIDWithBooks(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, model.NewAuthorNotFound(id)
		}
		return model.ToAuthorFullResponse(a), nil
	})
}

func (s *authorService) ListAuthors(ctx context.Context) ([]*model.AuthorResponse, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, model.NewAuthorsNotFound()
	}

	return model.ToAuthorResponses(authors), nil
}

func (s *authorService) ListAuthorsWithBooks(ctx context.Context) ([]*model.AuthorFullResponse, error) {
	return database.RunInReadOnlyTx(ctx, s.tx, func(ctx context.Context) ([]*model.AuthorFullResponse, error) {
		authors, err := s.repo.FindAllWithBooks(ctx)
		if err != nil {
			return nil, err
		}
		if len(authors) == 0 {
			return nil, model.NewAuthorsNotFound()
		}
		return model.ToAuthorFullResponses(authors), nil
	})
}

func (s *authorService) CreateAuthor(ctx context.Context, req *model.AuthorCreateRequest) (*model.AuthorFullResponse, error) {
	resp, err := database.RunInTx(ctx, s.tx, func(ctx context.Context) (*model.AuthorFullResponse, error) {
		author := model.NewAuthorFromRequest(req)

		// Advisory: the UNIQUE (name, surname) constraint settles concurrent creates.
		exists, err := s.repo.ExistsByNameAndSurname(ctx, author.Name, author.Surname)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.NewAuthorAlreadyExists(author.Name, author.Surname)
		}

		if req.Books != nil {
			author.Books = model.NewBooksForAuthor(author, req.Books)
		}

		saved, err := s.repo.Save(ctx, author)
		if err != nil {
			return nil, err
		}
		return model.ToAuthorFullResponse(saved), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncMutation("author", "create")
	log.Info().Str("author_id", resp.ID).Int("books", len(resp.Books)).Msg("author created")
	return resp, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id string, req *model.AuthorCreateRequest) (*model.AuthorFullResponse, error) {
	authorID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	resp, err := database.RunInTx(ctx, s.tx, func(ctx context.Context) (*model.AuthorFullResponse, error) {
		author, err := s.repo.FindByIDWithBooks(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, model.NewAuthorNotFound(id)
		}

		author.Name = req.Name
		author.Surname = req.Surname

		// Save replaces stored books only for a non-nil collection.
		current := author.Books
		if req.Books != nil {
			author.Books = model.NewBooksForAuthor(author, req.Books)
		} else {
			author.Books = nil
		}

		saved, err := s.repo.Save(ctx, author)
		if err != nil {
			return nil, err
		}
		if req.Books == nil {
			saved.Books = current
		}
		return model.ToAuthorFullResponse(saved), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncMutation("author", "update")
	return resp, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id string) error {
	authorID, err := model.ParseID(id)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		author, err := s.repo.FindByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return model.NewAuthorNotFound(id)
		}
		return s.repo.Delete(ctx, author)
	})
	if err != nil {
		return err
	}

	metrics.IncMutation("author", "delete")
	log.Info().Str("author_id", id).Msg("author deleted")
	return nil
}
